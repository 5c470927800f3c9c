package swiper

import (
	"math"
	"testing"
)

const testViewportWidth = 300.0 // T = 75

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestGeometryMapper_Rotation 测试旋转映射（不限制）
func TestGeometryMapper_Rotation(t *testing.T) {
	g := NewGeometryMapper(testViewportWidth)

	tests := []struct {
		name     string
		d        float64
		expected float64
	}{
		{"居中", 0, 0},
		{"右侧域端点", 450, 20},
		{"左侧域端点", -450, -20},
		{"拖动一个屏宽", 300, 40.0 / 3},
		{"超出域外推", 900, 40},
		{"左侧超出域外推", -900, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Rotation(tt.d); !almostEqual(got, tt.expected) {
				t.Errorf("Rotation(%v) = %v, want %v", tt.d, got, tt.expected)
			}
		})
	}

	if got := g.Channels(450, 0, 0, 0).RotationRadians(); !almostEqual(got, 20*math.Pi/180) {
		t.Errorf("Channels(450).RotationRadians() = %v", got)
	}
}

// TestGeometryMapper_ChildScale 测试下层卡片缩放映射
func TestGeometryMapper_ChildScale(t *testing.T) {
	g := NewGeometryMapper(testViewportWidth)

	tests := []struct {
		name     string
		d        float64
		expected float64
	}{
		{"居中为静止缩放", 0, 0.9},
		{"右阈值", 75, 1},
		{"左阈值", -75, 1},
		{"右半阈值", 37.5, 0.95},
		{"超出阈值限制为1", 300, 1},
		{"左侧超出阈值限制为1", -1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ChildScale(tt.d); !almostEqual(got, tt.expected) {
				t.Errorf("ChildScale(%v) = %v, want %v", tt.d, got, tt.expected)
			}
		})
	}
}

// TestGeometryMapper_ChildScaleRangeAndMonotonic 缩放始终在 [0.9, 1] 且随 |d| 单调不减
func TestGeometryMapper_ChildScaleRangeAndMonotonic(t *testing.T) {
	g := NewGeometryMapper(testViewportWidth)

	for d := -600.0; d <= 600; d += 2.5 {
		s := g.ChildScale(d)
		if s < 0.9-1e-12 || s > 1+1e-12 {
			t.Fatalf("ChildScale(%v) = %v 超出 [0.9, 1]", d, s)
		}
	}

	prev := g.ChildScale(0)
	for d := 0.5; d <= 75; d += 0.5 {
		s := g.ChildScale(d)
		if s < prev {
			t.Fatalf("ChildScale 在 d=%v 处递减: %v < %v", d, s, prev)
		}
		if !almostEqual(s, g.ChildScale(-d)) {
			t.Fatalf("ChildScale 应该关于 0 对称, d=%v", d)
		}
		prev = s
	}
}

// TestGeometryMapper_LabelOpacity 测试左右标签透明度
func TestGeometryMapper_LabelOpacity(t *testing.T) {
	g := NewGeometryMapper(testViewportWidth)

	tests := []struct {
		name      string
		d         float64
		wantLeft  float64
		wantRight float64
	}{
		{"居中", 0, 0, 0},
		{"向右半阈值", 37.5, 0.5, 0},
		{"向右阈值", 75, 1, 0},
		{"向右超出", 200, 1, 0},
		{"向左半阈值", -37.5, 0, 0.5},
		{"向左阈值", -75, 0, 1},
		{"向左超出", -200, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.LeftLabelOpacity(tt.d); !almostEqual(got, tt.wantLeft) {
				t.Errorf("LeftLabelOpacity(%v) = %v, want %v", tt.d, got, tt.wantLeft)
			}
			if got := g.RightLabelOpacity(tt.d); !almostEqual(got, tt.wantRight) {
				t.Errorf("RightLabelOpacity(%v) = %v, want %v", tt.d, got, tt.wantRight)
			}
		})
	}
}

// TestGeometryMapper_RestAndZeroWidth 测试静止值以及视口宽度为 0 的情况
func TestGeometryMapper_RestAndZeroWidth(t *testing.T) {
	g := NewGeometryMapper(testViewportWidth)
	rest := g.RestChannels()
	want := VisualChannels{OffsetX: 0, Rotation: 0, ChildScale: 0.9, LeftLabelOpacity: 0, RightLabelOpacity: 0}
	if rest != want {
		t.Errorf("RestChannels() = %+v, want %+v", rest, want)
	}

	zero := NewGeometryMapper(0)
	if zero.Rotation(100) != 0 || zero.ChildScale(100) != 0.9 ||
		zero.LeftLabelOpacity(100) != 0 || zero.RightLabelOpacity(-100) != 0 {
		t.Error("视口宽度为 0 时应该返回静止值")
	}
}

// TestGeometryMapper_SetViewportWidth 测试阈值随视口宽度变化
func TestGeometryMapper_SetViewportWidth(t *testing.T) {
	g := NewGeometryMapper(testViewportWidth)
	if g.Threshold() != 75 {
		t.Fatalf("Threshold() = %v, want 75", g.Threshold())
	}
	g.SetViewportWidth(400)
	if g.Threshold() != 100 {
		t.Errorf("Threshold() = %v, want 100", g.Threshold())
	}
}
