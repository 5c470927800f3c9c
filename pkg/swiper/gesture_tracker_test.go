package swiper

import "testing"

// TestGestureTracker_Classify 测试松开时的阈值判定（W=300, T=75）
func TestGestureTracker_Classify(t *testing.T) {
	gt := NewGestureTracker(NewGeometryMapper(testViewportWidth))

	tests := []struct {
		name     string
		dx       float64
		expected SwipeOutcome
	}{
		{"超过右阈值", 90, OutcomeRight},
		{"刚好超过右阈值", 75.0001, OutcomeRight},
		{"等于右阈值不算滑动", 75, OutcomeCancelled},
		{"等于左阈值不算滑动", -75, OutcomeCancelled},
		{"刚好超过左阈值", -75.0001, OutcomeLeft},
		{"超过左阈值", -100, OutcomeLeft},
		{"阈值内", 40, OutcomeCancelled},
		{"居中", 0, OutcomeCancelled},
		{"一个屏宽", 300, OutcomeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Start()
			gt.Move(tt.dx, 0)
			if got := gt.End(tt.dx, 0); got != tt.expected {
				t.Errorf("End(%v) = %v, want %v", tt.dx, got, tt.expected)
			}
		})
	}
}

// TestGestureTracker_ClassifyRange 阈值区间内全部判定为取消
func TestGestureTracker_ClassifyRange(t *testing.T) {
	gt := NewGestureTracker(NewGeometryMapper(testViewportWidth))
	for dx := -75.0; dx <= 75; dx += 0.25 {
		if got := gt.Classify(dx); got != OutcomeCancelled {
			t.Fatalf("Classify(%v) = %v, want cancelled", dx, got)
		}
	}
	for dx := 75.25; dx <= 600; dx += 0.25 {
		if got := gt.Classify(dx); got != OutcomeRight {
			t.Fatalf("Classify(%v) = %v, want right", dx, got)
		}
		if got := gt.Classify(-dx); got != OutcomeLeft {
			t.Fatalf("Classify(%v) = %v, want left", -dx, got)
		}
	}
}

// TestGestureTracker_Lifecycle 测试手势状态的生命周期
func TestGestureTracker_Lifecycle(t *testing.T) {
	gt := NewGestureTracker(NewGeometryMapper(testViewportWidth))

	// 未开始时 Move 被忽略
	gt.Move(50, 10)
	if st := gt.State(); st.Displacement != 0 || st.Active {
		t.Fatalf("未开始时状态应为 {0, false}, got %+v", st)
	}

	gt.Start()
	if st := gt.State(); st.Displacement != 0 || !st.Active {
		t.Fatalf("Start 后状态应为 {0, true}, got %+v", st)
	}

	// 垂直位移被忽略，按到达顺序应用
	gt.Move(10, 99)
	gt.Move(25, -40)
	gt.Move(60, 0)
	if st := gt.State(); st.Displacement != 60 {
		t.Errorf("Displacement = %v, want 60", st.Displacement)
	}

	outcome := gt.End(60, 5)
	if outcome != OutcomeCancelled {
		t.Errorf("End(60) = %v, want cancelled", outcome)
	}
	// 松开后位移保留到 Reset
	if st := gt.State(); st.Active || st.Displacement != 60 {
		t.Errorf("End 后状态应为 {60, false}, got %+v", st)
	}

	gt.Reset()
	if st := gt.State(); st != (GestureState{}) {
		t.Errorf("Reset 后状态应为 {0, false}, got %+v", st)
	}
}
