package swiper

import (
	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/utils"
)

// GeometryMapper 把水平位移映射为视觉参数
//
// 所有映射都是纯函数，只依赖视口宽度 W：
//   - Rotation: [-1.5W, 0, 1.5W] → [-20°, 0°, 20°]，不限制（线性外推）
//   - ChildScale: [-T, 0, T] → [1, 0.9, 1]，限制在 [0.9, 1]
//   - LeftLabelOpacity: [0, T] → [0, 1]，限制
//   - RightLabelOpacity: [-T, 0] → [1, 0]，限制
//
// 其中 T = 0.25W 为滑动阈值。
type GeometryMapper struct {
	viewportWidth float64
}

// NewGeometryMapper 创建映射器
func NewGeometryMapper(viewportWidth float64) *GeometryMapper {
	return &GeometryMapper{viewportWidth: viewportWidth}
}

// SetViewportWidth 更新视口宽度（窗口尺寸变化时调用）
func (g *GeometryMapper) SetViewportWidth(w float64) {
	g.viewportWidth = w
}

// ViewportWidth 返回视口宽度 W
func (g *GeometryMapper) ViewportWidth() float64 {
	return g.viewportWidth
}

// Threshold 返回滑动阈值 T
func (g *GeometryMapper) Threshold() float64 {
	return config.SwipeThreshold(g.viewportWidth)
}

// Rotation 返回顶层卡片的旋转角度（度）
func (g *GeometryMapper) Rotation(d float64) float64 {
	if g.viewportWidth <= 0 {
		return 0
	}
	edge := config.RotationDomainRatio * g.viewportWidth
	return utils.Interpolate(d,
		[]float64{-edge, 0, edge},
		[]float64{-config.MaxRotationDegrees, 0, config.MaxRotationDegrees},
		false)
}

// ChildScale 返回下层卡片的缩放
func (g *GeometryMapper) ChildScale(d float64) float64 {
	th := g.Threshold()
	if th <= 0 {
		return config.StackDefaultScale
	}
	return utils.Interpolate(d,
		[]float64{-th, 0, th},
		[]float64{1, config.StackDefaultScale, 1},
		true)
}

// LeftLabelOpacity 返回左侧标签的透明度
func (g *GeometryMapper) LeftLabelOpacity(d float64) float64 {
	th := g.Threshold()
	if th <= 0 {
		return 0
	}
	return utils.Interpolate(d, []float64{0, th}, []float64{0, 1}, true)
}

// RightLabelOpacity 返回右侧标签的透明度
func (g *GeometryMapper) RightLabelOpacity(d float64) float64 {
	th := g.Threshold()
	if th <= 0 {
		return 0
	}
	return utils.Interpolate(d, []float64{-th, 0}, []float64{1, 0}, true)
}

// Channels 根据各通道的驱动值计算视觉参数
//
// 参数：
//   - offset: 顶层卡片位移驱动值（同时决定旋转）
//   - scale: 下层卡片缩放驱动值
//   - left, right: 左右标签透明度驱动值
func (g *GeometryMapper) Channels(offset, scale, left, right float64) VisualChannels {
	return VisualChannels{
		OffsetX:           offset,
		Rotation:          g.Rotation(offset),
		ChildScale:        g.ChildScale(scale),
		LeftLabelOpacity:  g.LeftLabelOpacity(left),
		RightLabelOpacity: g.RightLabelOpacity(right),
	}
}

// RestChannels 返回静止状态的视觉参数 {0, 0, 0.9, 0, 0}
func (g *GeometryMapper) RestChannels() VisualChannels {
	return g.Channels(0, 0, 0, 0)
}
