package config

import "time"

// 卡片堆滑动交互的常量配置
// 所有距离单位都是逻辑像素（与 Ebitengine Layout 返回的逻辑屏幕尺寸一致）

const (
	// GameWindowWidth 演示程序的逻辑屏幕宽度
	GameWindowWidth = 480

	// GameWindowHeight 演示程序的逻辑屏幕高度
	GameWindowHeight = 800
)

const (
	// SwipeThresholdRatio 判定为滑动的最小位移占视口宽度的比例
	// 阈值 T = 0.25 * W，位移恰好等于 ±T 不算滑动（严格不等式）
	SwipeThresholdRatio = 0.25

	// SwipeOutDuration 卡片飞出屏幕的动画时长
	SwipeOutDuration = 250 * time.Millisecond

	// StackDefaultScale 下层卡片的静止缩放
	// 顶层卡片被拖离时，下层卡片从 0.9 放大到 1
	StackDefaultScale = 0.9

	// MaxRotationDegrees 位移达到 RotationDomainRatio*W 时的旋转角度
	MaxRotationDegrees = 20.0

	// RotationDomainRatio 旋转插值域的半宽占视口宽度的比例
	// 旋转不做 clamp，超出 ±1.5W 时按线性外推
	RotationDomainRatio = 1.5
)

// Spring 回弹动画配置（取消滑动时使用）
const (
	// SpringAngularFrequency 弹簧角频率，越大回弹越快
	SpringAngularFrequency = 8.0

	// SpringDamping 阻尼比，小于 1 时会有轻微的过冲
	SpringDamping = 0.7

	// SpringRestEpsilon 位置和速度都小于该值时认为弹簧已经静止
	SpringRestEpsilon = 0.5

	// SpringFPS 弹簧步进使用的默认帧率（与 Ebitengine 默认 TPS 一致）
	SpringFPS = 60
)

// 卡片布局配置
const (
	// CardMarginX 卡片左右留白
	CardMarginX = 15.0

	// CardMarginTop 卡片距离屏幕顶部的距离
	CardMarginTop = 20.0

	// CardAspectRatio 卡片宽高比（宽 / 高）
	CardAspectRatio = 1.0 / 1.5

	// LabelPadding 标签距离卡片边缘的距离
	LabelPadding = 10.0

	// LabelFontSize 默认标签的字号
	LabelFontSize = 22.0

	// CardFontSize 演示卡片标题的字号
	CardFontSize = 36.0
)

// SwipeThreshold 根据视口宽度计算滑动阈值
func SwipeThreshold(viewportWidth float64) float64 {
	return SwipeThresholdRatio * viewportWidth
}

// CardSize 根据屏幕宽度计算卡片尺寸
//
// 返回：
//   - width: 卡片宽度（屏幕宽度减去左右留白）
//   - height: 卡片高度（按 CardAspectRatio 计算）
func CardSize(screenWidth float64) (width, height float64) {
	width = screenWidth - 2*CardMarginX
	if width < 0 {
		width = 0
	}
	height = width / CardAspectRatio
	return width, height
}
