package swiper

import (
	"fmt"
	"math"
)

// SwipeOutcome 一次手势松开时的判定结果
type SwipeOutcome int

const (
	// OutcomeCancelled 位移未超过阈值，卡片回弹到原位
	OutcomeCancelled SwipeOutcome = iota
	// OutcomeLeft 向左滑出
	OutcomeLeft
	// OutcomeRight 向右滑出
	OutcomeRight
)

// String 返回判定结果的名称（用于日志）
func (o SwipeOutcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeLeft:
		return "left"
	case OutcomeRight:
		return "right"
	}
	return fmt.Sprintf("SwipeOutcome(%d)", int(o))
}

// IsSwipe 是否为提交的滑动（左或右）
func (o SwipeOutcome) IsSwipe() bool {
	return o == OutcomeLeft || o == OutcomeRight
}

// Phase 动画状态机的阶段
//
// 状态转换：Idle → Dragging → (Settling | Resetting) → Idle
type Phase int

const (
	// PhaseIdle 空闲，可以开始新的手势
	PhaseIdle Phase = iota
	// PhaseDragging 正在拖拽顶层卡片
	PhaseDragging
	// PhaseSettling 卡片正在飞出屏幕
	PhaseSettling
	// PhaseResetting 卡片正在回弹到原位
	PhaseResetting
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	case PhaseResetting:
		return "resetting"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// GestureState 进行中的指针手势
// 只在手势进行中有意义，手势结束后重置为 {0, false}
type GestureState struct {
	Displacement float64 // 水平位移（逻辑像素，向右为正）
	Active       bool    // 手势是否进行中
}

// VisualChannels 每帧根据位移重新计算的视觉参数
// 纯计算结果，不持久化
type VisualChannels struct {
	OffsetX           float64 // 顶层卡片的水平偏移
	Rotation          float64 // 顶层卡片的旋转角度（度）
	ChildScale        float64 // 下层卡片的缩放
	LeftLabelOpacity  float64 // 左侧标签透明度（向右拖拽时出现）
	RightLabelOpacity float64 // 右侧标签透明度（向左拖拽时出现）
}

// RotationRadians 返回旋转角度的弧度值，用于 GeoM.Rotate
func (c VisualChannels) RotationRadians() float64 {
	return c.Rotation * math.Pi / 180
}

// SlotRole 卡片在渲染时的角色
type SlotRole int

const (
	// SlotHidden 已经滑走的卡片，不渲染
	SlotHidden SlotRole = iota
	// SlotTop 顶层可交互卡片
	SlotTop
	// SlotBeneath 下层卡片，按 ChildScale 缩放
	SlotBeneath
)

// CardSlot 渲染层使用的卡片布局信息
type CardSlot[T any] struct {
	Index  int
	Item   T
	Role   SlotRole
	ZIndex int // 等于 -Index，越靠后的卡片绘制在越下面
}
