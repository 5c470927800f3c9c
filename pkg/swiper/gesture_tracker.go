package swiper

// GestureTracker 跟踪一次进行中的拖拽手势，并在松开时判定结果
//
// 只关心水平位移，垂直位移被忽略。
// 所有方法都在主循环中串行调用，不需要加锁。
type GestureTracker struct {
	mapper *GeometryMapper
	state  GestureState
}

// NewGestureTracker 创建手势跟踪器
// 阈值从 mapper 的视口宽度实时获取
func NewGestureTracker(mapper *GeometryMapper) *GestureTracker {
	return &GestureTracker{mapper: mapper}
}

// Start 开始新手势，状态重置为 {0, true}
func (gt *GestureTracker) Start() {
	gt.state = GestureState{Displacement: 0, Active: true}
}

// Move 更新实时位移
// 手势未开始时忽略
func (gt *GestureTracker) Move(dx, dy float64) {
	if !gt.state.Active {
		return
	}
	gt.state.Displacement = dx
}

// End 结束手势并判定结果
//
// 松开后 Active 置为 false，位移保留到 Reset 调用为止（由动画接管）。
func (gt *GestureTracker) End(dx, dy float64) SwipeOutcome {
	gt.state.Displacement = dx
	gt.state.Active = false
	return gt.Classify(dx)
}

// Classify 根据位移判定结果
//
// dx > T 为向右，dx < -T 为向左，其余（包括恰好等于 ±T）为取消。
func (gt *GestureTracker) Classify(dx float64) SwipeOutcome {
	th := gt.mapper.Threshold()
	switch {
	case dx > th:
		return OutcomeRight
	case dx < -th:
		return OutcomeLeft
	default:
		return OutcomeCancelled
	}
}

// Reset 清空手势状态为 {0, false}
func (gt *GestureTracker) Reset() {
	gt.state = GestureState{}
}

// State 返回当前手势状态（副本）
func (gt *GestureTracker) State() GestureState {
	return gt.state
}

// Active 是否有进行中的手势
func (gt *GestureTracker) Active() bool {
	return gt.state.Active
}
