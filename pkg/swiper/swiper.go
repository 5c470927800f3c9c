// Package swiper 实现可左右滑动的卡片堆
//
// 核心是手势到判定的状态机：拖拽时实时更新位移，松开时按阈值判定为
// 向左 / 向右 / 取消，然后驱动飞出或回弹动画，动画结束后推进卡片堆。
//
// 本包不依赖具体渲染框架：渲染层通过 Snapshot / Subscribe 读取状态，
// 通过 Layout 获取每张卡片的渲染角色。所有方法都应该在同一个逻辑线程
// （Ebitengine 的 Update）中调用。
package swiper

import (
	"fmt"
	"log"
)

// Config Swiper 配置
type Config[T any] struct {
	// Data 卡片数据，按显示顺序排列（默认为空）
	Data []T

	// ViewportWidth 视口宽度 W，必须为正数
	ViewportWidth float64

	// 回调（默认为空函数）
	OnSwipeLeft  func(item T, index int)
	OnSwipeRight func(item T, index int)
	OnSwipe      func(item T, index int)
	OnComplete   func()

	// Animation 动画参数，零值字段使用默认值
	Animation AnimationConfig
}

// Snapshot 渲染层订阅的状态快照
type Snapshot[T any] struct {
	CurrentIndex int
	Length       int
	Phase        Phase
	Channels     VisualChannels
	Exhausted    bool
	Top          T    // 顶层卡片，Exhausted 时为零值
	HasTop       bool // 是否有顶层卡片
}

type subscriber[T any] struct {
	id int
	fn func(Snapshot[T])
}

// Swiper 卡片堆组件
// 组合 GeometryMapper、GestureTracker、SwipeAnimator 和 StackController
type Swiper[T any] struct {
	mapper     *GeometryMapper
	tracker    *GestureTracker
	animator   *SwipeAnimator
	controller *StackController[T]

	subscribers []subscriber[T]
	nextSubID   int
	last        Snapshot[T]
	hasLast     bool
}

// New 创建 Swiper
//
// 返回：
//   - *Swiper[T]: 新创建的组件，初始索引为 0
//   - error: ViewportWidth 不是正数时返回 ErrInvalidViewport
func New[T any](cfg Config[T]) (*Swiper[T], error) {
	if cfg.ViewportWidth <= 0 {
		return nil, fmt.Errorf("new swiper with width %.1f: %w", cfg.ViewportWidth, ErrInvalidViewport)
	}

	mapper := NewGeometryMapper(cfg.ViewportWidth)
	s := &Swiper[T]{
		mapper:   mapper,
		tracker:  NewGestureTracker(mapper),
		animator: NewSwipeAnimator(mapper, cfg.Animation),
		controller: NewStackController(cfg.Data, Callbacks[T]{
			OnSwipeLeft:  cfg.OnSwipeLeft,
			OnSwipeRight: cfg.OnSwipeRight,
			OnSwipe:      cfg.OnSwipe,
			OnComplete:   cfg.OnComplete,
		}),
	}
	s.controller.SetResetHook(s.animator.ResetVisuals)

	log.Printf("[Swiper] created with %d cards, viewport width %.1f, threshold %.1f",
		len(cfg.Data), cfg.ViewportWidth, mapper.Threshold())
	return s, nil
}

// GestureStart 开始拖拽顶层卡片
//
// 只在 Idle 阶段且还有卡片时接受，否则返回 ErrGestureInProgress / ErrDeckExhausted。
func (s *Swiper[T]) GestureStart() error {
	if s.controller.Exhausted() {
		return invalidState(fmt.Errorf("gesture start: %w", ErrDeckExhausted))
	}
	if s.animator.Phase() != PhaseIdle {
		return invalidState(fmt.Errorf("gesture start in phase %s: %w", s.animator.Phase(), ErrGestureInProgress))
	}
	if err := s.animator.BeginDrag(); err != nil {
		return invalidState(err)
	}
	s.tracker.Start()
	s.notify()
	return nil
}

// GestureMove 更新拖拽位移，dy 被忽略
// 没有进行中的手势时忽略
func (s *Swiper[T]) GestureMove(dx, dy float64) {
	if !s.tracker.Active() {
		return
	}
	s.tracker.Move(dx, dy)
	s.animator.Drag(s.tracker.State().Displacement)
	s.notify()
}

// GestureEnd 松开手势，判定结果并开始对应动画
func (s *Swiper[T]) GestureEnd(dx, dy float64) (SwipeOutcome, error) {
	if !s.tracker.Active() {
		return OutcomeCancelled, invalidState(fmt.Errorf("gesture end: %w", ErrNoActiveGesture))
	}

	outcome := s.tracker.End(dx, dy)
	from := s.tracker.State().Displacement
	if err := s.animator.Release(outcome, from, s.handleSettled); err != nil {
		s.tracker.Reset()
		return outcome, invalidState(err)
	}
	s.tracker.Reset()

	log.Printf("[Swiper] gesture end dx=%.1f threshold=%.1f outcome=%s", dx, s.mapper.Threshold(), outcome)
	s.notify()
	return outcome, nil
}

// Update 推进动画，每帧调用一次
// 返回用户回调 panic 产生的 *CallbackError（状态已经推进）
func (s *Swiper[T]) Update(deltaTime float64) error {
	err := s.animator.Update(deltaTime)
	s.notify()
	return err
}

// handleSettled 飞出动画结束，交给 StackController 推进
func (s *Swiper[T]) handleSettled(direction SwipeOutcome) error {
	return s.controller.OnSwipeSettled(direction)
}

// SetViewportWidth 更新视口宽度（Layout 变化时调用）
func (s *Swiper[T]) SetViewportWidth(w float64) {
	if w <= 0 {
		log.Printf("[Swiper] ignore invalid viewport width %.1f", w)
		return
	}
	if w == s.mapper.ViewportWidth() {
		return
	}
	s.mapper.SetViewportWidth(w)
	s.notify()
}

// ViewportWidth 返回视口宽度
func (s *Swiper[T]) ViewportWidth() float64 {
	return s.mapper.ViewportWidth()
}

// Threshold 返回当前滑动阈值
func (s *Swiper[T]) Threshold() float64 {
	return s.mapper.Threshold()
}

// Phase 返回动画阶段
func (s *Swiper[T]) Phase() Phase {
	return s.animator.Phase()
}

// CurrentIndex 返回顶层卡片索引
func (s *Swiper[T]) CurrentIndex() int {
	return s.controller.CurrentIndex()
}

// Exhausted 卡片是否已经全部滑完
func (s *Swiper[T]) Exhausted() bool {
	return s.controller.Exhausted()
}

// Len 返回卡片总数
func (s *Swiper[T]) Len() int {
	return s.controller.Len()
}

// Channels 返回当前帧的视觉参数
func (s *Swiper[T]) Channels() VisualChannels {
	return s.animator.Channels()
}

// Layout 返回每张卡片的渲染角色
func (s *Swiper[T]) Layout() []CardSlot[T] {
	return s.controller.Layout()
}

// DrawOrder 返回需要绘制的卡片（从后到前）
func (s *Swiper[T]) DrawOrder() []CardSlot[T] {
	return s.controller.DrawOrder()
}

// Mapper 返回几何映射器
func (s *Swiper[T]) Mapper() *GeometryMapper {
	return s.mapper
}

// Snapshot 返回当前状态快照
func (s *Swiper[T]) Snapshot() Snapshot[T] {
	top, hasTop := s.controller.Current()
	return Snapshot[T]{
		CurrentIndex: s.controller.CurrentIndex(),
		Length:       s.controller.Len(),
		Phase:        s.animator.Phase(),
		Channels:     s.animator.Channels(),
		Exhausted:    s.controller.Exhausted(),
		Top:          top,
		HasTop:       hasTop,
	}
}

// Subscribe 订阅状态变化
// 快照（索引、阶段、视觉参数）变化时同步调用 fn；返回取消订阅函数
func (s *Swiper[T]) Subscribe(fn func(Snapshot[T])) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// notify 快照发生变化时通知订阅者
func (s *Swiper[T]) notify() {
	snap := s.Snapshot()
	if s.hasLast && sameState(s.last, snap) {
		return
	}
	s.last = snap
	s.hasLast = true

	subs := make([]subscriber[T], len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(snap)
	}
}

func sameState[T any](a, b Snapshot[T]) bool {
	return a.CurrentIndex == b.CurrentIndex &&
		a.Length == b.Length &&
		a.Phase == b.Phase &&
		a.Channels == b.Channels
}
