package swiper

import (
	"errors"
	"fmt"
	"log"
	"sort"
)

// Callbacks 用户回调
// 未设置的回调在 NewStackController 中替换为空函数
type Callbacks[T any] struct {
	OnSwipeLeft  func(item T, index int)
	OnSwipeRight func(item T, index int)
	OnSwipe      func(item T, index int)
	OnComplete   func()
}

func (c Callbacks[T]) withDefaults() Callbacks[T] {
	noop := func(T, int) {}
	if c.OnSwipeLeft == nil {
		c.OnSwipeLeft = noop
	}
	if c.OnSwipeRight == nil {
		c.OnSwipeRight = noop
	}
	if c.OnSwipe == nil {
		c.OnSwipe = noop
	}
	if c.OnComplete == nil {
		c.OnComplete = func() {}
	}
	return c
}

// StackController 管理卡片序列和当前索引
//
// 不变量：
//   - currentIndex 单调不减，取值范围 [0, len]
//   - currentIndex == len 表示卡片已经全部滑完
//   - OnComplete 最多触发一次
type StackController[T any] struct {
	data         []T
	currentIndex int
	callbacks    Callbacks[T]
	resetVisuals func()
	completed    bool
}

// NewStackController 创建卡片堆控制器
// data 会被复制，调用方之后修改原切片不影响卡片堆
func NewStackController[T any](data []T, callbacks Callbacks[T]) *StackController[T] {
	owned := make([]T, len(data))
	copy(owned, data)
	return &StackController[T]{
		data:      owned,
		callbacks: callbacks.withDefaults(),
	}
}

// SetResetHook 设置结算前重置视觉状态的函数
func (sc *StackController[T]) SetResetHook(fn func()) {
	sc.resetVisuals = fn
}

// CurrentIndex 返回当前顶层卡片的索引
func (sc *StackController[T]) CurrentIndex() int {
	return sc.currentIndex
}

// Len 返回卡片总数
func (sc *StackController[T]) Len() int {
	return len(sc.data)
}

// Exhausted 卡片是否已经全部滑完
func (sc *StackController[T]) Exhausted() bool {
	return sc.currentIndex >= len(sc.data)
}

// Current 返回顶层卡片
func (sc *StackController[T]) Current() (T, bool) {
	if sc.Exhausted() {
		var zero T
		return zero, false
	}
	return sc.data[sc.currentIndex], true
}

// OnSwipeSettled 飞出动画结束后推进卡片堆
//
// 执行顺序：
//  1. 重置视觉状态
//  2. 读取当前卡片
//  3. 调用 OnSwipe，然后调用 OnSwipeRight 或 OnSwipeLeft
//  4. currentIndex + 1
//  5. 如果已经没有下一张卡片，调用一次 OnComplete
//
// 卡片已经全部滑完时返回 ErrDeckExhausted，不调用任何回调也不修改状态。
// 回调 panic 会被恢复，其余步骤照常执行，最后以 *CallbackError 返回。
func (sc *StackController[T]) OnSwipeSettled(direction SwipeOutcome) error {
	if !direction.IsSwipe() {
		return invalidState(fmt.Errorf("settle with %s: %w", direction, ErrInvalidDirection))
	}
	if sc.Exhausted() {
		return invalidState(fmt.Errorf("settle at index %d of %d: %w", sc.currentIndex, len(sc.data), ErrDeckExhausted))
	}

	if sc.resetVisuals != nil {
		sc.resetVisuals()
	}

	index := sc.currentIndex
	item := sc.data[index]

	var errs []error
	errs = append(errs, sc.invoke("OnSwipe", index, func() { sc.callbacks.OnSwipe(item, index) }))
	if direction == OutcomeRight {
		errs = append(errs, sc.invoke("OnSwipeRight", index, func() { sc.callbacks.OnSwipeRight(item, index) }))
	} else {
		errs = append(errs, sc.invoke("OnSwipeLeft", index, func() { sc.callbacks.OnSwipeLeft(item, index) }))
	}

	sc.currentIndex++
	log.Printf("[StackController] swiped %s at index %d, next index %d/%d", direction, index, sc.currentIndex, len(sc.data))

	if sc.Exhausted() && !sc.completed {
		sc.completed = true
		log.Printf("[StackController] deck complete")
		errs = append(errs, sc.invoke("OnComplete", index, sc.callbacks.OnComplete))
	}

	return errors.Join(errs...)
}

// invoke 调用用户回调并把 panic 转换为 *CallbackError
func (sc *StackController[T]) invoke(name string, index int, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[StackController] callback %s panicked: %v", name, r)
			err = &CallbackError{Callback: name, Index: index, Value: r}
		}
	}()
	fn()
	return nil
}

// Layout 返回每张卡片的渲染角色
//
//   - i < currentIndex: SlotHidden（已滑走）
//   - i == currentIndex: SlotTop（可交互）
//   - i > currentIndex: SlotBeneath（按顶层位移缩放）
//
// ZIndex 等于 -i，索引越小绘制在越上面。
func (sc *StackController[T]) Layout() []CardSlot[T] {
	slots := make([]CardSlot[T], len(sc.data))
	for i, item := range sc.data {
		role := SlotBeneath
		switch {
		case i < sc.currentIndex:
			role = SlotHidden
		case i == sc.currentIndex:
			role = SlotTop
		}
		slots[i] = CardSlot[T]{Index: i, Item: item, Role: role, ZIndex: -i}
	}
	return slots
}

// DrawOrder 返回需要绘制的卡片，按从后到前排序（ZIndex 升序）
func (sc *StackController[T]) DrawOrder() []CardSlot[T] {
	visible := make([]CardSlot[T], 0, len(sc.data)-sc.currentIndex)
	for _, slot := range sc.Layout() {
		if slot.Role != SlotHidden {
			visible = append(visible, slot)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].ZIndex < visible[j].ZIndex
	})
	return visible
}
