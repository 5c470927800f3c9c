package swiper

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrGestureInProgress 在非 Idle 阶段开始新手势
	ErrGestureInProgress = errors.New("swiper: gesture or animation already in progress")

	// ErrDeckExhausted 卡片已经全部滑完，没有顶层卡片
	ErrDeckExhausted = errors.New("swiper: deck exhausted")

	// ErrNoActiveGesture 没有进行中的手势
	ErrNoActiveGesture = errors.New("swiper: no active gesture")

	// ErrInvalidDirection 结算方向不是 left 或 right
	ErrInvalidDirection = errors.New("swiper: settle direction must be left or right")

	// ErrInvalidViewport 视口宽度必须为正数
	ErrInvalidViewport = errors.New("swiper: viewport width must be positive")
)

// CallbackError 用户回调发生 panic
// 内部状态（index）已经正常推进后才会返回此错误
type CallbackError struct {
	Callback string // 回调名称，如 "OnSwipe"
	Index    int    // 触发回调时的卡片索引
	Value    any    // recover() 得到的值
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("swiper: callback %s panicked at index %d: %v", e.Callback, e.Index, e.Value)
}

// Unwrap 当 panic 的值本身是 error 时返回它
func (e *CallbackError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// invalidState 记录非法状态错误
// 生产构建只记录日志并返回错误；swiperdebug 构建直接 panic
func invalidState(err error) error {
	log.Printf("[Swiper] invalid state: %v", err)
	if strictChecks {
		panic(err)
	}
	return err
}
