package systems

import (
	"errors"
	"log"

	"github.com/decker502/swipedeck/pkg/swiper"
	"github.com/decker502/swipedeck/pkg/utils"
)

// GestureTarget 接收手势的卡片堆
// *swiper.Swiper[T] 实现了该接口
type GestureTarget interface {
	GestureStart() error
	GestureMove(dx, dy float64)
	GestureEnd(dx, dy float64) (swiper.SwipeOutcome, error)
}

// HitTestFunc 判断按下位置是否落在顶层卡片上
type HitTestFunc func(x, y float64) bool

// SwipeInputSystem 滑动输入系统
// 把 DragManager 的拖拽状态转换为卡片堆的 start / move / end 手势
//
// 职责：
//   - 只在按下位置命中顶层卡片时开始手势
//   - 拖拽中把相对起点的位移传给卡片堆
//   - 松开时提交最后的位移，记录判定结果
type SwipeInputSystem struct {
	target   GestureTarget
	hitTest  HitTestFunc
	drag     *utils.DragManager
	tracking bool

	// OnOutcome 手势结束后的回调（可选）
	OnOutcome func(outcome swiper.SwipeOutcome)
}

// NewSwipeInputSystem 创建滑动输入系统，读取 Ebitengine 的鼠标和触摸输入
func NewSwipeInputSystem(target GestureTarget, hitTest HitTestFunc) *SwipeInputSystem {
	return NewSwipeInputSystemWithDevice(target, hitTest, utils.DefaultPointerDevice())
}

// NewSwipeInputSystemWithDevice 创建带自定义指针输入的滑动输入系统（用于测试）
func NewSwipeInputSystemWithDevice(target GestureTarget, hitTest HitTestFunc, device utils.PointerDevice) *SwipeInputSystem {
	return &SwipeInputSystem{
		target:  target,
		hitTest: hitTest,
		drag:    utils.NewDragManager(device),
	}
}

// Tracking 是否正在跟踪一次手势
func (s *SwipeInputSystem) Tracking() bool {
	return s.tracking
}

// Update 每帧调用一次
func (s *SwipeInputSystem) Update(deltaTime float64) {
	s.drag.Update()
	info := s.drag.GetInfo()

	switch info.State {
	case utils.DragStateStarted:
		if s.tracking {
			return
		}
		if s.hitTest != nil && !s.hitTest(float64(info.StartX), float64(info.StartY)) {
			return
		}
		if err := s.target.GestureStart(); err != nil {
			// 动画进行中或卡片已滑完，忽略这次按下
			if !errors.Is(err, swiper.ErrGestureInProgress) && !errors.Is(err, swiper.ErrDeckExhausted) {
				log.Printf("[SwipeInput] gesture start failed: %v", err)
			}
			return
		}
		s.tracking = true

	case utils.DragStateDragging:
		if !s.tracking {
			return
		}
		dx, dy := s.drag.GetDragDistance()
		s.target.GestureMove(float64(dx), float64(dy))

	case utils.DragStateEnded:
		if !s.tracking {
			return
		}
		s.tracking = false
		dx, dy := s.drag.GetDragDistance()
		outcome, err := s.target.GestureEnd(float64(dx), float64(dy))
		if err != nil {
			log.Printf("[SwipeInput] gesture end failed: %v", err)
			return
		}
		log.Printf("[SwipeInput] released at dx=%d: %s", dx, outcome)
		if s.OnOutcome != nil {
			s.OnOutcome(outcome)
		}
	}
}

// Cancel 放弃当前的拖拽（场景切换时调用）
// 正在跟踪的手势以零位移结束，卡片回弹
func (s *SwipeInputSystem) Cancel() {
	if s.tracking {
		if _, err := s.target.GestureEnd(0, 0); err != nil {
			log.Printf("[SwipeInput] cancel failed: %v", err)
		}
	}
	s.drag.Reset()
	s.tracking = false
}
