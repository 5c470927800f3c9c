package swiper

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/utils"
)

// AnimationConfig 动画参数
// 零值字段在 withDefaults 中替换为 config 包里的默认值
type AnimationConfig struct {
	SwipeOutDuration  time.Duration    // 飞出动画时长，默认 250ms
	SwipeOutEasing    utils.EasingFunc // 飞出动画缓动，默认线性
	SpringFrequency   float64          // 回弹弹簧角频率
	SpringDamping     float64          // 回弹弹簧阻尼比
	SpringRestEpsilon float64          // 静止判定阈值
}

// DefaultAnimationConfig 返回默认动画参数
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		SwipeOutDuration:  config.SwipeOutDuration,
		SwipeOutEasing:    utils.EaseLinear,
		SpringFrequency:   config.SpringAngularFrequency,
		SpringDamping:     config.SpringDamping,
		SpringRestEpsilon: config.SpringRestEpsilon,
	}
}

func (c AnimationConfig) withDefaults() AnimationConfig {
	def := DefaultAnimationConfig()
	if c.SwipeOutDuration <= 0 {
		c.SwipeOutDuration = def.SwipeOutDuration
	}
	if c.SwipeOutEasing == nil {
		c.SwipeOutEasing = def.SwipeOutEasing
	}
	if c.SpringFrequency <= 0 {
		c.SpringFrequency = def.SpringFrequency
	}
	if c.SpringDamping <= 0 {
		c.SpringDamping = def.SpringDamping
	}
	if c.SpringRestEpsilon <= 0 {
		c.SpringRestEpsilon = def.SpringRestEpsilon
	}
	return c
}

// 视觉通道驱动值的下标
// 每个通道独立动画：拖拽时全部等于 dx，回弹时各自弹回 0，飞出时只有位移在动
const (
	driverOffset = iota
	driverScale
	driverLeft
	driverRight
	driverCount
)

// SettleFunc 飞出动画结束后的回调
type SettleFunc func(direction SwipeOutcome) error

// SwipeAnimator 手势结果动画状态机
//
// 状态转换：
//   - Idle → Dragging: BeginDrag
//   - Dragging → Resetting: Release(Cancelled)，弹簧回到原位后回到 Idle，无回调
//   - Dragging → Settling: Release(Left/Right)，线性飞出到 ±W，调用一次回调后回到 Idle
//
// 飞出动画没有中止接口，一旦开始就会跑完。
type SwipeAnimator struct {
	mapper *GeometryMapper
	cfg    AnimationConfig
	phase  Phase

	drivers  [driverCount]float64
	velocity [driverCount]float64

	// 飞出动画
	tween     *utils.Tween
	direction SwipeOutcome
	onSettled SettleFunc
	arrived   bool // 位移已到达终点，下一帧触发回调

	// 回弹弹簧（按帧间隔缓存）
	spring      harmonica.Spring
	springDelta float64
}

// NewSwipeAnimator 创建动画状态机
func NewSwipeAnimator(mapper *GeometryMapper, cfg AnimationConfig) *SwipeAnimator {
	return &SwipeAnimator{
		mapper: mapper,
		cfg:    cfg.withDefaults(),
		phase:  PhaseIdle,
	}
}

// Phase 返回当前阶段
func (a *SwipeAnimator) Phase() Phase {
	return a.phase
}

// BeginDrag 进入拖拽阶段
// 只有 Idle 阶段可以开始新手势
func (a *SwipeAnimator) BeginDrag() error {
	if a.phase != PhaseIdle {
		return fmt.Errorf("begin drag in phase %s: %w", a.phase, ErrGestureInProgress)
	}
	a.phase = PhaseDragging
	a.velocity = [driverCount]float64{}
	return nil
}

// Drag 拖拽中更新所有驱动值
func (a *SwipeAnimator) Drag(dx float64) {
	if a.phase != PhaseDragging {
		return
	}
	for i := range a.drivers {
		a.drivers[i] = dx
	}
}

// Release 手势松开，根据判定结果开始动画
//
// 参数：
//   - outcome: 手势判定结果
//   - from: 松开时的位移
//   - onSettled: 飞出动画结束后的回调，回弹不会调用
func (a *SwipeAnimator) Release(outcome SwipeOutcome, from float64, onSettled SettleFunc) error {
	if a.phase != PhaseDragging {
		return fmt.Errorf("release in phase %s: %w", a.phase, ErrNoActiveGesture)
	}
	a.Drag(from)

	if !outcome.IsSwipe() {
		a.phase = PhaseResetting
		a.velocity = [driverCount]float64{}
		log.Printf("[SwipeAnimator] reset from dx=%.1f", from)
		return nil
	}

	target := a.mapper.ViewportWidth()
	if outcome == OutcomeLeft {
		target = -target
	}
	a.phase = PhaseSettling
	a.direction = outcome
	a.onSettled = onSettled
	a.arrived = false
	a.tween = utils.NewTween(from, target, a.cfg.SwipeOutDuration, a.cfg.SwipeOutEasing)
	log.Printf("[SwipeAnimator] swipe %s from dx=%.1f to %.1f", outcome, from, target)
	return nil
}

// Update 推进当前动画 deltaTime 秒
//
// 飞出动画到达终点的那一帧只更新位移；回调在下一次 Update 中执行，
// 保证终点画面已经绘制过。回调返回的错误原样返回。
func (a *SwipeAnimator) Update(deltaTime float64) error {
	switch a.phase {
	case PhaseSettling:
		return a.updateSettling(deltaTime)
	case PhaseResetting:
		a.updateResetting(deltaTime)
	}
	return nil
}

func (a *SwipeAnimator) updateSettling(deltaTime float64) error {
	if a.arrived {
		cb := a.onSettled
		dir := a.direction
		a.tween = nil
		a.onSettled = nil
		a.arrived = false

		// 回调链执行期间保持 Settling，回调里开始的新手势会被拒绝
		var err error
		if cb != nil {
			err = cb(dir)
		}
		a.phase = PhaseIdle
		return err
	}

	value, done := a.tween.Update(deltaTime)
	a.drivers[driverOffset] = value
	if done {
		a.arrived = true
	}
	return nil
}

func (a *SwipeAnimator) updateResetting(deltaTime float64) {
	if deltaTime > 0 {
		if a.springDelta != deltaTime {
			a.spring = harmonica.NewSpring(deltaTime, a.cfg.SpringFrequency, a.cfg.SpringDamping)
			a.springDelta = deltaTime
		}
		for i := range a.drivers {
			a.drivers[i], a.velocity[i] = a.spring.Update(a.drivers[i], a.velocity[i], 0)
		}
	}

	eps := a.cfg.SpringRestEpsilon
	for i := range a.drivers {
		if math.Abs(a.drivers[i]) >= eps || math.Abs(a.velocity[i]) >= eps {
			return
		}
	}
	a.ResetVisuals()
	a.phase = PhaseIdle
	log.Printf("[SwipeAnimator] reset settled")
}

// ResetVisuals 把所有驱动值立即归零（视觉参数回到静止值）
// 多次调用结果相同
func (a *SwipeAnimator) ResetVisuals() {
	a.drivers = [driverCount]float64{}
	a.velocity = [driverCount]float64{}
}

// Channels 返回当前帧的视觉参数
func (a *SwipeAnimator) Channels() VisualChannels {
	return a.mapper.Channels(
		a.drivers[driverOffset],
		a.drivers[driverScale],
		a.drivers[driverLeft],
		a.drivers[driverRight],
	)
}
