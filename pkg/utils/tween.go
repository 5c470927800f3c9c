package utils

import "time"

// Tween 定时补间动画
// 在固定时长内把数值从 From 过渡到 To，由外部每帧调用 Update 推进
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   EasingFunc

	elapsed float64 // 已经过的时间（秒）
}

// NewTween 创建补间动画
// easing 为 nil 时使用线性缓动
func NewTween(from, to float64, duration time.Duration, easing EasingFunc) *Tween {
	if easing == nil {
		easing = EaseLinear
	}
	return &Tween{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
	}
}

// Update 推进动画 deltaTime 秒
//
// 返回：
//   - value: 当前值
//   - done: 是否已经到达终点（到达后 value 恒等于 To）
func (tw *Tween) Update(deltaTime float64) (value float64, done bool) {
	if deltaTime > 0 {
		tw.elapsed += deltaTime
	}
	return tw.Value(), tw.Done()
}

// Progress 返回 0~1 的线性进度
func (tw *Tween) Progress() float64 {
	total := tw.Duration.Seconds()
	if total <= 0 {
		return 1
	}
	p := tw.elapsed / total
	if p > 1 {
		return 1
	}
	return p
}

// Value 返回当前插值结果
func (tw *Tween) Value() float64 {
	p := tw.Progress()
	if p >= 1 {
		return tw.To
	}
	return Lerp(tw.From, tw.To, tw.Easing(p))
}

// Done 是否已经完成
func (tw *Tween) Done() bool {
	return tw.Progress() >= 1
}
