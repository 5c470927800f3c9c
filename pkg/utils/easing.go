package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动，卡片飞出动画使用）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EasingByName 根据名称查找缓动函数
// 未知名称返回 EaseLinear 和 false
func EasingByName(name string) (EasingFunc, bool) {
	switch name {
	case "", "linear":
		return EaseLinear, true
	case "outCubic":
		return EaseOutCubic, true
	case "outQuad":
		return EaseOutQuad, true
	}
	return EaseLinear, false
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Interpolate 分段线性插值
//
// 把 x 从输入区间映射到输出区间，输入断点必须单调递增且与输出断点数量一致。
// clamp 为 true 时，超出输入区间的 x 取端点输出值；否则按首尾两段线性外推。
//
// 参数：
//   - x: 输入值
//   - in: 输入断点，如 [-75, 0, 75]
//   - out: 输出断点，如 [1, 0.9, 1]
//   - clamp: 是否限制在端点值
//
// 断点少于 2 个或数量不一致时返回 0（单个断点返回其输出值）
func Interpolate(x float64, in, out []float64, clamp bool) float64 {
	n := len(in)
	if n == 0 || n != len(out) {
		return 0
	}
	if n == 1 {
		return out[0]
	}

	// 恰好落在断点上时直接返回断点输出，避免浮点误差
	for i, v := range in {
		if x == v {
			return out[i]
		}
	}

	// 找到 x 所在的分段；区间外使用首段或末段
	seg := n - 2
	for i := 0; i < n-1; i++ {
		if x <= in[i+1] {
			seg = i
			break
		}
	}

	if clamp {
		if x <= in[0] {
			return out[0]
		}
		if x >= in[n-1] {
			return out[n-1]
		}
	}

	span := in[seg+1] - in[seg]
	if span == 0 {
		return out[seg]
	}
	t := (x - in[seg]) / span
	return Lerp(out[seg], out[seg+1], t)
}
