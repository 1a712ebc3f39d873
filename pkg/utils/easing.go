package utils

import "math"

// 插值与缓动函数
//
// 缓动函数接受进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（平滑滚动到导航目标）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Damp 与帧率无关的指数趋近
//
// smoothTime 为时间常数（秒），经过 smoothTime 后剩余距离约为 1/e。
// smoothTime <= 0 时直接返回目标值。
func Damp(current, target, smoothTime, dt float64) float64 {
	if smoothTime <= 0 {
		return target
	}
	return Lerp(current, target, 1-math.Exp(-dt/smoothTime))
}

// Clamp 把 v 限制在 [lo, hi]，NaN 返回 lo
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 把 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt 把整数 v 限制在 [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
