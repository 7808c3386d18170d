// Package easing 提供补间动画使用的缓动曲线
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 命名沿用网页动画库常见的 power 系列：power1 = Quad，power2 = Cubic，power3 = Quart。
//
// 参考：https://easings.net/
package easing

import "math"

// Func 缓动函数类型
type Func func(t float64) float64

// Linear 线性缓动（匀速）
func Linear(t float64) float64 {
	return t
}

// OutQuad 二次方缓出，对应 "power1.out"
// 公式：f(t) = 1 - (1-t)²
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad 二次方缓入缓出，对应 "power1.inOut"
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// OutCubic 三次方缓出，对应 "power2.out"
// 特点：开始快，结束慢（落位动画默认使用）
// 公式：f(t) = 1 - (1-t)³
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic 三次方缓入缓出，对应 "power2.inOut"
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// OutQuart 四次方缓出，对应 "power3.out"
func OutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// ByName 根据名称查找缓动函数（用于 YAML 配置）
// 未知名称返回 false
func ByName(name string) (Func, bool) {
	switch name {
	case "linear", "none":
		return Linear, true
	case "power1.out", "quad.out":
		return OutQuad, true
	case "power1.inOut", "quad.inOut":
		return InOutQuad, true
	case "power2.out", "cubic.out":
		return OutCubic, true
	case "power2.inOut", "cubic.inOut":
		return InOutCubic, true
	case "power3.out", "quart.out":
		return OutQuart, true
	}
	return nil, false
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress 将已用时间换算为 [0, 1] 的进度
// duration <= 0 时视为已完成
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	t := elapsed / duration
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
