package fling

import (
	"math"
	"time"
)

// NudgeMode 悬停推动的方式
type NudgeMode string

const (
	// NudgeInertia 指针位移换算为初速度，匀减速滑行后回到原位
	NudgeInertia NudgeMode = "inertia"
	// NudgePush 指针位移换算为固定推动位移
	NudgePush NudgeMode = "push"
)

// NudgeParams 悬停推动参数
type NudgeParams struct {
	Mode NudgeMode

	// 惯性方式
	VelClamp    float64       // 指针位移先截断到 ±VelClamp
	VelMult     float64       // 截断后乘以该系数得到初速度（像素/秒）
	Resistance  float64       // 减速度（像素/秒²），0 表示不减速
	MaxDuration time.Duration // 滑行时长上限

	// 推动方式
	PushMult  float64 // 指针位移乘以该系数得到推动位移
	PushClamp float64 // 推动位移上限（每轴）
}

// DefaultNudgeParams 返回默认参数
func DefaultNudgeParams() NudgeParams {
	return NudgeParams{
		Mode:        NudgeInertia,
		VelClamp:    25,
		VelMult:     12,
		Resistance:  1500,
		MaxDuration: 450 * time.Millisecond,
		PushMult:    4,
		PushClamp:   30,
	}
}

// NudgeOffset 指针最近一帧的位移换算为推动位移
func NudgeOffset(dx, dy float64, p NudgeParams) (px, py float64) {
	px = Clamp(dx*p.PushMult, -p.PushClamp, p.PushClamp)
	py = Clamp(dy*p.PushMult, -p.PushClamp, p.PushClamp)
	return px, py
}

// NudgeVelocity 指针最近一帧的位移换算为滑行初速度
func NudgeVelocity(dx, dy float64, p NudgeParams) (vx, vy float64) {
	vx = Clamp(dx, -p.VelClamp, p.VelClamp) * p.VelMult
	vy = Clamp(dy, -p.VelClamp, p.VelClamp) * p.VelMult
	return vx, vy
}

// coastTime 单轴减速到静止所需时间，不超过 MaxDuration
func coastTime(v float64, p NudgeParams) float64 {
	limit := p.MaxDuration.Seconds()
	if v == 0 {
		return 0
	}
	if p.Resistance <= 0 {
		return limit
	}
	return math.Min(math.Abs(v)/p.Resistance, limit)
}

// InertiaDuration 两轴中较长的滑行时间（秒）
func InertiaDuration(vx, vy float64, p NudgeParams) float64 {
	return math.Max(coastTime(vx, p), coastTime(vy, p))
}

// InertiaOffset 单轴以初速度 v 滑行 t 秒后的位移
//
// 到达静止或 MaxDuration 后位移不再变化。
func InertiaOffset(v, t float64, p NudgeParams) float64 {
	t = Clamp(t, 0, coastTime(v, p))
	a := p.Resistance
	if v < 0 {
		a = -a
	}
	return v*t - 0.5*a*t*t
}
