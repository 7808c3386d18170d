package fling

import (
	"time"

	"github.com/decker502/fling/pkg/easing"
)

// Params 惯性模拟参数
type Params struct {
	MinStartSpeed float64 // 低于该释放速度不启动模拟（单位/秒）
	StopSpeed     float64 // 低于该速度且贴边时停止（单位/秒）
	Friction      float64 // 每个 tick 的速度衰减系数
	Bounce        float64 // 碰撞后保留的速度比例
	Step          float64 // 固定步长（秒）

	SettleDuration time.Duration // 落位动画时长
	SettleEase     easing.Func   // 落位动画缓动

	// MaxTicks 单次模拟的 tick 上限，0 表示不限制
	// 远离边界的缓慢漂移在不限制时会一直运行
	MaxTicks int
}

// DefaultParams 返回默认参数
func DefaultParams() Params {
	return Params{
		MinStartSpeed:  60,
		StopSpeed:      20,
		Friction:       0.94,
		Bounce:         0.6,
		Step:           1.0 / 60.0,
		SettleDuration: 150 * time.Millisecond,
		SettleEase:     easing.OutCubic,
	}
}
