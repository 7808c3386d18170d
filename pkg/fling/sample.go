package fling

import "time"

// DefaultSampleWindow 默认采样窗口（只保留最近 120ms 的采样）
const DefaultSampleWindow = 120 * time.Millisecond

// Sample 拖拽过程中的一次位置采样
type Sample struct {
	T    time.Duration // 采样时间戳（单调时钟）
	X, Y float64
}

// SampleWindow 有界的采样历史
// 按时间戳先进先出，超过窗口长度的旧采样在新采样到达时丢弃
type SampleWindow struct {
	window  time.Duration
	samples []Sample
}

// NewSampleWindow 创建采样窗口
// window <= 0 时使用 DefaultSampleWindow
func NewSampleWindow(window time.Duration) *SampleWindow {
	if window <= 0 {
		window = DefaultSampleWindow
	}
	return &SampleWindow{
		window:  window,
		samples: make([]Sample, 0, 16),
	}
}

// Push 追加一个采样并丢弃过期采样
func (w *SampleWindow) Push(t time.Duration, x, y float64) {
	w.samples = append(w.samples, Sample{T: t, X: x, Y: y})

	drop := 0
	for drop < len(w.samples) && t-w.samples[drop].T > w.window {
		drop++
	}
	if drop > 0 {
		w.samples = append(w.samples[:0], w.samples[drop:]...)
	}
}

// Reset 清空采样历史
func (w *SampleWindow) Reset() {
	w.samples = w.samples[:0]
}

// Len 返回当前保留的采样数
func (w *SampleWindow) Len() int {
	return len(w.samples)
}

// Window 返回窗口长度
func (w *SampleWindow) Window() time.Duration {
	return w.window
}

// Samples 返回采样副本（按时间顺序）
func (w *SampleWindow) Samples() []Sample {
	out := make([]Sample, len(w.samples))
	copy(out, w.samples)
	return out
}

// Velocity 使用窗口内最早和最新的采样估计速度
func (w *SampleWindow) Velocity() (vx, vy float64) {
	return EstimateVelocity(w.samples)
}

// EstimateVelocity 估计释放速度（单位/秒）
//
// 速度 = (最新位置 - 最早位置) / (最新时间 - 最早时间)。
// 采样少于 2 个或时间差为 0 时返回零速度。
func EstimateVelocity(samples []Sample) (vx, vy float64) {
	if len(samples) < 2 {
		return 0, 0
	}
	first := samples[0]
	last := samples[len(samples)-1]

	dt := (last.T - first.T).Seconds()
	if dt == 0 {
		return 0, 0
	}
	return (last.X - first.X) / dt, (last.Y - first.Y) / dt
}
