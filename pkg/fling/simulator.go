package fling

import (
	"log"
	"math"
	"time"

	"github.com/decker502/fling/pkg/easing"
)

// Target 模拟对象的渲染端
type Target interface {
	// SetPosition 立即更新位置（每个 tick 调用一次）
	SetPosition(x, y float64)
	// AnimateTo 平滑过渡到指定位置（异步，调用方不等待完成）
	AnimateTo(x, y float64, duration time.Duration, ease easing.Func)
}

// Subscription 周期回调的取消句柄
type Subscription interface {
	Cancel()
}

// Scheduler 帧同步调度器
// 每次显示刷新调用一次回调，直到取消
type Scheduler interface {
	ScheduleRecurring(tick func()) Subscription
}

// Phase 模拟器状态
type Phase int

const (
	// PhaseIdle 空闲
	PhaseIdle Phase = iota
	// PhaseRunning 惯性滑动中
	PhaseRunning
	// PhaseSettling 已停止，正在发出落位动画
	PhaseSettling
)

// String 返回状态名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseSettling:
		return "settling"
	}
	return "unknown"
}

// State 单次模拟的可变状态
// 只在模拟运行期间存在，停止或被打断后丢弃
type State struct {
	X, Y   float64
	VX, VY float64
	Ticks  int
}

// Speed 当前速度大小
func (s *State) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Step 推进一个固定步长
//
// 顺序：积分位置 → 按轴反弹（每轴只检查一侧）→ 摩擦 → 终止判定。
// 终止条件：速度低于 StopSpeed 且位置处于任一边界。
// 返回 true 表示应当停止。
func Step(s *State, b Bounds, p Params) bool {
	s.X += s.VX * p.Step
	s.Y += s.VY * p.Step

	if s.X < b.MinX {
		s.X = b.MinX
		s.VX = -s.VX * p.Bounce
	} else if s.X > b.MaxX {
		s.X = b.MaxX
		s.VX = -s.VX * p.Bounce
	}
	if s.Y < b.MinY {
		s.Y = b.MinY
		s.VY = -s.VY * p.Bounce
	} else if s.Y > b.MaxY {
		s.Y = b.MaxY
		s.VY = -s.VY * p.Bounce
	}

	s.VX *= p.Friction
	s.VY *= p.Friction
	s.Ticks++

	return s.Speed() < p.StopSpeed && b.AtEdge(s.X, s.Y)
}

// Simulator 单个对象的惯性释放模拟器
//
// 同一时刻最多只有一次模拟在运行。所有方法都应在同一个（UI）线程上调用。
type Simulator struct {
	params    Params
	target    Target
	scheduler Scheduler

	phase  Phase
	state  *State
	bounds Bounds
	sub    Subscription

	// OnSettle 模拟正常结束时回调（被打断时不调用）
	OnSettle func(x, y float64)
}

// NewSimulator 创建模拟器
func NewSimulator(params Params, target Target, scheduler Scheduler) *Simulator {
	if params.SettleEase == nil {
		params.SettleEase = easing.OutCubic
	}
	return &Simulator{
		params:    params,
		target:    target,
		scheduler: scheduler,
		phase:     PhaseIdle,
	}
}

// Params 返回模拟参数
func (sim *Simulator) Params() Params {
	return sim.params
}

// Phase 返回当前状态
func (sim *Simulator) Phase() Phase {
	return sim.phase
}

// Running 是否正在滑动
func (sim *Simulator) Running() bool {
	return sim.phase == PhaseRunning
}

// State 返回当前模拟状态的副本
// 空闲时返回 false
func (sim *Simulator) State() (State, bool) {
	if sim.state == nil {
		return State{}, false
	}
	return *sim.state, true
}

// Release 在拖拽释放时启动模拟
//
// 先取消任何进行中的模拟。释放速度低于 MinStartSpeed 时不启动，
// 对象停留在当前位置。返回是否启动。
func (sim *Simulator) Release(vx, vy, x, y float64, b Bounds) bool {
	sim.Cancel()

	speed := math.Hypot(vx, vy)
	if speed < sim.params.MinStartSpeed {
		log.Printf("[Fling] release speed %.1f below threshold %.1f, ignored", speed, sim.params.MinStartSpeed)
		return false
	}

	sim.state = &State{X: x, Y: y, VX: vx, VY: vy}
	sim.bounds = b
	sim.phase = PhaseRunning
	sim.sub = sim.scheduler.ScheduleRecurring(sim.tick)

	log.Printf("[Fling] start at (%.1f, %.1f) v=(%.1f, %.1f)", x, y, vx, vy)
	return true
}

// Cancel 打断进行中的模拟（新的按下手势）
// 不发出落位动画。返回是否确实取消了一次模拟。
func (sim *Simulator) Cancel() bool {
	if sim.phase != PhaseRunning {
		return false
	}
	sim.unschedule()
	sim.state = nil
	sim.phase = PhaseIdle
	log.Printf("[Fling] cancelled")
	return true
}

func (sim *Simulator) tick() {
	// 取消后调度器可能仍在本帧的回调列表里
	if sim.phase != PhaseRunning || sim.state == nil {
		return
	}

	done := Step(sim.state, sim.bounds, sim.params)
	sim.target.SetPosition(sim.state.X, sim.state.Y)

	if !done && sim.params.MaxTicks > 0 && sim.state.Ticks >= sim.params.MaxTicks {
		log.Printf("[Fling] tick limit %d reached", sim.params.MaxTicks)
		done = true
	}
	if done {
		sim.settle()
	}
}

func (sim *Simulator) settle() {
	x, y := sim.state.X, sim.state.Y
	ticks := sim.state.Ticks

	sim.phase = PhaseSettling
	sim.unschedule()
	sim.target.AnimateTo(x, y, sim.params.SettleDuration, sim.params.SettleEase)

	sim.state = nil
	sim.phase = PhaseIdle
	log.Printf("[Fling] settled at (%.1f, %.1f) after %d ticks", x, y, ticks)

	if sim.OnSettle != nil {
		sim.OnSettle(x, y)
	}
}

func (sim *Simulator) unschedule() {
	if sim.sub != nil {
		sim.sub.Cancel()
		sim.sub = nil
	}
}

// Simulate 无渲染地运行一次完整模拟，返回每个 tick 后的状态
//
// maxTicks 必须为正，防止远离边界的缓慢漂移无限运行。
// 释放速度低于阈值时返回空轨迹。settled 表示是否满足终止条件。
func Simulate(vx, vy, x, y float64, b Bounds, p Params, maxTicks int) (trace []State, settled bool) {
	if math.Hypot(vx, vy) < p.MinStartSpeed || maxTicks <= 0 {
		return nil, false
	}
	s := State{X: x, Y: y, VX: vx, VY: vy}
	for s.Ticks < maxTicks {
		done := Step(&s, b, p)
		trace = append(trace, s)
		if done {
			return trace, true
		}
	}
	return trace, false
}
