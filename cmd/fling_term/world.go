package main

import (
	"time"

	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/fling"
)

// 终端单元格对应的像素尺寸，使像素单位的参数在终端中手感一致
const (
	cellW = 8.0
	cellH = 16.0
)

// box 可拖拽的方框，坐标为像素
//
// 终端版没有 ECS，落位动画直接在 box 上推进
type box struct {
	x, y float64
	w, h float64 // 单元格数

	anim *boxAnim
}

type boxAnim struct {
	fromX, fromY float64
	toX, toY     float64
	elapsed      float64
	duration     float64
	ease         easing.Func
}

func (b *box) SetPosition(x, y float64) {
	b.anim = nil
	b.x, b.y = x, y
}

func (b *box) AnimateTo(x, y float64, d time.Duration, ease easing.Func) {
	if d <= 0 {
		b.SetPosition(x, y)
		return
	}
	b.anim = &boxAnim{fromX: b.x, fromY: b.y, toX: x, toY: y, duration: d.Seconds(), ease: ease}
}

func (b *box) advance(dt float64) {
	a := b.anim
	if a == nil {
		return
	}
	a.elapsed += dt
	t := easing.Progress(a.elapsed, a.duration)
	if a.ease != nil {
		t = a.ease(t)
	}
	b.x = easing.Lerp(a.fromX, a.toX, t)
	b.y = easing.Lerp(a.fromY, a.toY, t)
	if a.elapsed >= a.duration {
		b.anim = nil
	}
}

// contains 单元格坐标是否落在方框内
func (b *box) contains(col, row int) bool {
	bx, by := int(b.x/cellW), int(b.y/cellH)
	return col >= bx && col < bx+int(b.w) && row >= by && row < by+int(b.h)
}

// world 终端演示的全部状态，与 tcell 无关
type world struct {
	cols, rows int
	box        *box
	sim        *fling.Simulator
	scheduler  *fling.FrameScheduler
	samples    *fling.SampleWindow

	dragging     bool
	grabX, grabY float64
	clock        time.Duration
	settles      int
}

func newWorld(cols, rows int, params fling.Params) *world {
	w := &world{
		cols:      cols,
		rows:      rows,
		box:       &box{w: 10, h: 4},
		scheduler: fling.NewFrameScheduler(),
		samples:   fling.NewSampleWindow(fling.DefaultSampleWindow),
	}
	w.sim = fling.NewSimulator(params, w.box, w.scheduler)
	w.sim.OnSettle = func(x, y float64) { w.settles++ }

	b := w.bounds()
	w.box.x = (b.MinX + b.MaxX) / 2
	w.box.y = (b.MinY + b.MaxY) / 2
	return w
}

// bounds 方框左上角的可达范围（最后一行留给状态栏）
func (w *world) bounds() fling.Bounds {
	return fling.Bounds{
		MinX: 0,
		MaxX: max(float64(w.cols)-w.box.w, 0) * cellW,
		MinY: 0,
		MaxY: max(float64(w.rows-1)-w.box.h, 0) * cellH,
	}
}

func (w *world) resize(cols, rows int) {
	w.cols, w.rows = cols, rows
	if !w.sim.Running() && !w.dragging {
		x, y := w.bounds().Clamp(w.box.x, w.box.y)
		w.box.SetPosition(x, y)
	}
}

func (w *world) press(col, row int) {
	if !w.box.contains(col, row) {
		return
	}
	w.sim.Cancel()
	w.box.anim = nil
	w.dragging = true

	px, py := float64(col)*cellW, float64(row)*cellH
	w.grabX, w.grabY = px-w.box.x, py-w.box.y
	w.samples.Reset()
	w.samples.Push(w.clock, w.box.x, w.box.y)
}

func (w *world) move(col, row int) {
	if !w.dragging {
		return
	}
	px, py := float64(col)*cellW, float64(row)*cellH
	x, y := w.bounds().Clamp(px-w.grabX, py-w.grabY)
	w.box.SetPosition(x, y)
	w.samples.Push(w.clock, x, y)
}

func (w *world) release() {
	if !w.dragging {
		return
	}
	w.dragging = false
	vx, vy := w.samples.Velocity()
	w.sim.Release(vx, vy, w.box.x, w.box.y, w.bounds())
}

// frame 推进一帧：模拟 tick 后推进落位动画
func (w *world) frame(dt float64) {
	w.clock += time.Duration(dt * float64(time.Second))
	w.scheduler.Tick()
	w.box.advance(dt)
}
