package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/fling/pkg/fling"
)

const frameDT = 1.0 / 60.0

// TestWorldFrameTicksScheduler 每帧驱动一次调度器
func TestWorldFrameTicksScheduler(t *testing.T) {
	w := newWorld(80, 25, fling.DefaultParams())
	calls := 0
	sub := w.scheduler.ScheduleRecurring(func() { calls++ })

	w.frame(frameDT)
	w.frame(frameDT)
	sub.Cancel()
	w.frame(frameDT)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if w.scheduler.Active() != 0 {
		t.Errorf("Active() = %d, want 0", w.scheduler.Active())
	}
}

func TestWorldStartsCentered(t *testing.T) {
	w := newWorld(80, 25, fling.DefaultParams())
	b := w.bounds()

	// 80 列减去 10 列宽，24 行减去 4 行高
	if b.MaxX != 70*cellW || b.MaxY != 20*cellH {
		t.Fatalf("bounds = %+v", b)
	}
	if w.box.x != 35*cellW || w.box.y != 10*cellH {
		t.Errorf("box at (%v, %v), want center", w.box.x, w.box.y)
	}
}

// TestWorldDragAndFling 拖动后松开，方框继续滑动直到静止
func TestWorldDragAndFling(t *testing.T) {
	params := fling.DefaultParams()
	params.MaxTicks = 600
	w := newWorld(80, 25, params)

	// 方框位于列 35~44，行 10~13
	w.press(36, 11)
	if !w.dragging {
		t.Fatal("press inside box should start dragging")
	}
	for col := 37; col <= 41; col++ {
		w.frame(frameDT)
		w.move(col, 11)
	}
	w.frame(frameDT)
	w.release()

	if !w.sim.Running() {
		t.Fatal("fast release should start the simulation")
	}

	for i := 0; i < 700 && w.sim.Running(); i++ {
		w.frame(frameDT)
	}
	for i := 0; i < 20; i++ {
		w.frame(frameDT)
	}

	if w.sim.Running() {
		t.Error("simulation should have stopped")
	}
	if w.settles != 1 {
		t.Errorf("settles = %d, want 1", w.settles)
	}
	if !w.bounds().Contains(w.box.x, w.box.y) {
		t.Errorf("box (%v, %v) outside bounds", w.box.x, w.box.y)
	}
}

func TestWorldPressOutsideIgnored(t *testing.T) {
	w := newWorld(80, 25, fling.DefaultParams())
	w.press(0, 0)
	if w.dragging {
		t.Error("press outside box should not drag")
	}
	w.release()
	if w.sim.Running() {
		t.Error("release without drag should not start simulation")
	}
}

func TestWorldResizeClamps(t *testing.T) {
	w := newWorld(80, 25, fling.DefaultParams())
	w.box.SetPosition(70*cellW, 20*cellH)

	w.resize(40, 12)

	if !w.bounds().Contains(w.box.x, w.box.y) {
		t.Errorf("box (%v, %v) outside resized bounds %+v", w.box.x, w.box.y, w.bounds())
	}
	// 落在右下角：(40-10)*8, (12-1-4)*16
	if w.box.x != 240 || w.box.y != 112 {
		t.Errorf("box = (%v, %v), want (240, 112)", w.box.x, w.box.y)
	}
}

func TestHandleMouse(t *testing.T) {
	w := newWorld(80, 25, fling.DefaultParams())

	handleMouse(w, 36, 11, true)
	if !w.dragging {
		t.Fatal("mouse press inside box should start dragging")
	}
	handleMouse(w, 38, 11, true)
	if w.box.x != 37*cellW {
		t.Errorf("box x = %v, want %v", w.box.x, 37*cellW)
	}
	handleMouse(w, 38, 11, false)
	if w.dragging {
		t.Error("mouse release should end dragging")
	}
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)

	w := newWorld(80, 25, fling.DefaultParams())
	draw(screen, w)

	_, _, style, _ := screen.GetContent(36, 10)
	if style != boxStyle {
		t.Error("box cell should use boxStyle")
	}
	ch, _, _, _ := screen.GetContent(0, 24)
	if ch != 'p' {
		t.Errorf("status line starts with %q, want 'p'", ch)
	}
}

// TestPollEventsStopsAfterFini Fini 之后后台读取结束并关闭通道
func TestPollEventsStopsAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	quit := make(chan struct{})
	defer close(quit)
	events := pollEvents(screen, quit)

	screen.Fini()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("event channel not closed after Fini")
		}
	}
}
