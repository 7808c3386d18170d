package fling

import (
	"time"

	"github.com/decker502/fling/pkg/easing"
)

// fakeScheduler 手动驱动的调度器，每次 Frame() 相当于一次显示刷新
type fakeScheduler struct {
	subs []*fakeSub
}

type fakeSub struct {
	tick      func()
	cancelled bool
}

func (s *fakeSub) Cancel() {
	s.cancelled = true
}

func (f *fakeScheduler) ScheduleRecurring(tick func()) Subscription {
	sub := &fakeSub{tick: tick}
	f.subs = append(f.subs, sub)
	return sub
}

// Frame 执行一帧，返回本帧实际调用的回调数
func (f *fakeScheduler) Frame() int {
	called := 0
	for _, sub := range f.subs {
		if !sub.cancelled {
			sub.tick()
			called++
		}
	}
	return called
}

func (f *fakeScheduler) active() int {
	n := 0
	for _, sub := range f.subs {
		if !sub.cancelled {
			n++
		}
	}
	return n
}

type point struct{ X, Y float64 }

type animateCall struct {
	X, Y     float64
	Duration time.Duration
}

// recordingTarget 记录所有渲染调用
type recordingTarget struct {
	positions []point
	animates  []animateCall
}

func (r *recordingTarget) SetPosition(x, y float64) {
	r.positions = append(r.positions, point{x, y})
}

func (r *recordingTarget) AnimateTo(x, y float64, d time.Duration, ease easing.Func) {
	r.animates = append(r.animates, animateCall{X: x, Y: y, Duration: d})
}
