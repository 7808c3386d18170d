package fling

// FrameScheduler 帧同步调度器
//
// 每次主循环（ebiten Update 或终端 ticker）调用一次 Tick，依次执行所有未取消的回调。
// 回调在同一线程上顺序执行，互不重叠。Tick 期间新注册的回调从下一帧开始执行，
// 期间被取消的回调在本帧不再执行。
type FrameScheduler struct {
	subs []*frameSubscription
}

type frameSubscription struct {
	tick      func()
	cancelled bool
}

// Cancel 实现 Subscription
func (s *frameSubscription) Cancel() {
	s.cancelled = true
}

// NewFrameScheduler 创建帧调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// ScheduleRecurring 实现 Scheduler
func (fs *FrameScheduler) ScheduleRecurring(tick func()) Subscription {
	sub := &frameSubscription{tick: tick}
	fs.subs = append(fs.subs, sub)
	return sub
}

// Tick 执行一帧
func (fs *FrameScheduler) Tick() {
	n := len(fs.subs)
	for i := 0; i < n; i++ {
		if sub := fs.subs[i]; !sub.cancelled {
			sub.tick()
		}
	}

	live := fs.subs[:0]
	for _, sub := range fs.subs {
		if !sub.cancelled {
			live = append(live, sub)
		}
	}
	for i := len(live); i < len(fs.subs); i++ {
		fs.subs[i] = nil
	}
	fs.subs = live
}

// Active 返回未取消的回调数
func (fs *FrameScheduler) Active() int {
	n := 0
	for _, sub := range fs.subs {
		if !sub.cancelled {
			n++
		}
	}
	return n
}
