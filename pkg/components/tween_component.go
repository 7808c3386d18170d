package components

import "github.com/decker502/fling/pkg/easing"

// PositionTweenComponent 位置补间（落位动画等）
// 完成后由 TweenSystem 移除
type PositionTweenComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Elapsed      float64 // 秒
	Duration     float64 // 秒
	Ease         easing.Func
}

// FloatTween 单个数值的补间状态
type FloatTween struct {
	From, To float64
	Elapsed  float64
	Duration float64
	Ease     easing.Func
	Active   bool
}

// Start 从 from 开始向 to 补间
func (t *FloatTween) Start(from, to, duration float64, ease easing.Func) {
	t.From = from
	t.To = to
	t.Elapsed = 0
	t.Duration = duration
	t.Ease = ease
	t.Active = true
}

// Advance 推进 dt 秒并返回当前值，完成后 Active 置为 false
func (t *FloatTween) Advance(dt float64) float64 {
	if !t.Active {
		return t.To
	}
	t.Elapsed += dt
	p := easing.Progress(t.Elapsed, t.Duration)
	ease := t.Ease
	if ease == nil {
		ease = easing.Linear
	}
	if p >= 1 {
		t.Active = false
		return t.To
	}
	return easing.Lerp(t.From, t.To, ease(p))
}
