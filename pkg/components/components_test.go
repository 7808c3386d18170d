package components

import (
	"math"
	"testing"

	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/fling"
)

func TestRectContains(t *testing.T) {
	r := &RectComponent{Width: 100, Height: 50}

	tests := []struct {
		px, py float64
		want   bool
	}{
		{10, 10, true},
		{0, 0, true},     // 左上角包含
		{100, 25, false}, // 右边界不包含
		{50, 50, false},  // 下边界不包含
		{-1, 10, false},
	}
	for _, tt := range tests {
		if got := r.Contains(0, 0, tt.px, tt.py); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}

func TestFloatTween(t *testing.T) {
	var tw FloatTween
	if got := tw.Advance(0.1); got != 0 {
		t.Errorf("inactive tween Advance = %v, want To (0)", got)
	}

	tw.Start(400, 800, 0.2, easing.Linear)
	if got := tw.Advance(0.1); math.Abs(got-600) > 1e-9 {
		t.Errorf("halfway = %v, want 600", got)
	}
	if !tw.Active {
		t.Error("tween should still be active at halfway")
	}
	if got := tw.Advance(0.2); got != 800 {
		t.Errorf("finished = %v, want 800", got)
	}
	if tw.Active {
		t.Error("tween should be inactive after finishing")
	}
}

// TestFloatTweenRestart 中途重新开始时从当前值出发
func TestFloatTweenRestart(t *testing.T) {
	var tw FloatTween
	tw.Start(400, 800, 0.2, nil)
	mid := tw.Advance(0.1)

	tw.Start(mid, 400, 0.5, easing.OutCubic)
	if tw.Elapsed != 0 || tw.From != mid {
		t.Errorf("restart state = %+v", tw)
	}
}

func TestDraggableRefreshBounds(t *testing.T) {
	calls := 0
	d := &DraggableComponent{
		BoundsProvider: fling.BoundsFunc(func() fling.Bounds {
			calls++
			return fling.Bounds{MaxX: float64(100 * calls), MaxY: 50}
		}),
	}

	d.RefreshBounds()
	d.RefreshBounds()
	if calls != 2 || d.Bounds.MaxX != 200 {
		t.Errorf("after 2 refreshes: calls=%d bounds=%+v", calls, d.Bounds)
	}

	// 没有 provider 时保留原边界
	d.BoundsProvider = nil
	d.RefreshBounds()
	if d.Bounds.MaxX != 200 {
		t.Errorf("bounds changed without provider: %+v", d.Bounds)
	}
}
