package fling

import (
	"math"
	"testing"
	"time"
)

func TestNudgeInertia(t *testing.T) {
	p := DefaultNudgeParams()
	if p.Mode != NudgeInertia {
		t.Fatalf("default mode = %q, want inertia", p.Mode)
	}

	// 位移先截断到 ±25 再乘以 12
	tests := []struct {
		dx, dy, wantX, wantY float64
	}{
		{2, -3, 24, -36},
		{40, -100, 300, -300},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		vx, vy := NudgeVelocity(tt.dx, tt.dy, p)
		if vx != tt.wantX || vy != tt.wantY {
			t.Errorf("NudgeVelocity(%v, %v) = (%v, %v), want (%v, %v)", tt.dx, tt.dy, vx, vy, tt.wantX, tt.wantY)
		}
	}

	// 300 px/s，减速度 1500：0.2 秒停下，滑行 30 像素
	if d := InertiaDuration(300, -24, p); math.Abs(d-0.2) > 1e-9 {
		t.Errorf("InertiaDuration = %v, want 0.2", d)
	}
	if x := InertiaOffset(300, 1, p); math.Abs(x-30) > 1e-9 {
		t.Errorf("InertiaOffset(300) at rest = %v, want 30", x)
	}
	if x := InertiaOffset(-300, 0.1, p); math.Abs(x-(-22.5)) > 1e-9 {
		t.Errorf("InertiaOffset(-300, 0.1) = %v, want -22.5", x)
	}
	if x := InertiaOffset(0, 0.3, p); x != 0 {
		t.Errorf("InertiaOffset(0) = %v, want 0", x)
	}
}

func TestNudgeInertiaDurationCap(t *testing.T) {
	p := DefaultNudgeParams()
	p.Resistance = 500

	// 300/500 = 0.6 秒，截断到 0.45 秒
	if d := InertiaDuration(300, 0, p); math.Abs(d-0.45) > 1e-9 {
		t.Errorf("InertiaDuration = %v, want capped 0.45", d)
	}
	// 300*0.45 - 0.5*500*0.45²
	want := 135 - 50.625
	if x := InertiaOffset(300, 2, p); math.Abs(x-want) > 1e-9 {
		t.Errorf("InertiaOffset after cap = %v, want %v", x, want)
	}

	p.Resistance = 0
	p.MaxDuration = 100 * time.Millisecond
	if d := InertiaDuration(0, 50, p); math.Abs(d-0.1) > 1e-9 {
		t.Errorf("InertiaDuration without resistance = %v, want 0.1", d)
	}
	if x := InertiaOffset(50, 1, p); math.Abs(x-5) > 1e-9 {
		t.Errorf("InertiaOffset without resistance = %v, want 5", x)
	}
}
