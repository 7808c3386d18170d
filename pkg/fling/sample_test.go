package fling

import (
	"math"
	"testing"
	"time"
)

func TestEstimateVelocity(t *testing.T) {
	tests := []struct {
		name    string
		samples []Sample
		wantVX  float64
		wantVY  float64
	}{
		{
			name:    "无采样",
			samples: nil,
		},
		{
			name:    "单个采样",
			samples: []Sample{{T: 0, X: 10, Y: 10}},
		},
		{
			name: "两个采样",
			samples: []Sample{
				{T: 0, X: 0, Y: 0},
				{T: 100 * time.Millisecond, X: 30, Y: -10},
			},
			wantVX: 300,
			wantVY: -100,
		},
		{
			name: "只使用首尾采样",
			samples: []Sample{
				{T: 0, X: 0, Y: 0},
				{T: 10 * time.Millisecond, X: 500, Y: 500},
				{T: 50 * time.Millisecond, X: 10, Y: 5},
			},
			wantVX: 200,
			wantVY: 100,
		},
		{
			name: "时间戳相同返回零速度",
			samples: []Sample{
				{T: time.Second, X: 0, Y: 0},
				{T: time.Second, X: 40, Y: 40},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vx, vy := EstimateVelocity(tt.samples)
			if math.Abs(vx-tt.wantVX) > 1e-9 || math.Abs(vy-tt.wantVY) > 1e-9 {
				t.Errorf("EstimateVelocity() = (%v, %v), want (%v, %v)", vx, vy, tt.wantVX, tt.wantVY)
			}
		})
	}
}

// TestSampleWindowDropsOldSamples 超过窗口的采样在新采样到达时被丢弃
func TestSampleWindowDropsOldSamples(t *testing.T) {
	w := NewSampleWindow(120 * time.Millisecond)

	w.Push(0, 0, 0)
	w.Push(50*time.Millisecond, 5, 0)
	w.Push(120*time.Millisecond, 12, 0)
	if w.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (sample exactly at window edge is kept)", w.Len())
	}

	w.Push(121*time.Millisecond, 13, 0)
	samples := w.Samples()
	if len(samples) != 3 {
		t.Fatalf("Len() = %d, want 3 after push", len(samples))
	}
	if samples[0].T != 50*time.Millisecond {
		t.Errorf("oldest sample T = %v, want 50ms", samples[0].T)
	}

	w.Push(time.Second, 100, 0)
	if w.Len() != 1 {
		t.Errorf("Len() = %d, want 1 after long pause", w.Len())
	}
}

func TestSampleWindowVelocityAndReset(t *testing.T) {
	w := NewSampleWindow(0)
	if w.Window() != DefaultSampleWindow {
		t.Errorf("Window() = %v, want %v", w.Window(), DefaultSampleWindow)
	}

	w.Push(0, 0, 0)
	w.Push(100*time.Millisecond, 20, 40)
	vx, vy := w.Velocity()
	if math.Abs(vx-200) > 1e-9 || math.Abs(vy-400) > 1e-9 {
		t.Errorf("Velocity() = (%v, %v), want (200, 400)", vx, vy)
	}

	w.Reset()
	if w.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", w.Len())
	}
	if vx, vy := w.Velocity(); vx != 0 || vy != 0 {
		t.Errorf("Velocity() after Reset = (%v, %v), want (0, 0)", vx, vy)
	}
}

// TestSamplesReturnsCopy 修改返回的切片不影响窗口
func TestSamplesReturnsCopy(t *testing.T) {
	w := NewSampleWindow(time.Second)
	w.Push(0, 1, 1)
	s := w.Samples()
	s[0].X = 99
	if w.Samples()[0].X != 1 {
		t.Error("Samples() should return a copy")
	}
}
