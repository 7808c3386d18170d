package main

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/decker502/fling/pkg/fling"
)

var (
	traceColor  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	boundsColor = color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	stopColor   = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// trajectoryPlot 平面轨迹，附带边界矩形
func trajectoryPlot(trace []fling.State, b fling.Bounds) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Fling trajectory"
	p.X.Label.Text = "x (px)"
	p.Y.Label.Text = "y (px)"

	pts := make(plotter.XYs, 0, len(trace))
	for _, s := range trace {
		pts = append(pts, plotter.XY{X: s.X, Y: s.Y})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = traceColor
	line.Width = vg.Points(1.5)
	p.Add(line)

	box, err := plotter.NewLine(plotter.XYs{
		{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY}, {X: b.MinX, Y: b.MaxY},
		{X: b.MinX, Y: b.MinY},
	})
	if err != nil {
		return nil, err
	}
	box.Color = boundsColor
	box.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(box)
	p.Legend.Add("path", line)
	p.Legend.Add("bounds", box)
	return p, nil
}

// speedPlot 每个 tick 后的速度大小，附带停止速度参考线
func speedPlot(trace []fling.State, params fling.Params) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Speed per tick"
	p.X.Label.Text = "tick"
	p.Y.Label.Text = "speed (px/s)"

	pts := make(plotter.XYs, 0, len(trace))
	for _, s := range trace {
		pts = append(pts, plotter.XY{X: float64(s.Ticks), Y: s.Speed()})
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = traceColor
	line.Width = vg.Points(1)
	p.Add(line)

	stop, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: params.StopSpeed},
		{X: float64(trace[len(trace)-1].Ticks), Y: params.StopSpeed},
	})
	if err != nil {
		return nil, err
	}
	stop.Color = stopColor
	stop.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(stop)
	p.Legend.Add("speed", line)
	p.Legend.Add(fmt.Sprintf("stop %.0f", params.StopSpeed), stop)
	p.Legend.Top = true
	return p, nil
}

// savePlots 生成两张图并返回文件路径
func savePlots(trace []fling.State, b fling.Bounds, params fling.Params, outDir string) ([]string, error) {
	if len(trace) == 0 {
		return nil, fmt.Errorf("empty trace")
	}

	traj, err := trajectoryPlot(trace, b)
	if err != nil {
		return nil, fmt.Errorf("trajectory plot: %w", err)
	}
	speed, err := speedPlot(trace, params)
	if err != nil {
		return nil, fmt.Errorf("speed plot: %w", err)
	}

	trajFile := filepath.Join(outDir, "fling_trajectory.png")
	if err := traj.Save(8*vg.Inch, 8*vg.Inch, trajFile); err != nil {
		return nil, err
	}
	speedFile := filepath.Join(outDir, "fling_speed.png")
	if err := speed.Save(12*vg.Inch, 5*vg.Inch, speedFile); err != nil {
		return nil, err
	}
	return []string{trajFile, speedFile}, nil
}
