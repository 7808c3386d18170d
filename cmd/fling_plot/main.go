// fling_plot 无渲染地运行一次惯性模拟，把轨迹和速度曲线保存为 PNG
//
// 用法:
//
//	go run ./cmd/fling_plot -vx 300 -vy 0 -x 0 -y 0 -minx -50 -maxx 50 -out build/plots
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/decker502/fling/pkg/config"
	"github.com/decker502/fling/pkg/fling"
)

func main() {
	vx := flag.Float64("vx", 300, "释放速度 X（像素/秒）")
	vy := flag.Float64("vy", 0, "释放速度 Y（像素/秒）")
	x := flag.Float64("x", 0, "起始位置 X")
	y := flag.Float64("y", 0, "起始位置 Y")
	minX := flag.Float64("minx", -50, "边界 MinX")
	maxX := flag.Float64("maxx", 50, "边界 MaxX")
	minY := flag.Float64("miny", -50, "边界 MinY")
	maxY := flag.Float64("maxy", 50, "边界 MaxY")
	maxTicks := flag.Int("ticks", 300, "最大 tick 数")
	configPath := flag.String("config", "", "配置文件路径（默认使用内置参数）")
	outDir := flag.String("out", "build/plots", "输出目录")
	flag.Parse()

	params := fling.DefaultParams()
	if *configPath != "" {
		c, err := config.LoadFlingConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		params = c.Params()
	}

	bounds := fling.Bounds{MinX: *minX, MaxX: *maxX, MinY: *minY, MaxY: *maxY}
	trace, settled := fling.Simulate(*vx, *vy, *x, *y, bounds, params, *maxTicks)
	if len(trace) == 0 {
		fmt.Printf("释放速度低于启动阈值 %.1f，不产生轨迹\n", params.MinStartSpeed)
		return
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("创建输出目录失败: %v", err)
	}

	files, err := savePlots(trace, bounds, params, *outDir)
	if err != nil {
		log.Fatalf("保存图表失败: %v", err)
	}

	last := trace[len(trace)-1]
	fmt.Println("==========================================================")
	fmt.Printf("ticks:    %d\n", len(trace))
	fmt.Printf("settled:  %v\n", settled)
	fmt.Printf("final:    (%.2f, %.2f) v=(%.2f, %.2f)\n", last.X, last.Y, last.VX, last.VY)
	for _, f := range files {
		fmt.Printf("saved:    %s\n", filepath.ToSlash(f))
	}
	fmt.Println("==========================================================")
}
