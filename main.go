package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fling/pkg/app"
	"github.com/decker502/fling/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部配置文件路径（默认使用嵌入的 data/fling.yaml）")
	noHover := flag.Bool("no-hover", false, "关闭悬停效果（模拟触摸设备）")
	noSave := flag.Bool("no-save", false, "不保存相框位置")
	flag.Parse()

	embedded.Init(dataFS)

	flingApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		NoHover:    *noHover,
		NoSave:     *noSave,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	layout := flingApp.FlingConfig().Layout
	ebiten.SetWindowSize(layout.WindowWidth, layout.WindowHeight)
	ebiten.SetWindowTitle("Fling - 拖拽甩出演示")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(flingApp)

	// 窗口关闭后保存相框位置
	if !flingApp.GetSceneManager().SaveOnExit() {
		log.Printf("[Main] 退出时保存失败")
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
