// fling_term 在终端中演示拖拽甩出
//
// 用鼠标左键拖动方框并松开，方框会继续滑动并在终端边缘反弹。
// Esc、q 或 Ctrl-C 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/fling/pkg/config"
	"github.com/decker502/fling/pkg/fling"
)

var (
	boxStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	dragStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（默认使用内置参数）")
	verbose := flag.Bool("verbose", false, "日志输出到 fling_term.log")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *verbose {
		f, err := os.Create("fling_term.log")
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	params := fling.DefaultParams()
	if *configPath != "" {
		c, err := config.LoadFlingConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		params = c.Params()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	cols, rows := screen.Size()
	run(screen, newWorld(cols, rows, params))
}

func run(screen tcell.Screen, w *world) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	quit := make(chan struct{})
	defer close(quit)
	eventChan := pollEvents(screen, quit)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !handleEvent(w, ev) {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case now := <-ticker.C:
			w.frame(now.Sub(last).Seconds())
			last = now
			draw(screen, w)
		}
	}
}

// handleEvent 返回 false 表示退出
func handleEvent(w *world, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		handleMouse(w, col, row, ev.Buttons()&tcell.Button1 != 0)

	case *tcell.EventResize:
		cols, rows := ev.Size()
		w.resize(cols, rows)
	}
	return true
}

// handleMouse 把左键状态变化转换为按下、拖动和释放
func handleMouse(w *world, col, row int, pressed bool) {
	switch {
	case pressed && !w.dragging:
		w.press(col, row)
	case pressed:
		w.move(col, row)
	case w.dragging:
		w.move(col, row)
		w.release()
	}
}

func draw(screen tcell.Screen, w *world) {
	screen.Clear()

	style := boxStyle
	if w.dragging {
		style = dragStyle
	}
	bx, by := int(w.box.x/cellW), int(w.box.y/cellH)
	for row := 0; row < int(w.box.h); row++ {
		for col := 0; col < int(w.box.w); col++ {
			screen.SetContent(bx+col, by+row, ' ', nil, style)
		}
	}
	drawText(screen, bx+1, by+int(w.box.h)/2, "fling", style)

	status := fmt.Sprintf("phase=%s settles=%d", w.sim.Phase(), w.settles)
	if st, ok := w.sim.State(); ok {
		status += fmt.Sprintf(" v=(%.0f, %.0f)", st.VX, st.VY)
	}
	drawText(screen, 0, w.rows-1, status+"  [drag with mouse, q to quit]", statusStyle)

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// pollEvents 在后台读取事件，screen.Fini 之后或 quit 关闭时退出并关闭通道
func pollEvents(screen tcell.Screen, quit <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	return events
}
