package config

import "fmt"

// 布局配置
// 所有坐标为逻辑屏幕坐标，窗口尺寸变化时由 ComputeLayout 重新计算

// 窗口尺寸限制
const (
	// MinWindowWidth 最小逻辑宽度
	MinWindowWidth = 480
	// MinWindowHeight 最小逻辑高度
	MinWindowHeight = 360

	// LayoutMargin 容器与窗口边缘的间距
	LayoutMargin = 24.0
	// TitleHeight 标题区域高度（字符高度）
	TitleHeight = 48.0
	// TileSize 工具方块边长
	TileSize = 56.0
	// TileGap 工具方块间距
	TileGap = 16.0
)

// LayoutConfig 可配置的布局参数
type LayoutConfig struct {
	WindowWidth  int     `yaml:"windowWidth"`
	WindowHeight int     `yaml:"windowHeight"`
	FrameWidth   float64 `yaml:"frameWidth"`
	FrameHeight  float64 `yaml:"frameHeight"`
	Title        string  `yaml:"title"`
	Tiles        int     `yaml:"tiles"`
}

// DefaultLayoutConfig 返回默认布局
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		WindowWidth:  960,
		WindowHeight: 640,
		FrameWidth:   140,
		FrameHeight:  180,
		Title:        "FLING IT",
		Tiles:        6,
	}
}

// Validate 验证布局参数
func (l LayoutConfig) Validate() error {
	if l.WindowWidth < MinWindowWidth || l.WindowHeight < MinWindowHeight {
		return fmt.Errorf("window size %dx%d below minimum %dx%d", l.WindowWidth, l.WindowHeight, MinWindowWidth, MinWindowHeight)
	}
	if l.FrameWidth <= 0 || l.FrameHeight <= 0 {
		return fmt.Errorf("frame size must be positive, got %.0fx%.0f", l.FrameWidth, l.FrameHeight)
	}
	if l.Tiles < 0 {
		return fmt.Errorf("tiles must be non-negative, got %d", l.Tiles)
	}
	return nil
}

// Box 轴对齐矩形
type Box struct {
	X, Y, Width, Height float64
}

// Layout 一次布局计算的结果
type Layout struct {
	Title     Box // 标题行
	GlyphW    float64
	Tiles     Box // 方块行（第一个方块的位置和尺寸）
	Container Box // 拖拽容器
}

// ComputeLayout 根据窗口尺寸计算各区域位置
//
// 从上到下：标题行、方块行、拖拽容器（占据剩余空间）。
// 窗口尺寸小于最小值时按最小值计算。
func ComputeLayout(width, height int, l LayoutConfig) Layout {
	w := float64(max(width, MinWindowWidth))
	h := float64(max(height, MinWindowHeight))

	n := max(len([]rune(l.Title)), 1)
	glyphW := min(48.0, (w-2*LayoutMargin)/float64(n))

	title := Box{X: LayoutMargin, Y: LayoutMargin, Width: glyphW * float64(n), Height: TitleHeight}
	tiles := Box{X: LayoutMargin, Y: title.Y + title.Height + LayoutMargin, Width: TileSize, Height: TileSize}

	top := tiles.Y + tiles.Height + LayoutMargin
	container := Box{
		X:      LayoutMargin,
		Y:      top,
		Width:  w - 2*LayoutMargin,
		Height: max(h-top-LayoutMargin, l.FrameHeight),
	}

	return Layout{
		Title:     title,
		GlyphW:    glyphW,
		Tiles:     tiles,
		Container: container,
	}
}
