package components

import "image/color"

// PositionComponent 实体左上角的屏幕坐标
type PositionComponent struct {
	X, Y float64
}

// RectComponent 实体的尺寸与填充颜色（用于绘制和点击检测）
type RectComponent struct {
	Width, Height float64
	Color         color.RGBA
	// Label 绘制在矩形左上角的调试文字，可为空
	Label string
}

// Contains 点 (px, py) 是否落在以 (x, y) 为左上角的矩形内
func (r *RectComponent) Contains(x, y, px, py float64) bool {
	return px >= x && px < x+r.Width && py >= y && py < y+r.Height
}
