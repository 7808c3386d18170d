// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 当前帧的指针状态
// 统一描述鼠标和触摸输入
type PointerState struct {
	// Pressed 鼠标左键或触摸是否按下
	Pressed bool
	// X, Y 指针位置（逻辑屏幕坐标）
	X, Y float64
	// IsTouch 是否来自触摸输入
	IsTouch bool
}

// PointerSource 指针输入来源
// 系统每帧读取一次，测试中可替换为脚本化的实现
type PointerSource interface {
	Pointer() PointerState
}

// EbitenPointer 基于 ebiten 的指针输入
// 优先使用触摸，没有触摸时回退到鼠标
type EbitenPointer struct {
	// 触摸释放后保留最后位置，用于释放帧
	lastTouchX, lastTouchY int
	touching               bool
}

// NewEbitenPointer 创建 ebiten 指针输入
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

// Pointer 实现 PointerSource
func (p *EbitenPointer) Pointer() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(touchIDs[0])
		p.touching = true
		return PointerState{
			Pressed: true,
			X:       float64(p.lastTouchX),
			Y:       float64(p.lastTouchY),
			IsTouch: true,
		}
	}

	// 触摸刚释放：返回最后的触摸位置
	if p.touching {
		p.touching = false
		return PointerState{
			X:       float64(p.lastTouchX),
			Y:       float64(p.lastTouchY),
			IsTouch: true,
		}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       float64(x),
		Y:       float64(y),
	}
}
