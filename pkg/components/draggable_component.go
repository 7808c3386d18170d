package components

import (
	"github.com/decker502/fling/pkg/fling"
)

// DraggableComponent 可拖拽对象
//
// 拖拽时按帧记录位置采样，释放时由采样估计速度交给 FlingComponent。
// Bounds 在按下、释放和窗口尺寸变化时从 BoundsProvider 重新查询。
type DraggableComponent struct {
	Samples        *fling.SampleWindow
	BoundsProvider fling.BoundsProvider
	Bounds         fling.Bounds

	// EdgeResistance 越界拖拽的阻力（0 ~ 1）
	EdgeResistance float64

	// Dragging 是否正在被拖拽
	Dragging bool
	// GrabX, GrabY 按下点相对实体左上角的偏移
	GrabX, GrabY float64
}

// RefreshBounds 重新查询拖拽边界
func (d *DraggableComponent) RefreshBounds() {
	if d.BoundsProvider != nil {
		d.Bounds = d.BoundsProvider.Bounds()
	}
}

// FlingComponent 持有实体的惯性释放模拟器
type FlingComponent struct {
	Simulator *fling.Simulator
}
