package entities

import (
	"image/color"
	"time"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/fling"
	"github.com/decker502/fling/pkg/systems"
)

// Rect 轴对齐矩形（屏幕坐标）
type Rect struct {
	X, Y, Width, Height float64
}

// NewContainerEntity 创建拖拽容器（只用于绘制和边界计算）
func NewContainerEntity(em *ecs.EntityManager, r Rect) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: r.X, Y: r.Y})
	em.AddComponent(id, &components.RectComponent{
		Width:  r.Width,
		Height: r.Height,
		Color:  color.RGBA{R: 0x24, G: 0x2a, B: 0x38, A: 0xff},
		Label:  "drag & fling",
	})
	return id
}

// FrameOptions 可拖拽图片框的创建参数
type FrameOptions struct {
	X, Y, Width, Height float64
	Container           ecs.EntityID
	Params              fling.Params
	SampleWindow        time.Duration
	EdgeResistance      float64
	Scheduler           fling.Scheduler
}

// NewFrameEntity 创建可拖拽、可甩出的图片框
//
// 边界由容器实体的当前位置和尺寸实时计算，容器布局变化后
// 由 DragSystem.RefreshBounds 重新查询。
func NewFrameEntity(em *ecs.EntityManager, opts FrameOptions) (ecs.EntityID, *fling.Simulator) {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: opts.X, Y: opts.Y})
	em.AddComponent(id, &components.RectComponent{
		Width:  opts.Width,
		Height: opts.Height,
		Color:  color.RGBA{R: 0xf2, G: 0xb8, B: 0x4b, A: 0xff},
		Label:  "about",
	})

	drag := &components.DraggableComponent{
		Samples:        fling.NewSampleWindow(opts.SampleWindow),
		BoundsProvider: ContainerBounds(em, opts.Container, opts.Width, opts.Height),
		EdgeResistance: opts.EdgeResistance,
	}
	drag.RefreshBounds()
	em.AddComponent(id, drag)

	sim := fling.NewSimulator(opts.Params, systems.NewEntityTarget(em, id), opts.Scheduler)
	em.AddComponent(id, &components.FlingComponent{Simulator: sim})
	return id, sim
}

// ContainerBounds 返回容器内可移动区域的查询函数
// 对象左上角的可达范围为 [容器左上角, 容器右下角 - 对象尺寸]
func ContainerBounds(em *ecs.EntityManager, container ecs.EntityID, width, height float64) fling.BoundsProvider {
	return fling.BoundsFunc(func() fling.Bounds {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, container)
		if !ok {
			return fling.Bounds{}
		}
		rect, ok := ecs.GetComponent[*components.RectComponent](em, container)
		if !ok {
			return fling.Bounds{MinX: pos.X, MaxX: pos.X, MinY: pos.Y, MaxY: pos.Y}
		}
		return fling.Bounds{
			MinX: pos.X,
			MaxX: pos.X + max(rect.Width-width, 0),
			MinY: pos.Y,
			MaxY: pos.Y + max(rect.Height-height, 0),
		}
	})
}

// NewGlyphEntities 为标题中的每个字符创建实体（空格只占位不创建）
func NewGlyphEntities(em *ecs.EntityManager, text string, x, y, glyphWidth, glyphHeight, weight float64) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(text))
	i := 0
	for _, ch := range text {
		if ch != ' ' {
			id := em.CreateEntity()
			em.AddComponent(id, &components.PositionComponent{X: x + float64(i)*glyphWidth, Y: y})
			em.AddComponent(id, &components.RectComponent{
				Width:  glyphWidth * 0.8,
				Height: glyphHeight,
				Color:  color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
			})
			em.AddComponent(id, &components.GlyphComponent{Char: ch, Weight: weight})
			ids = append(ids, id)
		}
		i++
	}
	return ids
}

// NewTileEntities 创建一行工具方块
func NewTileEntities(em *ecs.EntityManager, count int, x, y, size, gap float64) []ecs.EntityID {
	palette := [][3]uint8{
		{0x5b, 0x8d, 0xef},
		{0x4c, 0xc9, 0x8a},
		{0xe8, 0x6a, 0x6a},
		{0xb3, 0x7f, 0xeb},
	}
	ids := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		c := palette[i%len(palette)]
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: x + float64(i)*(size+gap), Y: y})
		em.AddComponent(id, &components.RectComponent{
			Width:  size,
			Height: size,
			Color:  color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff},
		})
		em.AddComponent(id, &components.TileComponent{Scale: 1})
		ids = append(ids, id)
	}
	return ids
}
