package systems

import (
	"log"
	"time"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/fling"
	"github.com/decker502/fling/pkg/utils"
)

// DragSystem 处理可拖拽实体的按下、拖动和释放
//
// 按下：打断进行中的惯性模拟和落位动画，清空采样，刷新边界。
// 拖动：跟随指针（越界部分受边缘阻力），每帧记录采样。
// 释放：刷新边界，估计速度并交给模拟器；未启动模拟且位于边界外时补间回到边界内。
type DragSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource

	// clock 按 Update 的 deltaTime 累加，作为采样时间戳
	clock      time.Duration
	wasPressed bool
	active     ecs.EntityID
}

// NewDragSystem 创建拖拽系统
func NewDragSystem(em *ecs.EntityManager, pointer utils.PointerSource) *DragSystem {
	return &DragSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// ActiveEntity 返回正在拖拽的实体，0 表示无
func (s *DragSystem) ActiveEntity() ecs.EntityID {
	return s.active
}

// Update 每帧调用一次
func (s *DragSystem) Update(deltaTime float64) {
	s.clock += time.Duration(deltaTime * float64(time.Second))
	ps := s.pointer.Pointer()

	switch {
	case ps.Pressed && !s.wasPressed:
		s.press(ps)
	case ps.Pressed && s.active != 0:
		s.drag(ps)
	case !ps.Pressed && s.wasPressed && s.active != 0:
		s.release()
	}
	s.wasPressed = ps.Pressed
}

// RefreshBounds 重新查询所有可拖拽实体的边界（窗口尺寸变化后调用）
func (s *DragSystem) RefreshBounds() {
	for _, id := range ecs.GetEntitiesWith1[*components.DraggableComponent](s.entityManager) {
		drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
		drag.RefreshBounds()
	}
}

// hitTest 返回指针下最上层（ID 最大）的可拖拽实体
func (s *DragSystem) hitTest(px, py float64) ecs.EntityID {
	entities := ecs.GetEntitiesWith3[
		*components.DraggableComponent,
		*components.PositionComponent,
		*components.RectComponent,
	](s.entityManager)

	for i := len(entities) - 1; i >= 0; i-- {
		id := entities[i]
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if rect.Contains(pos.X, pos.Y, px, py) {
			return id
		}
	}
	return 0
}

func (s *DragSystem) press(ps utils.PointerState) {
	id := s.hitTest(ps.X, ps.Y)
	if id == 0 {
		return
	}

	drag, _ := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	// 先停止惯性模拟，再重置采样
	if fc, ok := ecs.GetComponent[*components.FlingComponent](s.entityManager, id); ok {
		fc.Simulator.Cancel()
	}
	ecs.RemoveComponentOf[*components.PositionTweenComponent](s.entityManager, id)

	drag.Samples.Reset()
	drag.RefreshBounds()
	drag.Dragging = true
	drag.GrabX = ps.X - pos.X
	drag.GrabY = ps.Y - pos.Y
	drag.Samples.Push(s.clock, pos.X, pos.Y)

	s.active = id
	log.Printf("[DragSystem] press entity %d at (%.0f, %.0f)", id, ps.X, ps.Y)
}

func (s *DragSystem) drag(ps utils.PointerState) {
	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, s.active)
	if !ok {
		s.active = 0
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.active)

	b := drag.Bounds
	pos.X = fling.ResistEdge(ps.X-drag.GrabX, b.MinX, b.MaxX, drag.EdgeResistance)
	pos.Y = fling.ResistEdge(ps.Y-drag.GrabY, b.MinY, b.MaxY, drag.EdgeResistance)
	drag.Samples.Push(s.clock, pos.X, pos.Y)
}

func (s *DragSystem) release() {
	id := s.active
	s.active = 0

	drag, ok := ecs.GetComponent[*components.DraggableComponent](s.entityManager, id)
	if !ok {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	drag.Dragging = false

	// 布局可能在拖拽期间发生变化
	drag.RefreshBounds()
	vx, vy := drag.Samples.Velocity()
	log.Printf("[DragSystem] release entity %d v=(%.1f, %.1f) from %d samples", id, vx, vy, drag.Samples.Len())

	fc, ok := ecs.GetComponent[*components.FlingComponent](s.entityManager, id)
	if ok && fc.Simulator.Release(vx, vy, pos.X, pos.Y, drag.Bounds) {
		return
	}

	// 慢速释放：越界时回到边界内
	cx, cy := drag.Bounds.Clamp(pos.X, pos.Y)
	if cx != pos.X || cy != pos.Y {
		p := fling.DefaultParams()
		if ok {
			p = fc.Simulator.Params()
		}
		NewEntityTarget(s.entityManager, id).AnimateTo(cx, cy, p.SettleDuration, p.SettleEase)
	}
}
