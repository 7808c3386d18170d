package systems

import (
	"time"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/ecs"
)

// EntityTarget 将 fling.Target 绑定到一个实体
//
// SetPosition 直接写入 PositionComponent 并打断正在进行的位置补间；
// AnimateTo 添加 PositionTweenComponent，由 TweenSystem 推进。
type EntityTarget struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// NewEntityTarget 创建实体渲染端
func NewEntityTarget(em *ecs.EntityManager, id ecs.EntityID) *EntityTarget {
	return &EntityTarget{em: em, id: id}
}

// SetPosition 实现 fling.Target
func (t *EntityTarget) SetPosition(x, y float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](t.em, t.id)
	if !ok {
		return
	}
	ecs.RemoveComponentOf[*components.PositionTweenComponent](t.em, t.id)
	pos.X = x
	pos.Y = y
}

// AnimateTo 实现 fling.Target
func (t *EntityTarget) AnimateTo(x, y float64, duration time.Duration, ease easing.Func) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](t.em, t.id)
	if !ok {
		return
	}
	t.em.AddComponent(t.id, &components.PositionTweenComponent{
		FromX:    pos.X,
		FromY:    pos.Y,
		ToX:      x,
		ToY:      y,
		Duration: duration.Seconds(),
		Ease:     ease,
	})
}
