package systems

import (
	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/ecs"
)

// TweenSystem 推进位置补间
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有位置补间，完成后移除补间组件并把位置设为精确终点
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[
		*components.PositionTweenComponent,
		*components.PositionComponent,
	](s.entityManager)

	for _, id := range entities {
		tween, _ := ecs.GetComponent[*components.PositionTweenComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		tween.Elapsed += deltaTime
		p := easing.Progress(tween.Elapsed, tween.Duration)
		if p >= 1 {
			pos.X, pos.Y = tween.ToX, tween.ToY
			ecs.RemoveComponentOf[*components.PositionTweenComponent](s.entityManager, id)
			continue
		}

		ease := tween.Ease
		if ease == nil {
			ease = easing.Linear
		}
		e := ease(p)
		pos.X = easing.Lerp(tween.FromX, tween.ToX, e)
		pos.Y = easing.Lerp(tween.FromY, tween.ToY, e)
	}
}
