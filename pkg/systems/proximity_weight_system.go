package systems

import (
	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/fling"
	"github.com/decker502/fling/pkg/utils"
)

// ProximityWeightSystem 根据指针与每个字符中心的距离调整字重
//
// 指针在标题区域内移动时，每个字符向目标字重补间（MoveDuration）；
// 指针离开标题区域时全部回到 MinWeight（ResetDuration）。
type ProximityWeightSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	mapper        fling.WeightMapper

	MoveDuration  float64
	MoveEase      easing.Func
	ResetDuration float64
	ResetEase     easing.Func

	hovering     bool
	lastX, lastY float64
}

// NewProximityWeightSystem 创建字重系统
func NewProximityWeightSystem(em *ecs.EntityManager, pointer utils.PointerSource, mapper fling.WeightMapper) *ProximityWeightSystem {
	return &ProximityWeightSystem{
		entityManager: em,
		pointer:       pointer,
		mapper:        mapper,
		MoveDuration:  0.2,
		MoveEase:      easing.OutQuad,
		ResetDuration: 0.5,
		ResetEase:     easing.OutCubic,
	}
}

// Update 每帧调用一次
func (s *ProximityWeightSystem) Update(deltaTime float64) {
	glyphs := ecs.GetEntitiesWith3[
		*components.GlyphComponent,
		*components.PositionComponent,
		*components.RectComponent,
	](s.entityManager)
	if len(glyphs) == 0 {
		return
	}

	ps := s.pointer.Pointer()
	inside := s.regionContains(glyphs, ps.X, ps.Y)
	moved := ps.X != s.lastX || ps.Y != s.lastY
	s.lastX, s.lastY = ps.X, ps.Y

	switch {
	case inside && (moved || !s.hovering):
		for _, id := range glyphs {
			glyph, _ := ecs.GetComponent[*components.GlyphComponent](s.entityManager, id)
			pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
			rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)

			cx := pos.X + rect.Width/2
			cy := pos.Y + rect.Height/2
			target := s.mapper.Weight(cx, cy, ps.X, ps.Y)
			glyph.Tween.Start(glyph.Weight, target, s.MoveDuration, s.MoveEase)
		}
	case !inside && s.hovering:
		for _, id := range glyphs {
			glyph, _ := ecs.GetComponent[*components.GlyphComponent](s.entityManager, id)
			glyph.Tween.Start(glyph.Weight, s.mapper.MinWeight, s.ResetDuration, s.ResetEase)
		}
	}
	s.hovering = inside

	for _, id := range glyphs {
		glyph, _ := ecs.GetComponent[*components.GlyphComponent](s.entityManager, id)
		if glyph.Tween.Active {
			glyph.Weight = glyph.Tween.Advance(deltaTime)
		}
	}
}

// regionContains 指针是否位于所有字符的外接矩形内
func (s *ProximityWeightSystem) regionContains(glyphs []ecs.EntityID, px, py float64) bool {
	first := true
	var minX, minY, maxX, maxY float64
	for _, id := range glyphs {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if first {
			minX, minY = pos.X, pos.Y
			maxX, maxY = pos.X+rect.Width, pos.Y+rect.Height
			first = false
			continue
		}
		minX = min(minX, pos.X)
		minY = min(minY, pos.Y)
		maxX = max(maxX, pos.X+rect.Width)
		maxY = max(maxY, pos.Y+rect.Height)
	}
	return px >= minX && px < maxX && py >= minY && py < maxY
}
