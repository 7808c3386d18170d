package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/fling"
	"github.com/decker502/fling/pkg/utils"
)

// 悬停推动时间参数（秒）
const (
	NudgeOutDuration  = 0.16
	NudgeBackDuration = 0.4
	WiggleDuration    = 0.35
	// WiggleMaxDegrees 摇摆角度范围 ±8°
	WiggleMaxDegrees = 8.0
	WiggleScale      = 1.03
)

// NudgeSystem 指针进入方块时推动方块并摇摆
//
// 惯性方式：指针最近一帧位移截断到 ±VelClamp 后乘以 VelMult 作为初速度，
// 按 Resistance 匀减速滑行（最长 MaxDuration），再用 0.4 秒回到原位。
// 推动方式：位移 × PushMult 截断到 ±PushClamp，0.16 秒推出（power2.out），
// 再用 0.4 秒回到原位（power3.out）。
type NudgeSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	params        fling.NudgeParams
	rng           *rand.Rand

	lastX, lastY float64
	hasLast      bool
}

// NewNudgeSystem 创建推动系统
// rng 为 nil 时使用固定种子
func NewNudgeSystem(em *ecs.EntityManager, pointer utils.PointerSource, params fling.NudgeParams, rng *rand.Rand) *NudgeSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &NudgeSystem{
		entityManager: em,
		pointer:       pointer,
		params:        params,
		rng:           rng,
	}
}

// Update 每帧调用一次
func (s *NudgeSystem) Update(deltaTime float64) {
	ps := s.pointer.Pointer()
	var dx, dy float64
	if s.hasLast {
		dx, dy = ps.X-s.lastX, ps.Y-s.lastY
	}
	s.lastX, s.lastY = ps.X, ps.Y
	s.hasLast = true

	tiles := ecs.GetEntitiesWith3[
		*components.TileComponent,
		*components.PositionComponent,
		*components.RectComponent,
	](s.entityManager)

	for _, id := range tiles {
		tile, _ := ecs.GetComponent[*components.TileComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)

		inside := rect.Contains(pos.X, pos.Y, ps.X, ps.Y)
		if inside && !tile.Hovered {
			s.start(tile, dx, dy)
		}
		tile.Hovered = inside

		s.advanceNudge(tile, deltaTime)
		advanceWiggle(tile, deltaTime)
	}
}

// start 开始一次推动（打断正在进行的推动）
func (s *NudgeSystem) start(tile *components.TileComponent, dx, dy float64) {
	tile.StartX, tile.StartY = tile.OffsetX, tile.OffsetY
	tile.StageElapsed = 0
	if s.params.Mode == fling.NudgePush {
		tile.PushX, tile.PushY = fling.NudgeOffset(dx, dy, s.params)
		tile.Stage = components.NudgeOut
	} else {
		tile.VelX, tile.VelY = fling.NudgeVelocity(dx, dy, s.params)
		tile.StageDuration = fling.InertiaDuration(tile.VelX, tile.VelY, s.params)
		tile.Stage = components.NudgeCoast
	}

	deg := (s.rng.Float64() - 0.5) * 2 * WiggleMaxDegrees
	tile.WiggleAngle = deg * math.Pi / 180
	tile.WiggleElapsed = 0
	tile.WiggleActive = true
}

func (s *NudgeSystem) advanceNudge(tile *components.TileComponent, dt float64) {
	switch tile.Stage {
	case components.NudgeCoast:
		tile.StageElapsed += dt
		tile.OffsetX = tile.StartX + fling.InertiaOffset(tile.VelX, tile.StageElapsed, s.params)
		tile.OffsetY = tile.StartY + fling.InertiaOffset(tile.VelY, tile.StageElapsed, s.params)
		if tile.StageElapsed >= tile.StageDuration {
			tile.Stage = components.NudgeBack
			tile.StageElapsed = 0
			tile.StartX, tile.StartY = tile.OffsetX, tile.OffsetY
		}
	case components.NudgeOut:
		tile.StageElapsed += dt
		p := easing.Progress(tile.StageElapsed, NudgeOutDuration)
		e := easing.OutCubic(p)
		tile.OffsetX = easing.Lerp(tile.StartX, tile.StartX+tile.PushX, e)
		tile.OffsetY = easing.Lerp(tile.StartY, tile.StartY+tile.PushY, e)
		if p >= 1 {
			tile.Stage = components.NudgeBack
			tile.StageElapsed = 0
			tile.StartX, tile.StartY = tile.OffsetX, tile.OffsetY
		}
	case components.NudgeBack:
		tile.StageElapsed += dt
		p := easing.Progress(tile.StageElapsed, NudgeBackDuration)
		e := easing.OutQuart(p)
		tile.OffsetX = easing.Lerp(tile.StartX, 0, e)
		tile.OffsetY = easing.Lerp(tile.StartY, 0, e)
		if p >= 1 {
			tile.Stage = components.NudgeIdle
			tile.OffsetX, tile.OffsetY = 0, 0
		}
	}
}

// advanceWiggle 0 → 目标角度 → 0（yoyo），缩放同步 1 → 1.03 → 1
func advanceWiggle(tile *components.TileComponent, dt float64) {
	if !tile.WiggleActive {
		tile.Rotation = 0
		tile.Scale = 1
		return
	}
	tile.WiggleElapsed += dt

	var p float64
	if tile.WiggleElapsed < WiggleDuration {
		p = easing.InOutQuad(tile.WiggleElapsed / WiggleDuration)
	} else {
		back := easing.Progress(tile.WiggleElapsed-WiggleDuration, WiggleDuration)
		p = easing.InOutQuad(1 - back)
		if back >= 1 {
			tile.WiggleActive = false
		}
	}
	tile.Rotation = tile.WiggleAngle * p
	tile.Scale = 1 + (WiggleScale-1)*p
}
