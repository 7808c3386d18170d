package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/ecs"
)

// RenderSystem 绘制所有带 RectComponent 的实体
// 绘制顺序按实体 ID 升序（先创建的在下层）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	pixel         *ebiten.Image
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(color.White)
	}

	entities := ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.RectComponent,
	](s.entityManager)

	for _, id := range entities {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		clr := rect.Color

		if tile, ok := ecs.GetComponent[*components.TileComponent](s.entityManager, id); ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM = TileGeoM(pos, rect, tile)
			op.ColorScale.ScaleWithColor(clr)
			screen.DrawImage(s.pixel, op)
			continue
		}

		if glyph, ok := ecs.GetComponent[*components.GlyphComponent](s.entityManager, id); ok {
			s.drawGlyph(screen, pos, rect, glyph, clr)
			continue
		}

		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(rect.Width), float32(rect.Height), clr, true)
		if rect.Label != "" {
			ebitenutil.DebugPrintAt(screen, rect.Label, int(pos.X)+4, int(pos.Y)+4)
		}
	}
}

func (s *RenderSystem) drawGlyph(screen *ebiten.Image, pos *components.PositionComponent, rect *components.RectComponent, glyph *components.GlyphComponent, clr color.RGBA) {
	stroke := GlyphStroke(glyph.Weight, rect.Width)
	x := pos.X + (rect.Width-stroke)/2
	vector.DrawFilledRect(screen, float32(x), float32(pos.Y), float32(stroke), float32(rect.Height), clr, true)
	ebitenutil.DebugPrintAt(screen, string(glyph.Char), int(pos.X), int(pos.Y+rect.Height))
}

// GlyphStroke 字重映射为笔画宽度：400 对应字宽的 15%，800 对应 30%
func GlyphStroke(weight, width float64) float64 {
	return width * 0.15 * (weight / 400)
}

// TileGeoM 方块绘制变换：以中心缩放和旋转，再叠加推动位移
func TileGeoM(pos *components.PositionComponent, rect *components.RectComponent, tile *components.TileComponent) ebiten.GeoM {
	scale := tile.Scale
	if scale == 0 {
		scale = 1
	}
	w := rect.Width * scale
	h := rect.Height * scale

	var g ebiten.GeoM
	g.Scale(w, h)
	g.Translate(-w/2, -h/2)
	g.Rotate(tile.Rotation)
	g.Translate(pos.X+rect.Width/2+tile.OffsetX, pos.Y+rect.Height/2+tile.OffsetY)
	return g
}
