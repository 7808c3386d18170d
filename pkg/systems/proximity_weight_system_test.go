package systems

import (
	"math"
	"testing"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/fling"
)

// newGlyphRow 创建 n 个 20x40 的字符，间隔 30，起点 (100, 100)
func newGlyphRow(em *ecs.EntityManager, n int) []*components.GlyphComponent {
	glyphs := make([]*components.GlyphComponent, 0, n)
	for i := 0; i < n; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{X: 100 + float64(i)*30, Y: 100})
		em.AddComponent(id, &components.RectComponent{Width: 20, Height: 40})
		g := &components.GlyphComponent{Char: 'A', Weight: 400}
		em.AddComponent(id, g)
		glyphs = append(glyphs, g)
	}
	return glyphs
}

func runFrames(n int, update func(float64)) {
	for i := 0; i < n; i++ {
		update(frameDT)
	}
}

func TestProximityWeightFollowsPointer(t *testing.T) {
	em := ecs.NewEntityManager()
	glyphs := newGlyphRow(em, 5)
	pointer := &scriptedPointer{}
	pointer.move(0, 0)

	s := NewProximityWeightSystem(em, pointer, fling.DefaultWeightMapper())
	s.Update(frameDT)
	for _, g := range glyphs {
		if g.Weight != 400 {
			t.Fatalf("weight changed before hover: %v", g.Weight)
		}
	}

	// 指针位于第一个字符中心 (110, 120)
	pointer.move(110, 120)
	runFrames(20, s.Update)

	if math.Abs(glyphs[0].Weight-800) > 1e-9 {
		t.Errorf("glyph under pointer weight = %v, want 800", glyphs[0].Weight)
	}
	// 第 5 个字符中心距离 120 → 800 - 400*120/200 = 560
	if math.Abs(glyphs[4].Weight-560) > 1e-9 {
		t.Errorf("far glyph weight = %v, want 560", glyphs[4].Weight)
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].Weight > glyphs[i-1].Weight {
			t.Errorf("weights should decrease with distance: %v > %v", glyphs[i].Weight, glyphs[i-1].Weight)
		}
	}
}

func TestProximityWeightResetsOnLeave(t *testing.T) {
	em := ecs.NewEntityManager()
	glyphs := newGlyphRow(em, 3)
	pointer := &scriptedPointer{}
	s := NewProximityWeightSystem(em, pointer, fling.DefaultWeightMapper())

	pointer.move(140, 120)
	runFrames(20, s.Update)
	if glyphs[1].Weight <= 400 {
		t.Fatal("hovered glyph should gain weight")
	}

	pointer.move(500, 500)
	s.Update(frameDT)
	if glyphs[1].Weight <= 400 {
		t.Error("reset should ease out, not jump")
	}
	runFrames(40, s.Update)
	for i, g := range glyphs {
		if g.Weight != 400 {
			t.Errorf("glyph %d weight = %v, want 400 after leave", i, g.Weight)
		}
	}
}
