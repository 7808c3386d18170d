package entities

import (
	"math"
	"testing"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/fling"
)

func TestContainerBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	container := NewContainerEntity(em, Rect{X: 20, Y: 40, Width: 400, Height: 300})

	provider := ContainerBounds(em, container, 100, 80)
	got := provider.Bounds()
	want := fling.Bounds{MinX: 20, MaxX: 320, MinY: 40, MaxY: 260}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}

	// 容器布局变化后重新查询得到新边界
	rect, _ := ecs.GetComponent[*components.RectComponent](em, container)
	rect.Width = 150
	if got := provider.Bounds(); got.MaxX != 70 {
		t.Errorf("after resize MaxX = %v, want 70", got.MaxX)
	}

	// 容器比对象小时边界退化为一点
	rect.Width = 50
	if got := provider.Bounds(); got.MaxX != got.MinX {
		t.Errorf("undersized container bounds = %+v, want MinX == MaxX", got)
	}
}

func TestNewFrameEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	container := NewContainerEntity(em, Rect{Width: 400, Height: 300})
	scheduler := fling.NewFrameScheduler()

	id, sim := NewFrameEntity(em, FrameOptions{
		X:              50,
		Y:              60,
		Width:          100,
		Height:         100,
		Container:      container,
		Params:         fling.DefaultParams(),
		SampleWindow:   fling.DefaultSampleWindow,
		EdgeResistance: 0.65,
		Scheduler:      scheduler,
	})

	if sim == nil {
		t.Fatal("simulator is nil")
	}
	drag, ok := ecs.GetComponent[*components.DraggableComponent](em, id)
	if !ok {
		t.Fatal("missing DraggableComponent")
	}
	if drag.Bounds.MaxX != 300 || drag.Bounds.MaxY != 200 {
		t.Errorf("initial bounds = %+v, want refreshed from container", drag.Bounds)
	}
	if fc, ok := ecs.GetComponent[*components.FlingComponent](em, id); !ok || fc.Simulator != sim {
		t.Error("FlingComponent should hold the returned simulator")
	}

	// 模拟器通过实体目标写回位置
	if !sim.Release(600, 0, 50, 60, drag.Bounds) {
		t.Fatal("Release should start")
	}
	scheduler.Tick()
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if math.Abs(pos.X-60) > 1e-9 {
		t.Errorf("after one tick X = %v, want 60", pos.X)
	}
}

func TestNewGlyphEntitiesSkipsSpaces(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := NewGlyphEntities(em, "AB C", 10, 0, 20, 40, 400)

	if len(ids) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(ids))
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[2])
	if pos.X != 10+3*20 {
		t.Errorf("'C' X = %v, want %v (space keeps its column)", pos.X, 10+3*20)
	}
	glyph, _ := ecs.GetComponent[*components.GlyphComponent](em, ids[2])
	if glyph.Char != 'C' || glyph.Weight != 400 {
		t.Errorf("glyph = %+v", glyph)
	}
}

func TestNewTileEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := NewTileEntities(em, 5, 0, 0, 50, 10)

	if len(ids) != 5 {
		t.Fatalf("got %d tiles, want 5", len(ids))
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, ids[4])
	if pos.X != 240 {
		t.Errorf("5th tile X = %v, want 240", pos.X)
	}
	tile, _ := ecs.GetComponent[*components.TileComponent](em, ids[0])
	if tile.Scale != 1 {
		t.Errorf("tile Scale = %v, want 1", tile.Scale)
	}
}
