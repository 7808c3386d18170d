package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/fling/pkg/components"
	"github.com/decker502/fling/pkg/config"
	"github.com/decker502/fling/pkg/ecs"
	"github.com/decker502/fling/pkg/entities"
	"github.com/decker502/fling/pkg/fling"
	"github.com/decker502/fling/pkg/game"
	"github.com/decker502/fling/pkg/systems"
	"github.com/decker502/fling/pkg/utils"
)

var backgroundColor = color.RGBA{R: 0x14, G: 0x17, B: 0x20, A: 0xff}

// PlaygroundScene 拖拽甩出演示场景
//
// 包含三部分：
//   - 标题字符：悬停时按指针距离调整字重
//   - 工具方块：悬停时被指针推开并摇摆
//   - 容器内的图片框：可拖拽，释放后惯性滑动并在边缘反弹
type PlaygroundScene struct {
	entityManager *ecs.EntityManager
	cfg           *config.FlingConfig
	settings      *game.SettingsManager

	scheduler    *fling.FrameScheduler
	dragSystem   *systems.DragSystem
	tweenSystem  *systems.TweenSystem
	weightSystem *systems.ProximityWeightSystem
	nudgeSystem  *systems.NudgeSystem
	renderSystem *systems.RenderSystem
	hoverEffects bool

	container ecs.EntityID
	frame     ecs.EntityID
	glyphs    []ecs.EntityID
	tiles     []ecs.EntityID
	simulator *fling.Simulator

	width, height int
	settles       int // 本次运行的静止次数
}

// PlaygroundOptions 场景创建参数
type PlaygroundOptions struct {
	Config   *config.FlingConfig
	Settings *game.SettingsManager // 可为 nil（不持久化）
	Pointer  utils.PointerSource

	// HoverEffects 是否启用字重和推动效果，启动时确定一次
	HoverEffects bool

	// Rand 方块摇摆方向的随机源，nil 时使用固定种子
	Rand *rand.Rand
}

// NewPlaygroundScene 创建演示场景
// 初始布局使用配置中的窗口尺寸，之后由 Resize 更新
func NewPlaygroundScene(opts PlaygroundOptions) *PlaygroundScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultFlingConfig()
	}
	settings := opts.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	em := ecs.NewEntityManager()
	scheduler := fling.NewFrameScheduler()

	s := &PlaygroundScene{
		entityManager: em,
		cfg:           cfg,
		settings:      settings,
		scheduler:     scheduler,
		hoverEffects:  opts.HoverEffects,
		width:         cfg.Layout.WindowWidth,
		height:        cfg.Layout.WindowHeight,
	}

	layout := config.ComputeLayout(s.width, s.height, cfg.Layout)
	s.container = entities.NewContainerEntity(em, toRect(layout.Container))

	s.glyphs = entities.NewGlyphEntities(em, cfg.Layout.Title,
		layout.Title.X, layout.Title.Y, layout.GlyphW, layout.Title.Height, cfg.Proximity.MinWeight)
	s.tiles = entities.NewTileEntities(em, cfg.Layout.Tiles,
		layout.Tiles.X, layout.Tiles.Y, layout.Tiles.Width, config.TileGap)

	fx, fy := s.initialFramePosition(layout.Container)
	s.frame, s.simulator = entities.NewFrameEntity(em, entities.FrameOptions{
		X:              fx,
		Y:              fy,
		Width:          cfg.Layout.FrameWidth,
		Height:         cfg.Layout.FrameHeight,
		Container:      s.container,
		Params:         cfg.Params(),
		SampleWindow:   cfg.SampleWindow(),
		EdgeResistance: cfg.Drag.EdgeResistance,
		Scheduler:      scheduler,
	})
	s.simulator.OnSettle = s.onSettle

	s.dragSystem = systems.NewDragSystem(em, opts.Pointer)
	s.tweenSystem = systems.NewTweenSystem(em)
	s.renderSystem = systems.NewRenderSystem(em)

	if s.hoverEffects {
		s.weightSystem = systems.NewProximityWeightSystem(em, opts.Pointer, cfg.WeightMapper())
		s.weightSystem.MoveDuration = msToSeconds(cfg.Proximity.MoveDurationMs)
		s.weightSystem.ResetDuration = msToSeconds(cfg.Proximity.ResetDurationMs)
		s.nudgeSystem = systems.NewNudgeSystem(em, opts.Pointer, cfg.NudgeParams(), opts.Rand)
	}

	log.Printf("[PlaygroundScene] 创建完成: %d 个字符, %d 个方块, 悬停效果=%v",
		len(s.glyphs), len(s.tiles), s.hoverEffects)
	return s
}

// initialFramePosition 返回相框的初始位置
// 有保存的位置时恢复（限制在容器内），否则居中
func (s *PlaygroundScene) initialFramePosition(c config.Box) (float64, float64) {
	w, h := s.cfg.Layout.FrameWidth, s.cfg.Layout.FrameHeight
	bounds := fling.Bounds{
		MinX: c.X, MaxX: c.X + max(c.Width-w, 0),
		MinY: c.Y, MaxY: c.Y + max(c.Height-h, 0),
	}

	if x, y, ok := s.settings.FramePosition(); ok {
		log.Printf("[PlaygroundScene] 恢复相框位置 (%.1f, %.1f)", x, y)
		return bounds.Clamp(c.X+x, c.Y+y)
	}
	return c.X + (c.Width-w)/2, c.Y + (c.Height-h)/2
}

// onSettle 惯性滑动结束，记录相对于容器的静止位置
func (s *PlaygroundScene) onSettle(x, y float64) {
	cx, cy := s.containerOrigin()
	s.settings.RecordSettle(x-cx, y-cy)
	s.settles++
	log.Printf("[PlaygroundScene] 相框静止于 (%.1f, %.1f)", x, y)
}

func (s *PlaygroundScene) containerOrigin() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.container)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// Update 按固定顺序推进一帧：输入 → 惯性 tick → 补间 → 悬停效果
func (s *PlaygroundScene) Update(deltaTime float64) {
	s.dragSystem.Update(deltaTime)
	s.scheduler.Tick()
	s.tweenSystem.Update(deltaTime)

	if s.hoverEffects {
		s.weightSystem.Update(deltaTime)
		s.nudgeSystem.Update(deltaTime)
	}

	s.entityManager.RemoveMarkedEntities()
}

// Resize 窗口尺寸变化时重新布局，并刷新拖拽边界
func (s *PlaygroundScene) Resize(width, height int) {
	s.width, s.height = width, height
	layout := config.ComputeLayout(width, height, s.cfg.Layout)
	em := s.entityManager

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.container); ok {
		pos.X, pos.Y = layout.Container.X, layout.Container.Y
	}
	if rect, ok := ecs.GetComponent[*components.RectComponent](em, s.container); ok {
		rect.Width, rect.Height = layout.Container.Width, layout.Container.Height
	}

	s.layoutGlyphs(layout)
	s.layoutTiles(layout)

	s.dragSystem.RefreshBounds()

	// 不在拖拽或滑动时，把相框拉回新的边界内
	if s.dragSystem.ActiveEntity() == 0 && !s.simulator.Running() {
		drag, ok := ecs.GetComponent[*components.DraggableComponent](em, s.frame)
		pos, ok2 := ecs.GetComponent[*components.PositionComponent](em, s.frame)
		if ok && ok2 && !drag.Bounds.Contains(pos.X, pos.Y) {
			x, y := drag.Bounds.Clamp(pos.X, pos.Y)
			systems.NewEntityTarget(em, s.frame).SetPosition(x, y)
		}
	}

	log.Printf("[PlaygroundScene] 重新布局: %dx%d", width, height)
}

// layoutGlyphs 按标题中的列号放置字符（空格占一列）
func (s *PlaygroundScene) layoutGlyphs(layout config.Layout) {
	col, i := 0, 0
	for _, ch := range s.cfg.Layout.Title {
		if ch != ' ' && i < len(s.glyphs) {
			id := s.glyphs[i]
			if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
				pos.X = layout.Title.X + float64(col)*layout.GlyphW
				pos.Y = layout.Title.Y
			}
			if rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id); ok {
				rect.Width = layout.GlyphW * 0.8
			}
			i++
		}
		col++
	}
}

// layoutTiles 方块位置是推动偏移的基准，偏移本身不受影响
func (s *PlaygroundScene) layoutTiles(layout config.Layout) {
	for i, id := range s.tiles {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.X = layout.Tiles.X + float64(i)*(layout.Tiles.Width+config.TileGap)
			pos.Y = layout.Tiles.Y
		}
	}
}

// Draw 绘制场景和状态栏
func (s *PlaygroundScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.renderSystem.Draw(screen)
	ebitenutil.DebugPrintAt(screen, s.statusLine(), 8, s.height-20)
}

// statusLine 状态栏文本：模拟阶段、速度和静止次数
func (s *PlaygroundScene) statusLine() string {
	line := fmt.Sprintf("phase=%s settles=%d", s.simulator.Phase(), s.settles)
	if st, ok := s.simulator.State(); ok {
		line += fmt.Sprintf(" v=(%.0f, %.0f) ticks=%d", st.VX, st.VY, st.Ticks)
	}
	if !s.hoverEffects {
		line += " hover=off"
	}
	return line
}

// SaveOnExit 保存相框的静止位置
func (s *PlaygroundScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		log.Printf("[PlaygroundScene] 保存失败: %v", err)
		return false
	}
	return true
}

// Simulator 返回相框的模拟器
func (s *PlaygroundScene) Simulator() *fling.Simulator {
	return s.simulator
}

// Frame 返回相框实体
func (s *PlaygroundScene) Frame() ecs.EntityID {
	return s.frame
}

// EntityManager 返回场景的实体管理器
func (s *PlaygroundScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

func toRect(b config.Box) entities.Rect {
	return entities.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func msToSeconds(ms int) float64 {
	return float64(ms) / 1000
}
