// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/fling/pkg/config"
	"github.com/decker502/fling/pkg/embedded"
	"github.com/decker502/fling/pkg/game"
	"github.com/decker502/fling/pkg/scenes"
	"github.com/decker502/fling/pkg/utils"
)

// DefaultConfigPath 嵌入的默认配置路径
const DefaultConfigPath = "data/fling.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空时使用嵌入的默认配置
	ConfigPath string
	// NoHover 强制关闭悬停效果（触摸设备）
	NoHover bool
	// NoSave 不打开持久化存储
	NoSave bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	flingConfig  *config.FlingConfig
	verbose      bool
}

// NewApp 创建并初始化应用
//
// 使用嵌入配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	flingConfig, err := loadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 悬停能力在启动时确定一次，运行中不再改变
	hover := !cfg.NoHover && !utils.IsTouchDevice() &&
		flingConfig.Capabilities.HoverEffects(flingConfig.Layout.WindowWidth)
	log.Printf("[App] Hover effects: %v", hover)

	var gdataManager *gdata.Manager
	if !cfg.NoSave {
		if err := utils.EnsureStorageDir(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
		gdataManager, err = gdata.Open(gdata.Config{AppName: "fling"})
		if err != nil {
			// 降级模式：仅内存设置
			log.Printf("[App] Warning: gdata unavailable: %v (positions will not persist)", err)
			gdataManager = nil
		}
	}
	settings := game.NewSettingsManager(gdataManager)

	pointer := utils.NewEbitenPointer()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		return scenes.NewPlaygroundScene(scenes.PlaygroundOptions{
			Config:       flingConfig,
			Settings:     settings,
			Pointer:      pointer,
			HoverEffects: hover,
			Rand:         rng,
		})
	})
	sceneManager.Reload()

	return &App{
		sceneManager: sceneManager,
		flingConfig:  flingConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// loadConfig 读取外部配置文件或嵌入的默认配置
func loadConfig(path string) (*config.FlingConfig, error) {
	if path != "" {
		c, err := config.LoadFlingConfig(path)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		log.Printf("[Config] 加载配置文件: %s", path)
		return c, nil
	}

	if !embedded.IsInitialized() {
		log.Printf("[Config] 未找到嵌入配置，使用默认值")
		return config.DefaultFlingConfig(), nil
	}

	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置读取失败: %w", err)
	}
	c, err := config.ParseFlingConfig(data)
	if err != nil {
		return nil, fmt.Errorf("嵌入配置解析失败: %w", err)
	}
	log.Printf("[Config] 使用嵌入配置: %s", DefaultConfigPath)
	return c, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	// R 重新创建场景（相框回到保存的位置）
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.sceneManager.Reload()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸跟随窗口尺寸
// 尺寸变化会转发给当前场景，重新布局并刷新拖拽边界
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, config.MinWindowWidth)
	h := max(outsideHeight, config.MinWindowHeight)
	a.sceneManager.Resize(w, h)
	return w, h
}

// GetSceneManager 返回场景管理器
// 用于在关闭时保存状态
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// FlingConfig 返回生效的配置
func (a *App) FlingConfig() *config.FlingConfig {
	return a.flingConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
