package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/fling/pkg/config"
	"github.com/decker502/fling/pkg/embedded"
	"github.com/decker502/fling/pkg/scenes"
)

// TestLoadConfig 测试配置来源的优先级
func TestLoadConfig(t *testing.T) {
	embedded.Init(nil)

	// 没有文件也没有嵌入配置时使用默认值
	c, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error: %v", err)
	}
	if c.Physics.Friction != 0.94 {
		t.Errorf("Friction = %v, want 0.94", c.Physics.Friction)
	}

	// 嵌入配置
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: {Data: []byte("physics:\n  friction: 0.9\n")},
	})
	defer embedded.Init(nil)

	c, err = loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") with embedded error: %v", err)
	}
	if c.Physics.Friction != 0.9 {
		t.Errorf("Friction = %v, want 0.9 from embedded config", c.Physics.Friction)
	}

	// 外部文件优先
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  friction: 0.8\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err = loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig(path) error: %v", err)
	}
	if c.Physics.Friction != 0.8 {
		t.Errorf("Friction = %v, want 0.8 from file", c.Physics.Friction)
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("缺失的配置文件应返回错误")
	}
}

// TestNewAppLayout 测试 Layout 限制最小尺寸并转发给场景
func TestNewAppLayout(t *testing.T) {
	embedded.Init(nil)

	a, err := NewApp(Config{Verbose: true, NoSave: true, NoHover: true})
	if err != nil {
		t.Fatalf("NewApp error: %v", err)
	}

	if _, ok := a.GetSceneManager().GetCurrentScene().(*scenes.PlaygroundScene); !ok {
		t.Fatalf("当前场景类型 = %T, want *scenes.PlaygroundScene", a.GetSceneManager().GetCurrentScene())
	}

	w, h := a.Layout(200, 100)
	if w != config.MinWindowWidth || h != config.MinWindowHeight {
		t.Errorf("Layout(200, 100) = (%d, %d), want minimum size", w, h)
	}

	w, h = a.Layout(1280, 720)
	if w != 1280 || h != 720 {
		t.Errorf("Layout(1280, 720) = (%d, %d)", w, h)
	}

	if !a.GetSceneManager().SaveOnExit() {
		t.Error("NoSave 模式下 SaveOnExit 应返回 true")
	}
}
