package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlaygroundSettings 演示场景的持久化状态
// 只记录相框最后一次静止的位置（相对于容器左上角）
type PlaygroundSettings struct {
	HasFramePosition bool    `yaml:"hasFramePosition"`
	FrameX           float64 `yaml:"frameX"`
	FrameY           float64 `yaml:"frameY"`
	Settles          int     `yaml:"settles"` // 惯性滑动完成次数
}

// DefaultSettings 返回默认设置（相框位置由布局决定）
func DefaultSettings() *PlaygroundSettings {
	return &PlaygroundSettings{}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式）
	settings     *PlaygroundSettings
}

// 存储路径常量
const (
	settingsObject   = "playground"
	settingsProperty = "frame"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded PlaygroundSettings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	log.Printf("[SettingsManager] Settings loaded (frame=%v at %.1f,%.1f)", loaded.HasFramePosition, loaded.FrameX, loaded.FrameY)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *PlaygroundSettings {
	return sm.settings
}

// FramePosition 返回保存的相框位置
// 没有保存过位置时 ok 为 false
func (sm *SettingsManager) FramePosition() (x, y float64, ok bool) {
	s := sm.settings
	return s.FrameX, s.FrameY, s.HasFramePosition
}

// RecordSettle 记录一次惯性滑动结束后的静止位置
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) RecordSettle(x, y float64) {
	sm.settings.HasFramePosition = true
	sm.settings.FrameX = x
	sm.settings.FrameY = y
	sm.settings.Settles++
}

// ClearFramePosition 清除保存的位置，下次启动使用布局默认位置
func (sm *SettingsManager) ClearFramePosition() {
	sm.settings.HasFramePosition = false
	sm.settings.FrameX = 0
	sm.settings.FrameY = 0
}
