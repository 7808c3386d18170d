package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/fling/pkg/easing"
	"github.com/decker502/fling/pkg/fling"
)

// FlingConfig 演示场景的完整配置
//
// 配置文件位置: data/fling.yaml（默认配置已嵌入二进制）
// 未出现在文件中的字段保留 DefaultFlingConfig 的值。
type FlingConfig struct {
	Physics      PhysicsConfig      `yaml:"physics"`
	Drag         DragConfig         `yaml:"drag"`
	Proximity    ProximityConfig    `yaml:"proximity"`
	Nudge        NudgeConfig        `yaml:"nudge"`
	Capabilities CapabilitiesConfig `yaml:"capabilities"`
	Layout       LayoutConfig       `yaml:"layout"`
}

// PhysicsConfig 惯性模拟参数
type PhysicsConfig struct {
	MinStartSpeed    float64 `yaml:"minStartSpeed"`    // 启动阈值（像素/秒）
	StopSpeed        float64 `yaml:"stopSpeed"`        // 停止速度（像素/秒）
	Friction         float64 `yaml:"friction"`         // 每 tick 速度衰减
	Bounce           float64 `yaml:"bounce"`           // 反弹保留比例
	TickRate         float64 `yaml:"tickRate"`         // 每秒 tick 数
	MaxTicks         int     `yaml:"maxTicks"`         // 0 表示不限制
	SettleDurationMs int     `yaml:"settleDurationMs"` // 落位动画时长
	SettleEase       string  `yaml:"settleEase"`       // 落位动画缓动名称
}

// DragConfig 拖拽参数
type DragConfig struct {
	SampleWindowMs int     `yaml:"sampleWindowMs"`
	EdgeResistance float64 `yaml:"edgeResistance"`
}

// ProximityConfig 标题字重参数
type ProximityConfig struct {
	MaxDist         float64 `yaml:"maxDist"`
	MinWeight       float64 `yaml:"minWeight"`
	MaxWeight       float64 `yaml:"maxWeight"`
	MoveDurationMs  int     `yaml:"moveDurationMs"`
	ResetDurationMs int     `yaml:"resetDurationMs"`
}

// NudgeConfig 方块推动参数
type NudgeConfig struct {
	Mode          string  `yaml:"mode"` // inertia 或 push
	VelClamp      float64 `yaml:"velClamp"`
	VelMult       float64 `yaml:"velMult"`
	Resistance    float64 `yaml:"resistance"`
	MaxDurationMs int     `yaml:"maxDurationMs"`
	PushMult      float64 `yaml:"pushMult"`
	PushClamp     float64 `yaml:"pushClamp"`
}

// CapabilitiesConfig 设备能力，启动时确定一次
type CapabilitiesConfig struct {
	Hover       bool `yaml:"hover"`       // 是否支持悬停
	FinePointer bool `yaml:"finePointer"` // 是否为精确指针（鼠标）
	MinWidth    int  `yaml:"minWidth"`    // 启用悬停效果的最小窗口宽度
}

// HoverEffects 根据能力和启动时窗口宽度决定是否启用悬停效果
func (c CapabilitiesConfig) HoverEffects(windowWidth int) bool {
	return c.Hover && c.FinePointer && windowWidth >= c.MinWidth
}

// DefaultFlingConfig 返回默认配置
func DefaultFlingConfig() *FlingConfig {
	return &FlingConfig{
		Physics: PhysicsConfig{
			MinStartSpeed:    60,
			StopSpeed:        20,
			Friction:         0.94,
			Bounce:           0.6,
			TickRate:         60,
			SettleDurationMs: 150,
			SettleEase:       "power2.out",
		},
		Drag: DragConfig{
			SampleWindowMs: 120,
			EdgeResistance: 0.65,
		},
		Proximity: ProximityConfig{
			MaxDist:         200,
			MinWeight:       400,
			MaxWeight:       800,
			MoveDurationMs:  200,
			ResetDurationMs: 500,
		},
		Nudge: NudgeConfig{
			Mode:          string(fling.NudgeInertia),
			VelClamp:      25,
			VelMult:       12,
			Resistance:    1500,
			MaxDurationMs: 450,
			PushMult:      4,
			PushClamp:     30,
		},
		Capabilities: CapabilitiesConfig{
			Hover:       true,
			FinePointer: true,
			MinWidth:    768,
		},
		Layout: DefaultLayoutConfig(),
	}
}

// LoadFlingConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/fling.yaml"）
//
// 返回:
//   - *FlingConfig: 合并默认值并通过验证的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadFlingConfig(path string) (*FlingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fling config: %w", err)
	}
	return ParseFlingConfig(data)
}

// ParseFlingConfig 解析 YAML 配置（缺省字段使用默认值）
func ParseFlingConfig(data []byte) (*FlingConfig, error) {
	config := DefaultFlingConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse fling config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fling config: %w", err)
	}
	return config, nil
}

// Validate 验证配置有效性
func (c *FlingConfig) Validate() error {
	p := c.Physics
	if p.MinStartSpeed < 0 || p.StopSpeed < 0 {
		return fmt.Errorf("speeds must be non-negative: minStartSpeed=%.1f stopSpeed=%.1f", p.MinStartSpeed, p.StopSpeed)
	}
	if p.Friction <= 0 || p.Friction > 1 {
		return fmt.Errorf("friction must be in (0, 1], got %.3f", p.Friction)
	}
	if p.Bounce < 0 || p.Bounce > 1 {
		return fmt.Errorf("bounce must be in [0, 1], got %.3f", p.Bounce)
	}
	if p.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %.1f", p.TickRate)
	}
	if p.MaxTicks < 0 {
		return fmt.Errorf("maxTicks must be non-negative, got %d", p.MaxTicks)
	}
	if p.SettleDurationMs < 0 {
		return fmt.Errorf("settleDurationMs must be non-negative, got %d", p.SettleDurationMs)
	}
	if _, ok := easing.ByName(p.SettleEase); !ok {
		return fmt.Errorf("unknown settleEase %q", p.SettleEase)
	}

	if c.Drag.SampleWindowMs <= 0 {
		return fmt.Errorf("sampleWindowMs must be positive, got %d", c.Drag.SampleWindowMs)
	}
	if c.Drag.EdgeResistance < 0 || c.Drag.EdgeResistance > 1 {
		return fmt.Errorf("edgeResistance must be in [0, 1], got %.3f", c.Drag.EdgeResistance)
	}

	w := c.Proximity
	if w.MaxDist <= 0 {
		return fmt.Errorf("proximity maxDist must be positive, got %.1f", w.MaxDist)
	}
	if w.MinWeight > w.MaxWeight {
		return fmt.Errorf("proximity weight range invalid: min(%.1f) > max(%.1f)", w.MinWeight, w.MaxWeight)
	}

	n := c.Nudge
	switch fling.NudgeMode(n.Mode) {
	case fling.NudgeInertia, fling.NudgePush:
	default:
		return fmt.Errorf("unknown nudge mode %q", n.Mode)
	}
	if n.VelClamp < 0 || n.Resistance < 0 || n.MaxDurationMs < 0 {
		return fmt.Errorf("nudge inertia values must be non-negative: velClamp=%.1f resistance=%.1f maxDurationMs=%d",
			n.VelClamp, n.Resistance, n.MaxDurationMs)
	}
	if n.PushClamp < 0 {
		return fmt.Errorf("nudge pushClamp must be non-negative, got %.1f", n.PushClamp)
	}

	return c.Layout.Validate()
}

// Params 转换为模拟器参数
func (c *FlingConfig) Params() fling.Params {
	ease, ok := easing.ByName(c.Physics.SettleEase)
	if !ok {
		ease = easing.OutCubic
	}
	return fling.Params{
		MinStartSpeed:  c.Physics.MinStartSpeed,
		StopSpeed:      c.Physics.StopSpeed,
		Friction:       c.Physics.Friction,
		Bounce:         c.Physics.Bounce,
		Step:           1 / c.Physics.TickRate,
		SettleDuration: time.Duration(c.Physics.SettleDurationMs) * time.Millisecond,
		SettleEase:     ease,
		MaxTicks:       c.Physics.MaxTicks,
	}
}

// SampleWindow 采样窗口长度
func (c *FlingConfig) SampleWindow() time.Duration {
	return time.Duration(c.Drag.SampleWindowMs) * time.Millisecond
}

// WeightMapper 字重映射
func (c *FlingConfig) WeightMapper() fling.WeightMapper {
	return fling.WeightMapper{
		MaxDist:   c.Proximity.MaxDist,
		MinWeight: c.Proximity.MinWeight,
		MaxWeight: c.Proximity.MaxWeight,
	}
}

// NudgeParams 推动参数
func (c *FlingConfig) NudgeParams() fling.NudgeParams {
	n := c.Nudge
	return fling.NudgeParams{
		Mode:        fling.NudgeMode(n.Mode),
		VelClamp:    n.VelClamp,
		VelMult:     n.VelMult,
		Resistance:  n.Resistance,
		MaxDuration: time.Duration(n.MaxDurationMs) * time.Millisecond,
		PushMult:    n.PushMult,
		PushClamp:   n.PushClamp,
	}
}
