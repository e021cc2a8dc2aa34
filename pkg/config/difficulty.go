package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gonewx/balloonpop/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 内置难度标签
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DifficultyConfigPath 难度配置文件在嵌入资源中的路径
const DifficultyConfigPath = "data/difficulty.yaml"

// ErrUnknownDifficulty 在请求不存在的难度标签时返回
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// DifficultyPreset 单个难度的模拟参数
type DifficultyPreset struct {
	InitialLives     int     `yaml:"initialLives"`     // 初始生命数
	BalloonSpeed     float64 `yaml:"balloonSpeed"`     // 每个 tick 上升距离
	BalloonFrequency float64 `yaml:"balloonFrequency"` // 每个 tick 生成气球的概率
}

// DifficultyConfig 难度配置文件结构
type DifficultyConfig struct {
	Presets map[string]DifficultyPreset `yaml:"presets"` // 难度标签到参数的映射
}

// DefaultDifficultyConfig 返回内置的三档难度
// 配置文件无法读取时使用
func DefaultDifficultyConfig() *DifficultyConfig {
	return &DifficultyConfig{
		Presets: map[string]DifficultyPreset{
			DifficultyEasy:   {InitialLives: 5, BalloonSpeed: 2, BalloonFrequency: 0.01},
			DifficultyMedium: {InitialLives: 3, BalloonSpeed: 3, BalloonFrequency: 0.02},
			DifficultyHard:   {InitialLives: 2, BalloonSpeed: 4, BalloonFrequency: 0.03},
		},
	}
}

// LoadDifficultyConfig 从嵌入资源加载难度配置
// 参数：
//
//	filepath - 配置文件路径（以 "data/" 开头）
//
// 返回：
//
//	*DifficultyConfig - 解析并校验后的配置
//	error - 文件读取、解析或校验失败
func LoadDifficultyConfig(filepath string) (*DifficultyConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read difficulty file %s: %w", filepath, err)
	}

	cfg, err := ParseDifficultyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseDifficultyConfig 解析并校验 YAML 格式的难度配置
func ParseDifficultyConfig(data []byte) (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty YAML: %w", err)
	}

	if err := validateDifficultyConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid difficulty config: %w", err)
	}

	return &cfg, nil
}

// validateDifficultyConfig 验证难度配置的合法性
func validateDifficultyConfig(cfg *DifficultyConfig) error {
	if len(cfg.Presets) == 0 {
		return fmt.Errorf("at least one preset is required")
	}

	for label, preset := range cfg.Presets {
		if label == "" {
			return fmt.Errorf("preset label cannot be empty")
		}
		if preset.InitialLives < 1 {
			return fmt.Errorf("preset %s: initialLives must be at least 1, got %d", label, preset.InitialLives)
		}
		if preset.BalloonSpeed <= 0 {
			return fmt.Errorf("preset %s: balloonSpeed must be positive, got %v", label, preset.BalloonSpeed)
		}
		if preset.BalloonFrequency < 0 || preset.BalloonFrequency > 1 {
			return fmt.Errorf("preset %s: balloonFrequency must be in [0, 1], got %v", label, preset.BalloonFrequency)
		}
	}

	return nil
}

// Lookup 获取指定难度的参数
// 标签不存在时返回包装了 ErrUnknownDifficulty 的错误
func (c *DifficultyConfig) Lookup(label string) (DifficultyPreset, error) {
	preset, ok := c.Presets[label]
	if !ok {
		return DifficultyPreset{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, label)
	}
	return preset, nil
}

// Labels 返回所有难度标签
// 内置的 easy/medium/hard 按难度排在前面，其余按字母序
func (c *DifficultyConfig) Labels() []string {
	builtin := []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
	labels := make([]string, 0, len(c.Presets))
	for _, label := range builtin {
		if _, ok := c.Presets[label]; ok {
			labels = append(labels, label)
		}
	}

	extra := make([]string, 0)
	for label := range c.Presets {
		if label != DifficultyEasy && label != DifficultyMedium && label != DifficultyHard {
			extra = append(extra, label)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}
