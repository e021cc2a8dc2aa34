package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/balloonpop/pkg/config"
)

// 用法：go run ./tools [difficulty.yaml 路径]
func main() {
	path := "data/difficulty.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 先做语法检查，再做字段校验，两类错误分开报告
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确\n")

	for key := range raw {
		if key != "presets" {
			fmt.Printf("⚠️  未知的顶层字段: %s\n", key)
		}
	}

	cfg, err := config.ParseDifficultyConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 难度数量: %d\n", len(cfg.Presets))
	for _, label := range cfg.Labels() {
		p := cfg.Presets[label]
		fmt.Printf("   %-8s lives=%d speed=%.1f frequency=%.3f\n", label, p.InitialLives, p.BalloonSpeed, p.BalloonFrequency)
	}

	for _, label := range []string{config.DifficultyEasy, config.DifficultyMedium, config.DifficultyHard} {
		if _, err := cfg.Lookup(label); err != nil {
			fmt.Printf("⚠️  缺少内置难度 %s\n", label)
		}
	}
}
