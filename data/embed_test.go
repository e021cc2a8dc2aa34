package data

import (
	"reflect"
	"testing"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/embedded"
)

// TestEmbeddedDifficultyMatchesDefaults 嵌入的难度文件与内置预设保持一致
func TestEmbeddedDifficultyMatchesDefaults(t *testing.T) {
	embedded.Reset()
	defer embedded.Reset()
	embedded.InitData(FS)

	cfg, err := config.LoadDifficultyConfig(config.DifficultyConfigPath)
	if err != nil {
		t.Fatalf("LoadDifficultyConfig() error = %v", err)
	}
	if want := config.DefaultDifficultyConfig(); !reflect.DeepEqual(cfg.Presets, want.Presets) {
		t.Errorf("presets = %+v, want %+v", cfg.Presets, want.Presets)
	}
}
