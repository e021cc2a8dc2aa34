package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/utils"
	"github.com/quasilyte/gdata/v2"
)

// BootstrapOptions 前端启动时共用的选项
type BootstrapOptions struct {
	Seed   int64 // 随机种子，0 表示按当前时间播种
	NoSave bool  // 不打开本地存档
}

// NewServices 构建前端共用的依赖：存档、设置、最高分、难度配置和随机源
//
// 音频、退出回调由调用方按前端能力补充。
// 调用前必须先调用 embedded.Init()，否则难度配置回退到内置值。
func NewServices(opts BootstrapOptions) *Services {
	var gdataManager *gdata.Manager
	if !opts.NoSave {
		gdataManager = OpenStorage()
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[Bootstrap] Warning: settings unavailable: %v", err)
	}

	difficulties, err := config.LoadDifficultyConfig(config.DifficultyConfigPath)
	if err != nil {
		log.Printf("[Bootstrap] Warning: %v (using built-in presets)", err)
		difficulties = config.DefaultDifficultyConfig()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[Bootstrap] Random seed: %d", seed)

	return &Services{
		SceneManager: game.NewSceneManager(),
		Difficulties: difficulties,
		HighScores:   game.NewHighScoreManager(gdataManager),
		Settings:     settingsManager,
		Rand:         rand.New(rand.NewSource(seed)),
	}
}

// OpenStorage 打开 gdata 存档，失败时返回 nil（降级为内存模式）
func OpenStorage() *gdata.Manager {
	if err := utils.PrepareSaveDir(); err != nil {
		log.Printf("[Bootstrap] Warning: %v", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: config.SaveAppName,
	})
	if err != nil {
		log.Printf("[Bootstrap] Warning: Failed to open save storage: %v (progress will not be saved)", err)
		return nil
	}
	return gdataManager
}
