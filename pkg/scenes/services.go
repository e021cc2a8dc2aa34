package scenes

import (
	"math/rand"
	"time"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/entities"
	"github.com/gonewx/balloonpop/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Services 场景之间共享的依赖
// 除 SceneManager、Difficulties、HighScores 外均可为 nil
type Services struct {
	SceneManager *game.SceneManager
	Difficulties *config.DifficultyConfig
	HighScores   *game.HighScoreManager
	Settings     *game.SettingsManager
	Audio        *game.AudioManager

	// Rand 模拟使用的随机源，为 nil 时按当前时间播种
	Rand entities.RandomSource

	// OnQuit 菜单中请求退出时调用
	OnQuit func()
}

// withDefaults 补齐缺省依赖
func (s *Services) withDefaults() *Services {
	if s.SceneManager == nil {
		s.SceneManager = game.NewSceneManager()
	}
	if s.Difficulties == nil {
		s.Difficulties = config.DefaultDifficultyConfig()
	}
	if s.HighScores == nil {
		s.HighScores = game.NewHighScoreManager(nil)
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}
