// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Difficulty 指定后跳过菜单直接开始该难度的回合
	Difficulty string
	// Seed 随机种子，0 表示按当前时间播种
	Seed int64
	// NoSave 不读写本地存档（设置和最高分只保存在内存中）
	NoSave bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	menu            *scenes.MenuScene
	renderer        *EbitenRenderer
	verbose         bool
	quit            bool
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	services := scenes.NewServices(scenes.BootstrapOptions{
		Seed:   cfg.Seed,
		NoSave: cfg.NoSave,
	})
	settingsManager := services.Settings
	services.Audio = game.NewAudioManager(audio.NewContext(config.AudioSampleRate), settingsManager)
	services.Audio.PreloadSounds()
	log.Printf("[App] AudioManager initialized")

	a := &App{
		sceneManager:    services.SceneManager,
		settingsManager: settingsManager,
		renderer:        NewEbitenRenderer(),
		verbose:         cfg.Verbose,
	}
	services.OnQuit = func() { a.quit = true }

	a.menu = scenes.NewMenuScene(services)
	a.sceneManager.SwitchTo(a.menu)

	if cfg.Difficulty != "" {
		if err := a.menu.StartRound(cfg.Difficulty); err != nil {
			return nil, fmt.Errorf("failed to start %s: %w", cfg.Difficulty, err)
		}
		log.Printf("[App] Skipping menu, starting %s", cfg.Difficulty)
	}

	return a, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.quit {
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: Failed to save settings: %v", err)
		}
	}

	if clicked, x, y := IsJustTouchedOrClicked(); clicked {
		a.sceneManager.HandleClick(float64(x), float64(y))
	}
	for _, key := range JustPressedKeys() {
		a.sceneManager.HandleKey(key)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)

	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.SetTarget(screen)
	a.sceneManager.Draw(a.renderer)
}

// Layout 游戏区域等于窗口的实际尺寸
// 尺寸变化会通知当前场景，新的回合按新尺寸开始
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Fullscreen 返回设置中保存的全屏选项
func (a *App) Fullscreen() bool {
	return a.settingsManager.GetSettings().Fullscreen
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// IsTermination 判断 RunGame 返回的错误是否为正常退出
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
