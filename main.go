package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/balloonpop/data"
	"github.com/gonewx/balloonpop/pkg/app"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	difficulty = flag.String("difficulty", "", "跳过菜单，直接以该难度开始 (easy/medium/hard)")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示按时间播种")
	noSave     = flag.Bool("no-save", false, "不读写本地存档")
)

func main() {
	flag.Parse()

	embedded.InitData(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Difficulty: *difficulty,
		Seed:       *seed,
		NoSave:     *noSave,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Fullscreen())

	if err := ebiten.RunGame(gameApp); err != nil && !app.IsTermination(err) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
