// balloonpop-term 在当前终端中运行游戏
//
// 需要支持 24 位颜色和 SGR 鼠标报告的终端。按 q 或 Esc 退出菜单，Ctrl+C 随时退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gonewx/balloonpop/data"
	"github.com/gonewx/balloonpop/pkg/embedded"
	"github.com/gonewx/balloonpop/pkg/scenes"
	"github.com/gonewx/balloonpop/pkg/terminal"
)

var (
	difficulty = flag.String("difficulty", "", "跳过菜单，直接以该难度开始 (easy/medium/hard)")
	seed       = flag.Int64("seed", 0, "随机种子，0 表示按时间播种")
	noSave     = flag.Bool("no-save", false, "不读写本地存档")
	logFile    = flag.String("log", "", "日志文件路径（终端被画面占用，默认不输出日志）")
)

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if !terminal.IsTerminal(os.Stdin) {
		fmt.Fprintln(os.Stderr, "balloonpop-term must be run in an interactive terminal")
		os.Exit(1)
	}

	embedded.InitData(data.FS)

	services := scenes.NewServices(scenes.BootstrapOptions{
		Seed:   *seed,
		NoSave: *noSave,
	})

	restore, err := terminal.MakeRaw(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err = terminal.Run(ctx, os.Stdin, os.Stdout, terminal.Options{
		Services:   services,
		Difficulty: *difficulty,
	})
	stop()
	restore()

	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
