package terminal

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/scenes"
)

// Options 终端游戏循环选项
type Options struct {
	// Services 共享依赖，SceneManager 为 nil 时自动创建
	Services *scenes.Services
	// TermSize 读取终端尺寸，为 nil 时使用 DefaultTermSizeFunc
	TermSize TermSizeFunc
	// Difficulty 不为空时跳过菜单直接开始
	Difficulty string
}

// Run 运行终端游戏，直到玩家退出、输入结束或 ctx 取消
//
// 所有场景状态只在调用 Run 的 goroutine 上修改，输入 goroutine 只负责投递字节。
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	services := opts.Services
	if services == nil {
		services = &scenes.Services{}
	}
	sizeFunc := opts.TermSize
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}

	running := true
	services.OnQuit = func() { running = false }

	menu := scenes.NewMenuScene(services)
	sceneManager := services.SceneManager
	sceneManager.Resize(config.TerminalLogicalWidth, config.TerminalLogicalHeight)
	sceneManager.SwitchTo(menu)
	if opts.Difficulty != "" {
		if err := menu.StartRound(opts.Difficulty); err != nil {
			return fmt.Errorf("failed to start %s: %w", opts.Difficulty, err)
		}
	}

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return fmt.Errorf("failed to get terminal size: %w", err)
	}
	canvas := NewCanvas(termWidth, termHeight, config.TerminalLogicalWidth, config.TerminalLogicalHeight)

	if err := enterScreen(w); err != nil {
		return fmt.Errorf("failed to prepare terminal: %w", err)
	}
	defer leaveScreen(w)

	stream := StartStream(r)
	defer stream.Close()

	var parser Parser
	ticker := time.NewTicker(config.TerminalFrameTime)
	defer ticker.Stop()

	lastTime := time.Now()
	for running {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		now := time.Now()
		deltaTime := now.Sub(lastTime).Seconds()
		lastTime = now

		// ===== INPUT =====
		data, open := stream.Drain()
		events := parser.Feed(data)
		if len(data) == 0 {
			events = append(events, parser.Flush()...)
		}
		for _, ev := range events {
			switch ev.Kind {
			case EventClick:
				x, y := canvas.TerminalToLogical(ev.Col, ev.Row)
				sceneManager.HandleClick(x, y)
			case EventKey:
				if ev.Key == KeyInterrupt {
					running = false
					continue
				}
				sceneManager.HandleKey(ev.Key)
			}
		}
		if !open {
			log.Printf("[Terminal] Input closed")
			return nil
		}
		if !running {
			break
		}

		// ===== UPDATE =====
		if width, height, err := sizeFunc(); err == nil {
			canvas.Resize(width, height)
		}
		sceneManager.Update(deltaTime)

		// ===== DRAW =====
		sceneManager.Draw(canvas)
		if err := canvas.Render(w); err != nil {
			return fmt.Errorf("failed to render frame: %w", err)
		}
	}

	return nil
}
