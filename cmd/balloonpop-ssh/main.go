// balloonpop-ssh 通过 SSH 提供游戏
//
// 每个会话运行独立的对局，所有会话共享同一张最高分表。
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/gonewx/balloonpop/data"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/embedded"
	"github.com/gonewx/balloonpop/pkg/scenes"
	"github.com/gonewx/balloonpop/pkg/terminal"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/balloonpop_host_key"
)

var noSave = flag.Bool("no-save", false, "最高分只保存在内存中")

// shared 所有会话共用的依赖
var shared *scenes.Services

// sessionSeq 为每个会话生成不同的随机种子
var sessionSeq atomic.Int64

func main() {
	flag.Parse()

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	log.Printf("SSH config: host=%s port=%s hostKeyPath=%s", host, port, hostKeyPath)

	embedded.InitData(data.FS)
	shared = scenes.NewServices(scenes.BootstrapOptions{NoSave: *noSave})

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware,
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// 点击延迟直接影响手感
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting SSH server on %s", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

// newSessionServices 为会话创建独立的场景和随机源，共享难度配置和最高分表
func newSessionServices() *scenes.Services {
	seed := time.Now().UnixNano() + sessionSeq.Add(1)
	return &scenes.Services{
		Difficulties: shared.Difficulties,
		HighScores:   shared.HighScores,
		Rand:         rand.New(rand.NewSource(seed)),
	}
}

// gameMiddleware 在会话的 PTY 上运行终端游戏
func gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		log.Printf("New game session: user=%s, terminal=%s, size=%dx%d",
			sess.User(), pty.Term, pty.Window.Width, pty.Window.Height)

		sizeTracker := terminal.NewSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.Update(win.Width, win.Height)
			}
		}()

		err := terminal.Run(sess.Context(), sess, sess, terminal.Options{
			Services: newSessionServices(),
			TermSize: sizeTracker.Size,
		})
		if err != nil {
			log.Printf("Game error for %s: %v", sess.User(), err)
		}

		log.Printf("Session ended: user=%s", sess.User())
		next(sess)
	}
}
