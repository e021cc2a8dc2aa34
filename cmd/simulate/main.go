// simulate 无界面运行完整回合，用于复现和比较难度曲线
//
// 同一个 --seed 总是产生相同的回合：气球生成、点击和得分完全可复现。
//
//	go run ./cmd/simulate --difficulty hard --rounds 5 --seed 42
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/gonewx/balloonpop/data"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/embedded"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/render"
	"github.com/gonewx/balloonpop/pkg/scenes"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	difficulty = flag.String("difficulty", "", "只模拟该难度，默认模拟全部难度")
	rounds     = flag.Int("rounds", 3, "每个难度的回合数")
	seed       = flag.Int64("seed", 1, "随机种子")
	reaction   = flag.Float64("reaction", 350, "自动点击间隔（毫秒）")
	missRate   = flag.Float64("miss", 0.1, "点击失误概率 [0, 1]")
	maxSeconds = flag.Float64("max-seconds", 600, "单回合最长模拟时间（秒）")
)

// roundSummary 一个模拟回合的结果
type roundSummary struct {
	result   scenes.RoundResult
	ticks    int
	elapsed  float64 // 毫秒，含结束后的提交延迟
	finished bool
	timedOut bool
	banner   []string
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.InitData(data.FS)
	difficulties, err := config.LoadDifficultyConfig(config.DifficultyConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load difficulties: %v\n", err)
		os.Exit(1)
	}

	labels := difficulties.Labels()
	if *difficulty != "" {
		if _, err := difficulties.Lookup(*difficulty); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		labels = []string{*difficulty}
	}

	services := &scenes.Services{
		Difficulties: difficulties,
		HighScores:   game.NewHighScoreManager(nil),
		Rand:         rand.New(rand.NewSource(*seed)),
	}
	gs := scenes.NewGameScene(services)
	bot := newClicker(*reaction, *missRate, *seed+1)

	for _, label := range labels {
		for i := 1; i <= *rounds; i++ {
			summary, err := simulateRound(gs, bot, label, *maxSeconds*1000)
			if err != nil {
				fmt.Fprintf(os.Stderr, "round failed: %v\n", err)
				os.Exit(1)
			}
			printSummary(i, summary)
		}
	}

	fmt.Println()
	fmt.Println("High scores:")
	all := services.HighScores.All()
	for _, label := range labels {
		fmt.Printf("  %-8s %d\n", label, all[label])
	}
}

// simulateRound 以固定步长推进一个回合，直到最高分提交或超时
func simulateRound(gs *scenes.GameScene, bot *clicker, label string, limitMs float64) (roundSummary, error) {
	var summary roundSummary
	gs.OnRoundOver = func(result scenes.RoundResult) {
		summary.result = result
		summary.finished = true
	}
	if err := gs.Start(label, config.GameWindowWidth, config.GameWindowHeight); err != nil {
		return summary, err
	}

	rec := render.NewRecorder(config.GameWindowWidth, config.GameWindowHeight)
	const step = float64(config.TickInterval)

	for !summary.finished && summary.elapsed < limitMs {
		if x, y, ok := bot.advance(step, gs.Round().Entities); ok && gs.Round().IsPlaying() {
			gs.HandleClick(x, y)
		}
		gs.Update(step / 1000)
		summary.elapsed += step

		if gs.Round().GameOver && summary.banner == nil {
			gs.Draw(rec)
			summary.banner = rec.Texts()
		}
	}

	if !summary.finished {
		// 超时：主动结束并等待提交
		summary.timedOut = true
		gs.End()
		gs.Draw(rec)
		summary.banner = rec.Texts()
		gs.Update(float64(config.RoundEndDelay) / 1000)
	}
	summary.ticks = gs.Ticks()
	return summary, nil
}

func printSummary(index int, s roundSummary) {
	status := ""
	if s.result.NewHighScore {
		status = "  (new high score)"
	}
	if s.timedOut {
		status += "  (time limit)"
	}
	fmt.Printf("[%s #%d] score=%d ticks=%d duration=%.1fs%s\n",
		s.result.Difficulty, index, s.result.Score, s.ticks, float64(s.ticks*config.TickInterval)/1000, status)
	if len(s.banner) > 0 {
		fmt.Printf("    %s\n", strings.Join(s.banner, " | "))
	}
}
