package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/render"
	"github.com/gonewx/balloonpop/pkg/systems"
)

// RoundResult 一个回合结束后的结果
type RoundResult struct {
	Difficulty   string
	Score        int
	NewHighScore bool
}

// GameScene 对局场景，负责回合的生命周期
//
// 回合状态只由本场景持有并显式传给各系统。所有定时行为
// （20ms 的模拟步进、屏幕抖动、2 秒后的最高分提交）都挂在场景自己的
// Scheduler 上，由 Update 按真实经过时间推进。
type GameScene struct {
	services  *Services
	round     *game.Round
	scheduler *game.Scheduler

	spawnSystem    *systems.BalloonSpawnSystem
	movementSystem *systems.BalloonMovementSystem
	particleSystem *systems.ParticleSystem
	hitTestSystem  *systems.HitTestSystem
	shakeSystem    *systems.ScreenShakeSystem
	renderSystem   *systems.RenderSystem

	tickHandle   *game.TaskHandle
	commitHandle *game.TaskHandle
	pending      *RoundResult // 已结束但尚未提交的结果

	viewWidth  float64
	viewHeight float64
	ticks      int

	// OnRoundOver 最高分提交后调用
	OnRoundOver func(result RoundResult)
}

// NewGameScene 创建对局场景
//
// 参数：
//   - services: 共享依赖，缺省项会被补齐
//
// 返回：
//   - *GameScene: 处于空闲状态的场景，调用 Start 开始回合
func NewGameScene(services *Services) *GameScene {
	services.withDefaults()

	round := game.NewRound()
	scheduler := game.NewScheduler()

	return &GameScene{
		services:       services,
		round:          round,
		scheduler:      scheduler,
		spawnSystem:    systems.NewBalloonSpawnSystem(round, services.Rand),
		movementSystem: systems.NewBalloonMovementSystem(round),
		particleSystem: systems.NewParticleSystem(round),
		hitTestSystem:  systems.NewHitTestSystem(round, services.Rand, services.Audio),
		shakeSystem:    systems.NewScreenShakeSystem(round, scheduler, services.Rand),
		renderSystem:   systems.NewRenderSystem(round),
		viewWidth:      config.GameWindowWidth,
		viewHeight:     config.GameWindowHeight,
	}
}

// Start 以指定难度开始新回合
//
// 未知难度返回包装了 config.ErrUnknownDifficulty 的错误，且不改变任何状态。
// 否则重置得分、生命、实体和表现层状态，并开始每 TickInterval 毫秒的模拟步进。
// 上一回合若仍在等待提交最高分，会先立即提交。
//
// 参数：
//   - difficulty: 难度标签
//   - width, height: 游戏区域尺寸
func (s *GameScene) Start(difficulty string, width, height float64) error {
	preset, err := s.services.Difficulties.Lookup(difficulty)
	if err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("failed to start round: invalid play area %.0fx%.0f", width, height)
	}

	s.tickHandle.Cancel()
	s.flushPendingCommit()
	s.shakeSystem.Stop()

	s.round.Reset(difficulty, preset, width, height)
	s.ticks = 0
	s.tickHandle = s.scheduler.Every(config.TickInterval, s.step)

	log.Printf("[GameScene] Round started: difficulty=%s lives=%d speed=%.1f frequency=%.3f area=%.0fx%.0f",
		difficulty, preset.InitialLives, preset.BalloonSpeed, preset.BalloonFrequency, width, height)
	return nil
}

// step 一次模拟步进：气球、粒子、生成、结束检查
func (s *GameScene) step() {
	s.ticks++
	s.movementSystem.Tick()
	s.particleSystem.Tick()
	s.spawnSystem.Tick()

	if s.round.IsOutOfLives() {
		s.End()
	}
}

// End 结束当前回合，每个回合只生效一次
//
// 停止模拟步进，冻结状态（之后的点击被忽略），触发屏幕抖动、游戏结束横幅和音效，
// 并在 RoundEndDelay 毫秒后提交最终得分。
func (s *GameScene) End() {
	if s.round.Phase != game.PhasePlaying {
		return
	}

	s.tickHandle.Cancel()
	s.round.Phase = game.PhaseEnding
	s.round.GameOver = true

	s.shakeSystem.Start()
	s.services.Audio.PlaySound(game.SoundGameOver)

	result := RoundResult{
		Difficulty: s.round.Difficulty,
		Score:      s.round.Score,
	}
	s.pending = &result
	s.commitHandle = s.scheduler.After(config.RoundEndDelay, s.finish)

	log.Printf("[GameScene] Round over: difficulty=%s score=%d ticks=%d", result.Difficulty, result.Score, s.ticks)
}

// finish 提交最高分并通知外部
func (s *GameScene) finish() {
	result := s.commitPending()
	if result == nil {
		return
	}
	s.round.Phase = game.PhaseOver

	if s.OnRoundOver != nil {
		s.OnRoundOver(*result)
	}
}

// flushPendingCommit 立即提交等待中的结果，不触发 OnRoundOver
func (s *GameScene) flushPendingCommit() {
	s.commitHandle.Cancel()
	s.commitPending()
}

func (s *GameScene) commitPending() *RoundResult {
	if s.pending == nil {
		return nil
	}
	result := s.pending
	s.pending = nil
	result.NewHighScore = s.services.HighScores.Commit(result.Difficulty, result.Score)
	return result
}

// HandleClick 在回合进行中尝试戳破气球，其余阶段忽略
func (s *GameScene) HandleClick(x, y float64) {
	if !s.round.IsPlaying() {
		return
	}
	s.hitTestSystem.Pop(x, y)
}

// HandleKey Esc 或 q 放弃当前回合
func (s *GameScene) HandleKey(key rune) {
	switch key {
	case config.KeyEscape, 'q':
		if s.round.IsPlaying() {
			log.Printf("[GameScene] Round abandoned")
			s.End()
		}
	}
}

// Update 按真实经过时间推进调度器
func (s *GameScene) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	s.scheduler.Advance(deltaTime * 1000)
}

// Draw 绘制当前回合
func (s *GameScene) Draw(r render.Renderer) {
	s.renderSystem.Draw(r)
}

// Resize 记录视口尺寸，下一回合开始时作为游戏区域
func (s *GameScene) Resize(width, height float64) {
	s.viewWidth = width
	s.viewHeight = height
}

// ViewSize 返回视口尺寸
func (s *GameScene) ViewSize() (float64, float64) {
	return s.viewWidth, s.viewHeight
}

// Round 返回当前回合状态（只读使用）
func (s *GameScene) Round() *game.Round {
	return s.round
}

// Scheduler 返回场景的调度器
func (s *GameScene) Scheduler() *game.Scheduler {
	return s.scheduler
}

// Ticks 返回本回合已执行的模拟步数
func (s *GameScene) Ticks() int {
	return s.ticks
}
