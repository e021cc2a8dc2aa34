package game

import (
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
)

// RoundPhase 回合所处阶段
type RoundPhase int

const (
	PhaseIdle    RoundPhase = iota // 尚未开始
	PhasePlaying                   // 模拟进行中
	PhaseEnding                    // 已结束，等待延迟提交最高分
	PhaseOver                      // 最高分已提交，可以开始新回合
)

// String 返回阶段名称，用于日志
func (p RoundPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseEnding:
		return "ending"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Round 一个回合的全部可变状态
//
// 由 GameScene 独占持有，并显式传给各个系统；
// 气球和粒子作为实体保存在 Entities 中，按创建顺序查询。
type Round struct {
	Difficulty string                  // 当前难度标签
	Params     config.DifficultyPreset // 当前难度参数

	Score int // 本回合得分，只增不减
	Lives int // 剩余生命，不小于 0

	Width  float64 // 游戏区域宽度（回合开始时的视口尺寸）
	Height float64 // 游戏区域高度

	Phase RoundPhase

	Entities *ecs.EntityManager

	// 表现层状态
	ShakeX   float64 // 屏幕抖动偏移
	ShakeY   float64
	GameOver bool // 是否显示游戏结束横幅
}

// NewRound 创建空闲状态的回合
func NewRound() *Round {
	return &Round{
		Phase:    PhaseIdle,
		Entities: ecs.NewEntityManager(),
	}
}

// Reset 以指定难度重置回合
// 得分归零，生命取自难度参数，清空所有实体和表现层状态
func (r *Round) Reset(difficulty string, params config.DifficultyPreset, width, height float64) {
	r.Difficulty = difficulty
	r.Params = params
	r.Score = 0
	r.Lives = params.InitialLives
	r.Width = width
	r.Height = height
	r.Phase = PhasePlaying
	r.Entities.Clear()
	r.ShakeX = 0
	r.ShakeY = 0
	r.GameOver = false
}

// AddScore 增加得分，非正数被忽略
func (r *Round) AddScore(points int) {
	if points <= 0 {
		return
	}
	r.Score += points
}

// LoseLife 扣除一条生命，最低为 0
func (r *Round) LoseLife() {
	r.Lives--
	if r.Lives < 0 {
		r.Lives = 0
	}
}

// IsOutOfLives 返回生命是否耗尽
func (r *Round) IsOutOfLives() bool {
	return r.Lives <= 0
}

// IsPlaying 返回模拟是否在进行
func (r *Round) IsPlaying() bool {
	return r.Phase == PhasePlaying
}
