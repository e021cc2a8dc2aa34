package systems

import (
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/entities"
	"github.com/gonewx/balloonpop/pkg/game"
)

// BalloonSpawnSystem 每个 tick 进行一次伯努利试验，决定是否生成气球
type BalloonSpawnSystem struct {
	round *game.Round
	rng   entities.RandomSource
}

// NewBalloonSpawnSystem 创建气球生成系统
//
// 参数：
//   - round: 当前回合状态（读取难度频率和区域尺寸）
//   - rng: 随机数来源
func NewBalloonSpawnSystem(round *game.Round, rng entities.RandomSource) *BalloonSpawnSystem {
	return &BalloonSpawnSystem{
		round: round,
		rng:   rng,
	}
}

// Tick 执行一次生成试验
// 随机值小于 BalloonFrequency 时在区域底部外侧生成一个气球
//
// 返回：
//   - ecs.EntityID: 新气球ID
//   - bool: 本次是否生成
func (s *BalloonSpawnSystem) Tick() (ecs.EntityID, bool) {
	if s.rng.Float64() >= s.round.Params.BalloonFrequency {
		return 0, false
	}
	id := entities.SpawnRandomBalloon(s.round.Entities, s.rng, s.round.Width, s.round.Height)
	return id, true
}
