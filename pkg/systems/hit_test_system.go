package systems

import (
	"log"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/entities"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/utils"
)

// HitTestSystem 处理点击命中气球
type HitTestSystem struct {
	round        *game.Round
	rng          entities.RandomSource
	audioManager *game.AudioManager
}

// NewHitTestSystem 创建命中检测系统
//
// 参数：
//   - round: 当前回合状态
//   - rng: 爆破粒子使用的随机数来源
//   - am: 音频管理器，可为 nil
func NewHitTestSystem(round *game.Round, rng entities.RandomSource, am *game.AudioManager) *HitTestSystem {
	return &HitTestSystem{
		round:        round,
		rng:          rng,
		audioManager: am,
	}
}

// Pop 在 (x, y) 处尝试戳破气球
//
// 按创建顺序查找第一个满足 距离 <= 半径 的气球（边界算命中，不比较远近或大小）。
// 命中时立即移除该气球，在其位置生成同色粒子，得分加一，生命不变。
// 未命中时不产生任何效果。
//
// 返回：
//   - ecs.EntityID: 被戳破的气球ID
//   - bool: 是否命中
func (s *HitTestSystem) Pop(x, y float64) (ecs.EntityID, bool) {
	em := s.round.Entities

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.BalloonComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		balloon, _ := ecs.GetComponent[*components.BalloonComponent](em, id)

		if !utils.PointInCircle(x, y, pos.X, pos.Y, balloon.Radius) {
			continue
		}

		px, py, c := pos.X, pos.Y, balloon.Color
		em.DestroyEntity(id)
		em.RemoveMarkedEntities()

		entities.CreatePopBurst(em, s.rng, px, py, c)
		s.round.AddScore(1)
		s.audioManager.PlaySound(game.SoundPop)

		log.Printf("[HitTestSystem] Popped balloon %d at (%.1f, %.1f), score=%d", id, px, py, s.round.Score)
		return id, true
	}

	return 0, false
}
