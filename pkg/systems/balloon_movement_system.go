package systems

import (
	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/game"
)

// BalloonMovementSystem 让气球上升并处理逃逸
type BalloonMovementSystem struct {
	round *game.Round
}

// NewBalloonMovementSystem 创建气球移动系统
func NewBalloonMovementSystem(round *game.Round) *BalloonMovementSystem {
	return &BalloonMovementSystem{round: round}
}

// Tick 按创建顺序移动所有气球
//
// 每个气球 y 减少 BalloonSpeed；完全越过顶部（y + radius < 0）的气球
// 被标记删除并扣除一条生命。遍历结束后统一清理，保证不会跳过相邻气球。
//
// 返回：本次逃逸的气球数量
func (s *BalloonMovementSystem) Tick() int {
	em := s.round.Entities
	speed := s.round.Params.BalloonSpeed
	escaped := 0

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.BalloonComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		balloon, _ := ecs.GetComponent[*components.BalloonComponent](em, id)

		pos.Y -= speed

		if pos.Y+balloon.Radius < 0 {
			em.DestroyEntity(id)
			s.round.LoseLife()
			escaped++
		}
	}

	em.RemoveMarkedEntities()
	return escaped
}
