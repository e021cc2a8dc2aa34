package systems

import (
	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/game"
)

// ParticleSystem 推进爆破粒子
type ParticleSystem struct {
	round *game.Round
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(round *game.Round) *ParticleSystem {
	return &ParticleSystem{round: round}
}

// Tick 按创建顺序推进所有粒子
// 位置加上速度，半径大于 0 时减少 ParticleShrinkStep，半径不大于 0 的粒子被移除
//
// 返回：本次移除的粒子数量
func (s *ParticleSystem) Tick() int {
	em := s.round.Entities
	removed := 0

	for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.ParticleComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		particle, _ := ecs.GetComponent[*components.ParticleComponent](em, id)

		pos.X += particle.VelocityX
		pos.Y += particle.VelocityY

		if particle.Radius > 0 {
			particle.Radius -= config.ParticleShrinkStep
		}
		if particle.Radius <= 0 {
			em.DestroyEntity(id)
			removed++
		}
	}

	em.RemoveMarkedEntities()
	return removed
}
