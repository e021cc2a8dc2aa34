package entities

import (
	"image/color"
	"math"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
)

// NewParticleEntity 创建一个粒子实体
func NewParticleEntity(em *ecs.EntityManager, x, y, vx, vy, radius float64, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ParticleComponent{
		VelocityX: vx,
		VelocityY: vy,
		Radius:    radius,
		Color:     c,
	})

	return id
}

// CreatePopBurst 在指定位置生成一次气球爆破的粒子
//
// 生成 config.ParticleBurstCount 个与气球同色的粒子：
// 方向均匀分布于 [0, 2π)，速度 [1, 6)，初始半径 [0, 3)。
//
// 参数：
//   - em: EntityManager 实例
//   - rng: 随机数来源，每个粒子依次消耗 方向、速度、半径 三个值
//   - x, y: 爆破中心
//   - c: 粒子颜色
//
// 返回：按创建顺序排列的粒子实体ID
func CreatePopBurst(em *ecs.EntityManager, rng RandomSource, x, y float64, c color.RGBA) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, config.ParticleBurstCount)

	for i := 0; i < config.ParticleBurstCount; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*config.ParticleSpeedRange + config.ParticleMinSpeed
		radius := rng.Float64() * config.ParticleRadiusRange

		ids = append(ids, NewParticleEntity(
			em,
			x, y,
			math.Cos(angle)*speed,
			math.Sin(angle)*speed,
			radius,
			c,
		))
	}

	return ids
}
