package entities

import (
	"image/color"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
)

// RandomSource 均匀分布随机数来源，返回 [0, 1)
// *rand.Rand 满足该接口；测试中可注入固定序列
type RandomSource interface {
	Float64() float64
}

// NewBalloonEntity 创建一个气球实体
//
// 参数：
//   - em: EntityManager 实例
//   - x, y: 圆心坐标
//   - radius: 半径，必须为正
//   - c: 填充颜色
//
// 返回：创建的实体ID
func NewBalloonEntity(em *ecs.EntityManager, x, y, radius float64, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.BalloonComponent{
		Radius: radius,
		Color:  c,
	})

	return id
}

// SpawnRandomBalloon 在游戏区域底部外侧生成一个随机气球
//
// 半径 [10, 40)，水平位置保证整个气球在区域内，
// 区域宽度不足 2*radius 时气球水平居中。
// 初始 y = height + radius（完全位于区域下方），颜色为随机 24 位不透明色。
// 随机数按 半径、x、颜色 的顺序消耗。
func SpawnRandomBalloon(em *ecs.EntityManager, rng RandomSource, width, height float64) ecs.EntityID {
	radius := rng.Float64()*config.BalloonRadiusRange + config.BalloonMinRadius
	x := rng.Float64()*(width-2*radius) + radius
	if width < 2*radius {
		x = width / 2
	}
	y := height + radius
	return NewBalloonEntity(em, x, y, radius, RandomColor(rng))
}

// RandomColor 返回 24 位空间内均匀分布的不透明颜色
func RandomColor(rng RandomSource) color.RGBA {
	v := uint32(rng.Float64() * 0xFFFFFF)
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}
}
