package main

import (
	"math/rand"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/ecs"
)

// clicker 脚本化的自动点击器
//
// 每隔 reactionMs 毫秒点击一次当前最接近逃逸的气球（y 最小）。
// 以 missRate 的概率把点击偏离到气球外，模拟失误。
type clicker struct {
	reactionMs float64
	missRate   float64
	rng        *rand.Rand
	elapsed    float64
}

func newClicker(reactionMs, missRate float64, seed int64) *clicker {
	return &clicker{
		reactionMs: reactionMs,
		missRate:   missRate,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// advance 推进时间，到达反应间隔时返回要点击的位置
func (c *clicker) advance(elapsedMs float64, em *ecs.EntityManager) (x, y float64, ok bool) {
	c.elapsed += elapsedMs
	if c.elapsed < c.reactionMs {
		return 0, 0, false
	}
	c.elapsed -= c.reactionMs

	target, found := c.pickTarget(em)
	if !found {
		return 0, 0, false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, target)
	balloon, _ := ecs.GetComponent[*components.BalloonComponent](em, target)

	x, y = pos.X, pos.Y
	if c.rng.Float64() < c.missRate {
		x += balloon.Radius * 2
	}
	return x, y, true
}

// pickTarget 选择 y 最小的气球，相同时取先创建的
func (c *clicker) pickTarget(em *ecs.EntityManager) (ecs.EntityID, bool) {
	var (
		best  ecs.EntityID
		bestY float64
		found bool
	)
	for _, id := range ecs.GetEntitiesWith2[*components.BalloonComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if !found || pos.Y < bestY {
			best, bestY, found = id, pos.Y, true
		}
	}
	return best, found
}
