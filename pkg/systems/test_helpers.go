package systems

import (
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/game"
)

// newTestRound 创建一个已开始的回合，区域 800x600
func newTestRound(difficulty string) *game.Round {
	preset, err := config.DefaultDifficultyConfig().Lookup(difficulty)
	if err != nil {
		panic(err)
	}
	round := game.NewRound()
	round.Reset(difficulty, preset, 800, 600)
	return round
}
