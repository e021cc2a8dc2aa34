package main

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/entities"
	"github.com/gonewx/balloonpop/pkg/game"
	"github.com/gonewx/balloonpop/pkg/scenes"
)

func TestClickerWaitsForReaction(t *testing.T) {
	em := ecs.NewEntityManager()
	entities.NewBalloonEntity(em, 100, 300, 20, color.RGBA{R: 255, A: 255})

	c := newClicker(100, 0, 1)
	if _, _, ok := c.advance(80, em); ok {
		t.Fatal("clicked before reaction interval")
	}
	x, y, ok := c.advance(20, em)
	if !ok {
		t.Fatal("did not click after reaction interval")
	}
	if x != 100 || y != 300 {
		t.Errorf("click at (%v, %v), want (100, 300)", x, y)
	}
}

func TestClickerTargetsHighestBalloon(t *testing.T) {
	em := ecs.NewEntityManager()
	entities.NewBalloonEntity(em, 100, 300, 20, color.RGBA{A: 255})
	entities.NewBalloonEntity(em, 200, 120, 20, color.RGBA{A: 255})
	entities.NewBalloonEntity(em, 300, 120, 20, color.RGBA{A: 255})

	c := newClicker(0, 0, 1)
	x, y, ok := c.advance(0, em)
	if !ok || x != 200 || y != 120 {
		t.Errorf("advance() = (%v, %v, %v), want first balloon at y=120", x, y, ok)
	}
}

func TestClickerMissesOutsideBalloon(t *testing.T) {
	em := ecs.NewEntityManager()
	entities.NewBalloonEntity(em, 100, 300, 20, color.RGBA{A: 255})

	c := newClicker(0, 1, 1)
	x, _, _ := c.advance(0, em)
	if x != 140 {
		t.Errorf("missed click x = %v, want 140", x)
	}
}

func TestClickerNoBalloons(t *testing.T) {
	c := newClicker(0, 0, 1)
	if _, _, ok := c.advance(50, ecs.NewEntityManager()); ok {
		t.Error("clicked with no balloons")
	}
}

func TestSimulateRoundIsReproducible(t *testing.T) {
	run := func() roundSummary {
		services := &scenes.Services{
			HighScores: game.NewHighScoreManager(nil),
			Rand:       rand.New(rand.NewSource(7)),
		}
		gs := scenes.NewGameScene(services)
		summary, err := simulateRound(gs, newClicker(2000, 0.1, 8), config.DifficultyHard, 600_000)
		if err != nil {
			t.Fatalf("simulateRound() error = %v", err)
		}
		return summary
	}

	first, second := run(), run()
	if !first.finished {
		t.Fatal("round did not finish within the time limit")
	}
	if first.result != second.result || first.ticks != second.ticks {
		t.Errorf("runs differ: %+v vs %+v", first.result, second.result)
	}
	if len(first.banner) == 0 || first.banner[len(first.banner)-2] != "Game Over!" {
		t.Errorf("banner = %v, want Game Over! text", first.banner)
	}
}
