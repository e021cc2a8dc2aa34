package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/entities"
)

func TestSpawnTrial(t *testing.T) {
	tests := []struct {
		name      string
		trial     float64
		wantSpawn bool
	}{
		{"below frequency spawns", 0.005, true},
		{"equal to frequency does not spawn", 0.01, false},
		{"above frequency does not spawn", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			round := newTestRound(config.DifficultyEasy)
			rng := entities.NewSequenceRandom(tt.trial, 0.5, 0.5, 0.5)

			id, spawned := NewBalloonSpawnSystem(round, rng).Tick()

			if spawned != tt.wantSpawn {
				t.Fatalf("spawned = %v, want %v", spawned, tt.wantSpawn)
			}
			count := len(ecs.GetEntitiesWith1[*components.BalloonComponent](round.Entities))
			if tt.wantSpawn {
				if count != 1 {
					t.Errorf("balloons = %d, want 1", count)
				}
				pos, _ := ecs.GetComponent[*components.PositionComponent](round.Entities, id)
				if pos.Y != 625 {
					t.Errorf("spawn y = %v, want 625", pos.Y)
				}
			} else if count != 0 {
				t.Errorf("balloons = %d, want 0", count)
			}
		})
	}
}

func TestSpawnRateMatchesFrequency(t *testing.T) {
	round := newTestRound(config.DifficultyHard)
	system := NewBalloonSpawnSystem(round, rand.New(rand.NewSource(1)))

	const ticks = 100000
	spawned := 0
	for i := 0; i < ticks; i++ {
		if _, ok := system.Tick(); ok {
			spawned++
		}
	}

	rate := float64(spawned) / ticks
	if rate < 0.025 || rate > 0.035 {
		t.Errorf("spawn rate = %.4f, want about 0.03", rate)
	}
}
