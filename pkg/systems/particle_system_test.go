package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/config"
	"github.com/gonewx/balloonpop/pkg/ecs"
	"github.com/gonewx/balloonpop/pkg/entities"
)

func TestParticleMovesAndShrinks(t *testing.T) {
	round := newTestRound(config.DifficultyMedium)
	id := entities.NewParticleEntity(round.Entities, 10, 10, 2, -1, 1, color.RGBA{A: 255})

	NewParticleSystem(round).Tick()

	pos, _ := ecs.GetComponent[*components.PositionComponent](round.Entities, id)
	p, _ := ecs.GetComponent[*components.ParticleComponent](round.Entities, id)

	if pos.X != 12 || pos.Y != 9 {
		t.Errorf("position = (%v, %v), want (12, 9)", pos.X, pos.Y)
	}
	if math.Abs(p.Radius-0.95) > 1e-12 {
		t.Errorf("radius = %v, want 0.95", p.Radius)
	}
}

func TestParticleRemovedWhenRadiusExhausted(t *testing.T) {
	round := newTestRound(config.DifficultyMedium)
	small := entities.NewParticleEntity(round.Entities, 0, 0, 0, 0, 0.04, color.RGBA{A: 255})
	zero := entities.NewParticleEntity(round.Entities, 0, 0, 0, 0, 0, color.RGBA{A: 255})
	big := entities.NewParticleEntity(round.Entities, 0, 0, 0, 0, 2, color.RGBA{A: 255})

	removed := NewParticleSystem(round).Tick()

	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	left := ecs.GetEntitiesWith1[*components.ParticleComponent](round.Entities)
	if len(left) != 1 || left[0] != big {
		t.Errorf("remaining particles = %v, want [%d] (removed %d, %d)", left, big, small, zero)
	}
}

func TestParticleRadiusStrictlyDecreasesUntilRemoval(t *testing.T) {
	round := newTestRound(config.DifficultyMedium)
	id := entities.NewParticleEntity(round.Entities, 0, 0, 1, 1, 0.3, color.RGBA{A: 255})
	system := NewParticleSystem(round)

	prev := 0.3
	for tick := 0; tick < 20; tick++ {
		system.Tick()
		p, ok := ecs.GetComponent[*components.ParticleComponent](round.Entities, id)
		if !ok {
			if tick < 5 {
				t.Fatalf("particle removed too early at tick %d", tick)
			}
			return
		}
		if p.Radius >= prev {
			t.Fatalf("radius did not decrease at tick %d: %v -> %v", tick, prev, p.Radius)
		}
		prev = p.Radius
	}
	t.Fatal("particle never removed")
}
