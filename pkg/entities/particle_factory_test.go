package entities

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/balloonpop/pkg/components"
	"github.com/gonewx/balloonpop/pkg/ecs"
)

func TestCreatePopBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	c := color.RGBA{R: 200, G: 50, B: 50, A: 255}
	rng := rand.New(rand.NewSource(42))

	ids := CreatePopBurst(em, rng, 150, 150, c)
	if len(ids) != 20 {
		t.Fatalf("burst size = %d, want 20", len(ids))
	}

	for i, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			t.Fatalf("particle %d has no PositionComponent", i)
		}
		if pos.X != 150 || pos.Y != 150 {
			t.Errorf("particle %d at (%v, %v), want (150, 150)", i, pos.X, pos.Y)
		}

		p, ok := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !ok {
			t.Fatalf("particle %d has no ParticleComponent", i)
		}
		if p.Color != c {
			t.Errorf("particle %d colour = %v, want %v", i, p.Color, c)
		}
		speed := math.Hypot(p.VelocityX, p.VelocityY)
		if speed < 1-1e-9 || speed >= 6 {
			t.Errorf("particle %d speed = %v, want [1, 6)", i, speed)
		}
		if p.Radius < 0 || p.Radius >= 3 {
			t.Errorf("particle %d radius = %v, want [0, 3)", i, p.Radius)
		}
	}
}

func TestCreatePopBurstDirection(t *testing.T) {
	em := ecs.NewEntityManager()
	// 方向 0.25 → π/2（正下方），速度 0 → 1，半径 0.5 → 1.5
	rng := NewSequenceRandom(0.25, 0, 0.5)

	ids := CreatePopBurst(em, rng, 0, 0, color.RGBA{A: 255})
	p, _ := ecs.GetComponent[*components.ParticleComponent](em, ids[0])

	if math.Abs(p.VelocityX) > 1e-9 || math.Abs(p.VelocityY-1) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want (0, 1)", p.VelocityX, p.VelocityY)
	}
	if p.Radius != 1.5 {
		t.Errorf("radius = %v, want 1.5", p.Radius)
	}
	if rng.Calls() != 60 {
		t.Errorf("random values consumed = %d, want 60", rng.Calls())
	}
}
