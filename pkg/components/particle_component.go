package components

import "image/color"

// ParticleComponent represents a single particle of a pop burst.
//
// Position is stored in a separate PositionComponent. Velocity is fixed at
// creation; the radius shrinks every tick until the particle is removed.
//
// This is a pure data component following ECS principles - it contains no methods.
type ParticleComponent struct {
	// Velocity (速度, 像素/tick)
	VelocityX float64
	VelocityY float64

	// Radius (半径, 每个 tick 递减)
	Radius float64

	// 颜色继承自被戳破的气球
	Color color.RGBA
}
