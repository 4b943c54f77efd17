package physics

import "github.com/go-gl/mathgl/mgl32"

// ProjectileMovement moves a body along its velocity every step instead of the rigid body solver.
type ProjectileMovement struct {
	InitialSpeed float32
	MaxSpeed     float32
	ShouldBounce bool
	Bounciness   float32
	Friction     float32
	GravityScale float32
}

func DefaultProjectileMovement() *ProjectileMovement {
	return &ProjectileMovement{
		InitialSpeed: 3000,
		MaxSpeed:     3000,
		ShouldBounce: true,
		Bounciness:   0.6,
		Friction:     0.2,
		GravityScale: 1,
	}
}

func (m *ProjectileMovement) limit(velocity mgl32.Vec3) mgl32.Vec3 {
	if m.MaxSpeed <= 0 {
		return velocity
	}
	speed := velocity.Len()
	if speed > m.MaxSpeed {
		return velocity.Mul(m.MaxSpeed / speed)
	}
	return velocity
}

// bounce reflects velocity on the normal, damping the normal part with Bounciness
// and the tangential part with Friction.
func (m *ProjectileMovement) bounce(velocity, normal mgl32.Vec3) mgl32.Vec3 {
	normalPart := normal.Mul(velocity.Dot(normal))
	tangent := velocity.Sub(normalPart)
	return tangent.Mul(1 - m.Friction).Sub(normalPart.Mul(m.Bounciness))
}
