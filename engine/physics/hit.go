package physics

import "github.com/go-gl/mathgl/mgl32"

// HitResult describes a contact from a trace, sweep or movement step.
// The zero value means "nothing was hit".
type HitResult struct {
	BlockingHit bool
	Location    mgl32.Vec3
	Normal      mgl32.Vec3
	Distance    float32
	Time        float32
	Body        *Body
	// ImpactVelocity is the velocity of a moving body just before the contact.
	ImpactVelocity mgl32.Vec3
}
