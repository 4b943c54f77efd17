package effects

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/prototype/engine/util"
)

// Component is one live instance of a Template placed in the world.
type Component struct {
	id       uuid.UUID
	template *Template
	location mgl32.Vec3
	rotation util.Rotator
	scale    mgl32.Vec3
	age      float32
	active   bool
	moves    int
}

func (c *Component) ID() uuid.UUID {
	return c.id
}

func (c *Component) Template() *Template {
	return c.template
}

func (c *Component) SetWorldLocation(location mgl32.Vec3) {
	if c.location != location {
		c.moves++
	}
	c.location = location
}

func (c *Component) SetWorldRotation(rotation util.Rotator) {
	c.rotation = rotation
}

func (c *Component) GetWorldLocation() mgl32.Vec3 {
	return c.location
}

func (c *Component) GetWorldRotation() util.Rotator {
	return c.rotation
}

func (c *Component) GetScale() mgl32.Vec3 {
	return c.scale
}

// MoveCount is the number of times the location changed after spawning.
func (c *Component) MoveCount() int {
	return c.moves
}

func (c *Component) Age() float32 {
	return c.age
}

func (c *Component) IsActive() bool {
	return c.active
}

// Destroy deactivates the component. The manager drops it on its next tick.
func (c *Component) Destroy() {
	c.active = false
}
