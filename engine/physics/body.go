package physics

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
)

type BodyID uint64

// HitHandler is called after a physics step for every blocking contact a moving body made.
type HitHandler func(self *Body, hit HitResult)

type Body struct {
	id        BodyID
	Name      string
	Owner     any
	Shape     Shape
	Position  mgl32.Vec3
	Velocity  mgl32.Vec3
	Mass      float32
	Responses Responses
	// ObjectType is the channel other queries see this body as.
	ObjectType CollisionChannel

	Movement *ProjectileMovement
	OnHit    HitHandler

	simulate bool
	world    *World
}

func NewBody(name string, shape Shape, objectType CollisionChannel) *Body {
	return &Body{
		Name:       name,
		Shape:      shape,
		Mass:       1,
		Responses:  BlockAll(),
		ObjectType: objectType,
	}
}

func (b *Body) ID() BodyID {
	return b.id
}

func (b *Body) String() string {
	return fmt.Sprintf("%s#%d", b.Name, b.id)
}

func (b *Body) SetSimulatePhysics(simulate bool) {
	b.simulate = simulate
	if !simulate {
		b.Velocity = mgl32.Vec3{}
	}
}

func (b *Body) IsSimulatingPhysics() bool {
	return b.simulate
}

// AddImpulse changes the velocity by impulse/mass. Bodies that are not simulated ignore it.
func (b *Body) AddImpulse(impulse mgl32.Vec3) {
	if !b.simulate {
		util.LogPhysicsWarning(fmt.Sprintf("[Body] impulse on non-simulating body %s ignored", b))
		return
	}
	mass := b.Mass
	if mass <= 0 {
		mass = 1
	}
	b.Velocity = b.Velocity.Add(mgl32.Vec3{impulse.X() / mass, impulse.Y() / mass, impulse.Z() / mass})
	util.LogPhysicsDebug(fmt.Sprintf("[Body] impulse %v on %s, velocity now %v", impulse, b, b.Velocity))
}

func (b *Body) Bounds() util.AABB {
	return b.Shape.Bounds(b.Position)
}

func (b *Body) InWorld() bool {
	return b.world != nil
}

// blocks reports whether b stops a query or movement on the channel.
func (b *Body) blocks(channel CollisionChannel) bool {
	return b.Responses.For(channel) == ResponseBlock
}

func (b *Body) overlapsOn(channel CollisionChannel) bool {
	return b.Responses.For(channel) != ResponseIgnore
}
