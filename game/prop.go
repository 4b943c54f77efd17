package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/physics"
)

// PhysicsProp is a box that projectiles and booms can push around.
type PhysicsProp struct {
	actor.BaseActor
	Mesh *physics.Body
}

func NewPhysicsProp(name string, extents mgl32.Vec3, mass float32, simulate bool) *PhysicsProp {
	p := &PhysicsProp{BaseActor: actor.NewBaseActor(name)}
	p.Mesh = physics.NewBody(name, physics.NewBox(extents), physics.ChannelWorldDynamic)
	if mass > 0 {
		p.Mesh.Mass = mass
	}
	p.Mesh.SetSimulatePhysics(simulate)
	p.SetCollisionBody(p.Mesh)
	return p
}

// StaticGeometry is level geometry that never moves.
type StaticGeometry struct {
	actor.BaseActor
	Body *physics.Body
}

func NewStaticGeometry(name string, extents mgl32.Vec3) *StaticGeometry {
	s := &StaticGeometry{BaseActor: actor.NewBaseActor(name)}
	s.Body = physics.NewBody(name, physics.NewBox(extents), physics.ChannelWorldStatic)
	s.SetCollisionBody(s.Body)
	return s
}

// Configure resizes the prop before it is spawned.
func (p *PhysicsProp) Configure(extents mgl32.Vec3, mass float32, simulate bool) {
	p.Mesh.Shape = physics.NewBox(extents)
	if mass > 0 {
		p.Mesh.Mass = mass
	}
	p.Mesh.SetSimulatePhysics(simulate)
}

func (s *StaticGeometry) Resize(extents mgl32.Vec3) {
	s.Body.Shape = physics.NewBox(extents)
}
