package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/audio"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
)

type ProjectileSpawner interface {
	SpawnActor(class *actor.Class, location mgl32.Vec3, rotation util.Rotator, params actor.SpawnParams) (actor.Actor, bool)
}

type EffectRenderer interface {
	SpawnSystemAtLocation(template *effects.Template, location mgl32.Vec3, rotation util.Rotator, scale mgl32.Vec3) *effects.Component
}

type PhysicsQuery interface {
	LineTraceSingle(start, end mgl32.Vec3, channel physics.CollisionChannel) (physics.HitResult, bool)
	SweepMultiSphere(center mgl32.Vec3, radius float32, channel physics.CollisionChannel) []physics.HitResult
}

type SoundPlayer interface {
	PlaySoundAtLocation(cue *audio.Cue, location mgl32.Vec3) bool
}

// WeaponServices are the world facilities a weapon talks to.
type WeaponServices struct {
	Spawner ProjectileSpawner
	Effects EffectRenderer
	Physics PhysicsQuery
	Sound   SoundPlayer
}

// ServicesFromWorld wires every service to world. A nil world gives no services.
func ServicesFromWorld(world *actor.World) WeaponServices {
	if world == nil {
		return WeaponServices{}
	}
	return WeaponServices{
		Spawner: world,
		Effects: world,
		Physics: world,
		Sound:   world,
	}
}
