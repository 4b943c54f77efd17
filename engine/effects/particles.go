package effects

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

type ParticleProperties struct {
	Velocity, VelocityVariation       mgl32.Vec3
	RotationVariation                 float32
	ColorBegin, ColorEnd              mgl32.Vec4
	SizeBegin, SizeEnd, SizeVariation float32
	Lifetime                          float32
}

type Particle struct {
	id                     uint64
	Position, Velocity     mgl32.Vec3
	ColorBegin, ColorEnd   mgl32.Vec4
	Rotation               float32
	SizeBegin, SizeEnd     float32
	Lifetime, LifetimeLeft float32
	IsActive               bool
}

func (p Particle) GetID() uint64 {
	return p.id
}

// Color interpolates between the begin and end color over the particle's life.
func (p Particle) Color() mgl32.Vec4 {
	if p.Lifetime <= 0 {
		return p.ColorEnd
	}
	life := 1 - p.LifetimeLeft/p.Lifetime
	return p.ColorBegin.Mul(1 - life).Add(p.ColorEnd.Mul(life))
}

// ParticleSystem is a fixed size ring of particles. Emitting into a full pool
// recycles the oldest slot.
type ParticleSystem struct {
	pool      []*Particle
	poolIndex int
	random    *rand.Rand
}

func NewParticleSystem(capacity int, seed int64) *ParticleSystem {
	if capacity < 1 {
		capacity = 1
	}
	initialPool := make([]*Particle, capacity)
	for i := uint64(0); i < uint64(capacity); i++ {
		initialPool[i] = &Particle{id: i}
	}
	return &ParticleSystem{
		pool:      initialPool,
		poolIndex: len(initialPool) - 1,
		random:    rand.New(rand.NewSource(seed)),
	}
}

// Emit places one particle at origin, oriented by the emitter's rotation matrix and scaled by scale.
func (p *ParticleSystem) Emit(origin mgl32.Vec3, orientation mgl32.Mat3, scale mgl32.Vec3, props ParticleProperties) {
	particle := p.pool[p.poolIndex]

	particle.IsActive = true
	particle.Position = origin
	particle.Rotation = props.RotationVariation * (p.random.Float32() * 2.0 * math.Pi)
	local := mgl32.Vec3{
		props.Velocity.X() + props.VelocityVariation.X()*(p.random.Float32()-0.5),
		props.Velocity.Y() + props.VelocityVariation.Y()*(p.random.Float32()-0.5),
		props.Velocity.Z() + props.VelocityVariation.Z()*(p.random.Float32()-0.5),
	}
	particle.Velocity = orientation.Mul3x1(mgl32.Vec3{local.X() * scale.X(), local.Y() * scale.Y(), local.Z() * scale.Z()})

	particle.ColorBegin = props.ColorBegin
	particle.ColorEnd = props.ColorEnd

	particle.SizeBegin = (props.SizeBegin + props.SizeVariation*(p.random.Float32()-0.5)) * scale.Len()
	particle.SizeEnd = props.SizeEnd * scale.Len()

	particle.Lifetime = props.Lifetime
	particle.LifetimeLeft = props.Lifetime

	p.poolIndex--
	if p.poolIndex < 0 {
		p.poolIndex = len(p.pool) - 1
	}
}

func (p *ParticleSystem) Update(deltaTime float64) {
	for _, particle := range p.pool {
		if !particle.IsActive {
			continue
		}
		if particle.LifetimeLeft <= 0 {
			particle.IsActive = false
			continue
		}

		particle.LifetimeLeft -= float32(deltaTime)
		particle.Position = particle.Position.Add(particle.Velocity.Mul(float32(deltaTime)))
		particle.Rotation += 0.01 * float32(deltaTime)
	}
}

func (p *ParticleSystem) ActiveCount() int {
	count := 0
	for _, particle := range p.pool {
		if particle.IsActive {
			count++
		}
	}
	return count
}

// Active calls visit for every live particle.
func (p *ParticleSystem) Active(visit func(*Particle)) {
	for _, particle := range p.pool {
		if particle.IsActive {
			visit(particle)
		}
	}
}
