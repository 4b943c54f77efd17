package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
)

// Projectile is a bouncing sphere fired by a weapon.
type Projectile struct {
	actor.BaseActor
	CollisionComp      *physics.Body
	ProjectileMovement *physics.ProjectileMovement
	// Owner is the weapon that fired the projectile. It is not kept alive by it.
	Owner *WeaponComponent

	impulseScale float32
	hits         int
}

func NewProjectile(settings config.ProjectileSettings) *Projectile {
	p := &Projectile{
		BaseActor:    actor.NewBaseActor("FirstPersonProjectile"),
		impulseScale: settings.ImpulseScale,
	}
	p.ProjectileMovement = &physics.ProjectileMovement{
		InitialSpeed: settings.InitialSpeed,
		MaxSpeed:     settings.MaxSpeed,
		ShouldBounce: true,
		Bounciness:   settings.Bounciness,
		Friction:     physics.DefaultProjectileMovement().Friction,
		GravityScale: settings.GravityScale,
	}
	p.CollisionComp = physics.NewBody("SphereComp", physics.NewSphere(settings.Radius), physics.ChannelProjectile)
	p.CollisionComp.Movement = p.ProjectileMovement
	p.CollisionComp.OnHit = p.OnHit
	p.SetCollisionBody(p.CollisionComp)
	p.InitialLifeSpan = settings.LifeSpan
	return p
}

func (p *Projectile) BeginPlay() {
	p.CollisionComp.Velocity = p.GetActorForwardVector().Mul(p.ProjectileMovement.InitialSpeed)
}

func (p *Projectile) GetVelocity() mgl32.Vec3 {
	return p.CollisionComp.Velocity
}

func (p *Projectile) HitCount() int {
	return p.hits
}

// OnHit pushes simulated bodies of other actors and is destroyed by them.
// Everything else is bounced off. Every hit is reported to the weapon.
func (p *Projectile) OnHit(self *physics.Body, hit physics.HitResult) {
	if p.IsPendingKill() {
		return
	}
	p.hits++
	other := hit.Body
	if p.Owner != nil {
		p.Owner.ProjectileImpact(p, hit)
	}
	if other == nil || !other.IsSimulatingPhysics() || p.isOwnBody(other) {
		util.LogPhysicsDebug(fmt.Sprintf("[Projectile] %s bounced off %v", p, other))
		return
	}
	other.AddImpulse(hit.ImpactVelocity.Mul(p.impulseScale))
	p.Destroy()
}

func (p *Projectile) isOwnBody(body *physics.Body) bool {
	if body == p.CollisionComp {
		return true
	}
	owner, ok := body.Owner.(actor.Actor)
	return ok && owner.Base() == p.Base()
}
