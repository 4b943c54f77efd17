package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
)

// AimResult is where the camera of the owning player looks at. The zero value means nothing was hit.
type AimResult struct {
	Location mgl32.Vec3
	Normal   mgl32.Vec3
	Hit      bool
}

// WeaponComponent fires projectiles, casts the boom spell and shows an aim reticle
// once it is attached to a character.
type WeaponComponent struct {
	actor.BaseComponent
	config    WeaponConfig
	services  WeaponServices
	transform *util.Transform

	character *Character
	aimEffect *effects.Component
	bindings  []input.BindingHandle
	impacts   int
}

func NewWeaponComponent(name string, config WeaponConfig, services WeaponServices) (*WeaponComponent, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &WeaponComponent{
		BaseComponent: actor.NewBaseComponent(name),
		config:        config,
		services:      services,
		transform:     util.NewDefaultTransform(name),
	}, nil
}

func (w *WeaponComponent) Config() WeaponConfig {
	return w.config
}

func (w *WeaponComponent) GetCharacter() *Character {
	return w.character
}

func (w *WeaponComponent) GetTransform() *util.Transform {
	return w.transform
}

// AimEffect is the live reticle effect or nil.
func (w *WeaponComponent) AimEffect() *effects.Component {
	return w.aimEffect
}

func (w *WeaponComponent) ImpactCount() int {
	return w.impacts
}

// AttachWeapon gives the weapon to target. It fails without changing anything when
// target is nil, already carries a weapon or this weapon is already carried.
func (w *WeaponComponent) AttachWeapon(target *Character) bool {
	if target == nil {
		util.LogWeaponWarning(fmt.Sprintf("[Weapon] %s cannot attach to nil character", w.GetName()))
		return false
	}
	if w.character != nil {
		util.LogWeaponWarning(fmt.Sprintf("[Weapon] %s is already attached to %s", w.GetName(), w.character))
		return false
	}
	if _, hasWeapon := actor.FindComponent[*WeaponComponent](target); hasWeapon || target.Weapon != nil {
		util.LogWeaponDebug(fmt.Sprintf("[Weapon] %s already carries a weapon", target))
		return false
	}

	w.character = target
	target.Weapon = w
	target.GetMesh1P().AttachToSocket(w.transform, GripSocket)
	target.AddInstanceComponent(w)

	if controller := target.GetController(); controller != nil {
		// priority 1 overrides the Jump action with the Fire action when using touch input
		controller.Subsystem.AddMappingContext(w.config.FireMappingContext, FireMappingPriority)
		if w.config.FireAction != nil {
			w.bindings = append(w.bindings, controller.InputComponent.BindAction(w.config.FireAction, input.Triggered, func(input.Value) { w.Fire() }))
		}
		if w.config.BoomAction != nil {
			w.bindings = append(w.bindings, controller.InputComponent.BindAction(w.config.BoomAction, input.Triggered, func(input.Value) { w.CastBoom() }))
		}
	}
	util.LogWeaponInfo(fmt.Sprintf("[Weapon] %s attached to %s", w.GetName(), target))
	return true
}

func (w *WeaponComponent) Fire() {
	if w.character == nil || w.character.GetController() == nil {
		return
	}

	if w.config.ProjectileClass != nil && w.services.Spawner != nil {
		controller := w.character.GetController()
		spawnRotation := controller.CameraManager.GetCameraRotation()
		// the muzzle offset is in camera space
		spawnLocation := w.character.GetActorLocation().Add(spawnRotation.RotateVector(w.config.MuzzleOffset))

		spawned, ok := w.services.Spawner.SpawnActor(w.config.ProjectileClass, spawnLocation, spawnRotation, actor.SpawnParams{
			Owner:             w.character,
			CollisionHandling: actor.AdjustIfPossibleButDontSpawnIfColliding,
		})
		if ok {
			if projectile, isProjectile := spawned.(*Projectile); isProjectile {
				projectile.Owner = w
			}
		} else {
			util.LogWeaponDebug(fmt.Sprintf("[Weapon] no room to spawn %s at %v", w.config.ProjectileClass, spawnLocation))
		}
	}

	if w.config.FireSound != nil && w.services.Sound != nil {
		w.services.Sound.PlaySoundAtLocation(w.config.FireSound, w.character.GetActorLocation())
	}

	if w.config.FireAnimation != nil {
		if animInstance := w.character.GetMesh1P().GetAnimInstance(); animInstance != nil {
			animInstance.MontagePlay(w.config.FireAnimation, 1)
		}
	}
}

// CastBoom spends the spell cost and booms at the aim point.
func (w *WeaponComponent) CastBoom() {
	if w.character == nil {
		return
	}
	if !w.character.CastSpell(w.config.BoomManaCost) {
		return
	}
	point := w.GetWhereAiming()
	w.Boom(point.Location, util.RotationFromVector(point.Normal))
}

// GetWhereAiming traces along the camera view up to AimRange.
func (w *WeaponComponent) GetWhereAiming() AimResult {
	if w.character == nil || w.character.GetController() == nil || w.services.Physics == nil {
		return AimResult{}
	}
	camera := w.character.GetController().CameraManager
	start := camera.GetCameraLocation()
	end := start.Add(camera.GetCameraRotation().Vector().Mul(AimRange))

	hit, ok := w.services.Physics.LineTraceSingle(start, end, physics.ChannelVisibility)
	if !ok {
		return AimResult{}
	}
	return AimResult{Location: hit.Location, Normal: hit.Normal, Hit: true}
}

// Boom pushes every simulated body within BoomRadius of location away from it.
// rotation is the surface normal's rotation, the effect is turned to stand on the surface.
func (w *WeaponComponent) Boom(location mgl32.Vec3, rotation util.Rotator) {
	rotation = util.Rotator{Pitch: rotation.Pitch - 90, Yaw: rotation.Yaw, Roll: rotation.Roll}

	var hits []physics.HitResult
	if w.services.Physics != nil {
		hits = w.services.Physics.SweepMultiSphere(location, w.config.BoomRadius, physics.ChannelVisibility)
	}
	util.LogWeaponWarning(fmt.Sprintf("Boom found '%d' objects", len(hits)))

	if w.services.Effects != nil && w.config.BoomEffect != nil {
		w.services.Effects.SpawnSystemAtLocation(w.config.BoomEffect, location, rotation, w.config.BoomEffectScale)
	}

	for _, hit := range hits {
		if hit.Body == nil || !hit.Body.IsSimulatingPhysics() {
			continue
		}
		force, ok := util.SafeNormalize(hit.Body.Position.Sub(location))
		if !ok {
			util.LogWeaponError(fmt.Sprintf("Failed to normalize boom force for %s", hit.Body))
			continue
		}
		hit.Body.AddImpulse(force.Mul(w.config.BoomPower))
	}
}

// Aim moves the reticle effect to the aim point, spawning it on first use.
func (w *WeaponComponent) Aim() {
	if w.character == nil || w.character.GetController() == nil {
		return
	}
	point := w.GetWhereAiming()
	rotation := util.SurfaceAlignedRotation(point.Normal)

	if w.aimEffect == nil || !w.aimEffect.IsActive() {
		if w.services.Effects == nil || w.config.AimEffect == nil {
			return
		}
		w.aimEffect = w.services.Effects.SpawnSystemAtLocation(w.config.AimEffect, point.Location, rotation, w.config.AimEffectScale)
		if w.aimEffect == nil {
			return
		}
	}
	w.aimEffect.SetWorldLocation(point.Location)
	w.aimEffect.SetWorldRotation(rotation)
}

func (w *WeaponComponent) TickComponent(deltaTime float64) {
	if w.config.AimEffect != nil {
		w.Aim()
	}
}

// ProjectileImpact is called by projectiles this weapon fired.
func (w *WeaponComponent) ProjectileImpact(projectile *Projectile, hit physics.HitResult) {
	w.impacts++
	util.LogWeaponDebug(fmt.Sprintf("[Weapon] %s hit %v at %v", projectile, hit.Body, hit.Location))
}

// EndPlay removes the weapon controls from the owner's player.
func (w *WeaponComponent) EndPlay(reason actor.EndPlayReason) {
	if w.character == nil {
		return
	}
	if controller := w.character.GetController(); controller != nil {
		controller.Subsystem.RemoveMappingContext(w.config.FireMappingContext)
		for _, handle := range w.bindings {
			controller.InputComponent.RemoveBinding(handle)
		}
	}
	w.bindings = nil
	if w.aimEffect != nil {
		w.aimEffect.Destroy()
		w.aimEffect = nil
	}
	util.LogWeaponDebug(fmt.Sprintf("[Weapon] %s end play (%s)", w.GetName(), reason))
}
