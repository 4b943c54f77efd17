package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/anim"
	"github.com/memmaker/prototype/engine/asset"
	"github.com/memmaker/prototype/engine/audio"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

const (
	ClassCharacter        = "FirstPersonCharacter"
	ClassProjectile       = "FirstPersonProjectile"
	ClassPlayerController = "FirstPersonPlayerController"
	ClassWeaponPickup     = "WeaponPickup"
	ClassPhysicsProp      = "PhysicsProp"
	ClassStaticGeometry   = "StaticGeometry"

	WeaponName = "FP_Weapon"
)

// Assets are the classes and named resources built from the settings.
type Assets struct {
	Settings config.Settings
	Registry *actor.Registry
	Effects  *effects.Library
	Sounds   *audio.Library
	Montages *anim.Library
	Input    *InputAssets
	Weapon   WeaponConfig
}

func NewAssets(settings config.Settings) (*Assets, error) {
	a := &Assets{
		Settings: settings,
		Registry: actor.NewRegistry(),
		Effects:  effects.NewLibrary(),
		Sounds:   audio.NewLibrary(),
		Montages: anim.NewLibrary(),
		Input:    NewInputAssets(),
	}
	for _, e := range settings.Effects {
		a.Effects.Register(effectTemplate(e))
	}
	for _, s := range settings.Sounds {
		wave, err := audio.ParseWaveType(s.Wave)
		if err != nil {
			return nil, errors.Wrapf(err, "sound '%s'", s.Name)
		}
		a.Sounds.Register(&audio.Cue{
			Name:      s.Name,
			Frequency: s.Frequency,
			Duration:  time.Duration(s.Duration) * time.Millisecond,
			Attack:    time.Duration(s.Attack) * time.Millisecond,
			Release:   time.Duration(s.Release) * time.Millisecond,
			Wave:      wave,
			Volume:    s.Volume,
		})
	}
	for _, m := range settings.Montages {
		a.Montages.Register(&anim.Montage{Name: m.Name, Duration: m.Duration})
	}

	projectileSettings := settings.Projectile
	if projectileSettings.Model != "" {
		bounds, err := asset.LoadBounds(projectileSettings.Model, 100)
		if err != nil {
			util.LogIOError(fmt.Sprintf("[Assets] projectile model: %v, keeping radius %0.1f", err, projectileSettings.Radius))
		} else {
			extents := bounds.Extents()
			projectileSettings.Radius = max(extents.X(), extents.Y(), extents.Z()) / 2
		}
	}
	a.registerClasses(projectileSettings)

	weaponConfig, err := BuildWeaponConfig(settings.Weapon, a.Registry, a.Effects, a.Sounds, a.Montages, a.Input)
	if err != nil {
		return nil, err
	}
	a.Weapon = weaponConfig
	return a, nil
}

func effectTemplate(e config.EffectSettings) *effects.Template {
	color := mgl32.Vec4{1, 1, 1, 1}
	if len(e.Color) == 4 {
		color = mgl32.Vec4{e.Color[0], e.Color[1], e.Color[2], e.Color[3]}
	}
	fade := color
	fade[3] = 0
	return &effects.Template{
		Name:       e.Name,
		Lifetime:   e.Lifetime,
		BurstCount: e.BurstCount,
		Particles: effects.ParticleProperties{
			VelocityVariation: mgl32.Vec3{e.Speed, e.Speed, e.Speed},
			RotationVariation: 180,
			ColorBegin:        color,
			ColorEnd:          fade,
			SizeBegin:         e.Size,
			SizeEnd:           e.Size * 0.25,
			SizeVariation:     e.Size * 0.5,
			Lifetime:          e.ParticleLifetime,
		},
	}
}

func (a *Assets) registerClasses(projectileSettings config.ProjectileSettings) {
	a.Registry.Register(ClassCharacter, func() actor.Actor {
		return NewCharacter(a.Settings.Character, a.Input)
	})
	a.Registry.Register(ClassProjectile, func() actor.Actor {
		return NewProjectile(projectileSettings)
	})
	a.Registry.Register(ClassPlayerController, func() actor.Actor {
		controller := NewPlayerController(a.Input.Default, a.Settings.Window.MouseSensitivity)
		controller.CameraManager.SetInvertedY(a.Settings.Window.InvertY)
		return controller
	})
	a.Registry.Register(ClassWeaponPickup, func() actor.Actor {
		var pickup *WeaponPickup
		pickup = NewWeaponPickup(a.Settings.Weapon.PickupRadius, func() (*WeaponComponent, error) {
			return a.NewWeapon(pickup.GetWorld())
		})
		return pickup
	})
	a.Registry.Register(ClassPhysicsProp, func() actor.Actor {
		return NewPhysicsProp(ClassPhysicsProp, mgl32.Vec3{100, 100, 100}, 100, true)
	})
	a.Registry.Register(ClassStaticGeometry, func() actor.Actor {
		return NewStaticGeometry(ClassStaticGeometry, mgl32.Vec3{100, 100, 100})
	})
}

// NewWeapon builds a weapon wired to world.
func (a *Assets) NewWeapon(world *actor.World) (*WeaponComponent, error) {
	return NewWeaponComponent(WeaponName, a.Weapon, ServicesFromWorld(world))
}
