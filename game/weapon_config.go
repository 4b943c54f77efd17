package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/anim"
	"github.com/memmaker/prototype/engine/audio"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

var ErrNegativeBoomRadius = errors.New("boom radius must not be negative")

const (
	GripSocket          = "GripPoint"
	AimRange            = 5000
	FireMappingPriority = 1
)

// WeaponConfig is authored once and copied into every weapon built from it.
type WeaponConfig struct {
	MuzzleOffset    mgl32.Vec3
	ProjectileClass *actor.Class
	FireSound       *audio.Cue
	FireAnimation   *anim.Montage

	BoomRadius      float32
	BoomPower       float32
	BoomManaCost    float32
	BoomEffect      *effects.Template
	BoomEffectScale mgl32.Vec3
	AimEffect       *effects.Template
	AimEffectScale  mgl32.Vec3

	FireMappingContext *input.MappingContext
	FireAction         *input.Action
	BoomAction         *input.Action
}

func (c WeaponConfig) Validate() error {
	if c.BoomRadius < 0 {
		return errors.Wrapf(ErrNegativeBoomRadius, "got %0.2f", c.BoomRadius)
	}
	return nil
}

// BuildWeaponConfig resolves the names in settings against the loaded asset libraries.
func BuildWeaponConfig(settings config.WeaponSettings, registry *actor.Registry, effectLibrary *effects.Library, sounds *audio.Library, montages *anim.Library, inputAssets *InputAssets) (WeaponConfig, error) {
	projectileClass, err := registry.Get(settings.ProjectileClass)
	if err != nil {
		return WeaponConfig{}, errors.Wrap(err, "weapon projectile class")
	}
	fireSound, err := sounds.Get(settings.FireSound)
	if err != nil {
		return WeaponConfig{}, errors.Wrap(err, "weapon fire sound")
	}
	fireAnimation, err := montages.Get(settings.FireAnimation)
	if err != nil {
		return WeaponConfig{}, errors.Wrap(err, "weapon fire animation")
	}
	boomEffect, err := effectLibrary.Get(settings.BoomEffect)
	if err != nil {
		return WeaponConfig{}, errors.Wrap(err, "weapon boom effect")
	}
	aimEffect, err := effectLibrary.Get(settings.AimEffect)
	if err != nil {
		return WeaponConfig{}, errors.Wrap(err, "weapon aim effect")
	}
	weaponConfig := WeaponConfig{
		MuzzleOffset:       util.Vec3FromSlice(settings.MuzzleOffset, mgl32.Vec3{100, 0, 10}),
		ProjectileClass:    projectileClass,
		FireSound:          fireSound,
		FireAnimation:      fireAnimation,
		BoomRadius:         settings.BoomRadius,
		BoomPower:          settings.BoomPower,
		BoomManaCost:       settings.BoomManaCost,
		BoomEffect:         boomEffect,
		BoomEffectScale:    util.Vec3FromSlice(settings.BoomEffectScale, mgl32.Vec3{1, 1, 1}),
		AimEffect:          aimEffect,
		AimEffectScale:     util.Vec3FromSlice(settings.AimEffectScale, mgl32.Vec3{1, 1, 1}),
		FireMappingContext: inputAssets.Weapons,
		FireAction:         inputAssets.Shoot,
		BoomAction:         inputAssets.Boom,
	}
	if err = weaponConfig.Validate(); err != nil {
		return WeaponConfig{}, err
	}
	return weaponConfig, nil
}
