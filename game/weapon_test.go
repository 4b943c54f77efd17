package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSurfaceFacingBack checks the pose of an effect on a wall facing -X.
func assertSurfaceFacingBack(t *testing.T, rotation util.Rotator) {
	t.Helper()
	assert.InDelta(t, -90, rotation.Pitch, 0.001)
	assert.InDelta(t, 180, rotation.Yaw, 0.001)
	assert.Zero(t, rotation.Roll)
}

func TestNewWeaponComponentRejectsNegativeBoomRadius(t *testing.T) {
	f := newFixture(t)
	weaponConfig := f.assets.Weapon
	weaponConfig.BoomRadius = -1

	_, err := NewWeaponComponent(WeaponName, weaponConfig, ServicesFromWorld(f.world))

	assert.ErrorIs(t, err, ErrNegativeBoomRadius)
}

func TestWeaponWithoutWorldServicesOnlyAnimates(t *testing.T) {
	f := newFixture(t)
	services := ServicesFromWorld(nil)
	assert.Equal(t, WeaponServices{}, services)
	weapon, err := NewWeaponComponent(WeaponName, f.assets.Weapon, services)
	require.NoError(t, err)
	require.True(t, weapon.AttachWeapon(f.character))
	mana := f.character.Mana()

	weapon.Fire()
	weapon.CastBoom()
	weapon.TickComponent(frame)

	assert.Empty(t, f.projectiles())
	assert.Zero(t, f.audio.PlayCount())
	assert.Equal(t, 1, f.character.GetMesh1P().GetAnimInstance().PlayCount())
	assert.Equal(t, mana-f.assets.Weapon.BoomManaCost, f.character.Mana())
	assert.False(t, weapon.GetWhereAiming().Hit)
	assert.Nil(t, weapon.AimEffect())
}

func TestAttachWeaponBindsOwnerSocketAndControls(t *testing.T) {
	f := newFixture(t)
	bindingsBefore := f.controller.InputComponent.BindingCount()
	weapon := f.newWeapon(t, f.assets.Weapon)

	require.True(t, weapon.AttachWeapon(f.character))

	assert.Same(t, f.character, weapon.GetCharacter())
	assert.Same(t, weapon, f.character.Weapon)
	assert.True(t, f.character.HasInstanceComponent(weapon))
	assert.Same(t, weapon.GetTransform(), f.character.GetMesh1P().AttachedTo(GripSocket))
	assert.True(t, f.controller.Subsystem.HasMappingContext(f.assets.Input.Weapons))
	assert.Equal(t, bindingsBefore+2, f.controller.InputComponent.BindingCount())
}

func TestAttachWeaponFailsForNilTarget(t *testing.T) {
	f := newFixture(t)
	weapon := f.newWeapon(t, f.assets.Weapon)

	assert.False(t, weapon.AttachWeapon(nil))
	assert.Nil(t, weapon.GetCharacter())
}

func TestAttachWeaponToArmedCharacterFailsWithoutMutation(t *testing.T) {
	f := newFixture(t)
	first := f.armed(t)
	components := len(f.character.GetInstanceComponents())
	bindings := f.controller.InputComponent.BindingCount()
	second := f.newWeapon(t, f.assets.Weapon)

	assert.False(t, second.AttachWeapon(f.character))

	assert.Same(t, first, f.character.Weapon)
	assert.Len(t, f.character.GetInstanceComponents(), components)
	assert.Equal(t, bindings, f.controller.InputComponent.BindingCount())
	assert.Same(t, first.GetTransform(), f.character.GetMesh1P().AttachedTo(GripSocket))
	assert.Nil(t, second.GetCharacter())
}

func TestAttachWeaponAlreadyCarriedFails(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)
	otherClass, _ := f.assets.Registry.Get(ClassCharacter)
	spawned, ok := f.world.SpawnActor(otherClass, mgl32.Vec3{500, 500, 96}, util.Rotator{}, actor.SpawnParams{})
	require.True(t, ok)
	other := spawned.(*Character)

	assert.False(t, weapon.AttachWeapon(other))

	assert.Nil(t, other.Weapon)
	assert.Same(t, f.character, weapon.GetCharacter())
}

func TestFireSpawnsProjectileAtMuzzle(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)

	weapon.Fire()

	projectiles := f.projectiles()
	require.Len(t, projectiles, 1)
	projectile := projectiles[0].(*Projectile)
	assert.Same(t, weapon, projectile.Owner)
	location := projectile.GetActorLocation()
	assert.InDelta(t, 100, location.X(), 0.01)
	assert.InDelta(t, 0, location.Y(), 0.01)
	assert.InDelta(t, 106, location.Z(), 0.01)
	assert.InDelta(t, f.assets.Settings.Projectile.InitialSpeed, projectile.GetVelocity().X(), 0.1)
	assert.Equal(t, 1, f.audio.PlayCount())
	assert.Equal(t, 1, f.character.GetMesh1P().GetAnimInstance().PlayCount())
}

func TestFireRotatesMuzzleOffsetIntoCameraSpace(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)
	f.controller.CameraManager.SetRotation(util.Rotator{Yaw: 90})

	weapon.Fire()

	projectiles := f.projectiles()
	require.Len(t, projectiles, 1)
	location := projectiles[0].Base().GetActorLocation()
	assert.InDelta(t, 0, location.X(), 0.01)
	assert.InDelta(t, 100, location.Y(), 0.01)
	assert.InDelta(t, 106, location.Z(), 0.01)
}

func TestFireWithoutProjectileClassStillPlaysSoundAndAnimation(t *testing.T) {
	f := newFixture(t)
	weaponConfig := f.assets.Weapon
	weaponConfig.ProjectileClass = nil
	weapon := f.newWeapon(t, weaponConfig)
	require.True(t, weapon.AttachWeapon(f.character))

	weapon.Fire()

	assert.Empty(t, f.projectiles())
	assert.Equal(t, 1, f.audio.PlayCount())
	assert.Equal(t, 1, f.character.GetMesh1P().GetAnimInstance().PlayCount())
}

func TestFireIntoBlockedMuzzleSkipsOnlyTheProjectile(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)
	f.addStatic(t, "Rock", mgl32.Vec3{300, 0, 100}, mgl32.Vec3{600, 600, 600})

	weapon.Fire()

	assert.Empty(t, f.projectiles())
	assert.Equal(t, 1, f.audio.PlayCount())
	assert.Equal(t, 1, f.character.GetMesh1P().GetAnimInstance().PlayCount())
}

func TestFireIntoThinWallNeverSpawnsBehindIt(t *testing.T) {
	for _, wallCenterX := range []float32{100, 93} {
		f := newFixture(t)
		weapon := f.armed(t)
		f.addStatic(t, "ThinWall", mgl32.Vec3{wallCenterX, 0, 500}, mgl32.Vec3{20, 4000, 1000})

		weapon.Fire()

		assert.Empty(t, f.projectiles(), "wall centered at x=%v", wallCenterX)
		assert.Equal(t, 1, f.audio.PlayCount())
	}
}

func TestFireWithMuzzleInNearFaceOfWallSpawnsInFront(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)
	f.addStatic(t, "ThinWall", mgl32.Vec3{108, 0, 500}, mgl32.Vec3{20, 4000, 1000})

	weapon.Fire()

	projectiles := f.projectiles()
	require.Len(t, projectiles, 1)
	location := projectiles[0].Base().GetActorLocation()
	assert.Less(t, location.X(), float32(98))
	assert.Greater(t, location.X(), float32(90))
}

func TestFireWithoutControllerDoesNothing(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)
	f.controller.UnPossess()

	weapon.Fire()

	assert.Empty(t, f.projectiles())
	assert.Zero(t, f.audio.PlayCount())
}

func TestGetWhereAimingReturnsWallHit(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	weapon := f.armed(t)

	aim := weapon.GetWhereAiming()

	require.True(t, aim.Hit)
	assert.InDelta(t, 1000, aim.Location.X(), 0.01)
	assert.InDelta(t, 156, aim.Location.Z(), 0.01)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, aim.Normal)
}

func TestGetWhereAimingWithNothingInRangeIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.addStatic(t, "FarWall", mgl32.Vec3{6010, 0, 500}, mgl32.Vec3{20, 4000, 1000})
	weapon := f.armed(t)

	assert.Equal(t, AimResult{}, weapon.GetWhereAiming())
}

func TestGetWhereAimingUnownedIsEmpty(t *testing.T) {
	f := newFixture(t)
	weapon := f.newWeapon(t, f.assets.Weapon)

	assert.Equal(t, AimResult{}, weapon.GetWhereAiming())
}

func TestAimReusesTheEffectAndOnlyMovesIt(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	weapon := f.armed(t)

	weapon.Aim()
	first := weapon.AimEffect()
	require.NotNil(t, first)
	assertSurfaceFacingBack(t, first.GetWorldRotation())

	f.controller.CameraManager.ChangeAngles(100, 0)
	weapon.Aim()

	assert.Same(t, first, weapon.AimEffect())
	assert.Len(t, f.world.Effects.ActiveComponents(), 1)
	assert.Equal(t, 1, f.world.Effects.SpawnCount())
	assert.Equal(t, 1, first.MoveCount())
	assert.Greater(t, first.GetWorldLocation().Y(), float32(100))
}

func TestTickShowsTheReticle(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	weapon := f.armed(t)

	f.world.Tick(frame)
	f.world.Tick(frame)

	require.NotNil(t, weapon.AimEffect())
	assert.Equal(t, 1, f.world.Effects.SpawnCount())
	assert.InDelta(t, 1000, weapon.AimEffect().GetWorldLocation().X(), 0.5)
}

func TestBoomPushesSimulatedBodiesAndSkipsUnnormalizable(t *testing.T) {
	f := newFixture(t)
	weapon := f.armed(t)
	center := mgl32.Vec3{1000, 1000, 300}
	atCenter := f.addProp(t, "AtCenter", center, true)
	pushed := f.addProp(t, "Pushed", center.Add(mgl32.Vec3{100, 0, 0}), true)
	kinematic := f.addProp(t, "Kinematic", center.Add(mgl32.Vec3{0, 60, 0}), false)
	outside := f.addProp(t, "Outside", center.Add(mgl32.Vec3{0, -400, 0}), true)

	weapon.Boom(center, util.Rotator{})

	assert.Equal(t, mgl32.Vec3{}, atCenter.Mesh.Velocity)
	assert.Equal(t, mgl32.Vec3{1000, 0, 0}, pushed.Mesh.Velocity)
	assert.Equal(t, mgl32.Vec3{}, kinematic.Mesh.Velocity)
	assert.Equal(t, mgl32.Vec3{}, outside.Mesh.Velocity)

	effects := f.world.Effects.ActiveComponents()
	require.Len(t, effects, 1)
	assert.Same(t, f.assets.Weapon.BoomEffect, effects[0].Template())
	assert.Equal(t, center, effects[0].GetWorldLocation())
	assert.Equal(t, util.Rotator{Pitch: -90}, effects[0].GetWorldRotation())
}

func TestCastBoomWithoutManaDoesNothing(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	weapon := f.armed(t)
	f.character.SetMana(10)

	weapon.CastBoom()

	assert.Zero(t, f.world.Effects.SpawnCount())
	assert.Equal(t, float32(10), f.character.Mana())
}

func TestCastBoomSpendsManaAndBoomsAtAimPoint(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	weapon := f.armed(t)
	f.character.SetMana(100)

	weapon.CastBoom()

	assert.Equal(t, float32(75), f.character.Mana())
	effects := f.world.Effects.ActiveComponents()
	require.Len(t, effects, 1)
	assert.InDelta(t, 1000, effects[0].GetWorldLocation().X(), 0.01)
	assertSurfaceFacingBack(t, effects[0].GetWorldRotation())
}

func TestFireOverridesJumpOnSharedTouchKey(t *testing.T) {
	f := newFixture(t)
	f.world.Tick(frame)
	require.True(t, f.character.IsOnGround())
	f.armed(t)

	f.controller.Subsystem.KeyDown(input.KeyTouch1)
	f.world.Tick(frame)

	assert.Len(t, f.projectiles(), 1)
	assert.True(t, f.character.IsOnGround())
}

func TestTouchJumpsWithoutWeapon(t *testing.T) {
	f := newFixture(t)
	f.world.Tick(frame)
	startZ := f.character.GetActorLocation().Z()

	f.controller.Subsystem.KeyDown(input.KeyTouch1)
	f.world.Tick(frame)

	assert.Empty(t, f.projectiles())
	assert.False(t, f.character.IsOnGround())
	assert.Greater(t, f.character.GetActorLocation().Z(), startZ)
}

func TestBoomKeyCastsBoom(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	f.armed(t)
	f.character.SetMana(100)

	f.controller.Subsystem.KeyDown(input.KeyE)
	f.world.Tick(frame)
	f.world.Tick(frame)

	assert.Equal(t, float32(75), f.character.Mana())
}

func TestDestroyingCharacterRemovesWeaponControls(t *testing.T) {
	f := newFixture(t)
	f.addWall(t)
	bindingsBefore := f.controller.InputComponent.BindingCount()
	weapon := f.armed(t)
	f.world.Tick(frame)
	require.NotNil(t, weapon.AimEffect())
	aimEffect := weapon.AimEffect()

	f.world.DestroyActor(f.character)

	assert.False(t, f.controller.Subsystem.HasMappingContext(f.assets.Input.Weapons))
	assert.Equal(t, bindingsBefore, f.controller.InputComponent.BindingCount())
	assert.False(t, aimEffect.IsActive())

	f.controller.Subsystem.KeyDown(input.KeyLeftMouseButton)
	f.world.Tick(frame)
	assert.Empty(t, f.projectiles())
}

func TestEndPlayWithoutOwnerIsNoop(t *testing.T) {
	f := newFixture(t)
	weapon := f.newWeapon(t, f.assets.Weapon)

	weapon.EndPlay(actor.EndPlayDestroyed)

	assert.True(t, f.controller.Subsystem.HasMappingContext(f.assets.Input.Default))
}
