package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/audio"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

type fixture struct {
	assets     *Assets
	world      *actor.World
	audio      *audio.Manager
	controller *PlayerController
	character  *Character
}

func loadSettings(t *testing.T) config.Settings {
	t.Helper()
	t.Cleanup(viper.Reset)
	require.NoError(t, config.Load(t.TempDir()))
	settings, err := config.Get()
	require.NoError(t, err)
	settings.Character.ManaRegen = 0
	return settings
}

func newWorld(audioManager *audio.Manager) *actor.World {
	return actor.NewWorld(physics.NewWorld(), effects.NewManager(512), audioManager)
}

// newFixture builds a world with a floor and a possessed character standing at
// the origin, looking along +X with the camera at height 156.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	assets, err := NewAssets(loadSettings(t))
	require.NoError(t, err)
	f := &fixture{
		assets: assets,
		audio:  audio.NewManager(audio.Settings{SampleRate: 44100, MasterVolume: 1}),
	}
	f.world = newWorld(f.audio)
	f.addStatic(t, "Floor", mgl32.Vec3{0, 0, -10}, mgl32.Vec3{4000, 4000, 20})

	controllerClass, err := assets.Registry.Get(ClassPlayerController)
	require.NoError(t, err)
	spawned, ok := f.world.SpawnActor(controllerClass, mgl32.Vec3{}, util.Rotator{}, actor.SpawnParams{})
	require.True(t, ok)
	f.controller = spawned.(*PlayerController)

	characterClass, err := assets.Registry.Get(ClassCharacter)
	require.NoError(t, err)
	spawned, ok = f.world.SpawnActor(characterClass, mgl32.Vec3{0, 0, 96}, util.Rotator{}, actor.SpawnParams{})
	require.True(t, ok)
	f.character = spawned.(*Character)
	f.controller.Possess(f.character)
	return f
}

func (f *fixture) addStatic(t *testing.T, name string, center, extents mgl32.Vec3) *StaticGeometry {
	t.Helper()
	class, err := f.assets.Registry.Get(ClassStaticGeometry)
	require.NoError(t, err)
	spawned, ok := f.world.SpawnActor(class, center, util.Rotator{}, actor.SpawnParams{
		Name:              name,
		CollisionHandling: actor.AlwaysSpawn,
		Prepare:           func(a actor.Actor) { a.(*StaticGeometry).Resize(extents) },
	})
	require.True(t, ok)
	return spawned.(*StaticGeometry)
}

func (f *fixture) addProp(t *testing.T, name string, location mgl32.Vec3, simulate bool) *PhysicsProp {
	t.Helper()
	class, err := f.assets.Registry.Get(ClassPhysicsProp)
	require.NoError(t, err)
	spawned, ok := f.world.SpawnActor(class, location, util.Rotator{}, actor.SpawnParams{
		Name:              name,
		CollisionHandling: actor.AlwaysSpawn,
		Prepare:           func(a actor.Actor) { a.(*PhysicsProp).Configure(mgl32.Vec3{50, 50, 50}, 100, simulate) },
	})
	require.True(t, ok)
	return spawned.(*PhysicsProp)
}

// addWall puts a wall across the view at x=1000.
func (f *fixture) addWall(t *testing.T) *StaticGeometry {
	return f.addStatic(t, "Wall", mgl32.Vec3{1010, 0, 500}, mgl32.Vec3{20, 4000, 1000})
}

func (f *fixture) newWeapon(t *testing.T, weaponConfig WeaponConfig) *WeaponComponent {
	t.Helper()
	weapon, err := NewWeaponComponent(WeaponName, weaponConfig, ServicesFromWorld(f.world))
	require.NoError(t, err)
	return weapon
}

func (f *fixture) armed(t *testing.T) *WeaponComponent {
	t.Helper()
	weapon := f.newWeapon(t, f.assets.Weapon)
	require.True(t, weapon.AttachWeapon(f.character))
	return weapon
}

func (f *fixture) projectiles() []actor.Actor {
	class, _ := f.assets.Registry.Get(ClassProjectile)
	return f.world.ActorsOfClass(class)
}
