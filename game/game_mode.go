package game

import (
	"fmt"

	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/asset"
	"github.com/memmaker/prototype/engine/level"
	"github.com/memmaker/prototype/engine/util"
	"github.com/pkg/errors"
)

// GameMode populates a world from a level and hands the player a pawn.
type GameMode struct {
	assets           *Assets
	DefaultPawnClass *actor.Class
	ControllerClass  *actor.Class
	// ModelScale converts glTF units (metres) to world units.
	ModelScale float32
}

func NewGameMode(assets *Assets) (*GameMode, error) {
	pawnClass, err := assets.Registry.Get(assets.Settings.DefaultPawnClass)
	if err != nil {
		return nil, errors.Wrap(err, "default pawn class")
	}
	if pawnClass == nil {
		return nil, errors.Wrap(actor.ErrNoClass, "no default pawn class configured")
	}
	controllerClass, err := assets.Registry.Get(ClassPlayerController)
	if err != nil {
		return nil, err
	}
	return &GameMode{
		assets:           assets,
		DefaultPawnClass: pawnClass,
		ControllerClass:  controllerClass,
		ModelScale:       100,
	}, nil
}

// StartPlay spawns the level into world and possesses the default pawn.
func (g *GameMode) StartPlay(world *actor.World, lvl *level.Level) (*PlayerController, error) {
	if lvl.KillZ != 0 {
		world.Physics.KillZ = lvl.KillZ
	}
	staticClass, _ := g.assets.Registry.Get(ClassStaticGeometry)
	for _, box := range lvl.Statics {
		extents := box.Extents.Vec3()
		world.SpawnActor(staticClass, box.Center.Vec3(), util.Rotator{}, actor.SpawnParams{
			Name:              box.Name,
			CollisionHandling: actor.AlwaysSpawn,
			Prepare: func(a actor.Actor) {
				a.(*StaticGeometry).Resize(extents)
			},
		})
	}

	propClass, _ := g.assets.Registry.Get(ClassPhysicsProp)
	for _, prop := range lvl.Props {
		extents := prop.Extents.Vec3()
		if prop.Model != "" {
			bounds, err := asset.LoadBounds(prop.Model, g.ModelScale)
			if err != nil {
				util.LogIOError(fmt.Sprintf("[GameMode] prop %s: %v", prop.Name, err))
			} else {
				extents = bounds.Extents()
			}
		}
		mass, simulate := prop.Mass, prop.IsSimulated()
		world.SpawnActor(propClass, prop.Location.Vec3(), util.Rotator{}, actor.SpawnParams{
			Name:              prop.Name,
			CollisionHandling: actor.AdjustIfPossibleButAlwaysSpawn,
			Prepare: func(a actor.Actor) {
				a.(*PhysicsProp).Configure(extents, mass, simulate)
			},
		})
	}

	spawnedController, ok := world.SpawnActor(g.ControllerClass, lvl.PlayerStart.Vec3(), util.Rotator{}, actor.SpawnParams{})
	if !ok {
		return nil, errors.New("could not spawn the player controller")
	}
	controller, isController := spawnedController.(*PlayerController)
	if !isController {
		return nil, errors.Errorf("class %s does not make player controllers", g.ControllerClass)
	}

	spawnedPawn, ok := world.SpawnActor(g.DefaultPawnClass, lvl.PlayerStart.Vec3(), util.Rotator{Yaw: lvl.PlayerYaw}, actor.SpawnParams{
		CollisionHandling: actor.AdjustIfPossibleButAlwaysSpawn,
	})
	if !ok {
		return nil, errors.New("could not spawn the default pawn")
	}
	pawn, isCharacter := spawnedPawn.(*Character)
	if !isCharacter {
		return nil, errors.Errorf("default pawn class %s does not make characters", g.DefaultPawnClass)
	}
	controller.Possess(pawn)

	for _, pickup := range lvl.Pickups {
		class, err := g.assets.Registry.Get(pickup.Class)
		if err != nil || class == nil {
			util.LogGameError(fmt.Sprintf("[GameMode] skipping pickup: %v", err))
			continue
		}
		world.SpawnActor(class, pickup.Location.Vec3(), util.Rotator{}, actor.SpawnParams{CollisionHandling: actor.AlwaysSpawn})
	}
	util.LogGameInfo(fmt.Sprintf("[GameMode] started '%s' with %d actors", lvl.Name, len(world.Actors())))
	return controller, nil
}
