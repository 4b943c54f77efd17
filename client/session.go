package client

import (
	"fmt"

	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/audio"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/level"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
	"github.com/memmaker/prototype/game"
	"github.com/pkg/errors"
)

const particleCapacity = 4096

// Session is one running game: the world, its level and the local player.
type Session struct {
	Settings   config.Settings
	Assets     *game.Assets
	World      *actor.World
	Audio      *audio.Manager
	Controller *game.PlayerController
	Level      *level.Level
}

// NewSession builds the world and starts play. An empty level path uses the built-in arena.
func NewSession(settings config.Settings) (*Session, error) {
	assets, err := game.NewAssets(settings)
	if err != nil {
		return nil, errors.Wrap(err, "could not build assets")
	}
	lvl := level.Default()
	if settings.Level != "" {
		lvl, err = level.Load(settings.Level)
		if err != nil {
			return nil, err
		}
	}

	audioManager := audio.NewManager(audio.Settings{
		SampleRate:        settings.Audio.SampleRate,
		MasterVolume:      settings.Audio.MasterVolume,
		AttenuationRadius: settings.Audio.AttenuationRadius,
	})
	if settings.Audio.Enabled {
		if err = audioManager.Initialize(); err != nil {
			util.LogAudioError(fmt.Sprintf("[Session] audio disabled: %v", err))
		}
	}

	world := actor.NewWorld(physics.NewWorld(), effects.NewManager(particleCapacity), audioManager)
	mode, err := game.NewGameMode(assets)
	if err != nil {
		return nil, err
	}
	controller, err := mode.StartPlay(world, lvl)
	if err != nil {
		return nil, errors.Wrap(err, "could not start play")
	}
	return &Session{
		Settings:   settings,
		Assets:     assets,
		World:      world,
		Audio:      audioManager,
		Controller: controller,
		Level:      lvl,
	}, nil
}

func (s *Session) Input() *input.Subsystem {
	return s.Controller.Subsystem
}

func (s *Session) Pawn() *game.Character {
	return s.Controller.GetPawn()
}

func (s *Session) Tick(deltaTime float64) {
	s.World.Tick(deltaTime)
	s.Audio.SetListener(s.Controller.CameraManager.GetCameraLocation())
}

// Status is a one line summary of the local player.
func (s *Session) Status() string {
	pawn := s.Pawn()
	if pawn == nil || pawn.IsPendingKill() {
		return "no pawn"
	}
	location := pawn.GetActorLocation()
	armed := "unarmed"
	if pawn.Weapon != nil {
		armed = fmt.Sprintf("armed, %d impacts", pawn.Weapon.ImpactCount())
	}
	return fmt.Sprintf("pos (%0.0f, %0.0f, %0.0f) yaw %0.0f mana %0.0f %s, %d particles",
		location.X(), location.Y(), location.Z(),
		s.Controller.CameraManager.GetCameraRotation().Yaw,
		pawn.Mana(), armed, s.World.Effects.Particles().ActiveCount())
}

func (s *Session) Shutdown() {
	s.World.Shutdown()
	s.Audio.Cleanup()
}
