package game

import (
	"fmt"

	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/util"
)

const DefaultMappingPriority = 0

// PlayerController owns the local player's input and camera and drives one pawn.
type PlayerController struct {
	actor.BaseActor
	Subsystem      *input.Subsystem
	InputComponent *input.Component
	CameraManager  *PlayerCameraManager
	// InputMappingContext is activated on BeginPlay.
	InputMappingContext *input.MappingContext

	pawn *Character
}

func NewPlayerController(defaultContext *input.MappingContext, lookSensitivity float32) *PlayerController {
	return &PlayerController{
		BaseActor:           actor.NewBaseActor("FirstPersonPlayerController"),
		Subsystem:           input.NewSubsystem(),
		InputComponent:      input.NewComponent("PlayerInput"),
		CameraManager:       NewPlayerCameraManager(lookSensitivity),
		InputMappingContext: defaultContext,
	}
}

func (p *PlayerController) BeginPlay() {
	if p.InputMappingContext != nil {
		p.Subsystem.AddMappingContext(p.InputMappingContext, DefaultMappingPriority)
	}
	p.Subsystem.PushInputComponent(p.InputComponent)
	util.LogGameDebug(fmt.Sprintf("[PlayerController] %s ready", p))
}

func (p *PlayerController) ProcessInput(deltaTime float64) {
	p.Subsystem.Tick(deltaTime)
}

// Possess takes over pawn, releasing the current one first.
func (p *PlayerController) Possess(pawn *Character) {
	if pawn == nil || pawn == p.pawn {
		return
	}
	if pawn.GetController() != nil {
		pawn.GetController().UnPossess()
	}
	p.UnPossess()
	p.pawn = pawn
	p.CameraManager.SetViewTarget(pawn)
	pawn.PossessedBy(p)
	util.LogGameInfo(fmt.Sprintf("[PlayerController] possessed %s", pawn))
}

func (p *PlayerController) UnPossess() {
	if p.pawn == nil {
		return
	}
	p.pawn.UnPossessed()
	p.CameraManager.SetViewTarget(nil)
	p.pawn = nil
}

func (p *PlayerController) GetPawn() *Character {
	return p.pawn
}

func (p *PlayerController) EndPlay(reason actor.EndPlayReason) {
	p.Subsystem.PopInputComponent(p.InputComponent)
	p.Subsystem.ClearMappings()
	p.InputComponent.ClearBindings()
}
