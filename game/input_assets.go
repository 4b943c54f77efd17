package game

import "github.com/memmaker/prototype/engine/input"

// InputAssets are the actions and mapping contexts of the first person controls.
type InputAssets struct {
	Default *input.MappingContext
	Weapons *input.MappingContext

	Move  *input.Action
	Look  *input.Action
	Jump  *input.Action
	Shoot *input.Action
	Boom  *input.Action
}

func NewInputAssets() *InputAssets {
	a := &InputAssets{
		Move:  input.NewAction("IA_Move", input.Axis2D),
		Look:  input.NewAction("IA_Look", input.Axis2D),
		Jump:  input.NewAction("IA_Jump", input.Digital),
		Shoot: input.NewAction("IA_Shoot", input.Digital),
		Boom:  input.NewAction("IA_Boom", input.Digital),
	}
	a.Default = input.NewMappingContext("IMC_Default").
		Map(a.Jump, input.KeySpaceBar, input.TriggerDown, 0).
		Map(a.Jump, input.KeyTouch1, input.TriggerDown, 0).
		Map(a.Move, input.KeyW, input.TriggerDown, input.ModifierSwizzle).
		Map(a.Move, input.KeyS, input.TriggerDown, input.ModifierSwizzle|input.ModifierNegate).
		Map(a.Move, input.KeyD, input.TriggerDown, 0).
		Map(a.Move, input.KeyA, input.TriggerDown, input.ModifierNegate).
		Map(a.Look, input.KeyMouse2D, input.TriggerDown, 0)
	// Touch1 is mapped in both contexts, the weapon context wins while a weapon is held
	a.Weapons = input.NewMappingContext("IMC_Weapons").
		Map(a.Shoot, input.KeyLeftMouseButton, input.TriggerPressed, 0).
		Map(a.Shoot, input.KeyTouch1, input.TriggerPressed, 0).
		Map(a.Boom, input.KeyE, input.TriggerPressed, 0)
	return a
}
