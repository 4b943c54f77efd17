package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/actor"
	"github.com/memmaker/prototype/engine/input"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
)

// Character is the first person pawn. Its body is kinematic: it is moved by input
// and gravity and pushed out of whatever blocks pawns.
type Character struct {
	actor.BaseActor
	Mesh1P *SkeletalMesh
	Weapon *WeaponComponent

	settings   config.CharacterSettings
	inputs     *InputAssets
	controller *PlayerController
	bindings   []input.BindingHandle

	mana      float32
	moveInput mgl32.Vec2
	velocityZ float32
	onGround  bool
}

func NewCharacter(settings config.CharacterSettings, inputs *InputAssets) *Character {
	c := &Character{
		BaseActor: actor.NewBaseActor("FirstPersonCharacter"),
		settings:  settings,
		inputs:    inputs,
		mana:      settings.Mana,
	}
	extents := util.Vec3FromSlice(settings.Extents, mgl32.Vec3{42, 42, 192})
	body := physics.NewBody("CollisionCylinder", physics.NewBox(extents), physics.ChannelPawn)
	c.SetCollisionBody(body)

	c.Mesh1P = NewSkeletalMesh("CharacterMesh1P", c.RootTransform())
	c.Mesh1P.SetPosition(mgl32.Vec3{-10, 0, settings.EyeHeight - 20})
	c.Mesh1P.AddSocket(GripSocket, mgl32.Vec3{30, 15, -10}, util.Rotator{})
	return c
}

func (c *Character) EyeHeight() float32 {
	return c.settings.EyeHeight
}

func (c *Character) GetMesh1P() *SkeletalMesh {
	return c.Mesh1P
}

// GetController returns the possessing player controller or nil.
func (c *Character) GetController() *PlayerController {
	return c.controller
}

func (c *Character) Mana() float32 {
	return c.mana
}

func (c *Character) SetMana(mana float32) {
	c.mana = util.Clamp32(mana, 0, c.maxMana())
}

func (c *Character) maxMana() float32 {
	if c.settings.MaxMana <= 0 {
		return c.settings.Mana
	}
	return c.settings.MaxMana
}

// CastSpell spends cost mana. It returns false and spends nothing if there is not enough.
func (c *Character) CastSpell(cost float32) bool {
	if cost > c.mana {
		util.LogGameDebug(fmt.Sprintf("[Character] not enough mana for spell (%0.1f < %0.1f)", c.mana, cost))
		return false
	}
	c.mana -= cost
	util.LogGameDebug(fmt.Sprintf("[Character] cast spell for %0.1f mana, %0.1f left", cost, c.mana))
	return true
}

func (c *Character) IsOnGround() bool {
	return c.onGround
}

// PossessedBy is called by the controller taking over this pawn.
func (c *Character) PossessedBy(controller *PlayerController) {
	c.controller = controller
	c.SetOwner(controller)
	c.SetupPlayerInputComponent(controller.InputComponent)
}

// UnPossessed drops the pawn's own bindings. Bindings a weapon made stay with the weapon.
func (c *Character) UnPossessed() {
	if c.controller == nil {
		return
	}
	for _, handle := range c.bindings {
		c.controller.InputComponent.RemoveBinding(handle)
	}
	c.bindings = nil
	c.moveInput = mgl32.Vec2{}
	c.controller = nil
	c.SetOwner(nil)
}

func (c *Character) SetupPlayerInputComponent(component *input.Component) {
	if component == nil || c.inputs == nil {
		return
	}
	c.bindings = append(c.bindings,
		component.BindAction(c.inputs.Jump, input.Started, func(input.Value) { c.Jump() }),
		component.BindAction(c.inputs.Move, input.Triggered, c.move),
		component.BindAction(c.inputs.Move, input.Completed, c.move),
		component.BindAction(c.inputs.Look, input.Triggered, c.look),
	)
}

func (c *Character) move(value input.Value) {
	c.moveInput = value.Axis2D()
}

func (c *Character) look(value input.Value) {
	if c.controller == nil {
		return
	}
	axis := value.Axis2D()
	c.controller.CameraManager.ChangeAngles(axis.X(), axis.Y())
	c.SetActorRotation(util.Rotator{Yaw: c.controller.CameraManager.GetCameraRotation().Yaw})
}

func (c *Character) Jump() {
	if !c.onGround {
		return
	}
	c.velocityZ = c.settings.JumpVelocity
	c.onGround = false
}

func (c *Character) Tick(deltaTime float64) {
	dt := float32(deltaTime)
	if c.settings.ManaRegen > 0 {
		c.SetMana(c.mana + c.settings.ManaRegen*dt)
	}
	world := c.GetWorld()
	if world == nil {
		return
	}

	var step mgl32.Vec3
	if c.controller != nil && c.moveInput.Len() > 0 {
		camera := c.controller.CameraManager
		direction := camera.PlanarForward().Mul(c.moveInput.Y()).Add(camera.PlanarRight().Mul(c.moveInput.X()))
		if normalized, ok := util.SafeNormalize(direction); ok {
			step = normalized.Mul(c.settings.WalkSpeed * dt)
		}
	}
	c.velocityZ += world.Physics.Gravity.Z() * dt
	step = step.Add(mgl32.Vec3{0, 0, c.velocityZ * dt})

	body := c.CollisionBody()
	candidate := body.Position.Add(step)
	resolved, ok := world.Physics.FindSpawnLocation(body.Shape, candidate, physics.ChannelPawn, body)
	if !ok {
		c.velocityZ = 0
		return
	}
	c.onGround = false
	if resolved.Z() > candidate.Z() && c.velocityZ <= 0 {
		c.onGround = true
		c.velocityZ = 0
	} else if resolved.Z() < candidate.Z() && c.velocityZ > 0 {
		c.velocityZ = 0
	}
	c.SetActorLocation(resolved)
}

func (c *Character) TickAnimation(deltaTime float64) {
	c.Mesh1P.GetAnimInstance().Tick(deltaTime)
}

func (c *Character) EndPlay(reason actor.EndPlayReason) {
	util.LogGameDebug(fmt.Sprintf("[Character] %s end play (%s)", c, reason))
}
