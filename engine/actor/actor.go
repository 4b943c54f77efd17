package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
)

type Actor interface {
	ID() uuid.UUID
	GetName() string
	Base() *BaseActor
}

type BeginPlayer interface {
	BeginPlay()
}

type EndPlayReason int

const (
	EndPlayDestroyed EndPlayReason = iota
	EndPlayRemovedFromWorld
	EndPlayQuit
)

func (r EndPlayReason) String() string {
	switch r {
	case EndPlayDestroyed:
		return "Destroyed"
	case EndPlayRemovedFromWorld:
		return "RemovedFromWorld"
	case EndPlayQuit:
		return "Quit"
	}
	return fmt.Sprintf("EndPlayReason(%d)", int(r))
}

type EndPlayer interface {
	EndPlay(reason EndPlayReason)
}

type Ticker interface {
	Tick(deltaTime float64)
}

// InputProcessor runs before physics in every world tick.
type InputProcessor interface {
	ProcessInput(deltaTime float64)
}

// AnimationTicker runs after actors and effects in every world tick.
type AnimationTicker interface {
	TickAnimation(deltaTime float64)
}

// BaseActor carries the state every actor shares. Embed it and return it from Base.
type BaseActor struct {
	id         uuid.UUID
	name       string
	self       Actor
	class      *Class
	world      *World
	owner      Actor
	root       *util.Transform
	body       *physics.Body
	components []Component

	InitialLifeSpan float32
	lifeLeft        float32
	pendingKill     bool
}

func NewBaseActor(name string) BaseActor {
	return BaseActor{
		id:   uuid.New(),
		name: name,
		root: util.NewDefaultTransform(name),
	}
}

func (a *BaseActor) ID() uuid.UUID {
	return a.id
}

func (a *BaseActor) GetName() string {
	return a.name
}

func (a *BaseActor) Base() *BaseActor {
	return a
}

func (a *BaseActor) String() string {
	return fmt.Sprintf("%s(%s)", a.name, a.id.String()[:8])
}

func (a *BaseActor) GetWorld() *World {
	return a.world
}

func (a *BaseActor) GetClass() *Class {
	return a.class
}

func (a *BaseActor) GetOwner() Actor {
	return a.owner
}

func (a *BaseActor) SetOwner(owner Actor) {
	a.owner = owner
}

// RootTransform is the transform that components attach to.
func (a *BaseActor) RootTransform() *util.Transform {
	return a.root
}

// SetCollisionBody makes body the actor's root collision. Its position drives the actor location.
func (a *BaseActor) SetCollisionBody(body *physics.Body) {
	a.body = body
	if body != nil {
		body.Position = a.root.GetPosition()
	}
}

func (a *BaseActor) CollisionBody() *physics.Body {
	return a.body
}

func (a *BaseActor) GetActorLocation() mgl32.Vec3 {
	if a.body != nil {
		a.root.SetPosition(a.body.Position)
	}
	return a.root.GetPosition()
}

func (a *BaseActor) SetActorLocation(location mgl32.Vec3) {
	a.root.SetPosition(location)
	if a.body != nil {
		a.body.Position = location
	}
}

func (a *BaseActor) GetActorRotation() util.Rotator {
	return a.root.GetRotation()
}

func (a *BaseActor) SetActorRotation(rotation util.Rotator) {
	a.root.SetRotation(rotation)
}

func (a *BaseActor) GetActorForwardVector() mgl32.Vec3 {
	return a.GetActorRotation().Vector()
}

// AddInstanceComponent registers component with the actor. Registered components
// receive TickComponent and EndPlay with the actor.
func (a *BaseActor) AddInstanceComponent(component Component) bool {
	if component == nil || a.HasInstanceComponent(component) {
		return false
	}
	a.components = append(a.components, component)
	return true
}

func (a *BaseActor) HasInstanceComponent(component Component) bool {
	for _, c := range a.components {
		if c.ID() == component.ID() {
			return true
		}
	}
	return false
}

func (a *BaseActor) GetInstanceComponents() []Component {
	return a.components
}

func (a *BaseActor) IsPendingKill() bool {
	return a.pendingKill
}

func (a *BaseActor) SetLifeSpan(seconds float32) {
	a.lifeLeft = seconds
}

// Destroy schedules the actor for removal at the end of the current world tick.
func (a *BaseActor) Destroy() {
	if a.world == nil || a.pendingKill {
		return
	}
	a.world.DestroyActor(a.self)
}

// FindComponent returns the first instance component of actor that has type T.
func FindComponent[T Component](actor Actor) (T, bool) {
	var zero T
	if actor == nil {
		return zero, false
	}
	for _, c := range actor.Base().components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}
