package actor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/memmaker/prototype/engine/audio"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
)

// World owns all actors and the subsystems they talk to. Everything runs on the
// goroutine that calls Tick.
type World struct {
	Physics *physics.World
	Effects *effects.Manager
	Audio   *audio.Manager

	actors         []Actor
	byID           map[uuid.UUID]Actor
	pendingDestroy []Actor
	timeSeconds    float64
	frames         uint64
	timer          *util.FrameTimer
	ticking        bool
}

func NewWorld(physicsWorld *physics.World, effectManager *effects.Manager, audioManager *audio.Manager) *World {
	return &World{
		Physics: physicsWorld,
		Effects: effectManager,
		Audio:   audioManager,
		byID:    make(map[uuid.UUID]Actor),
		timer:   util.NewFrameTimer(),
	}
}

// SpawnActor constructs an actor of class at the given pose. Actors with a collision
// body are placed according to params.CollisionHandling; false means nothing was spawned.
func (w *World) SpawnActor(class *Class, location mgl32.Vec3, rotation util.Rotator, params SpawnParams) (Actor, bool) {
	if class == nil || class.New == nil {
		util.LogGameError("[World] SpawnActor called without a class")
		return nil, false
	}
	spawned := class.New()
	base := spawned.Base()
	base.self = spawned
	base.class = class
	base.world = w
	base.owner = params.Owner
	if params.Name != "" {
		base.name = params.Name
		base.root.SetName(params.Name)
	}
	if params.Prepare != nil {
		params.Prepare(spawned)
	}

	placed, ok := w.placement(base, location, params)
	if !ok {
		base.world = nil
		util.LogGameDebug(fmt.Sprintf("[World] could not spawn %s at %v (%s)", class, location, params.CollisionHandling))
		return nil, false
	}
	base.SetActorLocation(placed)
	base.SetActorRotation(rotation)
	base.lifeLeft = base.InitialLifeSpan
	if base.body != nil {
		if base.body.Owner == nil {
			base.body.Owner = spawned
		}
		w.Physics.AddBody(base.body)
	}
	w.actors = append(w.actors, spawned)
	w.byID[base.id] = spawned
	util.LogGameDebug(fmt.Sprintf("[World] spawned %s of class %s at %v", base, class, placed))

	if starter, isStarter := spawned.(BeginPlayer); isStarter {
		starter.BeginPlay()
	}
	return spawned, true
}

func (w *World) placement(base *BaseActor, location mgl32.Vec3, params SpawnParams) (mgl32.Vec3, bool) {
	if base.body == nil || params.CollisionHandling == AlwaysSpawn {
		return location, true
	}
	var ignore []*physics.Body
	if params.Owner != nil && params.Owner.Base().body != nil {
		ignore = append(ignore, params.Owner.Base().body)
	}
	shape, channel := base.body.Shape, base.body.ObjectType
	switch params.CollisionHandling {
	case DontSpawnIfColliding:
		if len(w.Physics.OverlapBlocking(shape, location, channel, ignore...)) > 0 {
			return location, false
		}
		return location, w.reachableFromOwner(params.Owner, location, channel)
	case AdjustIfPossibleButAlwaysSpawn:
		adjusted, _ := w.Physics.FindSpawnLocation(shape, location, channel, ignore...)
		return adjusted, true
	default:
		adjusted, ok := w.Physics.FindSpawnLocation(shape, location, channel, ignore...)
		return adjusted, ok && w.reachableFromOwner(params.Owner, adjusted, channel)
	}
}

// reachableFromOwner reports whether nothing blocking channel lies between the
// owner's body and location. Spawns without an owner body are always reachable.
func (w *World) reachableFromOwner(owner Actor, location mgl32.Vec3, channel physics.CollisionChannel) bool {
	if owner == nil || owner.Base().body == nil {
		return true
	}
	body := owner.Base().body
	if hit, blocked := w.Physics.LineTraceSingle(body.Position, location, channel, body); blocked {
		util.LogGameDebug(fmt.Sprintf("[World] %v is behind %s as seen from %s", location, hit.Body, owner.Base()))
		return false
	}
	return true
}

// DestroyActor marks a for removal. EndPlay runs when the current tick finishes, or
// immediately when called outside of Tick.
func (w *World) DestroyActor(a Actor) {
	if a == nil {
		return
	}
	base := a.Base()
	if base.world != w || base.pendingKill {
		return
	}
	base.pendingKill = true
	w.pendingDestroy = append(w.pendingDestroy, a)
	if !w.ticking {
		w.FlushDestroyed()
	}
}

func (w *World) Tick(deltaTime float64) {
	w.timeSeconds += deltaTime
	w.frames++
	w.ticking = true

	stop := w.timer.Start("input")
	for _, a := range w.liveActors() {
		if processor, ok := a.(InputProcessor); ok {
			processor.ProcessInput(deltaTime)
		}
	}
	stop()

	stop = w.timer.Start("physics")
	for _, body := range w.Physics.Step(deltaTime) {
		if owner, ok := body.Owner.(Actor); ok {
			util.LogPhysicsDebug(fmt.Sprintf("[World] %s fell out of the world", owner.Base()))
			w.DestroyActor(owner)
		}
	}
	stop()

	stop = w.timer.Start("actors")
	for _, a := range w.liveActors() {
		w.tickActor(a, deltaTime)
	}
	stop()

	stop = w.timer.Start("effects")
	if w.Effects != nil {
		w.Effects.Tick(deltaTime)
	}
	stop()

	stop = w.timer.Start("animation")
	for _, a := range w.liveActors() {
		if animated, ok := a.(AnimationTicker); ok {
			animated.TickAnimation(deltaTime)
		}
	}
	stop()

	w.ticking = false
	w.FlushDestroyed()
}

func (w *World) tickActor(a Actor, deltaTime float64) {
	base := a.Base()
	if base.pendingKill {
		return
	}
	if base.lifeLeft > 0 {
		base.lifeLeft -= float32(deltaTime)
		if base.lifeLeft <= 0 {
			w.DestroyActor(a)
			return
		}
	}
	if ticker, ok := a.(Ticker); ok {
		ticker.Tick(deltaTime)
	}
	for _, c := range append([]Component(nil), base.components...) {
		if ticker, ok := c.(ComponentTicker); ok && !base.pendingKill {
			ticker.TickComponent(deltaTime)
		}
	}
}

func (w *World) liveActors() []Actor {
	live := make([]Actor, 0, len(w.actors))
	for _, a := range w.actors {
		if !a.Base().pendingKill {
			live = append(live, a)
		}
	}
	return live
}

// FlushDestroyed ends play for every actor marked for destruction.
func (w *World) FlushDestroyed() {
	for len(w.pendingDestroy) > 0 {
		batch := w.pendingDestroy
		w.pendingDestroy = nil
		for _, a := range batch {
			w.endPlay(a, EndPlayDestroyed)
		}
	}
}

func (w *World) endPlay(a Actor, reason EndPlayReason) {
	base := a.Base()
	if ender, ok := a.(EndPlayer); ok {
		ender.EndPlay(reason)
	}
	for _, c := range append([]Component(nil), base.components...) {
		if ender, ok := c.(EndPlayer); ok {
			ender.EndPlay(reason)
		}
	}
	if base.body != nil {
		w.Physics.RemoveBody(base.body)
	}
	for i, other := range w.actors {
		if other == a {
			w.actors = append(w.actors[:i], w.actors[i+1:]...)
			break
		}
	}
	delete(w.byID, base.id)
	base.world = nil
	util.LogGameDebug(fmt.Sprintf("[World] %s ended play (%s)", base, reason))
}

// Shutdown ends play for all actors.
func (w *World) Shutdown() {
	w.FlushDestroyed()
	for len(w.actors) > 0 {
		a := w.actors[len(w.actors)-1]
		a.Base().pendingKill = true
		w.endPlay(a, EndPlayQuit)
	}
	if w.Effects != nil {
		w.Effects.Clear()
	}
	util.LogGameInfo(fmt.Sprintf("[World] shut down after %d frames (%0.1fs)\n%s", w.frames, w.timeSeconds, w.timer))
}

func (w *World) Actors() []Actor {
	return w.actors
}

func (w *World) FindActor(id uuid.UUID) (Actor, bool) {
	a, ok := w.byID[id]
	return a, ok
}

func (w *World) ActorsOfClass(class *Class) []Actor {
	var result []Actor
	for _, a := range w.actors {
		if a.Base().class == class {
			result = append(result, a)
		}
	}
	return result
}

func (w *World) TimeSeconds() float64 {
	return w.timeSeconds
}

func (w *World) Timer() *util.FrameTimer {
	return w.timer
}

func (w *World) LineTraceSingle(start, end mgl32.Vec3, channel physics.CollisionChannel) (physics.HitResult, bool) {
	return w.Physics.LineTraceSingle(start, end, channel)
}

func (w *World) SweepMultiSphere(center mgl32.Vec3, radius float32, channel physics.CollisionChannel) []physics.HitResult {
	return w.Physics.SweepMultiSphere(center, radius, channel)
}

func (w *World) SpawnSystemAtLocation(template *effects.Template, location mgl32.Vec3, rotation util.Rotator, scale mgl32.Vec3) *effects.Component {
	if w.Effects == nil {
		return nil
	}
	return w.Effects.SpawnSystemAtLocation(template, location, rotation, scale)
}

func (w *World) PlaySoundAtLocation(cue *audio.Cue, location mgl32.Vec3) bool {
	if w.Audio == nil {
		return false
	}
	return w.Audio.PlaySoundAtLocation(cue, location)
}
