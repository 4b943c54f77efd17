package physics

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
)

const (
	spawnAdjustIterations = 8
	contactOffset         = 0.01
)

type World struct {
	bodies  []*Body
	nextID  BodyID
	Gravity mgl32.Vec3
	// KillZ is the height below which bodies are reported as out of the world.
	KillZ float32
}

type pendingHit struct {
	body *Body
	hit  HitResult
}

func NewWorld() *World {
	return &World{
		Gravity: mgl32.Vec3{0, 0, -980},
		KillZ:   -10000,
	}
}

func (w *World) AddBody(b *Body) {
	if b.world == w {
		return
	}
	w.nextID++
	b.id = w.nextID
	b.world = w
	w.bodies = append(w.bodies, b)
	util.LogPhysicsDebug(fmt.Sprintf("[World] added %s (%s) at %v", b, b.Shape, b.Position))
}

func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			b.world = nil
			return
		}
	}
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

func isIgnored(b *Body, ignore []*Body) bool {
	for _, ignored := range ignore {
		if ignored == b {
			return true
		}
	}
	return false
}

// LineTraceSingle returns the closest body blocking the channel along start->end.
func (w *World) LineTraceSingle(start, end mgl32.Vec3, channel CollisionChannel, ignore ...*Body) (HitResult, bool) {
	var best HitResult
	found := false
	for _, b := range w.bodies {
		if !b.blocks(channel) || isIgnored(b, ignore) {
			continue
		}
		hit, t, normal := b.Shape.Raycast(b.Position, start, end)
		if !hit || (found && t >= best.Time) {
			continue
		}
		location := start.Add(end.Sub(start).Mul(t))
		best = HitResult{
			BlockingHit: true,
			Location:    location,
			Normal:      normal,
			Time:        t,
			Distance:    location.Sub(start).Len(),
			Body:        b,
		}
		found = true
	}
	return best, found
}

// SweepMultiSphere is a zero length sphere sweep at center. Every body that does
// not ignore the channel and touches the sphere is returned, nearest first.
func (w *World) SweepMultiSphere(center mgl32.Vec3, radius float32, channel CollisionChannel) []HitResult {
	var hits []HitResult
	for _, b := range w.bodies {
		if !b.overlapsOn(channel) {
			continue
		}
		if !b.Shape.OverlapsSphere(b.Position, center, radius) {
			continue
		}
		impact := b.Bounds().ClosestPoint(center)
		normal, _ := util.SafeNormalize(center.Sub(impact))
		hits = append(hits, HitResult{
			BlockingHit: b.blocks(channel),
			Location:    center,
			Normal:      normal,
			Distance:    b.Position.Sub(center).Len(),
			Body:        b,
		})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// OverlapBlocking returns the bodies blocking channel that a shape placed at position would penetrate.
func (w *World) OverlapBlocking(shape Shape, position mgl32.Vec3, channel CollisionChannel, ignore ...*Body) []*Body {
	var result []*Body
	for _, b := range w.bodies {
		if !b.blocks(channel) || isIgnored(b, ignore) {
			continue
		}
		if _, ok := Penetration(shape, position, b.Shape, b.Position); ok {
			result = append(result, b)
		}
	}
	return result
}

// FindSpawnLocation pushes a shape out of everything blocking channel.
// It returns false if no free location was found within two shape sizes of position,
// or if getting free would carry the shape through a blocker's center to its far side.
func (w *World) FindSpawnLocation(shape Shape, position mgl32.Vec3, channel CollisionChannel, ignore ...*Body) (mgl32.Vec3, bool) {
	maxAdjust := shape.Size() * 2
	candidate := position
	for i := 0; i < spawnAdjustIterations; i++ {
		if candidate.Sub(position).Len() > maxAdjust {
			return position, false
		}
		blocking := w.OverlapBlocking(shape, candidate, channel, ignore...)
		if len(blocking) == 0 {
			return candidate, true
		}
		for _, b := range blocking {
			push, ok := Penetration(shape, candidate, b.Shape, b.Position)
			if !ok {
				continue
			}
			if push.Dot(position.Sub(b.Position)) <= 0 {
				util.LogPhysicsDebug(fmt.Sprintf("[World] %s at %v would be pushed through %s", shape, position, b))
				return position, false
			}
			dir, _ := util.SafeNormalize(push)
			candidate = candidate.Add(push).Add(dir.Mul(contactOffset))
		}
	}
	if candidate.Sub(position).Len() <= maxAdjust && len(w.OverlapBlocking(shape, candidate, channel, ignore...)) == 0 {
		return candidate, true
	}
	return position, false
}

// Step advances simulated and projectile bodies by deltaTime seconds. Hit handlers
// run after all bodies moved. The returned bodies fell below KillZ.
func (w *World) Step(deltaTime float64) []*Body {
	dt := float32(deltaTime)
	var hits []pendingHit
	var outOfWorld []*Body
	for _, b := range w.bodies {
		switch {
		case b.Movement != nil:
			if hit, ok := w.moveProjectile(b, dt); ok {
				hits = append(hits, pendingHit{body: b, hit: hit})
			}
		case b.simulate:
			w.integrate(b, dt)
		default:
			continue
		}
		if b.Position.Z() < w.KillZ {
			outOfWorld = append(outOfWorld, b)
		}
	}
	for _, pending := range hits {
		if pending.body.world != w || pending.body.OnHit == nil {
			continue
		}
		pending.body.OnHit(pending.body, pending.hit)
	}
	return outOfWorld
}

func (w *World) moveProjectile(b *Body, dt float32) (HitResult, bool) {
	movement := b.Movement
	b.Velocity = movement.limit(b.Velocity.Add(w.Gravity.Mul(movement.GravityScale * dt)))
	start := b.Position
	end := start.Add(b.Velocity.Mul(dt))
	if start == end {
		return HitResult{}, false
	}

	var best HitResult
	found := false
	for _, other := range w.bodies {
		if other == b || !other.blocks(b.ObjectType) || !b.blocks(other.ObjectType) {
			continue
		}
		hit, t, normal := other.Shape.Inflated(b.Shape.Radius).Raycast(other.Position, start, end)
		if !hit || (found && t >= best.Time) {
			continue
		}
		location := start.Add(end.Sub(start).Mul(t))
		best = HitResult{BlockingHit: true, Location: location, Normal: normal, Time: t, Distance: location.Sub(start).Len(), Body: other, ImpactVelocity: b.Velocity}
		found = true
	}
	if !found {
		b.Position = end
		return HitResult{}, false
	}
	b.Position = best.Location.Add(best.Normal.Mul(contactOffset))
	if movement.ShouldBounce {
		b.Velocity = movement.bounce(b.Velocity, best.Normal)
	} else {
		b.Velocity = mgl32.Vec3{}
	}
	return best, true
}

func (w *World) integrate(b *Body, dt float32) {
	b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	for _, other := range w.bodies {
		if other == b || !other.blocks(b.ObjectType) || !b.blocks(other.ObjectType) {
			continue
		}
		push, ok := Penetration(b.Shape, b.Position, other.Shape, other.Position)
		if !ok {
			continue
		}
		b.Position = b.Position.Add(push)
		if normal, ok := util.SafeNormalize(push); ok {
			if into := b.Velocity.Dot(normal); into < 0 {
				b.Velocity = b.Velocity.Sub(normal.Mul(into))
			}
		}
	}
}
