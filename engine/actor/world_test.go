package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/effects"
	"github.com/memmaker/prototype/engine/physics"
	"github.com/memmaker/prototype/engine/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingComponent struct {
	BaseComponent
	ticks   int
	endedBy []EndPlayReason
}

func (p *recordingComponent) TickComponent(deltaTime float64) {
	p.ticks++
}

func (p *recordingComponent) EndPlay(reason EndPlayReason) {
	p.endedBy = append(p.endedBy, reason)
}

type recordingActor struct {
	BaseActor
	log *[]string
}

func (p *recordingActor) BeginPlay() {
	*p.log = append(*p.log, "begin:"+p.GetName())
}

func (p *recordingActor) ProcessInput(deltaTime float64) {
	*p.log = append(*p.log, "input")
}

func (p *recordingActor) Tick(deltaTime float64) {
	*p.log = append(*p.log, "tick")
}

func (p *recordingActor) TickAnimation(deltaTime float64) {
	*p.log = append(*p.log, "anim")
}

func (p *recordingActor) EndPlay(reason EndPlayReason) {
	*p.log = append(*p.log, "end:"+reason.String())
}

func newTestWorld() *World {
	return NewWorld(physics.NewWorld(), effects.NewManager(64), nil)
}

func recordingClass(log *[]string, shape *physics.Shape) *Class {
	return &Class{Name: "Recorder", New: func() Actor {
		p := &recordingActor{BaseActor: NewBaseActor("Recorder"), log: log}
		if shape != nil {
			p.SetCollisionBody(physics.NewBody("Recorder", *shape, physics.ChannelProjectile))
		}
		return p
	}}
}

func TestSpawnActorRunsBeginPlayAndTicksInOrder(t *testing.T) {
	w := newTestWorld()
	var log []string
	a, ok := w.SpawnActor(recordingClass(&log, nil), mgl32.Vec3{1, 2, 3}, util.Rotator{Yaw: 90}, SpawnParams{Name: "P1"})
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, a.Base().GetActorLocation())
	assert.Equal(t, float32(90), a.Base().GetActorRotation().Yaw)

	w.Tick(0.016)

	assert.Equal(t, []string{"begin:P1", "input", "tick", "anim"}, log)
	found, ok := w.FindActor(a.ID())
	require.True(t, ok)
	assert.Same(t, a, found)
}

func TestSpawnWithoutClassFails(t *testing.T) {
	w := newTestWorld()

	a, ok := w.SpawnActor(nil, mgl32.Vec3{}, util.Rotator{}, SpawnParams{})

	assert.False(t, ok)
	assert.Nil(t, a)
	assert.Empty(t, w.Actors())
}

func TestSpawnCollisionHandling(t *testing.T) {
	w := newTestWorld()
	wall := physics.NewBody("Wall", physics.NewBox(mgl32.Vec3{20, 400, 400}), physics.ChannelWorldStatic)
	wall.Position = mgl32.Vec3{100, 0, 0}
	w.Physics.AddBody(wall)
	var log []string
	sphere := physics.NewSphere(5)
	class := recordingClass(&log, &sphere)

	_, ok := w.SpawnActor(class, mgl32.Vec3{88, 0, 0}, util.Rotator{}, SpawnParams{CollisionHandling: DontSpawnIfColliding})
	assert.False(t, ok)

	adjusted, ok := w.SpawnActor(class, mgl32.Vec3{88, 0, 0}, util.Rotator{}, SpawnParams{CollisionHandling: AdjustIfPossibleButDontSpawnIfColliding})
	require.True(t, ok)
	assert.Less(t, adjusted.Base().GetActorLocation().X(), float32(86))
	assert.True(t, adjusted.Base().CollisionBody().InWorld())

	_, ok = w.SpawnActor(class, mgl32.Vec3{100, 0, 0}, util.Rotator{}, SpawnParams{CollisionHandling: AdjustIfPossibleButDontSpawnIfColliding})
	assert.False(t, ok)

	forced, ok := w.SpawnActor(class, mgl32.Vec3{100, 0, 0}, util.Rotator{}, SpawnParams{CollisionHandling: AlwaysSpawn})
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{100, 0, 0}, forced.Base().GetActorLocation())
}

func TestSpawnBehindWallAsSeenFromOwnerFails(t *testing.T) {
	w := newTestWorld()
	wall := physics.NewBody("Wall", physics.NewBox(mgl32.Vec3{20, 400, 400}), physics.ChannelWorldStatic)
	wall.Position = mgl32.Vec3{90, 0, 0}
	w.Physics.AddBody(wall)
	var log []string
	sphere := physics.NewSphere(5)
	class := recordingClass(&log, &sphere)

	// without an owner the far half of the wall lets the sphere out behind it
	behind, ok := w.SpawnActor(class, mgl32.Vec3{97, 0, 0}, util.Rotator{}, SpawnParams{CollisionHandling: AdjustIfPossibleButDontSpawnIfColliding})
	require.True(t, ok)
	assert.Greater(t, behind.Base().GetActorLocation().X(), float32(100))
	behind.Base().Destroy()

	owner, ok := w.SpawnActor(class, mgl32.Vec3{}, util.Rotator{}, SpawnParams{Name: "Owner", CollisionHandling: AlwaysSpawn})
	require.True(t, ok)

	_, ok = w.SpawnActor(class, mgl32.Vec3{97, 0, 0}, util.Rotator{}, SpawnParams{Owner: owner, CollisionHandling: AdjustIfPossibleButDontSpawnIfColliding})
	assert.False(t, ok)

	_, ok = w.SpawnActor(class, mgl32.Vec3{150, 0, 0}, util.Rotator{}, SpawnParams{Owner: owner, CollisionHandling: DontSpawnIfColliding})
	assert.False(t, ok)

	inFront, ok := w.SpawnActor(class, mgl32.Vec3{50, 0, 0}, util.Rotator{}, SpawnParams{Owner: owner, CollisionHandling: DontSpawnIfColliding})
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{50, 0, 0}, inFront.Base().GetActorLocation())
}

func TestDestroyRunsEndPlayOnActorAndComponents(t *testing.T) {
	w := newTestWorld()
	var log []string
	a, _ := w.SpawnActor(recordingClass(&log, nil), mgl32.Vec3{}, util.Rotator{}, SpawnParams{Name: "P1"})
	recorder := &recordingComponent{BaseComponent: NewBaseComponent("Recorder")}
	require.True(t, a.Base().AddInstanceComponent(recorder))
	assert.False(t, a.Base().AddInstanceComponent(recorder))

	w.Tick(0.016)
	a.Base().Destroy()

	assert.Equal(t, 1, recorder.ticks)
	assert.Equal(t, []EndPlayReason{EndPlayDestroyed}, recorder.endedBy)
	assert.Contains(t, log, "end:Destroyed")
	assert.Empty(t, w.Actors())
	_, ok := w.FindActor(a.ID())
	assert.False(t, ok)

	found, ok := FindComponent[*recordingComponent](a)
	require.True(t, ok)
	assert.Same(t, recorder, found)
}

func TestLifeSpanDestroysActor(t *testing.T) {
	w := newTestWorld()
	var log []string
	class := &Class{Name: "Timed", New: func() Actor {
		p := &recordingActor{BaseActor: NewBaseActor("Timed"), log: &log}
		p.InitialLifeSpan = 0.05
		return p
	}}
	_, ok := w.SpawnActor(class, mgl32.Vec3{}, util.Rotator{}, SpawnParams{})
	require.True(t, ok)

	w.Tick(0.03)
	assert.Len(t, w.Actors(), 1)
	w.Tick(0.03)

	assert.Empty(t, w.Actors())
	assert.Equal(t, "end:Destroyed", log[len(log)-1])
}

func TestFallingOutOfWorldDestroysActor(t *testing.T) {
	w := newTestWorld()
	w.Physics.KillZ = -100
	var log []string
	sphere := physics.NewSphere(5)
	a, _ := w.SpawnActor(recordingClass(&log, &sphere), mgl32.Vec3{0, 0, -99}, util.Rotator{}, SpawnParams{})
	a.Base().CollisionBody().SetSimulatePhysics(true)

	w.Tick(0.1)

	assert.Empty(t, w.Actors())
	assert.Empty(t, w.Physics.Bodies())
}

func TestShutdownEndsPlayWithQuit(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.SpawnActor(recordingClass(&log, nil), mgl32.Vec3{}, util.Rotator{}, SpawnParams{Name: "A"})
	w.SpawnActor(recordingClass(&log, nil), mgl32.Vec3{}, util.Rotator{}, SpawnParams{Name: "B"})

	w.Shutdown()

	assert.Equal(t, []string{"begin:A", "begin:B", "end:Quit", "end:Quit"}, log)
	assert.Empty(t, w.Actors())
}
