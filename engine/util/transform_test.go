package util

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformComposesParent(t *testing.T) {
	parent := NewTransform(mgl32.Vec3{10, 0, 0}, Rotator{Yaw: 90}, mgl32.Vec3{1, 1, 1})
	child := NewDefaultTransform("Muzzle")
	child.SetPosition(mgl32.Vec3{100, 0, 0})
	child.SetParent(parent)

	assertVecNear(t, mgl32.Vec3{10, 100, 0}, child.GetPosition())
	assert.InDelta(t, 90, child.GetRotation().Yaw, 0.001)
	assert.Equal(t, mgl32.Vec3{100, 0, 0}, child.GetLocalPosition())
	assert.Equal(t, "Muzzle", child.GetName())
}

func TestTransformWithoutParentIsLocal(t *testing.T) {
	transform := NewDefaultTransform("Pawn")
	transform.SetPosition(mgl32.Vec3{1, 2, 3})
	transform.SetRotation(Rotator{Pitch: 10})

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, transform.GetPosition())
	assert.Equal(t, Rotator{Pitch: 10}, transform.GetRotation())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, transform.GetScale())
}

func TestAABBIntersectsRay(t *testing.T) {
	box := NewAABB(mgl32.Vec3{100, 0, 0}, mgl32.Vec3{20, 20, 20})

	hit, fraction, normal := box.IntersectsRay(mgl32.Vec3{}, mgl32.Vec3{200, 0, 0})
	require.True(t, hit)
	assert.InDelta(t, 0.45, fraction, 0.0001)
	assert.Equal(t, mgl32.Vec3{-1, 0, 0}, normal)

	hit, _, _ = box.IntersectsRay(mgl32.Vec3{100, 0, 0}, mgl32.Vec3{200, 0, 0})
	assert.False(t, hit)

	hit, _, _ = box.IntersectsRay(mgl32.Vec3{0, 50, 0}, mgl32.Vec3{200, 50, 0})
	assert.False(t, hit)
}

func TestAABBContainment(t *testing.T) {
	box := NewAABBFromMinMax(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{10, 10, 10})

	assert.Equal(t, mgl32.Vec3{5, 5, 5}, box.Center())
	assert.True(t, box.Contains(mgl32.Vec3{10, 5, 5}))
	assert.False(t, box.ContainsStrict(mgl32.Vec3{10, 5, 5}))
	assert.Equal(t, mgl32.Vec3{10, 5, 0}, box.ClosestPoint(mgl32.Vec3{20, 5, -3}))
	assert.False(t, box.Intersects(NewAABBFromMinMax(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{20, 10, 10})))
}

func TestFrameTimerTracksPhases(t *testing.T) {
	timer := NewFrameTimer()

	done := timer.Start("Tick")
	time.Sleep(time.Millisecond)
	elapsed := done()

	phase := timer.Phase("Tick")
	require.NotNil(t, phase)
	assert.Greater(t, elapsed, 0.0)
	assert.Equal(t, int64(1), phase.Count())
	assert.Contains(t, timer.String(), "Tick")

	timer.Reset()
	assert.Equal(t, int64(0), phase.Count())
	assert.Nil(t, timer.Phase("Draw"))
}
