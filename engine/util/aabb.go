package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type AABB struct {
	center  mgl32.Vec3
	extents mgl32.Vec3 // size in respective axis, they extend from the center to the max and min
}

func NewAABB(center, extents mgl32.Vec3) AABB {
	return AABB{
		center:  center,
		extents: extents,
	}
}

func NewAABBFromMin(min, extents mgl32.Vec3) AABB {
	return AABB{
		center:  min.Add(extents.Mul(0.5)),
		extents: extents,
	}
}

func NewAABBFromMinMax(min, max mgl32.Vec3) AABB {
	return NewAABBFromMin(min, max.Sub(min))
}

func (a AABB) Min() mgl32.Vec3 {
	return a.center.Sub(a.extents.Mul(0.5))
}

func (a AABB) Max() mgl32.Vec3 {
	return a.center.Add(a.extents.Mul(0.5))
}

func (a AABB) Center() mgl32.Vec3 {
	return a.center
}

func (a AABB) Extents() mgl32.Vec3 {
	return a.extents
}

func (a AABB) Contains(vec3 mgl32.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() >= minVal.X() && vec3.X() <= maxVal.X() &&
		vec3.Y() >= minVal.Y() && vec3.Y() <= maxVal.Y() &&
		vec3.Z() >= minVal.Z() && vec3.Z() <= maxVal.Z()
}

// ContainsStrict excludes the surface.
func (a AABB) ContainsStrict(vec3 mgl32.Vec3) bool {
	minVal := a.Min()
	maxVal := a.Max()
	return vec3.X() > minVal.X() && vec3.X() < maxVal.X() &&
		vec3.Y() > minVal.Y() && vec3.Y() < maxVal.Y() &&
		vec3.Z() > minVal.Z() && vec3.Z() < maxVal.Z()
}

func (a AABB) Intersects(other AABB) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := other.Min(), other.Max()
	return aMin.X() < bMax.X() && aMax.X() > bMin.X() &&
		aMin.Y() < bMax.Y() && aMax.Y() > bMin.Y() &&
		aMin.Z() < bMax.Z() && aMax.Z() > bMin.Z()
}

func (a AABB) ClosestPoint(point mgl32.Vec3) mgl32.Vec3 {
	return ClampVec3(point, a.Min(), a.Max())
}

// IntersectsRay uses the slab method on the segment start->end. It returns the
// fraction along the segment where the box is entered and the normal of the entered face.
// Segments starting inside the box do not intersect.
func (a AABB) IntersectsRay(start, end mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	if a.ContainsStrict(start) {
		return false, 0, mgl32.Vec3{}
	}
	dir := end.Sub(start)
	minVal, maxVal := a.Min(), a.Max()
	tEnter := float32(0)
	tExit := float32(1)
	var normal mgl32.Vec3
	for axis := 0; axis < 3; axis++ {
		if mgl32.Abs(dir[axis]) < 1e-9 {
			if start[axis] < minVal[axis] || start[axis] > maxVal[axis] {
				return false, 0, mgl32.Vec3{}
			}
			continue
		}
		inv := 1 / dir[axis]
		t1 := (minVal[axis] - start[axis]) * inv
		t2 := (maxVal[axis] - start[axis]) * inv
		faceSign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			faceSign = 1
		}
		if t1 > tEnter {
			tEnter = t1
			normal = mgl32.Vec3{}
			normal[axis] = faceSign
		}
		tExit = float32(math.Min(float64(tExit), float64(t2)))
		if tEnter > tExit {
			return false, 0, mgl32.Vec3{}
		}
	}
	return true, tEnter, normal
}
