package physics

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
)

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
)

// Shape is a sphere or an axis aligned box centered on its body's position.
type Shape struct {
	Kind    ShapeKind
	Radius  float32
	Extents mgl32.Vec3 // full size along each axis
}

func NewSphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

func NewBox(extents mgl32.Vec3) Shape {
	return Shape{Kind: ShapeBox, Extents: extents}
}

func (s Shape) String() string {
	if s.Kind == ShapeSphere {
		return fmt.Sprintf("Sphere(r=%0.1f)", s.Radius)
	}
	return fmt.Sprintf("Box(%0.1f, %0.1f, %0.1f)", s.Extents.X(), s.Extents.Y(), s.Extents.Z())
}

func (s Shape) Bounds(center mgl32.Vec3) util.AABB {
	if s.Kind == ShapeSphere {
		return util.NewAABB(center, mgl32.Vec3{s.Radius * 2, s.Radius * 2, s.Radius * 2})
	}
	return util.NewAABB(center, s.Extents)
}

// Size is the largest full extent of the shape.
func (s Shape) Size() float32 {
	if s.Kind == ShapeSphere {
		return s.Radius * 2
	}
	return float32(math.Max(float64(s.Extents.X()), math.Max(float64(s.Extents.Y()), float64(s.Extents.Z()))))
}

// Inflated grows the shape by radius. For boxes this is the rounded-corner free
// approximation of the Minkowski sum with a sphere.
func (s Shape) Inflated(radius float32) Shape {
	if s.Kind == ShapeSphere {
		return NewSphere(s.Radius + radius)
	}
	return NewBox(s.Extents.Add(mgl32.Vec3{radius * 2, radius * 2, radius * 2}))
}

func (s Shape) ContainsPoint(center, point mgl32.Vec3) bool {
	if s.Kind == ShapeSphere {
		return point.Sub(center).Len() < s.Radius
	}
	return s.Bounds(center).ContainsStrict(point)
}

// Raycast intersects the segment start->end. It returns the fraction along the
// segment and the surface normal. Segments starting inside the shape never hit it.
func (s Shape) Raycast(center, start, end mgl32.Vec3) (bool, float32, mgl32.Vec3) {
	if s.Kind == ShapeBox {
		return s.Bounds(center).IntersectsRay(start, end)
	}
	dir := end.Sub(start)
	toStart := start.Sub(center)
	c := toStart.Dot(toStart) - s.Radius*s.Radius
	if c < 0 {
		return false, 0, mgl32.Vec3{}
	}
	a := dir.Dot(dir)
	if a == 0 {
		return false, 0, mgl32.Vec3{}
	}
	b := 2 * toStart.Dot(dir)
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false, 0, mgl32.Vec3{}
	}
	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 || t > 1 {
		return false, 0, mgl32.Vec3{}
	}
	point := start.Add(dir.Mul(t))
	normal, _ := util.SafeNormalize(point.Sub(center))
	return true, t, normal
}

// OverlapsSphere reports whether the shape at center touches the given sphere.
func (s Shape) OverlapsSphere(center, sphereCenter mgl32.Vec3, radius float32) bool {
	if s.Kind == ShapeSphere {
		return sphereCenter.Sub(center).Len() <= s.Radius+radius
	}
	closest := s.Bounds(center).ClosestPoint(sphereCenter)
	return closest.Sub(sphereCenter).Len() <= radius
}

// Penetration returns the vector that moves shape a (at ac) out of shape b (at bc).
// The second return value is false when the shapes do not overlap.
func Penetration(a Shape, ac mgl32.Vec3, b Shape, bc mgl32.Vec3) (mgl32.Vec3, bool) {
	switch {
	case a.Kind == ShapeSphere && b.Kind == ShapeSphere:
		delta := ac.Sub(bc)
		distance := delta.Len()
		depth := a.Radius + b.Radius - distance
		if depth <= 0 {
			return mgl32.Vec3{}, false
		}
		dir, ok := util.SafeNormalize(delta)
		if !ok {
			dir = mgl32.Vec3{0, 0, 1}
		}
		return dir.Mul(depth), true
	case a.Kind == ShapeSphere && b.Kind == ShapeBox:
		return spherePenetratingBox(ac, a.Radius, b.Bounds(bc))
	case a.Kind == ShapeBox && b.Kind == ShapeSphere:
		push, ok := spherePenetratingBox(bc, b.Radius, a.Bounds(ac))
		return push.Mul(-1), ok
	default:
		return boxPenetratingBox(a.Bounds(ac), b.Bounds(bc))
	}
}

func spherePenetratingBox(center mgl32.Vec3, radius float32, box util.AABB) (mgl32.Vec3, bool) {
	closest := box.ClosestPoint(center)
	delta := center.Sub(closest)
	distance := delta.Len()
	if distance >= radius {
		return mgl32.Vec3{}, false
	}
	if dir, ok := util.SafeNormalize(delta); ok {
		return dir.Mul(radius - distance), true
	}
	// center is inside the box, leave through the nearest face
	push, _ := boxPenetratingBox(util.NewAABB(center, mgl32.Vec3{radius * 2, radius * 2, radius * 2}), box)
	return push, true
}

func boxPenetratingBox(a, b util.AABB) (mgl32.Vec3, bool) {
	if !a.Intersects(b) {
		return mgl32.Vec3{}, false
	}
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()
	best := mgl32.Vec3{}
	bestDepth := float32(math.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		pushPositive := bMax[axis] - aMin[axis]
		pushNegative := aMax[axis] - bMin[axis]
		if pushPositive < bestDepth {
			bestDepth = pushPositive
			best = mgl32.Vec3{}
			best[axis] = pushPositive
		}
		if pushNegative < bestDepth {
			bestDepth = pushNegative
			best = mgl32.Vec3{}
			best[axis] = -pushNegative
		}
	}
	return best, true
}
