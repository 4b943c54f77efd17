package util

import "github.com/go-gl/mathgl/mgl32"

type Transformer interface {
	GetTransformMatrix() mgl32.Mat4
	GetPosition() mgl32.Vec3
	GetRotation() Rotator
}

// Transform is a translation, rotation and scale relative to an optional parent.
type Transform struct {
	parent      Transformer
	translation mgl32.Vec3
	rotation    Rotator
	scale       mgl32.Vec3
	nameOfOwner string
}

func NewDefaultTransform(name string) *Transform {
	return &Transform{
		scale:       mgl32.Vec3{1, 1, 1},
		nameOfOwner: name,
	}
}

func NewTransform(position mgl32.Vec3, rotation Rotator, scale mgl32.Vec3) *Transform {
	return &Transform{
		translation: position,
		rotation:    rotation,
		scale:       scale,
	}
}

func (t *Transform) GetName() string {
	return t.nameOfOwner
}

func (t *Transform) SetName(name string) {
	t.nameOfOwner = name
}

func (t *Transform) SetParent(parent Transformer) {
	t.parent = parent
}

func (t *Transform) GetParent() Transformer {
	return t.parent
}

// GetTransformMatrix returns the world matrix, including all parents.
func (t *Transform) GetTransformMatrix() mgl32.Mat4 {
	local := t.GetLocalTransform()
	if t.parent != nil {
		return t.parent.GetTransformMatrix().Mul4(local)
	}
	return local
}

func (t *Transform) GetLocalTransform() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.translation.X(), t.translation.Y(), t.translation.Z())
	rotation := t.rotation.Mat3().Mat4()
	scale := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
	return translation.Mul4(rotation).Mul4(scale)
}

func (t *Transform) GetLocalPosition() mgl32.Vec3 {
	return t.translation
}

// GetPosition is the world position.
func (t *Transform) GetPosition() mgl32.Vec3 {
	if t.parent == nil {
		return t.translation
	}
	return t.GetTransformMatrix().Col(3).Vec3()
}

// GetRotation is the world rotation. Parent rotations are composed through their matrices.
func (t *Transform) GetRotation() Rotator {
	if t.parent == nil {
		return t.rotation
	}
	world := t.parent.GetTransformMatrix().Mat3().Mul3(t.rotation.Mat3())
	return RotationFromVector(world.Col(0))
}

func (t *Transform) GetLocalRotation() Rotator {
	return t.rotation
}

func (t *Transform) GetForward() mgl32.Vec3 {
	return t.GetRotation().Vector()
}

func (t *Transform) GetScale() mgl32.Vec3 {
	return t.scale
}

func (t *Transform) SetPosition(position mgl32.Vec3) {
	t.translation = position
}

func (t *Transform) SetRotation(rotation Rotator) {
	t.rotation = rotation
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.scale = scale
}

