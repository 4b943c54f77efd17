package util

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SmallNumber is the squared length below which a vector is treated as zero.
const SmallNumber = 1e-8

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

func ToRadian(angle float32) float32 {
	return mgl32.DegToRad(angle)
}

func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), max)
}

func Clamp32(value, min, max float32) float32 {
	return float32(Clamp(float64(value), float64(min), float64(max)))
}

// SafeNormalize returns the unit vector and true, or the input and false if its
// squared length is not above SmallNumber.
func SafeNormalize(v mgl32.Vec3) (mgl32.Vec3, bool) {
	squared := v.Dot(v)
	if squared <= SmallNumber {
		return v, false
	}
	return v.Mul(1 / float32(math.Sqrt(float64(squared)))), true
}

func ClampVec3(v, min, max mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Clamp32(v.X(), min.X(), max.X()), Clamp32(v.Y(), min.Y(), max.Y()), Clamp32(v.Z(), min.Z(), max.Z())}
}

func Vec3FromSlice(values []float32, fallback mgl32.Vec3) mgl32.Vec3 {
	if len(values) != 3 {
		return fallback
	}
	return mgl32.Vec3{values[0], values[1], values[2]}
}

// Rotator is an orientation in degrees. X is forward, Y is right and Z is up.
// Positive pitch raises the forward axis towards +Z, positive yaw turns it towards +Y.
type Rotator struct {
	Pitch float32
	Yaw   float32
	Roll  float32
}

func (r Rotator) String() string {
	return fmt.Sprintf("P=%0.2f Y=%0.2f R=%0.2f", r.Pitch, r.Yaw, r.Roll)
}

// Axes returns the rotated forward, right and up axes.
func (r Rotator) Axes() (mgl32.Vec3, mgl32.Vec3, mgl32.Vec3) {
	sp, cp := Sin(ToRadian(r.Pitch)), Cos(ToRadian(r.Pitch))
	sy, cy := Sin(ToRadian(r.Yaw)), Cos(ToRadian(r.Yaw))
	sr, cr := Sin(ToRadian(r.Roll)), Cos(ToRadian(r.Roll))

	forward := mgl32.Vec3{cp * cy, cp * sy, sp}
	right := mgl32.Vec3{sr*sp*cy - cr*sy, sr*sp*sy + cr*cy, -sr * cp}
	up := mgl32.Vec3{-(cr*sp*cy + sr*sy), cy*sr - cr*sp*sy, cr * cp}
	return forward, right, up
}

func (r Rotator) Mat3() mgl32.Mat3 {
	forward, right, up := r.Axes()
	return mgl32.Mat3FromCols(forward, right, up)
}

// Vector is the unit forward direction.
func (r Rotator) Vector() mgl32.Vec3 {
	forward, _, _ := r.Axes()
	return forward
}

// RotateVector transforms v from rotator-local space into world space.
func (r Rotator) RotateVector(v mgl32.Vec3) mgl32.Vec3 {
	return r.Mat3().Mul3x1(v)
}

func (r Rotator) Add(other Rotator) Rotator {
	return Rotator{Pitch: r.Pitch + other.Pitch, Yaw: r.Yaw + other.Yaw, Roll: r.Roll + other.Roll}
}

func (r Rotator) IsZero() bool {
	return r.Pitch == 0 && r.Yaw == 0 && r.Roll == 0
}

// RotationFromVector returns the rotator whose forward axis points along direction. Roll is always zero.
func RotationFromVector(direction mgl32.Vec3) Rotator {
	yaw := math.Atan2(float64(direction.Y()), float64(direction.X()))
	pitch := math.Atan2(float64(direction.Z()), math.Sqrt(float64(direction.X()*direction.X()+direction.Y()*direction.Y())))
	return Rotator{
		Pitch: mgl32.RadToDeg(float32(pitch)),
		Yaw:   mgl32.RadToDeg(float32(yaw)),
	}
}

// SurfaceAlignedRotation turns a surface normal into an effect pose whose up axis
// points out of the surface: the normal's rotation with pitch lowered by 90 degrees.
func SurfaceAlignedRotation(normal mgl32.Vec3) Rotator {
	rotation := RotationFromVector(normal)
	return Rotator{
		Pitch: rotation.Pitch - 90,
		Yaw:   rotation.Yaw,
		Roll:  rotation.Roll,
	}
}
