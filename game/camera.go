package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/prototype/engine/util"
)

const maxLookPitch = 89

// PlayerCameraManager is the first person view of a controller. It sits at the
// eye height of the view target and looks along the control rotation.
type PlayerCameraManager struct {
	viewTarget      *Character
	yaw             float32
	pitch           float32
	lookSensitivity float32
	invertedY       bool
}

func NewPlayerCameraManager(sensitivity float32) *PlayerCameraManager {
	return &PlayerCameraManager{
		lookSensitivity: sensitivity,
		invertedY:       true,
	}
}

func (c *PlayerCameraManager) SetViewTarget(target *Character) {
	c.viewTarget = target
	if target != nil {
		c.yaw = target.GetActorRotation().Yaw
		c.pitch = 0
	}
}

func (c *PlayerCameraManager) SetInvertedY(inverted bool) {
	c.invertedY = inverted
}

// ChangeAngles changes the camera's angles by dx and dy.
// Used for mouse look, huge deltas come from the cursor being warped and are dropped.
func (c *PlayerCameraManager) ChangeAngles(dx, dy float32) {
	if mgl32.Abs(dx) > 200 || mgl32.Abs(dy) > 200 {
		return
	}
	c.yaw += dx * c.lookSensitivity
	yChange := dy * c.lookSensitivity
	if c.invertedY {
		c.pitch -= yChange
	} else {
		c.pitch += yChange
	}
	c.pitch = util.Clamp32(c.pitch, -maxLookPitch, maxLookPitch)
	for c.yaw >= 360 {
		c.yaw -= 360
	}
	for c.yaw < 0 {
		c.yaw += 360
	}
}

func (c *PlayerCameraManager) SetRotation(rotation util.Rotator) {
	c.yaw = rotation.Yaw
	c.pitch = util.Clamp32(rotation.Pitch, -maxLookPitch, maxLookPitch)
}

func (c *PlayerCameraManager) GetCameraRotation() util.Rotator {
	return util.Rotator{Pitch: c.pitch, Yaw: c.yaw}
}

func (c *PlayerCameraManager) GetCameraLocation() mgl32.Vec3 {
	if c.viewTarget == nil {
		return mgl32.Vec3{}
	}
	return c.viewTarget.GetActorLocation().Add(mgl32.Vec3{0, 0, c.viewTarget.EyeHeight()})
}

// PlanarForward is the view direction flattened onto the ground plane.
func (c *PlayerCameraManager) PlanarForward() mgl32.Vec3 {
	return util.Rotator{Yaw: c.yaw}.Vector()
}

func (c *PlayerCameraManager) PlanarRight() mgl32.Vec3 {
	_, right, _ := util.Rotator{Yaw: c.yaw}.Axes()
	return right
}

func (c *PlayerCameraManager) String() string {
	return fmt.Sprintf("Camera(%v, %s)", c.GetCameraLocation(), c.GetCameraRotation())
}
