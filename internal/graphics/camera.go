package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit limits.
const (
	minPitch    = 0.1
	maxPitch    = 1.5
	minDistance = 4.0
	maxDistance = 60.0
)

// Camera is an orbit camera circling a target point. It produces the view
// and projection matrices consumed by both the renderer and the picking ray
// builder.
type Camera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32 // radians around Y
	Pitch    float32 // radians above the horizon

	FOV       float32
	NearPlane float32
	FarPlane  float32

	aspect float32
}

// NewCamera returns a camera looking down at the scene center.
func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  500.0,
		aspect:    float32(width) / float32(height),
	}
	c.Reset()
	return c
}

// Reset restores the default orbit pose over the scene center.
func (c *Camera) Reset() {
	c.Target = mgl32.Vec3{0, 2, 0}
	c.Distance = 16
	c.Yaw = 0.8
	c.Pitch = 0.6
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height > 0 {
		c.aspect = float32(width) / float32(height)
	}
}

// Position returns the camera's world position on its orbit sphere.
func (c *Camera) Position() mgl32.Vec3 {
	cp := float32(math.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		c.Target.X() + c.Distance*cp*float32(math.Sin(float64(c.Yaw))),
		c.Target.Y() + c.Distance*float32(math.Sin(float64(c.Pitch))),
		c.Target.Z() + c.Distance*cp*float32(math.Cos(float64(c.Yaw))),
	}
}

// ViewMatrix returns the look-at matrix toward the target.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.aspect, c.NearPlane, c.FarPlane)
}

// Orbit rotates the camera around the target, clamping pitch to keep the
// scene above the horizon.
func (c *Camera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch
	if c.Pitch < minPitch {
		c.Pitch = minPitch
	}
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
}

// Zoom moves the camera along its orbit radius.
func (c *Camera) Zoom(delta float32) {
	c.Distance += delta
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	if c.Distance > maxDistance {
		c.Distance = maxDistance
	}
}
