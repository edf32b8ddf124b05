// Package camera provides the fixed viewer camera.
package camera

import (
	"github.com/Faultbox/rubik/pkg/math"
)

// Near and far clip planes.
const (
	NearPlane = 0.1
	FarPlane  = 100
)

// Camera looks down -Z at the origin from Distance units away. The cube turns
// in front of it; the camera itself only zooms.
type Camera struct {
	FOV      float32 // vertical, degrees
	Distance float32 // distance from the origin

	// Constraints
	MinDistance float32
	MaxDistance float32

	ZoomStep float32

	width, height int
}

// New creates a camera with the given field of view and distance.
func New(fov, distance float32) *Camera {
	return &Camera{
		FOV:         fov,
		Distance:    distance,
		MinDistance: min(3, distance),
		MaxDistance: max(20, distance),
		ZoomStep:    0.25,
		width:       1,
		height:      1,
	}
}

// SetViewport records the drawable size used for the aspect ratio.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
}

// Aspect returns width / height of the viewport.
func (c *Camera) Aspect() float32 {
	return float32(c.width) / float32(c.height)
}

// Position returns the camera position in world space.
func (c *Camera) Position() math.Vec3 {
	return math.Vec3{Z: c.Distance}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Translate(0, 0, -c.Distance)
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(math.Radians(c.FOV), c.Aspect(), NearPlane, FarPlane)
}

// ViewProjection returns projection · view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// HandleZoom moves the camera steps zoom steps closer (positive) or further
// away (negative), within the distance limits.
func (c *Camera) HandleZoom(steps int) {
	c.Distance -= float32(steps) * c.ZoomStep

	// Clamp distance
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
