package component

import "github.com/go-gl/mathgl/mgl64"

// Camera is a top-down view of the XZ plane. Origin is the world point at the
// top-left of the screen and Scale is pixels per world unit.
type Camera struct {
	Origin mgl64.Vec3
	Scale  float64
}

var CameraComponent = NewComponent[Camera]()

func (c *Camera) scale() float64 {
	if c == nil || c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// ScreenToWorld casts a screen point straight down onto the ground plane.
func (c *Camera) ScreenToWorld(x, y float64) mgl64.Vec3 {
	s := c.scale()
	var o mgl64.Vec3
	if c != nil {
		o = c.Origin
	}
	return mgl64.Vec3{o.X() + x/s, o.Y(), o.Z() + y/s}
}

func (c *Camera) WorldToScreen(p mgl64.Vec3) (float64, float64) {
	s := c.scale()
	var o mgl64.Vec3
	if c != nil {
		o = c.Origin
	}
	return (p.X() - o.X()) * s, (p.Z() - o.Z()) * s
}
