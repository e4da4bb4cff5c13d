package component

import "github.com/go-gl/mathgl/mgl64"

// PointerInput stores this frame's pointer state.
type PointerInput struct {
	ScreenX float64
	ScreenY float64
	// World is the pointer projected onto the ground plane.
	World   mgl64.Vec3
	Clicked bool
}

var PointerInputComponent = NewComponent[PointerInput]()
