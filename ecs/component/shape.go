package component

import "image/color"

// Shape draws an entity as a filled circle with a facing tick.
type Shape struct {
	Radius float64
	Color  color.Color
	Label  string
	Facing bool
}

var ShapeComponent = NewComponent[Shape]()
