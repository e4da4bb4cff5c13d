package component

import "github.com/milk9111/pointclick/interaction"

// Interactable makes an entity clickable. Radius is the pick radius around the
// entity transform on the ground plane.
type Interactable struct {
	Target *interaction.Interactable
	Radius float64
	// Script is the prefab path of the reaction script, if any.
	Script string
}

var InteractableComponent = NewComponent[Interactable]()
