package component

import "github.com/milk9111/pointclick/locomotion"

// Locomotion attaches a click-to-move controller to a character.
type Locomotion struct {
	Controller *locomotion.Controller
	Phase      locomotion.Phase
}

var LocomotionComponent = NewComponent[Locomotion]()
