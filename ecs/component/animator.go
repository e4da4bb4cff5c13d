package component

import "github.com/milk9111/pointclick/animator"

// Animator attaches an animation driver to an entity.
type Animator struct {
	Driver *animator.Animator
}

var AnimatorComponent = NewComponent[Animator]()
