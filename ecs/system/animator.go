package system

import (
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
)

type AnimatorSystem struct {
	dt float64
}

func NewAnimatorSystem(dt float64) *AnimatorSystem {
	return &AnimatorSystem{dt: frameDelta(dt)}
}

func (a *AnimatorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		if anim.Driver == nil {
			return
		}
		anim.Driver.Tick(a.dt)
	})
}
