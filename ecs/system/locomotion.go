package system

import (
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
)

// LocomotionSystem runs each controller's per-frame state machine.
type LocomotionSystem struct {
	dt float64
}

func NewLocomotionSystem(dt float64) *LocomotionSystem {
	return &LocomotionSystem{dt: frameDelta(dt)}
}

func (l *LocomotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		if loco.Controller == nil {
			return
		}
		loco.Phase = loco.Controller.Update(l.dt)
	})
}

// RootMotionSystem feeds animator root motion back into the nav agents. It
// must run after the animator has ticked.
type RootMotionSystem struct {
	dt float64
}

func NewRootMotionSystem(dt float64) *RootMotionSystem {
	return &RootMotionSystem{dt: frameDelta(dt)}
}

func (r *RootMotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		if loco.Controller == nil {
			return
		}
		loco.Controller.OnAnimatorMove(r.dt)
	})
}
