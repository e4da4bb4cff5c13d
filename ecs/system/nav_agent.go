package system

import (
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
)

// NavAgentSystem resolves pending paths and moves agents along them. It runs
// after the controllers, so a destination clicked this frame is still pending
// when they update.
type NavAgentSystem struct {
	dt float64
}

func NewNavAgentSystem(dt float64) *NavAgentSystem {
	return &NavAgentSystem{dt: frameDelta(dt)}
}

func (n *NavAgentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.NavAgentComponent.Kind(), func(e ecs.Entity, nav *component.NavAgent) {
		if nav.Agent == nil {
			return
		}
		nav.Agent.Tick(n.dt)
	})
}
