package component

import "github.com/milk9111/pointclick/navmesh"

// NavAgent attaches a path agent to an entity.
type NavAgent struct {
	Agent *navmesh.Agent
}

var NavAgentComponent = NewComponent[NavAgent]()
