package component

import (
	"github.com/milk9111/pointclick/interaction"
	"github.com/milk9111/pointclick/navmesh"
)

// Level holds the navigation mesh and story flags of the loaded level.
type Level struct {
	Name  string
	Mesh  *navmesh.Mesh
	Flags *interaction.Flags
}

var LevelComponent = NewComponent[Level]()
