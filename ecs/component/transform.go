package component

import "github.com/milk9111/pointclick/common"

// Transform is the world pose of an entity. Systems borrow &Pose so the nav
// agent, animator and locomotion controller all move the same pose.
type Transform struct {
	Pose common.Pose
}

var TransformComponent = NewComponent[Transform]()
