package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/common"
)

// PathAgent is the navigation agent that plans and follows paths for the
// character. The controller takes rotation authority away from it.
type PathAgent interface {
	PathPending() bool
	DesiredVelocity() mgl64.Vec3
	RemainingDistance() float64
	StoppingDistance() float64
	SetStopped(stopped bool)
	SetDestination(p mgl64.Vec3) bool
	SetVelocity(v mgl64.Vec3)
	SetUpdateRotation(update bool)
}

// AnimationDriver blends the character animation from named parameters and
// reports root motion.
type AnimationDriver interface {
	SetFloat(name string, value, dampTime, dt float64)
	DeltaPosition() mgl64.Vec3
	CurrentStateTag() string
}

// Interactable is a world object the character walks up to and triggers.
// Pointer implementations should also implement IsNil so a typed nil passed
// as an Interactable is rejected instead of dereferenced.
type Interactable interface {
	InteractionLocation() common.Pose
	Interact()
}

type nilChecker interface {
	IsNil() bool
}

func isNilInteractable(t Interactable) bool {
	if t == nil {
		return true
	}
	n, ok := t.(nilChecker)
	return ok && n.IsNil()
}

// NavMesh snaps world points onto walkable space.
type NavMesh interface {
	SamplePosition(p mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool)
}

// RaycastHit is the world-space result of a pointer ray against the ground.
type RaycastHit struct {
	Point mgl64.Vec3
}
