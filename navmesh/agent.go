package navmesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/common"
)

const cornerEpsilon = 1e-6

// Agent plans paths on a Mesh and moves a borrowed pose along them. Paths
// requested with SetDestination stay pending until the next Tick.
type Agent struct {
	Mesh  *Mesh
	Pose  *common.Pose
	Speed float64

	stoppingDistance float64
	updateRotation   bool
	stopped          bool
	pending          bool
	hasPath          bool
	partial          bool

	destination mgl64.Vec3
	corners     []mgl64.Vec3
	velocity    mgl64.Vec3
	desired     mgl64.Vec3
	remaining   float64
}

func NewAgent(mesh *Mesh, pose *common.Pose, speed, stoppingDistance float64) *Agent {
	return &Agent{
		Mesh:             mesh,
		Pose:             pose,
		Speed:            speed,
		stoppingDistance: stoppingDistance,
		updateRotation:   true,
	}
}

func (a *Agent) PathPending() bool {
	return a.pending
}

func (a *Agent) DesiredVelocity() mgl64.Vec3 {
	return a.desired
}

func (a *Agent) RemainingDistance() float64 {
	return a.remaining
}

func (a *Agent) StoppingDistance() float64 {
	return a.stoppingDistance
}

func (a *Agent) SetStoppingDistance(d float64) {
	if d < 0 {
		d = 0
	}
	a.stoppingDistance = d
}

func (a *Agent) IsStopped() bool {
	return a.stopped
}

func (a *Agent) SetStopped(stopped bool) {
	a.stopped = stopped
}

// SetDestination requests a path to p. It reports false when the agent has no
// mesh to plan on.
func (a *Agent) SetDestination(p mgl64.Vec3) bool {
	if a.Mesh == nil || a.Pose == nil {
		return false
	}
	a.destination = p
	a.pending = true
	return true
}

func (a *Agent) Destination() mgl64.Vec3 {
	return a.destination
}

func (a *Agent) Velocity() mgl64.Vec3 {
	return a.velocity
}

func (a *Agent) SetVelocity(v mgl64.Vec3) {
	a.velocity = v
}

func (a *Agent) UpdateRotation() bool {
	return a.updateRotation
}

func (a *Agent) SetUpdateRotation(update bool) {
	a.updateRotation = update
}

// HasPath reports whether a path is being followed.
func (a *Agent) HasPath() bool {
	return a.hasPath
}

// PathPartial reports whether the last planned path stops short of the
// destination.
func (a *Agent) PathPartial() bool {
	return a.partial
}

// Corners returns the remaining path corners.
func (a *Agent) Corners() []mgl64.Vec3 {
	return a.corners
}

// Tick resolves a pending path, advances the pose along the path at the
// current velocity magnitude, and refreshes the steering state.
func (a *Agent) Tick(dt float64) {
	if a.Pose == nil {
		return
	}

	if a.pending {
		a.pending = false
		corners, complete := a.Mesh.FindPath(a.Pose.Position, a.destination)
		a.corners = corners
		a.hasPath = corners != nil
		a.partial = a.hasPath && !complete
	}

	if !a.stopped && a.hasPath && dt > 0 {
		a.advance(a.velocity.Len() * dt)
	}

	a.refresh()

	if a.updateRotation && a.desired.Len() > cornerEpsilon {
		a.Pose.Rotation = common.LookRotation(a.desired)
	}
}

func (a *Agent) advance(step float64) {
	pos := a.Pose.Position
	for step > 0 && len(a.corners) > 0 {
		to := a.corners[0]
		d := to.Sub(pos)
		dist := d.Len()
		if dist <= step {
			pos = to
			step -= dist
			a.corners = a.corners[1:]
			continue
		}
		pos = pos.Add(d.Mul(step / dist))
		step = 0
	}
	a.Pose.Position = pos
}

func (a *Agent) refresh() {
	if !a.hasPath {
		a.remaining = 0
		a.desired = mgl64.Vec3{}
		return
	}

	pos := a.Pose.Position
	// drop corners the pose has moved past
	for len(a.corners) > 1 {
		next := a.corners[1]
		if next.Sub(pos).Len() < next.Sub(a.corners[0]).Len() {
			a.corners = a.corners[1:]
			continue
		}
		break
	}
	if len(a.corners) == 1 && a.corners[0].Sub(pos).Len() <= cornerEpsilon {
		a.corners = a.corners[:0]
	}

	remaining := 0.0
	prev := pos
	for _, c := range a.corners {
		remaining += c.Sub(prev).Len()
		prev = c
	}
	a.remaining = remaining

	if len(a.corners) == 0 {
		a.desired = mgl64.Vec3{}
		return
	}
	dir := a.corners[0].Sub(pos)
	if dir.Len() <= cornerEpsilon {
		a.desired = mgl64.Vec3{}
		return
	}
	a.desired = dir.Normalize().Mul(a.Speed)
}
