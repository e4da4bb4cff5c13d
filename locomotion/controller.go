package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/common"
)

// Phase is the per-frame classification of the character's movement.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePathPending
	PhaseStopping
	PhaseSlowing
	PhaseMoving
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePathPending:
		return "path_pending"
	case PhaseStopping:
		return "stopping"
	case PhaseSlowing:
		return "slowing"
	case PhaseMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// Controller moves one character toward clicked destinations. It owns the
// destination and the current interactable; the pose, agent, animator and
// navmesh are borrowed from the host and never released here.
//
// All methods must be called from the frame loop goroutine.
type Controller struct {
	pose  *common.Pose
	agent PathAgent
	anim  AnimationDriver
	mesh  NavMesh

	settings     Settings
	destination  mgl64.Vec3
	interactable Interactable
	hold         InputHold
	speed        float64
}

// New creates a controller. mesh may be nil, in which case ground clicks are
// used unsnapped.
func New(pose *common.Pose, agent PathAgent, anim AnimationDriver, mesh NavMesh, settings Settings) *Controller {
	c := &Controller{
		pose:     pose,
		agent:    agent,
		anim:     anim,
		mesh:     mesh,
		settings: settings.withDefaults(),
		hold:     NewInputHold(LocomotionTag),
	}
	if pose != nil {
		c.destination = pose.Position
	}
	return c
}

// Start takes rotation control from the agent and resets the destination to
// the current position.
func (c *Controller) Start() {
	c.agent.SetUpdateRotation(false)
	c.destination = c.pose.Position
}

// Update runs one frame of the locomotion state machine and returns the phase
// it classified.
func (c *Controller) Update(dt float64) Phase {
	if !c.hold.HandlesInput() {
		c.hold.Tick(dt, c.anim.CurrentStateTag())
	}

	if c.agent.PathPending() {
		return PhasePathPending
	}

	speed := c.agent.DesiredVelocity().Len()
	remaining := c.agent.RemainingDistance()
	stopping := c.agent.StoppingDistance()

	phase := PhaseIdle
	switch {
	case remaining <= stopping*StopDistanceProportion:
		speed = c.stop()
		phase = PhaseStopping
	case remaining <= stopping:
		speed = c.slow(remaining, stopping, dt)
		phase = PhaseSlowing
	case speed > c.settings.TurnSpeedThreshold:
		c.move(dt)
		phase = PhaseMoving
	}

	c.speed = speed
	c.anim.SetFloat(SpeedParam, speed, c.settings.SpeedDampTime, dt)
	return phase
}

// OnAnimatorMove hands the animator's root motion to the agent as velocity.
func (c *Controller) OnAnimatorMove(dt float64) {
	if dt <= 0 {
		return
	}
	c.agent.SetVelocity(c.anim.DeltaPosition().Mul(1 / dt))
}

// OnGroundClick walks to the clicked ground point, snapped onto the navmesh
// when possible.
func (c *Controller) OnGroundClick(hit RaycastHit) {
	if !c.hold.HandlesInput() {
		return
	}

	c.interactable = nil

	dest := hit.Point
	if c.mesh != nil {
		if p, ok := c.mesh.SamplePosition(hit.Point, NavMeshSampleDistance); ok {
			dest = p
		}
	}

	c.destination = dest
	c.agent.SetDestination(dest)
	c.agent.SetStopped(false)
}

// OnInteractableClick walks to the interactable's anchor and interacts on
// arrival. A nil target, or a typed nil reporting IsNil, is ignored.
func (c *Controller) OnInteractableClick(target Interactable) {
	if !c.hold.HandlesInput() || isNilInteractable(target) {
		return
	}

	c.interactable = target
	c.destination = target.InteractionLocation().Position
	c.agent.SetDestination(c.destination)
	c.agent.SetStopped(false)
}

func (c *Controller) stop() float64 {
	c.agent.SetStopped(true)
	c.pose.Position = c.destination

	if c.interactable != nil {
		c.pose.Rotation = c.interactable.InteractionLocation().Rotation
		c.interactable.Interact()
		c.interactable = nil
		c.hold.Start(c.settings.InputHoldDelay)
	}
	return 0
}

func (c *Controller) slow(remaining, stopping, dt float64) float64 {
	c.agent.SetStopped(true)
	c.pose.Position = common.MoveTowards(c.pose.Position, c.destination, c.settings.SlowingSpeed*dt)

	proportional := 1 - remaining/stopping
	speed := common.Lerp(c.settings.SlowingSpeed, 0, proportional)

	target := c.pose.Rotation
	if c.interactable != nil {
		target = c.interactable.InteractionLocation().Rotation
	}
	c.pose.Rotation = common.QuatLerp(c.pose.Rotation, target, proportional)
	return speed
}

func (c *Controller) move(dt float64) {
	target := common.LookRotation(c.agent.DesiredVelocity())
	c.pose.Rotation = common.QuatLerp(c.pose.Rotation, target, c.settings.TurnSmoothing*dt)
}

func (c *Controller) Destination() mgl64.Vec3 {
	return c.destination
}

// CurrentInteractable returns the interactable being walked to, if any.
func (c *Controller) CurrentInteractable() Interactable {
	return c.interactable
}

func (c *Controller) HandlesInput() bool {
	return c.hold.HandlesInput()
}

// Hold exposes the post-interaction input hold for inspection.
func (c *Controller) Hold() HoldState {
	return c.hold.State()
}

// Speed is the value last fed to the animator speed parameter.
func (c *Controller) Speed() float64 {
	return c.speed
}

func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSettings replaces the tunables. A new hold delay applies from the next
// interaction.
func (c *Controller) SetSettings(s Settings) {
	c.settings = s.withDefaults()
}
