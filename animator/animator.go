package animator

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/common"
)

// State is a named animation state.
type State struct {
	Name string
	Tag  string
	// Duration in seconds; zero loops until another state is played.
	Duration float64
	// RootMotion states move the character forward at the speed parameter.
	RootMotion bool
}

// Animator blends states from float parameters and produces root motion for
// the pose it is attached to.
type Animator struct {
	Pose *common.Pose
	// RootMotionParam names the float parameter that drives root motion speed.
	RootMotionParam string
	RootMotionScale float64

	states       map[string]State
	defaultState string
	current      string
	elapsed      float64

	floats   map[string]float64
	dampVels map[string]float64
	delta    mgl64.Vec3
}

func New(pose *common.Pose, defaultState State, states ...State) *Animator {
	a := &Animator{
		Pose:            pose,
		RootMotionScale: 1,
		states:          make(map[string]State, len(states)+1),
		floats:          map[string]float64{},
		dampVels:        map[string]float64{},
	}
	a.AddState(defaultState)
	for _, s := range states {
		a.AddState(s)
	}
	a.defaultState = defaultState.Name
	a.current = defaultState.Name
	return a
}

func (a *Animator) AddState(s State) {
	if s.Name == "" {
		return
	}
	a.states[s.Name] = s
}

// Play switches to the named state from its start. Unknown states are ignored.
func (a *Animator) Play(name string) bool {
	if _, ok := a.states[name]; !ok {
		return false
	}
	a.current = name
	a.elapsed = 0
	return true
}

// SetFloat moves the parameter toward value, damped over dampTime. A
// non-positive dampTime sets it directly.
func (a *Animator) SetFloat(name string, value, dampTime, dt float64) {
	if dampTime <= 0 {
		a.floats[name] = value
		a.dampVels[name] = 0
		return
	}
	v, vel := common.SmoothDamp(a.floats[name], value, a.dampVels[name], dampTime, dt)
	a.floats[name] = v
	a.dampVels[name] = vel
}

func (a *Animator) Float(name string) float64 {
	return a.floats[name]
}

func (a *Animator) CurrentState() string {
	return a.current
}

func (a *Animator) CurrentStateTag() string {
	return a.states[a.current].Tag
}

// DeltaPosition is the root motion produced by the last Tick.
func (a *Animator) DeltaPosition() mgl64.Vec3 {
	return a.delta
}

// Tick advances the current state and computes this frame's root motion.
func (a *Animator) Tick(dt float64) {
	a.delta = mgl64.Vec3{}
	if dt <= 0 {
		return
	}

	a.elapsed += dt
	state := a.states[a.current]
	if state.Duration > 0 && a.elapsed >= state.Duration {
		a.current = a.defaultState
		a.elapsed = 0
		state = a.states[a.current]
	}

	if !state.RootMotion || a.Pose == nil || a.RootMotionParam == "" {
		return
	}
	speed := a.floats[a.RootMotionParam] * a.RootMotionScale
	if speed <= 0 {
		return
	}
	a.delta = a.Pose.Forward().Mul(speed * dt)
}
