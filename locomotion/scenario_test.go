package locomotion_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/animator"
	"github.com/milk9111/pointclick/common"
	"github.com/milk9111/pointclick/locomotion"
	"github.com/milk9111/pointclick/navmesh"
)

type anchor struct {
	pose       common.Pose
	calls      int
	onInteract func()
}

func (a *anchor) InteractionLocation() common.Pose { return a.pose }

func (a *anchor) Interact() {
	a.calls++
	if a.onInteract != nil {
		a.onInteract()
	}
}

type rig struct {
	pose  *common.Pose
	agent *navmesh.Agent
	anim  *animator.Animator
	ctrl  *locomotion.Controller
}

func newRig(t *testing.T, stoppingDistance float64) *rig {
	t.Helper()
	mesh, err := navmesh.ParseRows(mgl64.Vec3{}, 1, []string{
		"..........",
		"..........",
		"....##....",
		"....##....",
		"..........",
	})
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}

	pose := common.NewPose(mgl64.Vec3{1.5, 0, 1.5})
	agent := navmesh.NewAgent(mesh, &pose, 2.5, stoppingDistance)
	anim := animator.New(&pose,
		animator.State{Name: "Locomotion", Tag: locomotion.LocomotionTag, RootMotion: true},
		animator.State{Name: "PickUp", Tag: "Interact", Duration: 1.2},
	)
	anim.RootMotionParam = locomotion.SpeedParam

	ctrl := locomotion.New(&pose, agent, anim, mesh, locomotion.DefaultSettings())
	ctrl.Start()
	return &rig{pose: &pose, agent: agent, anim: anim, ctrl: ctrl}
}

func (r *rig) step(dt float64) locomotion.Phase {
	phase := r.ctrl.Update(dt)
	r.anim.Tick(dt)
	r.ctrl.OnAnimatorMove(dt)
	r.agent.Tick(dt)
	return phase
}

func TestWalkToGroundClick(t *testing.T) {
	const dt = 1.0 / 60
	r := newRig(t, 0.15)
	r.ctrl.OnGroundClick(locomotion.RaycastHit{Point: mgl64.Vec3{8.5, 0.4, 1.5}})

	if got := r.ctrl.Update(dt); got != locomotion.PhasePathPending {
		t.Fatalf("first frame phase %v, want path pending", got)
	}
	r.agent.Tick(dt)

	seen := map[locomotion.Phase]bool{}
	for i := 0; i < 600; i++ {
		seen[r.step(dt)] = true
	}

	want := mgl64.Vec3{8.5, 0, 1.5}
	if !vecNear(r.pose.Position, want) {
		t.Fatalf("position %v, want %v", r.pose.Position, want)
	}
	for _, p := range []locomotion.Phase{locomotion.PhaseMoving, locomotion.PhaseStopping} {
		if !seen[p] {
			t.Fatalf("never entered phase %v", p)
		}
	}
	if fwd := r.pose.Forward(); fwd.X() < 0.99 {
		t.Fatalf("expected to face +X after walking, forward %v", fwd)
	}
	if !r.agent.IsStopped() {
		t.Fatalf("agent should be stopped at the destination")
	}
	if r.agent.UpdateRotation() {
		t.Fatalf("agent should not own rotation")
	}
}

func TestWalkAroundObstacleAndInteract(t *testing.T) {
	const dt = 1.0 / 60
	r := newRig(t, 0.15)
	target := &anchor{pose: common.Pose{
		Position: mgl64.Vec3{5, 0, 4.5},
		Rotation: common.LookRotation(mgl64.Vec3{0, 0, -1}),
	}}
	target.onInteract = func() { r.anim.Play("PickUp") }

	r.ctrl.OnInteractableClick(target)
	for i := 0; i < 900 && target.calls == 0; i++ {
		r.step(dt)
	}

	if target.calls != 1 {
		t.Fatalf("Interact called %d times, want 1", target.calls)
	}
	if r.ctrl.CurrentInteractable() != nil {
		t.Fatalf("interactable should be cleared")
	}
	if !vecNear(r.pose.Position, target.pose.Position) {
		t.Fatalf("position %v, want anchor %v", r.pose.Position, target.pose.Position)
	}
	if common.QuatAngle(r.pose.Rotation, target.pose.Rotation) > 1e-6 {
		t.Fatalf("rotation should match the anchor")
	}
	if r.ctrl.HandlesInput() {
		t.Fatalf("input should be held during the interaction")
	}

	held := 0.0
	for !r.ctrl.HandlesInput() {
		r.step(dt)
		held += dt
		if held > 5 {
			t.Fatalf("input never released")
		}
	}
	// the PickUp state outlasts the hold delay
	if held < 1.2-dt {
		t.Fatalf("input released after %vs, before the interaction animation ended", held)
	}
	if target.calls != 1 {
		t.Fatalf("Interact repeated, calls %d", target.calls)
	}
}

func TestPhaseSequenceWithWideStoppingDistance(t *testing.T) {
	const dt = 1.0 / 60
	r := newRig(t, 1)
	r.ctrl.OnGroundClick(locomotion.RaycastHit{Point: mgl64.Vec3{6.5, 0, 1.5}})
	if got := r.ctrl.Destination(); !vecNear(got, mgl64.Vec3{6.5, 0, 1.5}) {
		t.Fatalf("destination %v", got)
	}

	var phases []locomotion.Phase
	var slowing []float64
	for i := 0; i < 900; i++ {
		p := r.step(dt)
		if len(phases) == 0 || phases[len(phases)-1] != p {
			phases = append(phases, p)
		}
		if p == locomotion.PhaseSlowing {
			slowing = append(slowing, r.ctrl.Speed())
		}
		if p == locomotion.PhaseStopping {
			if r.ctrl.Speed() != 0 {
				t.Fatalf("stopping speed %v, want 0", r.ctrl.Speed())
			}
			break
		}
	}

	want := []locomotion.Phase{
		locomotion.PhasePathPending,
		locomotion.PhaseMoving,
		locomotion.PhaseSlowing,
		locomotion.PhaseStopping,
	}
	if len(phases) != len(want) {
		t.Fatalf("phases %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases %v, want %v", phases, want)
		}
	}

	if len(slowing) < 2 {
		t.Fatalf("expected several slowing frames, got %d", len(slowing))
	}
	if slowing[0] > locomotion.DefaultSettings().SlowingSpeed {
		t.Fatalf("slowing speed %v above the slowing limit", slowing[0])
	}
	for i := 1; i < len(slowing); i++ {
		if slowing[i] >= slowing[i-1] {
			t.Fatalf("slowing speed not strictly decreasing at frame %d: %v -> %v", i, slowing[i-1], slowing[i])
		}
	}
	if !vecNear(r.pose.Position, mgl64.Vec3{6.5, 0, 1.5}) {
		t.Fatalf("position %v, want destination", r.pose.Position)
	}
}

// vecNear compares by distance; ApproxEqualThreshold falls back to eps*eps
// when a component is exactly zero.
func vecNear(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}
