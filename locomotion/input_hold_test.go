package locomotion

import "testing"

func TestInputHold(t *testing.T) {
	type frame struct {
		dt   float64
		tag  string
		want HoldState
	}
	cases := []struct {
		name   string
		delay  float64
		frames []frame
	}{
		{
			name:  "waits_then_releases_on_tag",
			delay: 0.5,
			frames: []frame{
				{0.25, "Interact", HoldWaiting},
				{0.125, LocomotionTag, HoldWaiting},
				{0.125, "Interact", HoldPolling},
				{0.125, "Interact", HoldPolling},
				{0.125, LocomotionTag, HoldIdle},
			},
		},
		{
			name:  "polls_on_the_frame_the_wait_ends",
			delay: 0.5,
			frames: []frame{
				{0.25, LocomotionTag, HoldWaiting},
				{0.25, LocomotionTag, HoldIdle},
			},
		},
		{
			name:  "zero_delay_polls_immediately",
			delay: 0,
			frames: []frame{
				{0, LocomotionTag, HoldIdle},
			},
		},
		{
			name:  "never_released_without_tag",
			delay: 0.1,
			frames: []frame{
				{1, "PickUp", HoldPolling},
				{1, "PickUp", HoldPolling},
				{1, "", HoldPolling},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := NewInputHold("")
			if !h.HandlesInput() {
				t.Fatalf("new hold should accept input")
			}
			h.Start(c.delay)
			if h.HandlesInput() {
				t.Fatalf("started hold should block input")
			}
			for i, f := range c.frames {
				h.Tick(f.dt, f.tag)
				if h.State() != f.want {
					t.Fatalf("frame %d: state %v, want %v", i, h.State(), f.want)
				}
				if h.HandlesInput() != (f.want == HoldIdle) {
					t.Fatalf("frame %d: HandlesInput %v in state %v", i, h.HandlesInput(), h.State())
				}
			}
		})
	}
}

func TestInputHoldRestart(t *testing.T) {
	h := NewInputHold("Walk")
	h.Start(1)
	h.Tick(0.75, "Walk")
	h.Start(1)
	if h.Elapsed() != 0 {
		t.Fatalf("restart should reset elapsed, got %v", h.Elapsed())
	}
	h.Tick(0.5, "Walk")
	if h.State() != HoldWaiting {
		t.Fatalf("expected waiting after restart, got %v", h.State())
	}
	h.Tick(0.5, LocomotionTag)
	if h.State() != HoldPolling {
		t.Fatalf("custom tag should not match %q, got %v", LocomotionTag, h.State())
	}
	h.Tick(0.1, "Walk")
	if !h.HandlesInput() {
		t.Fatalf("expected release on custom tag")
	}
}

func TestInputHoldIdleTickIsNoop(t *testing.T) {
	h := NewInputHold("")
	h.Tick(10, "Other")
	if h.State() != HoldIdle || h.Elapsed() != 0 {
		t.Fatalf("idle hold should not change, state %v elapsed %v", h.State(), h.Elapsed())
	}
}
