package locomotion

// HoldState is the phase of the post-interaction input hold.
type HoldState int

const (
	HoldIdle HoldState = iota
	HoldWaiting
	HoldPolling
)

func (s HoldState) String() string {
	switch s {
	case HoldIdle:
		return "idle"
	case HoldWaiting:
		return "waiting"
	case HoldPolling:
		return "polling"
	default:
		return "unknown"
	}
}

// InputHold suppresses input after an interaction starts. It waits a fixed
// delay and then polls, once per frame, until the animator is back in the
// locomotion state. It is advanced by Tick once per frame.
type InputHold struct {
	state   HoldState
	delay   float64
	elapsed float64
	tag     string
}

func NewInputHold(tag string) InputHold {
	if tag == "" {
		tag = LocomotionTag
	}
	return InputHold{tag: tag}
}

// Start disables input and restarts the wait.
func (h *InputHold) Start(delay float64) {
	h.state = HoldWaiting
	h.delay = delay
	h.elapsed = 0
}

// Tick advances the sequence by one frame. currentTag is the animator state
// tag for this frame.
func (h *InputHold) Tick(dt float64, currentTag string) {
	switch h.state {
	case HoldWaiting:
		h.elapsed += dt
		if h.elapsed < h.delay {
			return
		}
		// the wait resumes straight into the first poll
		h.state = HoldPolling
		fallthrough
	case HoldPolling:
		if currentTag == h.tag {
			h.state = HoldIdle
		}
	}
}

// HandlesInput reports whether clicks are accepted.
func (h *InputHold) HandlesInput() bool {
	return h.state == HoldIdle
}

func (h *InputHold) State() HoldState {
	return h.state
}

// Elapsed is the time spent in the current wait.
func (h *InputHold) Elapsed() float64 {
	return h.elapsed
}
