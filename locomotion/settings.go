package locomotion

const (
	// StopDistanceProportion is the fraction of the agent stopping distance
	// under which the character snaps onto its destination.
	StopDistanceProportion = 0.1
	// NavMeshSampleDistance bounds how far a ground click may be snapped.
	NavMeshSampleDistance = 4.0

	SpeedParam    = "Speed"
	LocomotionTag = "Locomotion"
)

// Settings are the per-character tunables.
type Settings struct {
	InputHoldDelay     float64
	TurnSpeedThreshold float64
	SpeedDampTime      float64
	SlowingSpeed       float64
	TurnSmoothing      float64
}

func DefaultSettings() Settings {
	return Settings{
		InputHoldDelay:     0.5,
		TurnSpeedThreshold: 0.5,
		SpeedDampTime:      0.1,
		SlowingSpeed:       0.175,
		TurnSmoothing:      15,
	}
}

// withDefaults replaces out-of-range fields with their DefaultSettings value.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.InputHoldDelay < 0 {
		s.InputHoldDelay = d.InputHoldDelay
	}
	if s.TurnSpeedThreshold < 0 {
		s.TurnSpeedThreshold = d.TurnSpeedThreshold
	}
	if s.SpeedDampTime < 0 {
		s.SpeedDampTime = d.SpeedDampTime
	}
	if s.SlowingSpeed <= 0 {
		s.SlowingSpeed = d.SlowingSpeed
	}
	if s.TurnSmoothing <= 0 {
		s.TurnSmoothing = d.TurnSmoothing
	}
	return s
}
