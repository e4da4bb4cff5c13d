package system

// DefaultFrameDelta is the simulation step at ebiten's default 60 TPS.
const DefaultFrameDelta = 1.0 / 60.0

func frameDelta(dt float64) float64 {
	if dt <= 0 {
		return DefaultFrameDelta
	}
	return dt
}
