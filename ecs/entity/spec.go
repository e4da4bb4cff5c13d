package entity

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/common"
	"github.com/milk9111/pointclick/locomotion"
	"github.com/milk9111/pointclick/prefabs"
)

// PoseFromSpec converts a prefab pose (yaw in degrees) to a world pose.
func PoseFromSpec(spec prefabs.PoseSpec) common.Pose {
	return common.Pose{
		Position: mgl64.Vec3{spec.X, spec.Y, spec.Z},
		Rotation: mgl64.QuatRotate(spec.Yaw*math.Pi/180, common.Up),
	}
}

// SettingsFromSpec overlays the fields set in spec onto the defaults.
func SettingsFromSpec(spec prefabs.LocomotionSpec) locomotion.Settings {
	s := locomotion.DefaultSettings()
	if spec.InputHoldDelay != nil {
		s.InputHoldDelay = *spec.InputHoldDelay
	}
	if spec.TurnSpeedThreshold != nil {
		s.TurnSpeedThreshold = *spec.TurnSpeedThreshold
	}
	if spec.SpeedDampTime != nil {
		s.SpeedDampTime = *spec.SpeedDampTime
	}
	if spec.SlowingSpeed != nil {
		s.SlowingSpeed = *spec.SlowingSpeed
	}
	if spec.TurnSmoothing != nil {
		s.TurnSmoothing = *spec.TurnSmoothing
	}
	return s
}

func shapeColor(c *prefabs.YAMLColor, fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
