package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name       string         `yaml:"name"`
	Transform  PoseSpec       `yaml:"transform"`
	Shape      ShapeSpec      `yaml:"shape"`
	Locomotion LocomotionSpec `yaml:"locomotion"`
	Agent      AgentSpec      `yaml:"agent"`
	Animator   AnimatorSpec   `yaml:"animator"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LocomotionSpec holds controller tunables. Unset fields keep their defaults.
type LocomotionSpec struct {
	InputHoldDelay     *float64 `yaml:"input_hold_delay"`
	TurnSpeedThreshold *float64 `yaml:"turn_speed_threshold"`
	SpeedDampTime      *float64 `yaml:"speed_damp_time"`
	SlowingSpeed       *float64 `yaml:"slowing_speed"`
	TurnSmoothing      *float64 `yaml:"turn_smoothing"`
}

type AgentSpec struct {
	Speed            float64 `yaml:"speed"`
	StoppingDistance float64 `yaml:"stopping_distance"`
}

type AnimatorSpec struct {
	Default         string              `yaml:"default"`
	RootMotionParam string              `yaml:"root_motion_param"`
	RootMotionScale float64             `yaml:"root_motion_scale"`
	States          []AnimatorStateSpec `yaml:"states"`
}

type AnimatorStateSpec struct {
	Name       string  `yaml:"name"`
	Tag        string  `yaml:"tag"`
	Duration   float64 `yaml:"duration"`
	RootMotion bool    `yaml:"root_motion"`
}

type LevelSpec struct {
	Name     string            `yaml:"name"`
	CellSize float64           `yaml:"cell_size"`
	Origin   PoseSpec          `yaml:"origin"`
	Rows     []string          `yaml:"rows"`
	Camera   CameraSpec        `yaml:"camera"`
	Entities []EntityBuildSpec `yaml:"entities"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
		name += ".yaml"
	}
	spec, err := LoadSpec[LevelSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Scale float64 `yaml:"scale"`
	X     float64 `yaml:"x"`
	Z     float64 `yaml:"z"`
}

// PoseSpec is a position plus a heading in degrees around +Y.
type PoseSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type ShapeSpec struct {
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
	Label  string     `yaml:"label"`
	Layer  int        `yaml:"layer"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
