package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a level entity described as a bag of component specs.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// InteractableComponentSpec configures a clickable world object.
type InteractableComponentSpec struct {
	Radius      float64  `yaml:"radius"`
	Interaction PoseSpec `yaml:"interaction"`
	Animation   string   `yaml:"animation"`
	Script      string   `yaml:"script"`
}
