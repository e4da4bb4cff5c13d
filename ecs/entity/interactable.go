package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
	"github.com/milk9111/pointclick/interaction"
	"github.com/milk9111/pointclick/prefabs"
)

var defaultInteractableColor = color.NRGBA{R: 0xe0, G: 0x7a, B: 0x5f, A: 0xff}

// BuildInteractable creates a clickable level object. host receives the
// effects of its reaction script.
func BuildInteractable(w *ecs.World, spec prefabs.EntityBuildSpec, host interaction.Host, flags *interaction.Flags) (ecs.Entity, error) {
	raw, ok := spec.Components["interactable"]
	if !ok {
		return 0, fmt.Errorf("entity %s: missing interactable component", spec.Name)
	}
	ispec, err := prefabs.DecodeComponentSpec[prefabs.InteractableComponentSpec](raw)
	if err != nil {
		return 0, fmt.Errorf("entity %s: interactable: %w", spec.Name, err)
	}
	pose, err := prefabs.DecodeComponentSpec[prefabs.PoseSpec](spec.Components["transform"])
	if err != nil {
		return 0, fmt.Errorf("entity %s: transform: %w", spec.Name, err)
	}
	shape, err := prefabs.DecodeComponentSpec[prefabs.ShapeSpec](spec.Components["shape"])
	if err != nil {
		return 0, fmt.Errorf("entity %s: shape: %w", spec.Name, err)
	}

	target := interaction.New(spec.Name, PoseFromSpec(ispec.Interaction), host, flags)
	target.Animation = ispec.Animation
	if ispec.Script != "" {
		if err := loadScript(target, ispec.Script); err != nil {
			return 0, fmt.Errorf("entity %s: %w", spec.Name, err)
		}
	}

	radius := ispec.Radius
	if radius <= 0 {
		radius = 0.5
	}
	shapeRadius := shape.Radius
	if shapeRadius <= 0 {
		shapeRadius = radius
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pose: PoseFromSpec(pose)}); err != nil {
		return 0, fmt.Errorf("entity %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.InteractableComponent.Kind(), &component.Interactable{
		Target: target,
		Radius: radius,
		Script: ispec.Script,
	}); err != nil {
		return 0, fmt.Errorf("entity %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Radius: shapeRadius,
		Color:  shapeColor(shape.Color, defaultInteractableColor),
		Label:  shape.Label,
	}); err != nil {
		return 0, fmt.Errorf("entity %s: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: shape.Layer}); err != nil {
		return 0, fmt.Errorf("entity %s: %w", spec.Name, err)
	}
	return e, nil
}

func loadScript(target *interaction.Interactable, path string) error {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return fmt.Errorf("load script %s: %w", path, err)
	}
	return target.LoadScript(src)
}

// ReloadScripts recompiles every interactable using the script at path. It
// returns the number of interactables updated.
func ReloadScripts(w *ecs.World, path string) (int, error) {
	n := 0
	var firstErr error
	ecs.ForEach(w, component.InteractableComponent.Kind(), func(e ecs.Entity, i *component.Interactable) {
		if i.Target == nil || i.Script == "" || !sameScript(i.Script, path) {
			return
		}
		if err := loadScript(i.Target, i.Script); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		n++
	})
	return n, firstErr
}
