package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/pointclick/animator"
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
	"github.com/milk9111/pointclick/locomotion"
	"github.com/milk9111/pointclick/navmesh"
	"github.com/milk9111/pointclick/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0x3a, G: 0x7b, B: 0xd5, A: 0xff}

// BuildPlayer creates the controllable character on mesh.
func BuildPlayer(w *ecs.World, spec *prefabs.PlayerSpec, mesh *navmesh.Mesh) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	e := w.CreateEntity()
	transform := &component.Transform{Pose: PoseFromSpec(spec.Transform)}
	pose := &transform.Pose

	anim, err := buildAnimator(spec.Animator, transform)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	agent := navmesh.NewAgent(mesh, pose, spec.Agent.Speed, spec.Agent.StoppingDistance)

	controller := locomotion.New(pose, agent, anim, mesh, SettingsFromSpec(spec.Locomotion))
	controller.Start()

	radius := spec.Shape.Radius
	if radius <= 0 {
		radius = 0.35
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), transform); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.NavAgentComponent.Kind(), &component.NavAgent{Agent: agent}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), &component.Animator{Driver: anim}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.LocomotionComponent.Kind(), &component.Locomotion{Controller: controller}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Radius: radius,
		Color:  shapeColor(spec.Shape.Color, defaultPlayerColor),
		Label:  spec.Shape.Label,
		Facing: true,
	}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Shape.Layer}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

func buildAnimator(spec prefabs.AnimatorSpec, transform *component.Transform) (*animator.Animator, error) {
	var def animator.State
	others := make([]animator.State, 0, len(spec.States))
	for _, s := range spec.States {
		state := animator.State{
			Name:       s.Name,
			Tag:        s.Tag,
			Duration:   s.Duration,
			RootMotion: s.RootMotion,
		}
		if s.Name == spec.Default {
			def = state
			continue
		}
		others = append(others, state)
	}
	if def.Name == "" {
		return nil, fmt.Errorf("animator: default state %q not defined", spec.Default)
	}

	anim := animator.New(&transform.Pose, def, others...)
	anim.RootMotionParam = spec.RootMotionParam
	if spec.RootMotionScale > 0 {
		anim.RootMotionScale = spec.RootMotionScale
	}
	return anim, nil
}

// ApplyPlayerTunables updates a live player from a reloaded spec. Only
// controller settings and agent steering are changed; the pose is kept.
func ApplyPlayerTunables(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec) error {
	if spec == nil {
		return fmt.Errorf("player: nil spec")
	}
	loco, ok := ecs.Get(w, player, component.LocomotionComponent.Kind())
	if !ok || loco.Controller == nil {
		return fmt.Errorf("player %s: no locomotion", player)
	}
	loco.Controller.SetSettings(SettingsFromSpec(spec.Locomotion))

	if nav, ok := ecs.Get(w, player, component.NavAgentComponent.Kind()); ok && nav.Agent != nil {
		if spec.Agent.Speed > 0 {
			nav.Agent.Speed = spec.Agent.Speed
		}
		nav.Agent.SetStoppingDistance(spec.Agent.StoppingDistance)
	}
	return nil
}
