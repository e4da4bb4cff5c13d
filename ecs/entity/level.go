package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
	"github.com/milk9111/pointclick/interaction"
	"github.com/milk9111/pointclick/navmesh"
	"github.com/milk9111/pointclick/prefabs"
)

// BuildLevel creates the level entity holding the navmesh, the camera and the
// pointer input.
func BuildLevel(w *ecs.World, spec *prefabs.LevelSpec, flags *interaction.Flags) (*navmesh.Mesh, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: nil spec")
	}
	origin := mgl64.Vec3{spec.Origin.X, spec.Origin.Y, spec.Origin.Z}
	mesh, err := navmesh.ParseRows(origin, spec.CellSize, spec.Rows)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", spec.Name, err)
	}

	level := w.CreateEntity()
	if err := ecs.Add(w, level, component.LevelComponent.Kind(), &component.Level{Name: spec.Name, Mesh: mesh, Flags: flags}); err != nil {
		return nil, fmt.Errorf("level %s: %w", spec.Name, err)
	}

	scale := spec.Camera.Scale
	if scale <= 0 {
		scale = 32
	}
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Origin: mgl64.Vec3{spec.Camera.X, origin.Y(), spec.Camera.Z},
		Scale:  scale,
	}); err != nil {
		return nil, fmt.Errorf("level %s: camera: %w", spec.Name, err)
	}

	pointer := w.CreateEntity()
	if err := ecs.Add(w, pointer, component.PointerInputComponent.Kind(), &component.PointerInput{}); err != nil {
		return nil, fmt.Errorf("level %s: pointer: %w", spec.Name, err)
	}

	return mesh, nil
}
