package system

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/pointclick/common"
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
	"github.com/milk9111/pointclick/locomotion"
)

const clickMarkerFrames = 24

var clickMarkerColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90}

// ClickSystem routes pointer clicks to the player controllers: onto the
// interactable under the pointer when there is one, otherwise onto the ground.
type ClickSystem struct{}

func NewClickSystem() *ClickSystem {
	return &ClickSystem{}
}

func (c *ClickSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PointerInputComponent.Kind(), func(e ecs.Entity, in *component.PointerInput) {
		if !in.Clicked {
			return
		}
		in.Clicked = false
		DispatchClick(w, in.World)
	})
}

// DispatchClick delivers a click at a ground point to every player. It
// reports whether any controller accepted it.
func DispatchClick(w *ecs.World, point mgl64.Vec3) bool {
	target := InteractableAt(w, point)

	accepted := false
	players := w.Query(component.PlayerTagComponent.Kind(), component.LocomotionComponent.Kind())
	for _, p := range players {
		loco, ok := ecs.Get(w, p, component.LocomotionComponent.Kind())
		if !ok || loco.Controller == nil || !loco.Controller.HandlesInput() {
			continue
		}
		if target != nil {
			loco.Controller.OnInteractableClick(target.Target)
		} else {
			loco.Controller.OnGroundClick(locomotion.RaycastHit{Point: point})
		}
		accepted = true
		spawnClickMarker(w, loco.Controller.Destination())
	}
	return accepted
}

// InteractableAt returns the closest interactable whose pick radius contains
// point on the ground plane.
func InteractableAt(w *ecs.World, point mgl64.Vec3) *component.Interactable {
	var best *component.Interactable
	bestDist := 0.0
	ecs.ForEach2(w, component.InteractableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, i *component.Interactable, t *component.Transform) {
		if i.Target == nil {
			return
		}
		d := common.FlatDistance(point, t.Pose.Position)
		if d > i.Radius {
			return
		}
		if best == nil || d < bestDist {
			best = i
			bestDist = d
		}
	})
	return best
}

func spawnClickMarker(w *ecs.World, at mgl64.Vec3) {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pose: common.NewPose(at)})
	_ = ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{Radius: 0.12, Color: clickMarkerColor})
	_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: clickMarkerFrames})
}
