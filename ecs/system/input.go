package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
)

// InputSystem polls the mouse and projects it onto the ground plane.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	mx, my := ebiten.CursorPosition()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		mx, my = ebiten.TouchPosition(touches[0])
		clicked = true
	}

	camera := firstCamera(w)
	ecs.ForEach(w, component.PointerInputComponent.Kind(), func(e ecs.Entity, in *component.PointerInput) {
		in.ScreenX = float64(mx)
		in.ScreenY = float64(my)
		in.World = camera.ScreenToWorld(in.ScreenX, in.ScreenY)
		in.Clicked = clicked
	})
}

func firstCamera(w *ecs.World) *component.Camera {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil
	}
	camera, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	return camera
}
