package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
	"golang.org/x/image/font/basicfont"
)

var (
	floorColor   = color.NRGBA{R: 0x2b, G: 0x2d, B: 0x42, A: 0xff}
	wallColor    = color.NRGBA{R: 0x14, G: 0x15, B: 0x20, A: 0xff}
	pathColor    = color.NRGBA{R: 0x9b, G: 0xf6, B: 0xff, A: 0xc0}
	anchorColor  = color.NRGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xa0}
	speechBG     = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0}
	labelColor   = color.White
	labelFace    = text.NewGoXFace(basicfont.Face7x13)
	labelLineGap = 16.0
)

// RenderSystem draws the level top-down with every shaped entity, plus the
// dialogue line and, in debug mode, agent paths and controller state.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (r *RenderSystem) Update(w *ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camera := firstCamera(w)
	screen.Fill(wallColor)

	r.drawLevel(w, screen, camera)
	if r.Debug {
		r.drawPaths(w, screen, camera)
	}
	r.drawShapes(w, screen, camera)
	r.drawSpeech(w, screen)
	if r.Debug {
		r.drawDebug(w, screen)
	}
}

func (r *RenderSystem) drawLevel(w *ecs.World, screen *ebiten.Image, camera *component.Camera) {
	e, ok := ecs.First(w, component.LevelComponent.Kind())
	if !ok {
		return
	}
	level, ok := ecs.Get(w, e, component.LevelComponent.Kind())
	if !ok || level.Mesh == nil {
		return
	}
	mesh := level.Mesh
	size := float32(mesh.CellSize * cameraScale(camera))
	for z := 0; z < mesh.Depth; z++ {
		for x := 0; x < mesh.Width; x++ {
			if !mesh.Walkable(x, z) {
				continue
			}
			c := mesh.CellCenter(x, z)
			sx, sy := camera.WorldToScreen(c)
			vector.FillRect(screen, float32(sx)-size/2, float32(sy)-size/2, size, size, floorColor, false)
		}
	}
}

func (r *RenderSystem) drawPaths(w *ecs.World, screen *ebiten.Image, camera *component.Camera) {
	ecs.ForEach2(w, component.NavAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, nav *component.NavAgent, t *component.Transform) {
		if nav.Agent == nil {
			return
		}
		px, py := camera.WorldToScreen(t.Pose.Position)
		for _, c := range nav.Agent.Corners() {
			cx, cy := camera.WorldToScreen(c)
			vector.StrokeLine(screen, float32(px), float32(py), float32(cx), float32(cy), 2, pathColor, true)
			px, py = cx, cy
		}
	})
	ecs.ForEach(w, component.InteractableComponent.Kind(), func(e ecs.Entity, i *component.Interactable) {
		if i.Target == nil {
			return
		}
		loc := i.Target.InteractionLocation()
		ax, ay := camera.WorldToScreen(loc.Position)
		tip := loc.Position.Add(loc.Forward().Mul(0.4))
		tx, ty := camera.WorldToScreen(tip)
		vector.FillCircle(screen, float32(ax), float32(ay), 3, anchorColor, true)
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(tx), float32(ty), 1, anchorColor, true)
	})
}

func (r *RenderSystem) drawShapes(w *ecs.World, screen *ebiten.Image, camera *component.Camera) {
	entities := w.Query(component.TransformComponent.Kind(), component.ShapeComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	scale := cameraScale(camera)
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.ShapeComponent.Kind())
		if s.Color == nil || s.Radius <= 0 {
			continue
		}

		x, y := camera.WorldToScreen(t.Pose.Position)
		radius := s.Radius * scale
		vector.FillCircle(screen, float32(x), float32(y), float32(radius), s.Color, true)

		if s.Facing {
			f := t.Pose.Forward()
			heading := math.Atan2(f.Z(), f.X())
			tx := x + math.Cos(heading)*radius*1.4
			ty := y + math.Sin(heading)*radius*1.4
			vector.StrokeLine(screen, float32(x), float32(y), float32(tx), float32(ty), 3, labelColor, true)
		}
		if s.Label != "" {
			drawText(screen, s.Label, x-radius, y+radius+2, labelColor)
		}
	}
}

func (r *RenderSystem) drawSpeech(w *ecs.World, screen *ebiten.Image) {
	e, ok := ecs.First(w, component.SpeechComponent.Kind())
	if !ok {
		return
	}
	speech, ok := ecs.Get(w, e, component.SpeechComponent.Kind())
	if !ok || speech.Text == "" {
		return
	}

	bounds := screen.Bounds()
	line := fmt.Sprintf("%s: %s", speech.Speaker, speech.Text)
	h := float32(labelLineGap + 16)
	y := float32(bounds.Dy()) - h - 12
	vector.FillRect(screen, 12, y, float32(bounds.Dx())-24, h, speechBG, false)
	drawText(screen, line, 24, float64(y)+8, labelColor)
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		if loco.Controller == nil {
			return
		}
		msg += fmt.Sprintf("\nentity %s: %s speed=%.3f hold=%s input=%t",
			e, loco.Phase, loco.Controller.Speed(), loco.Controller.Hold(), loco.Controller.HandlesInput())
	})
	if le, ok := ecs.First(w, component.LevelComponent.Kind()); ok {
		if level, ok := ecs.Get(w, le, component.LevelComponent.Kind()); ok && level.Flags != nil {
			msg += fmt.Sprintf("\nflags: %v", level.Flags.Names())
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, labelFace, op)
}

func cameraScale(c *component.Camera) float64 {
	if c == nil || c.Scale <= 0 {
		return 1
	}
	return c.Scale
}
