package entity

import (
	"path/filepath"

	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
)

// characterHost applies reaction effects to one character.
type characterHost struct {
	w *ecs.World
	e ecs.Entity
}

func (h *characterHost) Play(state string) bool {
	anim, ok := ecs.Get(h.w, h.e, component.AnimatorComponent.Kind())
	if !ok || anim.Driver == nil {
		return false
	}
	return anim.Driver.Play(state)
}

func (h *characterHost) Say(speaker, text string) {
	h.w.Events().Push(ecs.Event{
		Type: ecs.EventSay,
		Data: ecs.SayEvent{Speaker: speaker, Text: text},
	})
}

func sameScript(a, b string) bool {
	return filepath.Base(filepath.ToSlash(a)) == filepath.Base(filepath.ToSlash(b))
}
