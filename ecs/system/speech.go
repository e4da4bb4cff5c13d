package system

import (
	"log"

	"github.com/milk9111/pointclick/ecs"
	"github.com/milk9111/pointclick/ecs/component"
)

const (
	speechBaseFrames    = 90
	speechFramesPerRune = 3
)

// SpeechSystem turns say events into a single on-screen line that expires
// after a time proportional to its length.
type SpeechSystem struct{}

func NewSpeechSystem() *SpeechSystem {
	return &SpeechSystem{}
}

func (s *SpeechSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventSay {
			continue
		}
		say, ok := evt.Data.(ecs.SayEvent)
		if !ok {
			continue
		}
		log.Printf("say: %s: %s", say.Speaker, say.Text)

		for _, old := range w.Query(component.SpeechComponent.Kind()) {
			w.DestroyEntity(old)
		}
		e := w.CreateEntity()
		_ = ecs.Add(w, e, component.SpeechComponent.Kind(), &component.Speech{Speaker: say.Speaker, Text: say.Text})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{
			Frames: speechBaseFrames + speechFramesPerRune*len([]rune(say.Text)),
		})
	}
}
