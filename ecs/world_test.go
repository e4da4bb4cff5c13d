package ecs

import (
	"testing"

	"github.com/milk9111/pointclick/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := w.CreateEntity()
	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	w.DestroyEntity(e1)

	e2 := w.CreateEntity()
	if w.IsAlive(e1) {
		t.Fatalf("stale handle reported alive")
	}
	if !w.IsAlive(e2) {
		t.Fatalf("new entity should be alive")
	}
	if Has(w, e2, h.Kind()) {
		t.Fatalf("recycled entity should not inherit components")
	}
	if err := Add(w, e1, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()
		h3 := component.NewComponent[float64]()

		e1 := w.CreateEntity()
		e2 := w.CreateEntity()

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1.Kind()) },
			},
			{
				name: "add_str_to_e1_and_e2",
				setup: func() error {
					if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
						return err
					}
					return Add(w, e2, h2.Kind(), stringPtr("b"))
				},
				check: func(t *testing.T) {
					if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
						t.Fatalf("expected both entities to have string component")
					}
					got := toSet(w.Query(h2.Kind()))
					if len(got) != 2 {
						t.Fatalf("expected 2 entities in query, got %d", len(got))
					}
				},
				teardown: func() bool { return Remove(w, e1, h2.Kind()) },
			},
			{
				name:  "add_float_and_remove",
				setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
				check: func(t *testing.T) {
					if _, ok := Get(w, e1, h3.Kind()); !ok {
						t.Fatalf("expected float present")
					}
				},
				teardown: func() bool { return Remove(w, e1, h3.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})

	t.Run("rejects_nil_and_invalid", func(t *testing.T) {
		w := NewWorld()
		e := w.CreateEntity()
		h := component.NewComponent[int]()

		if err := Add[int](w, e, h.Kind(), nil); err != component.ErrNilComponent {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
		var zero component.ComponentKind[int]
		if err := Add(w, e, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
			t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
		}
	})
}

func TestForEach(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		e1 := w.CreateEntity()
		e2 := w.CreateEntity()
		e3 := w.CreateEntity()

		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var ents []Entity
		ForEach(w, h.Kind(), func(e Entity, _ *int) { ents = append(ents, e) })
		set := toSet(ents)

		if _, ok := set[e1]; !ok {
			t.Fatalf("expected e1 in ForEach result")
		}
		if _, ok := set[e3]; !ok {
			t.Fatalf("expected e3 in ForEach result")
		}
		if _, ok := set[e2]; ok {
			t.Fatalf("did not expect e2 in ForEach result")
		}
	})
}

func TestForEach2(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				hi := component.NewComponent[int]()
				hs := component.NewComponent[string]()

				e1 := w.CreateEntity()
				e2 := w.CreateEntity()

				_ = Add(w, e1, hi.Kind(), intPtr(1))
				_ = Add(w, e1, hs.Kind(), stringPtr("one"))
				_ = Add(w, e2, hi.Kind(), intPtr(2))

				var got []Entity
				ForEach2(w, hi.Kind(), hs.Kind(), func(e Entity, _ *int, s *string) {
					if *s != "one" {
						t.Fatalf("unexpected string %q", *s)
					}
					got = append(got, e)
				})
				if len(got) != 1 || got[0] != e1 {
					t.Fatalf("expected only e1, got %v", got)
				}
			},
		},
		{
			name: "destroyed_entities_skipped",
			run: func(t *testing.T) {
				w := NewWorld()
				hi := component.NewComponent[int]()
				hs := component.NewComponent[string]()

				e1 := w.CreateEntity()
				_ = Add(w, e1, hi.Kind(), intPtr(1))
				_ = Add(w, e1, hs.Kind(), stringPtr("one"))
				w.DestroyEntity(e1)

				calls := 0
				ForEach2(w, hi.Kind(), hs.Kind(), func(Entity, *int, *string) { calls++ })
				if calls != 0 {
					t.Fatalf("expected no calls, got %d", calls)
				}
				if _, ok := First(w, hi.Kind()); ok {
					t.Fatalf("expected no first entity")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

type countingSystem struct {
	calls *[]string
	name  string
}

func (s countingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
	w.Events().Push(Event{Type: s.name})
}

func TestWorldUpdateOrderAndEvents(t *testing.T) {
	w := NewWorld()
	var calls []string
	w.AddSystem(countingSystem{calls: &calls, name: "a"})
	w.AddSystem(nil)
	w.AddSystem(countingSystem{calls: &calls, name: "b"})

	w.Update()

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("expected systems in order [a b], got %v", calls)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("expected events flushed after update, got %d", w.Events().Len())
	}

	w.Events().Push(Event{Type: EventSay, Data: SayEvent{Speaker: "well", Text: "hi"}})
	evts := w.Events().Drain()
	if len(evts) != 1 || evts[0].Type != EventSay {
		t.Fatalf("unexpected drained events %v", evts)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("expected empty drain")
	}
}
