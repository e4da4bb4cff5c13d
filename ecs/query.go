package ecs

import "github.com/milk9111/pointclick/ecs/component"

// Query returns the entities holding every given kind.
func (w *World) Query(kinds ...component.KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	// iterate smallest set
	var smallest *SparseSet
	for _, k := range kinds {
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, id := range smallest.ids() {
		match := true
		for _, k := range kinds {
			if !w.store(k.ID(), false).Has(id) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}
