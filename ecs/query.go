package ecs

// Query returns live entities that have every listed component. Results
// follow the dense order of the smallest storage.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	var smallest *SparseSet
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s == nil || s.Len() == 0 {
			return nil
		}
		if smallest == nil || s.Len() < smallest.Len() {
			smallest = s
		}
	}

	out := make([]Entity, 0, smallest.Len())
	for _, e := range smallest.Entities() {
		match := true
		for _, k := range kinds {
			if !w.store(k.ID(), false).Has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first entity holding the component, if any.
func (w *World) First(kind Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
