package ecs

import "github.com/milk9111/swiper/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	v := value
	return w.AddComponent(e, handle.Kind(), &v)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	ptr, ok := GetPtr(w, e, handle)
	if !ok {
		return zero, false
	}
	return *ptr, true
}

// GetPtr returns the stored component so callers can mutate it in place.
func GetPtr[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return nil, false
	}
	ptr, ok := value.(*T)
	return ptr, ok
}

// ForEach visits every entity holding the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	for _, e := range w.Query(handle.Kind()) {
		if ptr, ok := GetPtr(w, e, handle); ok {
			fn(e, ptr)
		}
	}
}

// Single returns the stored component of the first entity holding it. Used
// for world-wide singletons such as the pointer and viewport.
func Single[T any](w *World, handle component.ComponentHandle[T]) (Entity, *T, bool) {
	e, ok := w.First(handle.Kind())
	if !ok {
		return 0, nil, false
	}
	ptr, ok := GetPtr(w, e, handle)
	return e, ptr, ok
}
