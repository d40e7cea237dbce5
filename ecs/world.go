package ecs

import (
	"fmt"

	"github.com/milk9111/swiper/ecs/component"
)

// Kind identifies a component storage. component.ComponentKind[T] satisfies it.
type Kind interface {
	ID() component.ComponentID
	Valid() bool
}

// World owns entities and their component storages.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount reports the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.live
}

func (w *World) AddComponent(e Entity, kind Kind, value any) error {
	if !w.IsAlive(e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	if kind == nil || !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func (w *World) GetComponent(e Entity, kind Kind) (any, bool) {
	if !w.IsAlive(e) || kind == nil {
		return nil, false
	}
	store := w.store(kind.ID(), false)
	if store == nil {
		return nil, false
	}
	v := store.Get(e)
	return v, v != nil
}

func (w *World) HasComponent(e Entity, kind Kind) bool {
	_, ok := w.GetComponent(e, kind)
	return ok
}

func (w *World) RemoveComponent(e Entity, kind Kind) bool {
	if !w.IsAlive(e) || kind == nil {
		return false
	}
	store := w.store(kind.ID(), false)
	if store == nil {
		return false
	}
	return store.Remove(e)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
