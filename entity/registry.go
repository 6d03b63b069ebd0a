package entity

import (
	"errors"
	"fmt"

	"github.com/gogpu/boxplay/physics"
)

// ErrUnknownEntity is returned when an ID is not in the registry.
var ErrUnknownEntity = errors.New("entity: unknown entity")

// Registry holds entities in spawn order.
//
// Registry is NOT safe for concurrent use.
type Registry struct {
	entities []*Entity
	nextID   ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends e, assigns its ID and returns it.
func (r *Registry) Add(e *Entity) *Entity {
	r.nextID++
	e.ID = r.nextID
	r.entities = append(r.entities, e)
	return e
}

// Get returns the entity with the given ID.
func (r *Registry) Get(id ID) (*Entity, bool) {
	for _, e := range r.entities {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// All returns the entities in spawn order.
// The returned slice must not be modified.
func (r *Registry) All() []*Entity {
	return r.entities
}

// Len returns the number of entities.
func (r *Registry) Len() int {
	return len(r.entities)
}

// Playables returns the playable entities in spawn order.
func (r *Registry) Playables() []*Entity {
	var out []*Entity
	for _, e := range r.entities {
		if e.IsPlayable() {
			out = append(out, e)
		}
	}
	return out
}

// FirstPlayable returns the first playable entity in spawn order.
func (r *Registry) FirstPlayable() (*Entity, bool) {
	for _, e := range r.entities {
		if e.IsPlayable() {
			return e, true
		}
	}
	return nil, false
}

// Remove deletes the entity from the registry and its bodies from w.
// The anchor of an anchored player is removed too, which drops the pivot
// and gear constraints with it.
func (r *Registry) Remove(w *physics.World, id ID) error {
	for i, e := range r.entities {
		if e.ID != id {
			continue
		}
		if e.Playable != nil && e.Playable.Anchor != 0 {
			if err := w.RemoveBody(e.Playable.Anchor); err != nil {
				return fmt.Errorf("entity %d: remove anchor: %w", id, err)
			}
		}
		if err := w.RemoveBody(e.Body); err != nil {
			return fmt.Errorf("entity %d: remove body: %w", id, err)
		}
		r.entities = append(r.entities[:i], r.entities[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownEntity, id)
}
