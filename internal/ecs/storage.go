package ecs

import "slices"

// IDSet is anything that can report which entities it holds.
type IDSet interface {
	Has(e Entity) bool
	Len() int
	Entities() []Entity
}

// Storage holds one component kind, keyed by entity.
type Storage[T any] struct {
	items map[Entity]*T
}

// NewStorage creates an empty storage.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{items: make(map[Entity]*T)}
}

// Insert attaches c to e, replacing any previous value.
func (s *Storage[T]) Insert(e Entity, c T) {
	s.items[e] = &c
}

// Get returns a pointer to e's component for in-place mutation.
func (s *Storage[T]) Get(e Entity) (*T, bool) {
	c, ok := s.items[e]
	return c, ok
}

// Has reports whether e carries this component.
func (s *Storage[T]) Has(e Entity) bool {
	_, ok := s.items[e]
	return ok
}

// Remove detaches the component from e.
func (s *Storage[T]) Remove(e Entity) {
	delete(s.items, e)
}

// Len returns the number of entities in the storage.
func (s *Storage[T]) Len() int {
	return len(s.items)
}

// Entities returns the ids in the storage in ascending order.
func (s *Storage[T]) Entities() []Entity {
	ids := make([]Entity, 0, len(s.items))
	for e := range s.items {
		ids = append(ids, e)
	}
	slices.Sort(ids)
	return ids
}

// Join returns the entities present in every set, in ascending id order.
func Join(sets ...IDSet) []Entity {
	if len(sets) == 0 {
		return nil
	}

	// Iterate the smallest set and probe the others.
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	var result []Entity
	for _, e := range smallest.Entities() {
		match := true
		for _, s := range sets {
			if !s.Has(e) {
				match = false
				break
			}
		}
		if match {
			result = append(result, e)
		}
	}
	return result
}
