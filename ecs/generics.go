package ecs

import "github.com/milk9111/cardboard/ecs/component"

// handle rebuilds the live Entity for a dense store id.
func (w *World) handle(id int) (Entity, bool) {
	if w == nil || id <= 0 || id > len(w.entities.gen) {
		return Entity(0), false
	}
	if !w.entities.alive[id-1] {
		return Entity(0), false
	}
	return makeEntity(entityID(id), w.entities.gen[id-1]), true
}

// Add attaches a component to an entity, replacing any existing value.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if w == nil || !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(k.ID(), true).Set(e.Index(), v)
	return nil
}

// Get returns the entity's component, or ok=false.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) || !k.Valid() {
		return nil, false
	}
	v := w.store(k.ID(), false).Get(e.Index())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	if !ok {
		return nil, false
	}
	return cast, true
}

// Has reports whether the entity carries the component.
func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	_, ok := Get(w, e, k)
	return ok
}

// Remove detaches the component from the entity if present.
func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if w == nil || !w.IsAlive(e) || !k.Valid() {
		return false
	}
	return w.store(k.ID(), false).Remove(e.Index())
}

// ForEach visits every live entity carrying the component. The callback may
// add or remove components, including the one being iterated.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil || !k.Valid() {
		return
	}
	s := w.store(k.ID(), false)
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := w.handle(id)
		if !ok {
			continue
		}
		v, ok := s.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits every live entity carrying both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil || !ka.Valid() || !kb.Valid() {
		return
	}
	sa := w.store(ka.ID(), false)
	sb := w.store(kb.ID(), false)
	ids := append([]int(nil), sa.Entities()...)
	for _, id := range ids {
		if !sb.Has(id) {
			continue
		}
		e, ok := w.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

// First returns some live entity carrying the component, typically used for
// singletons like the board state.
func First[T any](w *World, k component.ComponentKind[T]) (Entity, bool) {
	if w == nil || !k.Valid() {
		return Entity(0), false
	}
	for _, id := range w.store(k.ID(), false).Entities() {
		if e, ok := w.handle(id); ok {
			return e, true
		}
	}
	return Entity(0), false
}

// Query returns all live entities carrying every listed component.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	base := w.store(ids[0], false)
	if base == nil {
		return nil
	}
	out := make([]Entity, 0, base.Len())
	for _, id := range base.Entities() {
		e, ok := w.handle(id)
		if !ok {
			continue
		}
		all := true
		for _, cid := range ids[1:] {
			if !w.store(cid, false).Has(id) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	return out
}
