package anim

import (
	"time"

	"github.com/fogleman/ease"
)

// Property identifies which scalar of an entity a transition drives.
type Property uint8

const (
	PropertyHover Property = iota
	PropertyFlip
)

func (p Property) String() string {
	switch p {
	case PropertyHover:
		return "hover"
	case PropertyFlip:
		return "flip"
	default:
		return "unknown"
	}
}

// entry is one in-flight transition. Entries are immutable after Start;
// only elapsed time moves them forward.
type entry struct {
	prop     Property
	start    time.Time
	duration time.Duration
	from     float64
	to       float64
}

// Timer tracks at most one in-flight property transition per entity and
// reports eased values as wall-clock time advances. Completed entries remove
// themselves on the query that observes completion. Not safe for concurrent
// use; it is driven once per frame from the update loop.
type Timer struct {
	active map[int]entry
	now    func() time.Time
}

func NewTimer() *Timer {
	return &Timer{
		active: make(map[int]entry),
		now:    time.Now,
	}
}

// Start records a transition for the entity, replacing any transition already
// running for it regardless of property. from/to are not validated. A
// duration <= 0 leaves the entry already past its end, so the next Update
// completes it immediately.
func (t *Timer) Start(id int, prop Property, from, to float64, duration time.Duration) {
	if t == nil {
		return
	}
	t.active[id] = entry{
		prop:     prop,
		start:    t.now(),
		duration: duration,
		from:     from,
		to:       to,
	}
}

// Update returns the current eased value for the entity's transition. ok is
// false when the entity has no active transition. When the transition has
// reached its full duration the final value is returned once and the entry is
// removed, so the following call reports absence.
func (t *Timer) Update(id int) (prop Property, value float64, ok bool) {
	if t == nil {
		return 0, 0, false
	}
	e, exists := t.active[id]
	if !exists {
		return 0, 0, false
	}

	progress := 1.0
	if e.duration > 0 {
		progress = float64(t.now().Sub(e.start)) / float64(e.duration)
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
	}
	if progress >= 1 {
		delete(t.active, id)
	}

	eased := ease.InOutQuad(progress)
	return e.prop, e.from + (e.to-e.from)*eased, true
}

// IsAnimating reports whether the entity has an active transition. It never
// mutates state, even for entries past their end.
func (t *Timer) IsAnimating(id int) bool {
	if t == nil {
		return false
	}
	_, ok := t.active[id]
	return ok
}

// HasActive reports whether any transitions remain. Callers use it to decide
// whether the board is settled.
func (t *Timer) HasActive() bool {
	return t != nil && len(t.active) > 0
}
