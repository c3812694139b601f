package ecs

import (
	"testing"

	"github.com/milk9111/cardboard/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

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
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	if !DestroyEntity(w, e1) {
		t.Fatalf("destroy failed")
	}

	// The freed id is recycled with a bumped generation; the old handle must
	// stay dead.
	e2 := CreateEntity(w)
	if e1.Index() != e2.Index() {
		t.Fatalf("expected id reuse, got %d and %d", e1.Index(), e2.Index())
	}
	if IsAlive(w, e1) {
		t.Fatalf("stale handle should be dead")
	}
	if !IsAlive(w, e2) {
		t.Fatalf("recycled handle should be alive")
	}
	if DestroyEntity(w, e1) {
		t.Fatalf("destroying a stale handle should fail")
	}
}

func TestWorldComponents(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

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
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) && Remove(w, e2, h2.Kind()) },
		},
		{
			name:  "replace_value",
			setup: func() error { _ = Add(w, e1, h1.Kind(), intPtr(1)); return Add(w, e1, h1.Kind(), intPtr(2)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 2 {
					t.Fatalf("expected replaced value 2, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
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
}

func TestWorldAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h.Kind(), nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}

	DestroyEntity(w, e)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}

	var invalid component.ComponentKind[int]
	e2 := CreateEntity(w)
	if err := Add(w, e2, invalid, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	seen := make(map[Entity]int)
	ForEach(w, h.Kind(), func(e Entity, v *int) { seen[e] = *v })

	if len(seen) != 2 {
		t.Fatalf("expected 2 visits, got %d", len(seen))
	}
	if seen[e1] != 1 || seen[e3] != 3 {
		t.Fatalf("unexpected visit values: %v", seen)
	}
	if _, ok := seen[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachSkipsDeadEntities(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, e) {
		t.Fatal("failed to destroy entity")
	}

	count := 0
	ForEach(w, h.Kind(), func(Entity, *int) { count++ })
	if count != 0 {
		t.Fatalf("expected no visits after destroy, got %d", count)
	}
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
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[string]()

				if err := Add(w, e1, ka.Kind(), intPtr(1)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, ka.Kind(), intPtr(2)); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e2, kb.Kind(), stringPtr("x")); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e3, kb.Kind(), stringPtr("y")); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach2(w, ka.Kind(), kb.Kind(), func(e Entity, _ *int, _ *string) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store_is_empty",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[string]()

				if err := Add(w, e, ka.Kind(), intPtr(1)); err != nil {
					t.Fatal(err)
				}

				count := 0
				ForEach2(w, ka.Kind(), kb.Kind(), func(Entity, *int, *string) { count++ })
				if count != 0 {
					t.Fatalf("expected no visits when second store missing, got %d", count)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirstAndQuery(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponent[int]()
	kb := component.NewComponent[string]()

	if _, ok := First(w, ka.Kind()); ok {
		t.Fatalf("expected no entity before any Add")
	}

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e1, ka.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ka.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, kb.Kind(), stringPtr("x")); err != nil {
		t.Fatal(err)
	}

	if e, ok := First(w, kb.Kind()); !ok || e != e2 {
		t.Fatalf("expected First to find e2, got %v ok=%v", e, ok)
	}

	both := Query(w, ka.ID(), kb.ID())
	if len(both) != 1 || both[0] != e2 {
		t.Fatalf("expected query to return only e2, got %v", both)
	}
	onlyA := Query(w, ka.ID())
	if len(onlyA) != 2 {
		t.Fatalf("expected 2 entities with ka, got %d", len(onlyA))
	}
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	q := w.Events()

	q.Push(Event{Type: EventMatch})
	q.Push(Event{Type: EventWin})

	evts := q.Drain()
	if len(evts) != 2 || evts[0].Type != EventMatch || evts[1].Type != EventWin {
		t.Fatalf("unexpected drained events: %v", evts)
	}
	if got := q.Drain(); got != nil {
		t.Fatalf("expected empty queue after drain, got %v", got)
	}
}
