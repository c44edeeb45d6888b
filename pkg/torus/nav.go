// ABOUTME: Nav is the explicit context object owning registry, torus, and index
// ABOUTME: Named-ring lookup/create, skip-empty torus rotation, ring deletion

package torus

import (
	"errors"

	"github.com/mauromedda/torus-go/pkg/ring"
)

var (
	// ErrRingExists is returned by Create when the name is already registered.
	ErrRingExists = errors.New("ring already exists")

	// ErrNoRings is returned by Rotate when the torus has no rings at all.
	ErrNoRings = errors.New("no rings")

	// ErrAllEmpty is returned by Rotate when every ring is empty; the torus
	// position is left unchanged.
	ErrAllEmpty = errors.New("all rings are empty")
)

// Nav owns one registry, one torus, and one membership index. Create one per
// logical navigation context; there is no process-wide instance.
//
// Like the rings it manages, a Nav has no internal locking. All operations
// must run on a single logical thread, or be serialized by one caller-held
// mutex covering the Nav and every ring it owns (torus rotation touches ring
// internals transitively).
type Nav[T comparable] struct {
	rings map[string]*Ring[T]
	torus *ring.Ring[*Ring[T]]
	index membership[T]
}

// New creates an empty Nav.
func New[T comparable]() *Nav[T] {
	return &Nav[T]{
		rings: make(map[string]*Ring[T]),
		torus: ring.New[*Ring[T]](),
		index: make(membership[T]),
	}
}

// Lookup returns the ring registered under name.
func (n *Nav[T]) Lookup(name string) (*Ring[T], bool) {
	r, ok := n.rings[name]
	return r, ok
}

// Create registers a new empty ring under name and inserts it into the
// torus. Returns ErrRingExists when the name is taken.
func (n *Nav[T]) Create(name string) (*Ring[T], error) {
	if _, ok := n.rings[name]; ok {
		return nil, ErrRingExists
	}
	r := &Ring[T]{name: name, items: ring.New[T](), nav: n}
	n.rings[name] = r
	_ = n.torus.Insert(r)
	return r, nil
}

// GetOrCreate returns the ring registered under name, creating it first when
// absent. The second result reports whether a new ring was created.
func (n *Nav[T]) GetOrCreate(name string) (*Ring[T], bool) {
	if r, ok := n.rings[name]; ok {
		return r, false
	}
	r, _ := n.Create(name)
	return r, true
}

// Remove unregisters name without touching the torus or destroying the ring.
// DeleteRing coordinates the full teardown; Remove exists for callers that
// sequence it themselves.
func (n *Nav[T]) Remove(name string) bool {
	if _, ok := n.rings[name]; !ok {
		return false
	}
	delete(n.rings, name)
	return true
}

// Len returns the number of registered rings.
func (n *Nav[T]) Len() int {
	return n.torus.Len()
}

// CurrentRing returns the ring under the torus cursor.
func (n *Nav[T]) CurrentRing() (*Ring[T], bool) {
	return n.torus.Current()
}

// SwitchTo makes the named ring current on the torus, recording it as most
// recently visited, and returns that ring's current item for the caller to
// present. The second result is false when the name is unknown (no change)
// or the ring is empty (nothing to present).
func (n *Nav[T]) SwitchTo(name string) (T, bool) {
	r, ok := n.rings[name]
	if !ok {
		var zero T
		return zero, false
	}
	n.torus.BreakInsert(r)
	return r.Current()
}

// Rotate moves the torus cursor in the given direction, skipping empty rings,
// and returns the new current ring's current item. Returns ErrNoRings on an
// empty torus and ErrAllEmpty, with the cursor restored, when no ring has
// items. A torus whose only non-empty ring is the current one succeeds and
// stays put after a full cycle.
func (n *Nav[T]) Rotate(dir ring.Direction) (T, error) {
	var zero T
	if n.torus.Len() == 0 {
		return zero, ErrNoRings
	}
	found := n.torus.RotateUntil(dir, func(r *Ring[T]) bool {
		return r.Len() > 0
	})
	if !found {
		return zero, ErrAllEmpty
	}
	r, _ := n.torus.Current()
	item, _ := r.Current()
	return item, nil
}

// ListNames returns the ring names in torus order starting at the current
// ring.
func (n *Nav[T]) ListNames() []string {
	return ring.Collect(n.torus, func(r *Ring[T]) string { return r.name })
}

// SizeOf returns the size of the named ring, or -1 when the name is unknown.
// The sentinel keeps arithmetic comparisons safe without a lookup at every
// call site.
func (n *Nav[T]) SizeOf(name string) int {
	r, ok := n.rings[name]
	if !ok {
		return -1
	}
	return r.Len()
}

// DeleteRing removes every item from the named ring through the index
// deletion path, removes the ring from the torus and registry, and destroys
// it. Returns false when the name is unknown.
func (n *Nav[T]) DeleteRing(name string) bool {
	r, ok := n.rings[name]
	if !ok {
		return false
	}
	for _, item := range r.Items() {
		r.Delete(item)
	}
	n.torus.Delete(r)
	delete(n.rings, name)
	r.Destroy()
	return true
}

// DeleteCurrentRing deletes the ring under the torus cursor. Returns false
// when the torus is empty.
func (n *Nav[T]) DeleteCurrentRing() bool {
	r, ok := n.torus.Current()
	if !ok {
		return false
	}
	return n.DeleteRing(r.name)
}

// RingsContaining returns a snapshot of the rings that contain item, in no
// particular order.
func (n *Nav[T]) RingsContaining(item T) []*Ring[T] {
	return n.index.containing(item)
}

// DropEverywhere removes item from every ring that contains it, leaving the
// item untracked. Hosts call this when the item's external lifetime ends.
func (n *Nav[T]) DropEverywhere(item T) {
	for _, r := range n.index.containing(item) {
		r.Delete(item)
	}
}
