// ABOUTME: Named ring wrapping the generic container with index bookkeeping
// ABOUTME: Insert/Delete/BreakInsert keep the Nav's membership index in sync

package torus

import "github.com/mauromedda/torus-go/pkg/ring"

// Ring is a named ring owned by a Nav. Items are borrowed references; the
// ring tracks membership only and never manages item lifetimes.
type Ring[T comparable] struct {
	name  string
	items *ring.Ring[T]
	nav   *Nav[T]
}

// Name returns the ring's registered name.
func (r *Ring[T]) Name() string {
	return r.name
}

// Len returns the number of items in the ring.
func (r *Ring[T]) Len() int {
	return r.items.Len()
}

// Contains reports whether item is in the ring.
func (r *Ring[T]) Contains(item T) bool {
	return r.items.Contains(item)
}

// Current returns the ring's current item; false when the ring is empty.
func (r *Ring[T]) Current() (T, bool) {
	return r.items.Current()
}

// Insert adds item to the ring and records the membership in the Nav's
// index. Returns ring.ErrDuplicate when the item is already present.
func (r *Ring[T]) Insert(item T) error {
	if err := r.items.Insert(item); err != nil {
		return err
	}
	r.nav.index.add(item, r)
	return nil
}

// Delete removes item from the ring and from its index entry. Returns false
// when the item is absent.
func (r *Ring[T]) Delete(item T) bool {
	if !r.items.Delete(item) {
		return false
	}
	r.nav.index.remove(item, r)
	return true
}

// Rotate moves the ring cursor one position; false when there are fewer than
// two items.
func (r *Ring[T]) Rotate(dir ring.Direction) bool {
	return r.items.Rotate(dir)
}

// RotateUntil rotates up to one full cycle looking for an item matching
// pred, restoring the cursor on failure.
func (r *Ring[T]) RotateUntil(dir ring.Direction, pred func(T) bool) bool {
	return r.items.RotateUntil(dir, pred)
}

// BreakInsert makes item current, moving it from its existing slot or
// inserting it fresh. A fresh insert is recorded in the index like any
// other.
func (r *Ring[T]) BreakInsert(item T) {
	fresh := !r.items.Contains(item)
	r.items.BreakInsert(item)
	if fresh {
		r.nav.index.add(item, r)
	}
}

// Items returns a snapshot of the ring's items in ring order starting at the
// current item.
func (r *Ring[T]) Items() []T {
	return r.items.Values()
}

// Collect produces transform(item) for every item of r in ring order
// starting at the current item.
func Collect[T comparable, R any](r *Ring[T], transform func(T) R) []R {
	return ring.Collect(r.items, transform)
}

// Destroy releases the ring's index entries and empties it. The Nav calls
// this as the last step of DeleteRing; after Destroy the ring must not be
// used.
func (r *Ring[T]) Destroy() {
	for _, item := range r.items.Values() {
		r.items.Delete(item)
		r.nav.index.remove(item, r)
	}
}
