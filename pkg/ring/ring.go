// ABOUTME: Generic cyclic doubly-linked container with a current-item cursor
// ABOUTME: O(1) insert/delete/contains via node map; rotation and bounded search

package ring

import "errors"

// ErrDuplicate is returned by Insert when the item is already present.
var ErrDuplicate = errors.New("item already in ring")

// Direction selects which way the cursor moves around the cycle.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// node is a link in the cycle.
type node[T comparable] struct {
	item T
	next *node[T]
	prev *node[T]
}

// Ring is a cyclic ordered container of unique items with a cursor marking
// the current item. The zero value is not usable; call New.
//
// Not safe for concurrent use. Callers with more than one goroutine must
// serialize all operations externally.
type Ring[T comparable] struct {
	head  *node[T] // cursor; nil iff ring is empty
	nodes map[T]*node[T]
}

// New creates an empty ring.
func New[T comparable]() *Ring[T] {
	return &Ring[T]{nodes: make(map[T]*node[T])}
}

// Len returns the number of items in the ring.
func (r *Ring[T]) Len() int {
	return len(r.nodes)
}

// Contains reports whether item is in the ring.
func (r *Ring[T]) Contains(item T) bool {
	_, ok := r.nodes[item]
	return ok
}

// Current returns the item under the cursor. The second result is false when
// the ring is empty.
func (r *Ring[T]) Current() (T, bool) {
	if r.head == nil {
		var zero T
		return zero, false
	}
	return r.head.item, true
}

// Insert appends item just behind the cursor, preserving insertion order
// around the cycle. The first item inserted becomes current. Returns
// ErrDuplicate if the item is already present; the ring is unchanged.
func (r *Ring[T]) Insert(item T) error {
	if _, ok := r.nodes[item]; ok {
		return ErrDuplicate
	}
	n := &node[T]{item: item}
	r.nodes[item] = n

	if r.head == nil {
		n.next = n
		n.prev = n
		r.head = n
		return nil
	}

	// Splice in before head: head.prev <-> n <-> head.
	tail := r.head.prev
	tail.next = n
	n.prev = tail
	n.next = r.head
	r.head.prev = n
	return nil
}

// Delete removes item from the ring. Returns false when the item is absent;
// that is an expected outcome, not an error. When the cursor pointed at the
// removed item it advances to the logical successor, or clears if the ring
// is now empty.
func (r *Ring[T]) Delete(item T) bool {
	n, ok := r.nodes[item]
	if !ok {
		return false
	}
	delete(r.nodes, item)

	if n.next == n {
		r.head = nil
		return true
	}

	n.prev.next = n.next
	n.next.prev = n.prev
	if r.head == n {
		r.head = n.next
	}
	return true
}

// Rotate moves the cursor one position in the given direction. Returns false
// when the ring has fewer than two items and there is nothing to rotate.
func (r *Ring[T]) Rotate(dir Direction) bool {
	if len(r.nodes) < 2 {
		return false
	}
	if dir == Backward {
		r.head = r.head.prev
	} else {
		r.head = r.head.next
	}
	return true
}

// RotateUntil rotates in the given direction until pred matches the current
// item, checking at most one full cycle starting with the first rotation.
// On success the matching item is current and RotateUntil returns true. If
// no item matches, the cursor is restored to its starting position and
// RotateUntil returns false. An empty ring always reports false.
func (r *Ring[T]) RotateUntil(dir Direction, pred func(T) bool) bool {
	if r.head == nil {
		return false
	}
	start := r.head
	for i := 0; i < len(r.nodes); i++ {
		if dir == Backward {
			r.head = r.head.prev
		} else {
			r.head = r.head.next
		}
		if pred(r.head.item) {
			return true
		}
	}
	r.head = start
	return false
}

// BreakInsert makes item the current item, moving it from its existing slot
// if present or inserting it fresh otherwise. Used to record direct access
// so the most recently visited item sits under the cursor.
func (r *Ring[T]) BreakInsert(item T) {
	r.Delete(item)
	// Insert places the node behind the cursor; pointing head at it makes
	// it current with the old current as its successor.
	_ = r.Insert(item)
	r.head = r.nodes[item]
}

// Values returns a snapshot of the items in ring order starting at the
// current item. The slice is independent of the ring.
func (r *Ring[T]) Values() []T {
	return Collect(r, func(item T) T { return item })
}

// Each calls fn for every item in ring order starting at the current item.
// fn must not mutate the ring.
func (r *Ring[T]) Each(fn func(T)) {
	if r.head == nil {
		return
	}
	for n := r.head; ; {
		fn(n.item)
		n = n.next
		if n == r.head {
			return
		}
	}
}

// Collect produces transform(item) for every item of r, in ring order
// starting at the current item. It is a snapshot, not a live view, and can
// be called repeatedly without side effects. A free function because Go
// methods cannot introduce the result type parameter.
func Collect[T comparable, R any](r *Ring[T], transform func(T) R) []R {
	out := make([]R, 0, r.Len())
	r.Each(func(item T) {
		out = append(out, transform(item))
	})
	return out
}
