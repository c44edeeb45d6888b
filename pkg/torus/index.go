// ABOUTME: Membership index: reverse map from item to the rings containing it
// ABOUTME: Entries exist only while at least one ring holds the item

package torus

// membership maps each tracked item to the set of rings containing it.
// Mutated only from Ring insert/delete paths; external layers query it
// through Nav.RingsContaining and Nav.DropEverywhere.
type membership[T comparable] map[T]map[*Ring[T]]struct{}

func (m membership[T]) add(item T, r *Ring[T]) {
	set, ok := m[item]
	if !ok {
		set = make(map[*Ring[T]]struct{})
		m[item] = set
	}
	set[r] = struct{}{}
}

// remove drops the ring from the item's entry and the entry itself when the
// last ring lets go, returning the item to the untracked state.
func (m membership[T]) remove(item T, r *Ring[T]) {
	set, ok := m[item]
	if !ok {
		return
	}
	delete(set, r)
	if len(set) == 0 {
		delete(m, item)
	}
}

// containing returns a snapshot slice so callers can mutate rings while
// iterating.
func (m membership[T]) containing(item T) []*Ring[T] {
	set := m[item]
	out := make([]*Ring[T], 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out
}
