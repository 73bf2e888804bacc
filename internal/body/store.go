// Package body holds the point-mass arena shared by every stage of the
// simulation tick.
package body

// Store is a fixed-capacity arena of bodies. Slots are append-only:
// removing a body flips its Active tag and the slot is never reused, so
// indices stay stable for the lifetime of a run. Compaction is
// deliberately not implemented.
type Store struct {
	bodies   []Body
	capacity int
}

func NewStore(capacity int) *Store {
	return &Store{
		bodies:   make([]Body, 0, capacity),
		capacity: capacity,
	}
}

// Spawn appends a body and returns its index. When the arena is full it
// reports false and leaves the store untouched; callers treat that as a
// soft limit, not an error worth aborting over.
func (s *Store) Spawn(b Body) (int, bool) {
	if len(s.bodies) >= s.capacity {
		return -1, false
	}
	b.Active = true
	s.bodies = append(s.bodies, b)
	return len(s.bodies) - 1, true
}

// Remove tombstones the slot. Out-of-range indices are ignored.
func (s *Store) Remove(i int) {
	if i < 0 || i >= len(s.bodies) {
		return
	}
	s.bodies[i].Active = false
}

// Bodies returns the backing slice. Mutations through it are the normal
// way the physics passes update state; the slice is invalidated by Spawn.
func (s *Store) Bodies() []Body {
	return s.bodies
}

func (s *Store) At(i int) *Body {
	return &s.bodies[i]
}

// Len counts all slots, tombstones included.
func (s *Store) Len() int {
	return len(s.bodies)
}

func (s *Store) Capacity() int {
	return s.capacity
}

// ActiveCount counts live bodies.
func (s *Store) ActiveCount() int {
	n := 0
	for i := range s.bodies {
		if s.bodies[i].Active {
			n++
		}
	}
	return n
}

// Clear empties the arena for a full reset.
func (s *Store) Clear() {
	s.bodies = s.bodies[:0]
}
