package index

import "sync/atomic"

// Store holds the currently published Snapshot. Rebuilds swap in a fresh
// snapshot atomically so in-flight requests never observe a partially
// built index.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store publishing the given snapshot.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

// Snapshot returns the currently published snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Publish atomically replaces the current snapshot.
func (s *Store) Publish(snap *Snapshot) {
	s.current.Store(snap)
}
