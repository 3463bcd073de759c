// Package store is the board mutation engine: a single state container
// holding the current immutable board snapshot, the full mutation API,
// and the subscription bus that fans committed snapshots out to the view
// layer. Every mutation is synchronous and all-or-nothing: it clones the
// current snapshot, applies the change to the draft, and commits the
// draft only when the mutation actually applied. Invalid input never
// errors; it is absorbed as a no-op that leaves the prior snapshot
// untouched.
package store

import (
	"sync"
	"time"

	"github.com/dori/ckanban/internal/model"
	"github.com/google/uuid"
)

type listener struct {
	id int
	fn func(*model.Board)
}

// Store owns the live board document
type Store struct {
	mu        sync.Mutex
	board     *model.Board
	listeners []listener
	nextID    int

	now   func() time.Time
	newID func() string
}

// New creates a store around an initial board document
func New(b *model.Board) *Store {
	if b == nil {
		b = model.NewBoard()
	}
	return &Store{
		board: b,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Get returns the current snapshot. The snapshot is never mutated in
// place; callers may hold it as long as they like.
func (s *Store) Get() *model.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Set atomically replaces the whole document, bypassing the
// copy-on-write mutator. Used by import and clear.
func (s *Store) Set(b *model.Board) {
	s.mu.Lock()
	s.board = b
	fns := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(b)
	}
}

// Update runs a mutation against a draft clone of the current snapshot.
// The mutation reports whether it applied; rejected drafts are discarded
// without stamping lastModified or notifying anyone.
func (s *Store) Update(mut func(*model.Board) bool) {
	s.mu.Lock()
	draft := s.board.Clone()
	if !mut(draft) {
		s.mu.Unlock()
		return
	}
	draft.LastModified = s.now()
	s.board = draft
	fns := s.snapshotListeners()
	s.mu.Unlock()

	for _, fn := range fns {
		fn(draft)
	}
}

// Subscribe registers a callback invoked synchronously with the new
// snapshot after every committed mutation. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(*model.Board)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// snapshotListeners copies the callback list; callers invoke the
// callbacks after releasing the store lock.
func (s *Store) snapshotListeners() []func(*model.Board) {
	fns := make([]func(*model.Board), len(s.listeners))
	for i, l := range s.listeners {
		fns[i] = l.fn
	}
	return fns
}
