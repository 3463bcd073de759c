package db

import (
	"log"
	"sync"
	"time"

	"github.com/dori/ckanban/internal/model"
)

// SaveDelay is the debounce window for durable writes
const SaveDelay = 250 * time.Millisecond

// Saver debounces board writes. The slot is single: a request arriving
// within the window cancels and replaces the pending one, so only the
// newest snapshot is ever flushed. Writes are best-effort; failures are
// logged and never surfaced to the mutation path.
type Saver struct {
	db    *DB
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *model.Board
}

// NewSaver creates a debounced saver around an open database
func NewSaver(db *DB, delay time.Duration) *Saver {
	if delay <= 0 {
		delay = SaveDelay
	}
	return &Saver{db: db, delay: delay}
}

// Request schedules a durable write of the snapshot, superseding any
// write still waiting in the window
func (s *Saver) Request(board *model.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = board
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flushPending)
}

// Flush writes any pending snapshot immediately. Used at shutdown so
// the final mutations inside the debounce window are not lost.
func (s *Saver) Flush() {
	s.flushPending()
}

func (s *Saver) flushPending() {
	s.mu.Lock()
	board := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if board == nil {
		return
	}
	if err := s.db.SaveBoard(board); err != nil {
		log.Printf("ckanban: board save failed: %v", err)
	}
}
