// internal/store/memory.go
//
// In-memory session store for running games.
//
// Characteristics:
//   - Stores *Entry objects keyed by game ID in a map.
//   - Map access guarded by RWMutex; each entry has its own mutex so
//     operations on one session never interleave (the engine does no locking).
//   - State is lost when the process restarts; finished games are persisted
//     by the results package.
//   - Reassign moves guest sessions to an account; Prune drops stale entries.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/guessword/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("store: game not found")

// Mode distinguishes how the target was chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Entry wraps a session with the bookkeeping the server needs.
type Entry struct {
	mu sync.Mutex

	Session   *game.Session
	OwnerID   string    // user ID or anonymous ID
	Mode      Mode      // random | daily
	Date      string    // daily games: YYYY-MM-DD
	WordIndex int       // daily games: index into the candidate list
	StartedAt time.Time // creation time
	Recorded  bool      // outcome already persisted
	EndedAt   time.Time // set when the outcome is recorded
}

// Store defines the persistence interface for running sessions.
type Store interface {
	// Save adds or replaces an entry, keyed by its session ID.
	Save(ctx context.Context, e *Entry) error

	// Get retrieves an entry by game ID.
	Get(ctx context.Context, id string) (*Entry, error)

	// Update runs fn with exclusive access to the entry.
	Update(ctx context.Context, id string, fn func(e *Entry) error) error

	// Reassign moves every entry owned by from to owner to. It returns the
	// number of entries moved.
	Reassign(ctx context.Context, from, to string) int

	// Prune removes the entries for which expired reports true and returns
	// their IDs. expired runs with exclusive access to the entry.
	Prune(ctx context.Context, expired func(e *Entry) bool) []string

	// Len reports the number of stored entries.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex      // guards entries map
	entries map[string]*Entry // keyed by Session.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{entries: make(map[string]*Entry)}
}

func (m *memory) Save(ctx context.Context, e *Entry) error {
	if e == nil || e.Session == nil {
		return errors.New("store: entry without session")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[e.Session.ID()] = e
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(e *Entry) error) error {
	e, err := m.Get(ctx, id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e)
}

func (m *memory) Reassign(ctx context.Context, from, to string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, e := range m.entries {
		e.mu.Lock()
		if e.OwnerID == from {
			e.OwnerID = to
			n++
		}
		e.mu.Unlock()
	}
	return n
}

func (m *memory) Prune(ctx context.Context, expired func(e *Entry) bool) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var gone []string
	for id, e := range m.entries {
		e.mu.Lock()
		drop := expired(e)
		e.mu.Unlock()
		if drop {
			delete(m.entries, id)
			gone = append(gone, id)
		}
	}
	return gone
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
