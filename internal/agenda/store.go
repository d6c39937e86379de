package agenda

// store.go holds the ordered row collection and mirrors it to a
// persistent slot after every mutation. The in-memory state is
// authoritative: a failed save is logged and swallowed, never surfaced
// to the caller, and the session continues on the in-memory rows.

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// Slot is a single named key-value entry that holds the JSON-serialized
// row collection. Load returns nil data when the slot has never been
// written.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Store is the in-memory, persisted collection of agenda rows.
// Collection order is insertion order and is the display order.
type Store struct {
	mu          sync.RWMutex
	rows        []Row
	highlighted string // row ID, cosmetic only, never persisted
	slot        Slot
}

// NewStore creates a Store backed by the given slot and loads the
// persisted collection once. A load failure or corrupt payload yields an
// empty collection rather than an error; old records with absent fields
// deserialize with empty strings.
func NewStore(ctx context.Context, slot Slot) *Store {
	s := &Store{slot: slot}

	data, err := slot.Load(ctx)
	if err != nil {
		slog.Warn("store: load failed, starting with empty table", "error", err)
		return s
	}
	if len(data) == 0 {
		return s
	}

	if err := json.Unmarshal(data, &s.rows); err != nil {
		slog.Warn("store: persisted rows are not valid JSON, starting with empty table", "error", err)
		s.rows = nil
	}

	return s
}

// List returns a copy of the collection in display order.
func (s *Store) List() []Row {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]Row, len(s.rows))
	copy(rows, s.rows)
	return rows
}

// Len returns the number of rows in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Append adds a row to the end of the collection.
func (s *Store) Append(ctx context.Context, row Row) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, row)
	s.persistLocked(ctx)
}

// AppendMany appends rows in order under a single lock and a single
// save, so a successful import lands as one unit.
func (s *Store) AppendMany(ctx context.Context, rows []Row) {
	if len(rows) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = append(s.rows, rows...)
	s.persistLocked(ctx)
}

// Replace swaps the content fields of the row with the given ID,
// preserving the ID itself. Unknown IDs are a no-op, not an error.
// Reports whether a row was updated.
func (s *Store) Replace(ctx context.Context, id string, f Fields) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		s.rows[i].Time = f.Time
		s.rows[i].Department = f.Department
		s.rows[i].Issue = f.Issue
		s.rows[i].Presenter = f.Presenter
		s.persistLocked(ctx)
		return true
	}

	return false
}

// Remove deletes the row with the given ID. Unknown IDs are a no-op.
// Removing the highlighted row clears the highlight. Reports whether a
// row was deleted.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.rows {
		if s.rows[i].ID != id {
			continue
		}
		s.rows = append(s.rows[:i], s.rows[i+1:]...)
		if s.highlighted == id {
			s.highlighted = ""
		}
		s.persistLocked(ctx)
		return true
	}

	return false
}

// ToggleHighlight flips the cosmetic highlight for the given row:
// highlighting an already-highlighted row clears it, highlighting a
// different row moves it. Unknown IDs are a no-op. Returns the currently
// highlighted row ID, or "" when none. The highlight is never persisted.
func (s *Store) ToggleHighlight(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.highlighted == id {
		s.highlighted = ""
		return s.highlighted
	}

	for i := range s.rows {
		if s.rows[i].ID == id {
			s.highlighted = id
			break
		}
	}

	return s.highlighted
}

// Highlighted returns the highlighted row ID, or "" when none.
func (s *Store) Highlighted() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highlighted
}

// persistLocked serializes the full collection into the slot. Callers
// must hold the write lock. Save failures are logged and swallowed; the
// in-memory state stays authoritative for the rest of the session.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.rows)
	if err != nil {
		slog.Error("store: serialize rows failed", "error", err, "rows", len(s.rows))
		return
	}

	if err := s.slot.Save(ctx, data); err != nil {
		slog.Error("store: persist rows failed", "error", err, "rows", len(s.rows))
	}
}
