// Package collection owns the books and movies lists and keeps them persisted.
package collection

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/shelf/internal/domain"
)

// Compile-time interface checks
var (
	_ domain.CollectionQueries  = (*Store)(nil)
	_ domain.CollectionCommands = (*Store)(nil)
)

// Store holds the collection in memory and writes the whole snapshot to
// storage after every successful mutation. It is not safe for concurrent use;
// callers drive it from a single goroutine.
type Store struct {
	storage   domain.Storage
	validator *Validator
	logger    *slog.Logger

	data      domain.Collection
	observers []domain.ChangeObserver
}

// NewStore creates a store and loads the persisted collection.
func NewStore(storage domain.Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		storage:   storage,
		validator: NewValidator(),
		logger:    logger,
	}
	s.data = s.Load()
	return s
}

// Load reads the persisted snapshot. Absent or malformed data yields an empty collection.
func (s *Store) Load() domain.Collection {
	raw, ok := s.storage.Get(domain.KeyMediaData)
	if !ok {
		s.logger.Debug("no stored collection, starting empty")
		return domain.EmptyCollection()
	}

	c, err := Decode(raw)
	if err != nil {
		s.logger.Warn("stored collection is malformed, starting empty", "error", err)
		return domain.EmptyCollection()
	}

	s.logger.Debug("loaded collection", "books", len(c.Books), "movies", len(c.Movies))
	return c
}

// Observe registers an observer notified after every successful mutation
func (s *Store) Observe(o domain.ChangeObserver) {
	s.observers = append(s.observers, o)
}

// Validator returns the validator used for entries (shared with form input)
func (s *Store) Validator() *Validator {
	return s.validator
}

// === Queries ===

// Entries returns a copy of the list for kind
func (s *Store) Entries(kind domain.Kind) []domain.Entry {
	return domain.CloneEntries(s.data.Entries(kind))
}

// Entry returns the entry at index
func (s *Store) Entry(kind domain.Kind, index int) (domain.Entry, bool) {
	entries := s.data.Entries(kind)
	if index < 0 || index >= len(entries) {
		return domain.Entry{}, false
	}
	return entries[index], true
}

func (s *Store) Len(kind domain.Kind) int {
	return len(s.data.Entries(kind))
}

// Snapshot returns a deep copy of both lists
func (s *Store) Snapshot() domain.Collection {
	return s.data.Clone()
}

// === Commands ===

// Add prepends entry to the list for kind
func (s *Store) Add(kind domain.Kind, entry domain.Entry) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	if err := s.validator.Check(entry); err != nil {
		s.logger.Debug("rejected entry", "kind", kind, "error", err)
		return err
	}

	current := s.data.Entries(kind)
	updated := make([]domain.Entry, 0, len(current)+1)
	updated = append(updated, entry)
	updated = append(updated, current...)

	s.logger.Info("added entry", "kind", kind, "title", entry.Title)
	return s.commit(kind, updated)
}

// Update replaces the entry at index
func (s *Store) Update(kind domain.Kind, index int, entry domain.Entry) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	if err := s.validator.Check(entry); err != nil {
		s.logger.Debug("rejected entry", "kind", kind, "index", index, "error", err)
		return err
	}

	current := s.data.Entries(kind)
	if index < 0 || index >= len(current) {
		return fmt.Errorf("%w: %d of %d", domain.ErrIndexOutOfRange, index, len(current))
	}

	updated := domain.CloneEntries(current)
	updated[index] = entry

	s.logger.Info("updated entry", "kind", kind, "index", index, "title", entry.Title)
	return s.commit(kind, updated)
}

// Remove deletes the entry at index; later entries shift down by one
func (s *Store) Remove(kind domain.Kind, index int) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}

	current := s.data.Entries(kind)
	if index < 0 || index >= len(current) {
		return fmt.Errorf("%w: %d of %d", domain.ErrIndexOutOfRange, index, len(current))
	}

	updated := make([]domain.Entry, 0, len(current)-1)
	updated = append(updated, current[:index]...)
	updated = append(updated, current[index+1:]...)

	s.logger.Info("removed entry", "kind", kind, "index", index)
	return s.commit(kind, updated)
}

// Persist writes the full collection, overwriting the previous snapshot
func (s *Store) Persist() error {
	raw, err := Encode(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	if err := s.storage.Set(domain.KeyMediaData, raw); err != nil {
		s.logger.Error("failed to persist collection", "error", err)
		return fmt.Errorf("failed to persist collection: %w", err)
	}
	return nil
}

// commit swaps in the new list, persists, then notifies observers.
// In-memory state keeps the change even if the write fails; the next
// successful Persist writes it out.
func (s *Store) commit(kind domain.Kind, entries []domain.Entry) error {
	s.data = s.data.WithEntries(kind, entries)
	err := s.Persist()

	for _, o := range s.observers {
		o.OnCollectionChange(kind, domain.CloneEntries(entries))
	}
	return err
}
