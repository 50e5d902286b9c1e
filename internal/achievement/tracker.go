package achievement

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mmcdole/shelf/internal/domain"
)

var _ domain.ChangeObserver = (*Tracker)(nil)

// Tracker keeps the unlocked set per kind in step with the collection.
// The set is always derived from the entries; it is never edited directly.
type Tracker struct {
	storage   domain.Storage
	announcer *Announcer
	logger    *slog.Logger

	unlocked map[domain.Kind]domain.UnlockedSet
	saved    map[domain.Kind]domain.UnlockedSet // Last set written successfully
}

// NewTracker loads the persisted unlocked sets. announcer may be nil.
func NewTracker(storage domain.Storage, announcer *Announcer, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	t := &Tracker{
		storage:   storage,
		announcer: announcer,
		logger:    logger,
		unlocked:  make(map[domain.Kind]domain.UnlockedSet),
		saved:     make(map[domain.Kind]domain.UnlockedSet),
	}
	for _, kind := range domain.Kinds() {
		set := t.load(kind)
		t.unlocked[kind] = set
		t.saved[kind] = set
	}
	return t
}

func (t *Tracker) load(kind domain.Kind) domain.UnlockedSet {
	key := domain.AchievementsKey(kind)
	raw, ok := t.storage.Get(key)
	if !ok {
		return domain.UnlockedSet{}
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		t.logger.Warn("stored achievements are malformed, starting empty",
			"key", key, "error", fmt.Errorf("%w: %v", domain.ErrStorageDecode, err))
		return domain.UnlockedSet{}
	}
	if ids == nil {
		return domain.UnlockedSet{}
	}
	return domain.UnlockedSet(ids)
}

// Unlocked returns a copy of the unlocked set for kind
func (t *Tracker) Unlocked(kind domain.Kind) domain.UnlockedSet {
	set := t.unlocked[kind]
	out := make(domain.UnlockedSet, len(set))
	copy(out, set)
	return out
}

// Announcer returns the announcer new unlocks are sent to (may be nil)
func (t *Tracker) Announcer() *Announcer {
	return t.announcer
}

// Observe recomputes the unlocked set for kind. The set is persisted whenever
// it differs from the last successful write, including when an edit or delete
// un-satisfies a badge. The first newly unlocked id, in catalog order, is
// announced.
func (t *Tracker) Observe(kind domain.Kind, entries []domain.Entry) ([]string, error) {
	previous := t.unlocked[kind]
	now, newly := Recompute(kind, entries, previous)

	if !now.Equal(previous) {
		t.unlocked[kind] = now
		t.logger.Info("achievements changed", "kind", kind, "unlocked", len(now), "new", newly)
	}

	var err error
	if !now.Equal(t.saved[kind]) {
		if err = t.persist(kind, now); err == nil {
			t.saved[kind] = now
		}
	}

	if len(newly) > 0 && t.announcer != nil {
		t.announcer.Announce(domain.Announcement{Kind: kind, ID: newly[0]})
	}
	return newly, err
}

// OnCollectionChange implements domain.ChangeObserver
func (t *Tracker) OnCollectionChange(kind domain.Kind, entries []domain.Entry) {
	// persist already logged the failure; the next change retries the write
	_, _ = t.Observe(kind, entries)
}

// Sync recomputes both kinds against c, books first
func (t *Tracker) Sync(c domain.Collection) error {
	var firstErr error
	for _, kind := range domain.Kinds() {
		if _, err := t.Observe(kind, c.Entries(kind)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *Tracker) persist(kind domain.Kind, set domain.UnlockedSet) error {
	data, err := json.Marshal([]string(set))
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	key := domain.AchievementsKey(kind)
	if err := t.storage.Set(key, string(data)); err != nil {
		t.logger.Error("failed to persist achievements", "key", key, "error", err)
		return fmt.Errorf("failed to persist achievements: %w", err)
	}
	return nil
}
