package achievement

import (
	"testing"

	"github.com/mmcdole/shelf/internal/collection"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	storage   *storagetest.Storage
	store     *collection.Store
	tracker   *Tracker
	announcer *Announcer
}

func setupFixture(t *testing.T, seed map[string]string) *fixture {
	t.Helper()
	storage := storagetest.New(seed)
	announcer := NewAnnouncer(DefaultWindow, nil)
	t.Cleanup(announcer.Stop)

	store := collection.NewStore(storage, nil)
	tracker := NewTracker(storage, announcer, nil)
	store.Observe(tracker)

	return &fixture{storage: storage, store: store, tracker: tracker, announcer: announcer}
}

func (f *fixture) stored(kind domain.Kind) string {
	v, _ := f.storage.Get(domain.AchievementsKey(kind))
	return v
}

func TestTrackerLoadsPersistedSets(t *testing.T) {
	f := setupFixture(t, map[string]string{
		domain.KeyBookAchievements:  `["book_first_add"]`,
		domain.KeyMovieAchievements: `not json`,
	})

	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, f.tracker.Unlocked(domain.KindBooks))
	assert.Empty(t, f.tracker.Unlocked(domain.KindMovies))
}

func TestFirstAddUnlocksAndAnnounces(t *testing.T) {
	f := setupFixture(t, nil)

	require.NoError(t, f.store.Add(domain.KindBooks, domain.Entry{Title: "Dune", Rating: 8}))

	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, f.tracker.Unlocked(domain.KindBooks))
	assert.JSONEq(t, `["book_first_add"]`, f.stored(domain.KindBooks))

	ann, ok := f.announcer.Current()
	require.True(t, ok)
	assert.Equal(t, domain.Announcement{Kind: domain.KindBooks, ID: "book_first_add"}, ann)
}

func TestTenEntriesUnlockCollector(t *testing.T) {
	f := setupFixture(t, nil)

	for i := 0; i < 10; i++ {
		require.NoError(t, f.store.Add(domain.KindMovies, domain.Entry{Title: "m", Rating: 3}))
	}

	assert.Equal(t, domain.UnlockedSet{"movie_first_add", "movie_collector"}, f.tracker.Unlocked(domain.KindMovies))
	assert.Empty(t, f.tracker.Unlocked(domain.KindBooks))
	ann, _ := f.announcer.Current()
	assert.Equal(t, "movie_collector", ann.ID)
}

func TestUnchangedSetIsNotRewritten(t *testing.T) {
	f := setupFixture(t, nil)

	require.NoError(t, f.store.Add(domain.KindBooks, domain.Entry{Title: "a", Rating: 3}))
	require.NoError(t, f.store.Add(domain.KindBooks, domain.Entry{Title: "b", Rating: 3}))

	assert.Equal(t, 1, f.storage.Writes(domain.KeyBookAchievements))
}

func TestSimultaneousUnlocksAnnounceFirstInCatalog(t *testing.T) {
	f := setupFixture(t, nil)

	// One add satisfies first_add and detailed at once
	full := domain.Entry{Title: "Dune", Creator: "Herbert", Year: 1965, Comment: "spice", Rating: 9}
	newly, err := f.tracker.Observe(domain.KindBooks, []domain.Entry{full})
	require.NoError(t, err)

	assert.Equal(t, []string{"book_first_add", "book_detailed"}, newly)
	ann, _ := f.announcer.Current()
	assert.Equal(t, "book_first_add", ann.ID)
}

func TestClearingCommentRevokesDetailed(t *testing.T) {
	f := setupFixture(t, nil)

	full := domain.Entry{Title: "Dune", Creator: "Herbert", Year: 1965, Comment: "spice", Rating: 9}
	require.NoError(t, f.store.Add(domain.KindBooks, full))
	require.True(t, f.tracker.Unlocked(domain.KindBooks).Contains("book_detailed"))

	edited := full
	edited.Comment = ""
	require.NoError(t, f.store.Update(domain.KindBooks, 0, edited))

	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, f.tracker.Unlocked(domain.KindBooks))
	assert.JSONEq(t, `["book_first_add"]`, f.stored(domain.KindBooks))
	assert.Equal(t, 2, f.storage.Writes(domain.KeyBookAchievements))
}

func TestDeletingLastEntryPersistsEmptySet(t *testing.T) {
	f := setupFixture(t, nil)

	require.NoError(t, f.store.Add(domain.KindBooks, domain.Entry{Title: "a", Rating: 1}))
	require.NoError(t, f.store.Remove(domain.KindBooks, 0))

	assert.Empty(t, f.tracker.Unlocked(domain.KindBooks))
	assert.JSONEq(t, `[]`, f.stored(domain.KindBooks))
}

func TestSyncAtStartup(t *testing.T) {
	raw, err := collection.Encode(domain.Collection{
		Books:  []domain.Entry{{Title: "a", Rating: 1}},
		Movies: []domain.Entry{{Title: "b", Rating: 1}},
	})
	require.NoError(t, err)

	f := setupFixture(t, map[string]string{
		domain.KeyMediaData:        raw,
		domain.KeyBookAchievements: `["book_first_add","book_collector"]`,
	})

	require.NoError(t, f.tracker.Sync(f.store.Snapshot()))

	// Stale collector badge is dropped; movies unlock and win the announcement
	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, f.tracker.Unlocked(domain.KindBooks))
	assert.Equal(t, domain.UnlockedSet{"movie_first_add"}, f.tracker.Unlocked(domain.KindMovies))
	ann, _ := f.announcer.Current()
	assert.Equal(t, domain.Announcement{Kind: domain.KindMovies, ID: "movie_first_add"}, ann)
}

func TestPersistFailureIsReported(t *testing.T) {
	f := setupFixture(t, nil)
	f.storage.FailWrites = true

	_, err := f.tracker.Observe(domain.KindBooks, []domain.Entry{{Title: "a", Rating: 1}})
	assert.ErrorIs(t, err, storagetest.ErrWriteFailed)
	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, f.tracker.Unlocked(domain.KindBooks))
}

func TestTrackerWithoutAnnouncer(t *testing.T) {
	tracker := NewTracker(storagetest.New(nil), nil, nil)

	newly, err := tracker.Observe(domain.KindMovies, []domain.Entry{{Title: "a", Rating: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"movie_first_add"}, newly)
	assert.Nil(t, tracker.Announcer())
}

func TestFailedWriteIsRetriedOnNextChange(t *testing.T) {
	f := setupFixture(t, nil)

	f.storage.FailWrites = true
	_ = f.store.Add(domain.KindBooks, domain.Entry{Title: "a", Rating: 3})
	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, f.tracker.Unlocked(domain.KindBooks))
	assert.Empty(t, f.stored(domain.KindBooks))

	f.storage.FailWrites = false
	require.NoError(t, f.store.Add(domain.KindBooks, domain.Entry{Title: "b", Rating: 3}))
	assert.JSONEq(t, `["book_first_add"]`, f.stored(domain.KindBooks))

	require.NoError(t, f.store.Add(domain.KindBooks, domain.Entry{Title: "c", Rating: 3}))
	assert.Equal(t, 1, f.storage.Writes(domain.KeyBookAchievements))
}
