package achievement

import (
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func entries(n int, rating int) []domain.Entry {
	out := make([]domain.Entry, n)
	for i := range out {
		out[i] = domain.Entry{Title: "t", Rating: rating}
	}
	return out
}

func detailed() domain.Entry {
	return domain.Entry{Title: "Dune", Creator: "Frank Herbert", Year: 1965, Comment: "spice", Rating: 9}
}

func TestCatalogShape(t *testing.T) {
	for _, kind := range domain.Kinds() {
		cat := Catalog(kind)
		require.Len(t, cat, 4)
		for _, def := range cat {
			assert.Equal(t, kind, def.Kind)
			assert.NotEmpty(t, def.Label)
			assert.NotEmpty(t, def.Icon)
			assert.NotNil(t, def.Check)
		}
	}

	assert.Equal(t, "book_first_add", Catalog(domain.KindBooks)[0].ID)
	assert.Equal(t, "movie_detailed", Catalog(domain.KindMovies)[3].ID)
	assert.Nil(t, Catalog("comics"))
}

func TestCatalogIsCopy(t *testing.T) {
	cat := Catalog(domain.KindBooks)
	cat[0].ID = "changed"
	assert.Equal(t, "book_first_add", Catalog(domain.KindBooks)[0].ID)
}

func TestLookup(t *testing.T) {
	def, ok := Lookup(domain.KindMovies, "movie_critic")
	require.True(t, ok)
	assert.Equal(t, "Film Critic", def.Label)

	_, ok = Lookup(domain.KindBooks, "movie_critic")
	assert.False(t, ok)
}

func TestFirstAddThenCollector(t *testing.T) {
	now, newly := Recompute(domain.KindBooks, entries(1, 5), nil)
	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, now)
	assert.Equal(t, []string{"book_first_add"}, newly)

	now, newly = Recompute(domain.KindBooks, entries(9, 5), now)
	assert.Equal(t, domain.UnlockedSet{"book_first_add"}, now)
	assert.Empty(t, newly)

	now, newly = Recompute(domain.KindBooks, entries(10, 5), now)
	assert.Equal(t, domain.UnlockedSet{"book_first_add", "book_collector"}, now)
	assert.Equal(t, []string{"book_collector"}, newly)
}

func TestCriticNeedsFivePerfectRatings(t *testing.T) {
	four := append(entries(4, 10), entries(3, 9)...)
	now, _ := Recompute(domain.KindBooks, four, nil)
	assert.False(t, now.Contains("book_critic"))

	five := entries(5, 10)
	now, _ = Recompute(domain.KindBooks, five, nil)
	assert.True(t, now.Contains("book_critic"))
}

func TestDetailedNeedsEveryField(t *testing.T) {
	full := detailed()
	now, _ := Recompute(domain.KindMovies, []domain.Entry{full}, nil)
	assert.True(t, now.Contains("movie_detailed"))

	missing := map[string]func(e *domain.Entry){
		"title":   func(e *domain.Entry) { e.Title = "" },
		"creator": func(e *domain.Entry) { e.Creator = "" },
		"year":    func(e *domain.Entry) { e.Year = 0 },
		"comment": func(e *domain.Entry) { e.Comment = "" },
		"rating":  func(e *domain.Entry) { e.Rating = 0 },
	}
	for field, unset := range missing {
		t.Run(field, func(t *testing.T) {
			e := detailed()
			unset(&e)
			now, _ := Recompute(domain.KindMovies, []domain.Entry{e}, nil)
			assert.False(t, now.Contains("movie_detailed"))
		})
	}
}

func TestNewlyKeepsCatalogOrder(t *testing.T) {
	list := append([]domain.Entry{detailed()}, entries(9, 10)...)

	now, newly := Recompute(domain.KindBooks, list, domain.UnlockedSet{"book_first_add"})
	assert.Equal(t, domain.UnlockedSet{"book_first_add", "book_collector", "book_critic", "book_detailed"}, now)
	assert.Equal(t, []string{"book_collector", "book_critic", "book_detailed"}, newly)
}

func TestRecomputeEmpty(t *testing.T) {
	now, newly := Recompute(domain.KindBooks, nil, domain.UnlockedSet{"book_first_add"})
	assert.Empty(t, now)
	assert.NotNil(t, now)
	assert.Empty(t, newly)
}
