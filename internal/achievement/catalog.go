// Package achievement evaluates the badge catalog against the collection,
// persists the unlocked sets and announces new unlocks.
package achievement

import "github.com/mmcdole/shelf/internal/domain"

// Thresholds shared by both catalogs
const (
	CollectorThreshold = 10
	CriticThreshold    = 5
)

func hasAny(entries []domain.Entry) bool {
	return len(entries) >= 1
}

func isCollector(entries []domain.Entry) bool {
	return len(entries) >= CollectorThreshold
}

func isCritic(entries []domain.Entry) bool {
	perfect := 0
	for _, e := range entries {
		if e.IsPerfect() {
			perfect++
		}
	}
	return perfect >= CriticThreshold
}

func isDetailed(entries []domain.Entry) bool {
	for _, e := range entries {
		if e.IsDetailed() {
			return true
		}
	}
	return false
}

var bookCatalog = []domain.AchievementDefinition{
	{ID: "book_first_add", Kind: domain.KindBooks, Label: "First Book", Description: "Add your first book", Icon: "📖", Check: hasAny},
	{ID: "book_collector", Kind: domain.KindBooks, Label: "Bookworm", Description: "Add 10 books", Icon: "📚", Check: isCollector},
	{ID: "book_critic", Kind: domain.KindBooks, Label: "Book Critic", Description: "Rate 5 books 10/10", Icon: "🌟", Check: isCritic},
	{ID: "book_detailed", Kind: domain.KindBooks, Label: "Meticulous Reader", Description: "Fill in every field of one book", Icon: "📝", Check: isDetailed},
}

var movieCatalog = []domain.AchievementDefinition{
	{ID: "movie_first_add", Kind: domain.KindMovies, Label: "First Film", Description: "Add your first movie", Icon: "🎬", Check: hasAny},
	{ID: "movie_collector", Kind: domain.KindMovies, Label: "Cinephile", Description: "Add 10 movies", Icon: "🍿", Check: isCollector},
	{ID: "movie_critic", Kind: domain.KindMovies, Label: "Film Critic", Description: "Rate 5 movies 10/10", Icon: "🏆", Check: isCritic},
	{ID: "movie_detailed", Kind: domain.KindMovies, Label: "Meticulous Viewer", Description: "Fill in every field of one movie", Icon: "📝", Check: isDetailed},
}

// Catalog returns the ordered definitions for kind. The slice is a copy.
func Catalog(kind domain.Kind) []domain.AchievementDefinition {
	var src []domain.AchievementDefinition
	switch kind {
	case domain.KindBooks:
		src = bookCatalog
	case domain.KindMovies:
		src = movieCatalog
	default:
		return nil
	}
	out := make([]domain.AchievementDefinition, len(src))
	copy(out, src)
	return out
}

// Lookup finds a definition by id
func Lookup(kind domain.Kind, id string) (domain.AchievementDefinition, bool) {
	for _, def := range Catalog(kind) {
		if def.ID == id {
			return def, true
		}
	}
	return domain.AchievementDefinition{}, false
}

// Recompute evaluates every predicate in catalog order. now is the full
// satisfied set; newly holds the ids in now but not in previous, in catalog order.
func Recompute(kind domain.Kind, entries []domain.Entry, previous domain.UnlockedSet) (now domain.UnlockedSet, newly []string) {
	now = domain.UnlockedSet{}
	for _, def := range Catalog(kind) {
		if !def.Check(entries) {
			continue
		}
		now = append(now, def.ID)
		if !previous.Contains(def.ID) {
			newly = append(newly, def.ID)
		}
	}
	return now, newly
}
