package domain

import "strings"

// Kind distinguishes the two collections
type Kind string

const (
	KindBooks  Kind = "books"
	KindMovies Kind = "movies"
)

// Kinds returns every collection kind in display order
func Kinds() []Kind {
	return []Kind{KindBooks, KindMovies}
}

// ParseKind accepts "books"/"movies" and their singular forms
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "books", "book":
		return KindBooks, true
	case "movies", "movie", "films", "film":
		return KindMovies, true
	default:
		return "", false
	}
}

// Valid reports whether k is one of the two known kinds
func (k Kind) Valid() bool {
	return k == KindBooks || k == KindMovies
}

// Label returns the tab title
func (k Kind) Label() string {
	if k == KindMovies {
		return "Movies"
	}
	return "Books"
}

// Singular returns "book" or "movie"
func (k Kind) Singular() string {
	if k == KindMovies {
		return "movie"
	}
	return "book"
}

// CreatorLabel names the creator field for display. The field is the same for both kinds.
func (k Kind) CreatorLabel() string {
	if k == KindMovies {
		return "Director"
	}
	return "Author"
}

// Entry is one catalogued book or movie.
// Year and Rating are zero when absent.
type Entry struct {
	Title   string
	Creator string
	Year    int
	Comment string
	Rating  int
}

// IsDetailed returns true when all five fields are filled in
func (e Entry) IsDetailed() bool {
	return e.Title != "" &&
		e.Creator != "" &&
		e.Year != 0 &&
		e.Comment != "" &&
		e.Rating != 0
}

// IsPerfect returns true for a 10/10 rating
func (e Entry) IsPerfect() bool {
	return e.Rating == 10
}

// Collection holds the ordered entries for both kinds. New entries go to the front.
type Collection struct {
	Books  []Entry
	Movies []Entry
}

// Entries returns the list for kind (nil for an unknown kind)
func (c Collection) Entries(kind Kind) []Entry {
	switch kind {
	case KindBooks:
		return c.Books
	case KindMovies:
		return c.Movies
	default:
		return nil
	}
}

// WithEntries returns a copy of c with the list for kind replaced
func (c Collection) WithEntries(kind Kind, entries []Entry) Collection {
	switch kind {
	case KindBooks:
		c.Books = entries
	case KindMovies:
		c.Movies = entries
	}
	return c
}

// Clone returns a deep copy so callers cannot mutate the store's slices
func (c Collection) Clone() Collection {
	return Collection{
		Books:  CloneEntries(c.Books),
		Movies: CloneEntries(c.Movies),
	}
}

// CloneEntries copies a slice of entries, never returning nil
func CloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// EmptyCollection returns a collection with both lists present and empty
func EmptyCollection() Collection {
	return Collection{Books: []Entry{}, Movies: []Entry{}}
}
