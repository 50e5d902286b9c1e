package domain

// Storage keys. The layout mirrors the browser-local storage the data was first kept in.
const (
	KeyMediaData         = "mediaData"
	KeyBookAchievements  = "bookAchievements"
	KeyMovieAchievements = "movieAchievements"
	KeyTheme             = "theme"
)

// Storage is the durable key/value backend.
// Values are whole snapshots; every Set overwrites the previous value.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// AchievementsKey returns the storage key holding the unlocked set for kind
func AchievementsKey(kind Kind) string {
	if kind == KindMovies {
		return KeyMovieAchievements
	}
	return KeyBookAchievements
}
