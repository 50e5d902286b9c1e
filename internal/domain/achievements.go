package domain

// AchievementDefinition is a compiled-in badge and the rule that unlocks it
type AchievementDefinition struct {
	ID          string
	Kind        Kind
	Label       string
	Description string
	Icon        string
	Check       func(entries []Entry) bool
}

// UnlockedSet lists satisfied achievement IDs in catalog order
type UnlockedSet []string

// Contains reports whether id is unlocked
func (s UnlockedSet) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Equal compares membership, ignoring order and duplicates
func (s UnlockedSet) Equal(other UnlockedSet) bool {
	a := make(map[string]bool, len(s))
	for _, id := range s {
		a[id] = true
	}
	b := make(map[string]bool, len(other))
	for _, id := range other {
		b[id] = true
	}
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}

// Announcement is the transient notice shown for a newly unlocked achievement
type Announcement struct {
	Kind Kind
	ID   string
}

