package components

import (
	"testing"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAchievementTray(t *testing.T) {
	tray := AchievementTray{
		Catalog: []domain.AchievementDefinition{
			{ID: "first", Label: "First", Icon: "★", Description: "one entry"},
			{ID: "many", Label: "Many", Icon: "✦", Description: "lots of entries"},
		},
		Unlocked: domain.UnlockedSet{"first"},
	}

	count, total := tray.Progress()
	assert.Equal(t, 1, count)
	assert.Equal(t, 2, total)

	out := tray.View(50)
	assert.Contains(t, out, "Achievements")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "First")
	assert.Contains(t, out, "lots of entries")
}
