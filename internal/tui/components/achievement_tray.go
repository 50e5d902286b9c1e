package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Width of the progress bar in the tray header
const trayBarWidth = 16

// AchievementTray shows every badge of one kind, locked or unlocked
type AchievementTray struct {
	Catalog  []domain.AchievementDefinition
	Unlocked domain.UnlockedSet
}

// Progress returns how many catalog entries are unlocked
func (t AchievementTray) Progress() (unlocked, total int) {
	for _, def := range t.Catalog {
		if t.Unlocked.Contains(def.ID) {
			unlocked++
		}
	}
	return unlocked, len(t.Catalog)
}

// View renders the tray
func (t AchievementTray) View(width int) string {
	count, total := t.Progress()

	percent := 0.0
	if total > 0 {
		percent = float64(count) * 100 / float64(total)
	}
	header := styles.TitleStyle.Render("Achievements") + " " +
		styles.DimStyle.Render(fmt.Sprintf("%d/%d ", count, total)) +
		styles.RenderProgressBar(percent, trayBarWidth)

	lines := []string{header, ""}
	for _, def := range t.Catalog {
		if t.Unlocked.Contains(def.ID) {
			lines = append(lines, styles.SuccessStyle.Render("✓ ")+def.Icon+" "+
				styles.TitleStyle.Render(def.Label)+" "+styles.SubtitleStyle.Render(def.Description))
		} else {
			lines = append(lines, styles.DimStyle.Render("· "+def.Icon+" "+def.Label+" "+def.Description))
		}
	}

	border := styles.InactiveBorder
	if width > 4 {
		border = border.Width(width - 2)
	}
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
