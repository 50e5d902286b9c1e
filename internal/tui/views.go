package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/achievement"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/components"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}
	if m.State == StateHelp {
		return m.renderHelp()
	}

	layout := m.calculateLayout()

	form := m.Form.View(m.SubmitLabel(), layout.leftWidth)
	tray := components.AchievementTray{
		Catalog:  achievement.Catalog(m.Kind),
		Unlocked: m.Tracker.Unlocked(m.Kind),
	}.View(layout.leftWidth)
	list := m.renderList(layout.rightWidth, layout.listRows)

	var body string
	if layout.stacked {
		body = lipgloss.JoinVertical(lipgloss.Left, form, list, tray)
	} else {
		left := lipgloss.JoinVertical(lipgloss.Left, form, tray)
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", list)
	}

	parts := []string{m.renderHeader(), body}
	if toast := m.renderToast(); toast != "" {
		parts = append(parts, toast)
	}
	parts = append(parts, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the app name, tabs and theme indicator
func (m Model) renderHeader() string {
	tabs := []string{styles.AccentStyle.Bold(true).Render("shelf")}
	for _, kind := range domain.Kinds() {
		label := fmt.Sprintf("%s (%d)", kind.Label(), m.Store.Len(kind))
		if kind == m.Kind {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}
	left := strings.Join(tabs, " ")

	mode := "☀ light"
	if m.Theme.IsDark() {
		mode = "☾ dark"
	}
	right := styles.DimStyle.Render(mode)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderList renders the active tab's entries
func (m Model) renderList(width, maxRows int) string {
	entries := m.Store.Entries(m.Kind)
	rows := m.visibleRows()
	inner := max(width-4, 10)

	title := styles.TitleStyle.Render(m.Kind.Label())
	if m.FilterQuery != "" {
		title += " " + styles.FilterPromptStyle.Render("/"+m.FilterQuery) +
			styles.DimStyle.Render(fmt.Sprintf(" %d of %d", len(rows), len(entries)))
	}

	lines := []string{title, ""}
	switch {
	case len(entries) == 0:
		lines = append(lines, styles.DimStyle.Render(fmt.Sprintf("No %s yet", strings.ToLower(m.Kind.Label()))))
	case len(rows) == 0:
		lines = append(lines, styles.DimStyle.Render("No matches"))
	default:
		start, end := scrollWindow(m.Cursor, len(rows), maxRows)
		for i := start; i < end; i++ {
			row := components.EntryRow{
				Result:   rows[i],
				Kind:     m.Kind,
				Selected: i == m.Cursor && m.State != StateEditing,
				Editing:  rows[i].Index == m.EditIndex,
			}
			lines = append(lines, row.Render(inner))
		}
	}

	border := styles.InactiveBorder
	if m.State == StateBrowsing || m.State == StateConfirmDelete || m.State == StateFiltering {
		border = styles.ActiveBorder
	}
	return border.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// AnnouncementText returns the toast text for the visible announcement
func (m Model) AnnouncementText() string {
	ann, ok := m.Announcer.Current()
	if !ok {
		return ""
	}
	def, ok := achievement.Lookup(ann.Kind, ann.ID)
	if !ok {
		return ""
	}
	return fmt.Sprintf("New achievement: %s %s!", def.Icon, def.Label)
}

// renderToast renders the achievement announcement, if any
func (m Model) renderToast() string {
	text := m.AnnouncementText()
	if text == "" {
		return ""
	}
	return styles.ToastStyle.Render(text)
}

// renderFooter renders the status line or the key hints for the current state
func (m Model) renderFooter() string {
	switch m.State {
	case StateConfirmDelete:
		title := ""
		if e, ok := m.Store.Entry(m.Kind, m.PendingDelete); ok {
			title = e.Title
		}
		return styles.ErrorStyle.Render(fmt.Sprintf("Delete %q?", title)) + " " +
			renderHelpLine(Keys.Confirm, Keys.Deny)

	case StateFiltering:
		return styles.FilterPromptStyle.Render("/ ") + m.FilterInput.View()
	}

	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(m.StatusMsg)
		}
		return styles.SuccessStyle.Render(m.StatusMsg)
	}

	if m.State == StateEditing {
		return renderHelpLine(components.EntryFormKeys.NextField, Keys.Submit, Keys.Escape)
	}
	return renderHelpLine(Keys.New, Keys.Edit, Keys.Delete, Keys.Filter, Keys.NextTab, Keys.Theme, Keys.Help, Keys.Quit)
}

// renderHelp renders the full key reference
func (m Model) renderHelp() string {
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"List", []key.Binding{Keys.Up, Keys.Down, Keys.Home, Keys.End, Keys.NextTab, Keys.Books, Keys.Movies}},
		{"Entries", []key.Binding{Keys.New, Keys.Edit, Keys.Delete, Keys.Filter, Keys.Escape}},
		{"Form", []key.Binding{components.EntryFormKeys.NextField, components.EntryFormKeys.PrevField, Keys.Submit}},
		{"App", []key.Binding{Keys.Theme, Keys.Help, Keys.Quit}},
	}

	var lines []string
	for _, s := range sections {
		lines = append(lines, styles.TitleStyle.Render(s.title))
		for _, b := range s.bindings {
			h := b.Help()
			lines = append(lines, "  "+styles.HelpKeyStyle.Width(8).Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, styles.DimStyle.Render("esc or ? to close"))

	return styles.ActiveBorder.Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderHelpLine renders short key hints
func renderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
