package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil

	case StateConfirmDelete:
		switch {
		case key.Matches(msg, Keys.Confirm):
			idx := m.PendingDelete
			m.PendingDelete = -1
			m.State = StateBrowsing
			cmd := m.deleteEntry(idx)
			return m, cmd
		case key.Matches(msg, Keys.Deny):
			m.PendingDelete = -1
			m.State = StateBrowsing
		}
		return m, nil

	case StateEditing:
		return m.handleFormKey(msg)

	case StateFiltering:
		return m.handleFilterKey(msg)
	}

	// Browsing keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		// Clear the filter first, then any pending edit or draft
		if m.FilterQuery != "" {
			m.FilterQuery = ""
			m.FilterInput.SetValue("")
			m.clampCursor()
			return m, nil
		}
		if m.IsEditing() || !m.Form.IsEmpty() {
			m.resetForm()
			cmd := m.setStatus("Form cleared")
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.State = StateFiltering
		cmd := m.FilterInput.Focus()
		return m, cmd

	case key.Matches(msg, Keys.NextTab, Keys.PrevTab):
		m.switchTab(m.otherKind())
		return m, nil

	case key.Matches(msg, Keys.Books):
		m.switchTab(domain.KindBooks)
		return m, nil

	case key.Matches(msg, Keys.Movies):
		m.switchTab(domain.KindMovies)
		return m, nil

	case key.Matches(msg, Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.Cursor < len(m.visibleRows())-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.Cursor = 0
		return m, nil

	case key.Matches(msg, Keys.End):
		m.Cursor = len(m.visibleRows()) - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, Keys.New):
		cmd := m.startAdd()
		return m, cmd

	case key.Matches(msg, Keys.Edit):
		cmd := m.startEdit()
		return m, cmd

	case key.Matches(msg, Keys.Delete):
		m.confirmDelete()
		return m, nil

	case key.Matches(msg, Keys.Theme):
		cmd := m.toggleTheme()
		return m, cmd
	}

	return m, nil
}

// handleFormKey routes keys while the form has focus
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape):
		// Back to the list; the draft and edit target stay
		m.Form.Blur()
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, Keys.Submit):
		cmd := m.submit()
		return m, cmd
	}

	var cmd tea.Cmd
	m.Form, cmd = m.Form.Update(msg)
	return m, cmd
}

// handleFilterKey routes keys while the filter input has focus
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.FilterInput.Blur()
		m.FilterInput.SetValue("")
		m.FilterQuery = ""
		m.State = StateBrowsing
		m.clampCursor()
		return m, nil

	case tea.KeyEnter:
		m.FilterInput.Blur()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.FilterQuery = m.FilterInput.Value()
	m.Cursor = 0
	return m, cmd
}
