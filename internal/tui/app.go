package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/achievement"
	"github.com/mmcdole/shelf/internal/collection"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/mmcdole/shelf/internal/theme"
	"github.com/mmcdole/shelf/internal/tui/components"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing      ApplicationState = iota
	StateEditing                        // Form has keyboard focus
	StateFiltering                      // Filter input has keyboard focus
	StateConfirmDelete                  // Waiting for y/n
	StateHelp
)

// StatusDuration is how long a status message stays in the footer
const StatusDuration = 2 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Store     *collection.Store
	Tracker   *achievement.Tracker
	Announcer *achievement.Announcer
	Theme     *theme.Preference
	logger    *slog.Logger

	// Active tab and form
	Kind      domain.Kind
	Form      components.EntryForm
	EditIndex int // Index of the entry being edited, -1 when adding

	// List state
	Cursor      int // Position within the visible (filtered) rows
	FilterInput textinput.Model
	FilterQuery string

	// Index awaiting delete confirmation
	PendingDelete int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int
}

// NewModel creates a new application model
func NewModel(
	store *collection.Store,
	tracker *achievement.Tracker,
	pref *theme.Preference,
	kind domain.Kind,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if !kind.Valid() {
		kind = domain.KindBooks
	}

	styles.ApplyTheme(pref.IsDark())

	fi := textinput.New()
	fi.Prompt = ""
	fi.Placeholder = "filter..."
	fi.CharLimit = 100
	fi.Width = 30

	return Model{
		State:         StateBrowsing,
		Store:         store,
		Tracker:       tracker,
		Announcer:     tracker.Announcer(),
		Theme:         pref,
		logger:        logger,
		Kind:          kind,
		Form:          components.NewEntryForm(kind),
		EditIndex:     -1,
		FilterInput:   fi,
		PendingDelete: -1,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnnouncementExpiredMsg:
		// Nothing to change; returning triggers a render without the toast
		return m, nil

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil

	case ErrMsg:
		cmd := m.setError(msg)
		return m, cmd
	}

	// Forward everything else (cursor blink) to the focused input
	var cmd tea.Cmd
	switch m.State {
	case StateEditing:
		m.Form, cmd = m.Form.Update(msg)
	case StateFiltering:
		m.FilterInput, cmd = m.FilterInput.Update(msg)
	}
	return m, cmd
}

// IsEditing reports whether the form targets an existing entry
func (m Model) IsEditing() bool {
	return m.EditIndex >= 0
}

// SubmitLabel returns "Save" in edit mode and "Add" otherwise
func (m Model) SubmitLabel() string {
	if m.IsEditing() {
		return "Save"
	}
	return "Add"
}

// visibleRows returns the rows for the active tab after filtering
func (m Model) visibleRows() []search.Result {
	return search.Filter(m.Store.Entries(m.Kind), m.FilterQuery)
}

// selectedRow returns the row under the cursor
func (m Model) selectedRow() (search.Result, bool) {
	rows := m.visibleRows()
	if m.Cursor < 0 || m.Cursor >= len(rows) {
		return search.Result{}, false
	}
	return rows[m.Cursor], true
}

// clampCursor keeps the cursor on a visible row
func (m *Model) clampCursor() {
	n := len(m.visibleRows())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// resetForm clears the form and leaves edit mode
func (m *Model) resetForm() {
	m.Form.Clear()
	m.EditIndex = -1
}

// switchTab activates kind. The form is cleared and edit mode ends.
func (m *Model) switchTab(kind domain.Kind) {
	if kind == m.Kind {
		return
	}
	m.Kind = kind
	m.Form.SetKind(kind)
	m.resetForm()
	m.FilterQuery = ""
	m.FilterInput.SetValue("")
	m.Cursor = 0
	m.logger.Debug("switched tab", "kind", kind)
}

// otherKind returns the tab that is not active
func (m Model) otherKind() domain.Kind {
	if m.Kind == domain.KindBooks {
		return domain.KindMovies
	}
	return domain.KindBooks
}

// startAdd focuses an empty form in create mode
func (m *Model) startAdd() tea.Cmd {
	if m.IsEditing() {
		m.resetForm()
	}
	m.State = StateEditing
	return m.Form.Focus()
}

// startEdit loads the selected entry into the form and enters edit mode
func (m *Model) startEdit() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	m.Form.Clear()
	m.Form.Load(row.Entry)
	m.EditIndex = row.Index
	m.State = StateEditing
	m.logger.Debug("editing entry", "kind", m.Kind, "index", row.Index)
	return m.Form.Focus()
}

// submit validates the form and adds or saves the entry. A rejected
// submission leaves the form untouched.
func (m *Model) submit() tea.Cmd {
	entry := m.Form.Entry()

	if err := m.Store.Validator().CheckForm(entry); err != nil {
		return m.setError(ErrMsg{Err: err, Context: "not saved"})
	}

	var err error
	editing := m.IsEditing()
	if editing {
		err = m.Store.Update(m.Kind, m.EditIndex, entry)
	} else {
		err = m.Store.Add(m.Kind, entry)
	}

	if err != nil && (errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrIndexOutOfRange)) {
		return m.setError(ErrMsg{Err: err, Context: "not saved"})
	}

	m.Form.Blur()
	m.resetForm()
	m.State = StateBrowsing
	if !editing && m.FilterQuery == "" {
		m.Cursor = 0
	}
	m.clampCursor()

	if err != nil {
		// The change is kept in memory; only the write failed
		return m.setError(ErrMsg{Err: err, Context: "saving to disk"})
	}
	if editing {
		return m.setStatus(fmt.Sprintf("Saved %q", entry.Title))
	}
	return m.setStatus(fmt.Sprintf("Added %q", entry.Title))
}

// confirmDelete asks before removing the selected entry
func (m *Model) confirmDelete() {
	row, ok := m.selectedRow()
	if !ok {
		return
	}
	m.PendingDelete = row.Index
	m.State = StateConfirmDelete
}

// deleteEntry removes the entry at index and keeps the edit target pointing
// at the same entry
func (m *Model) deleteEntry(index int) tea.Cmd {
	entry, ok := m.Store.Entry(m.Kind, index)
	if !ok {
		return nil
	}

	err := m.Store.Remove(m.Kind, index)
	if err != nil && errors.Is(err, domain.ErrIndexOutOfRange) {
		return m.setError(ErrMsg{Err: err, Context: "not deleted"})
	}

	switch {
	case m.EditIndex == index:
		m.resetForm()
	case m.EditIndex > index:
		m.EditIndex--
	}
	m.clampCursor()

	if err != nil {
		return m.setError(ErrMsg{Err: err, Context: "saving to disk"})
	}
	return m.setStatus(fmt.Sprintf("Deleted %q", entry.Title))
}

// toggleTheme flips and persists the palette
func (m *Model) toggleTheme() tea.Cmd {
	dark, err := m.Theme.Toggle()
	styles.ApplyTheme(dark)
	m.Form.Restyle()
	if err != nil {
		return m.setError(ErrMsg{Err: err, Context: "saving theme"})
	}
	return nil
}

// setStatus shows a message in the footer and schedules its removal
func (m *Model) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = false
	return ClearStatusCmd(m.statusSeq, StatusDuration)
}

// setError shows an error in the footer and schedules its removal
func (m *Model) setError(e ErrMsg) tea.Cmd {
	m.logger.Debug("status error", "context", e.Context, "error", e.Err)
	m.statusSeq++
	m.StatusMsg = e.Error()
	m.StatusIsErr = true
	return ClearStatusCmd(m.statusSeq, StatusDuration)
}
