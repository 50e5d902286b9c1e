package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/collection"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// Form field positions. FieldSubmit is the button after the inputs.
const (
	FieldTitle = iota
	FieldCreator
	FieldYear
	FieldRating
	FieldComment
	FieldSubmit
)

const fieldCount = FieldSubmit

// EntryForm is the five field add/edit form
type EntryForm struct {
	kind    domain.Kind
	inputs  [fieldCount]textinput.Model
	focus   int
	focused bool
}

// NewEntryForm creates an empty form for kind
func NewEntryForm(kind domain.Kind) EntryForm {
	var f EntryForm
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.Restyle()
	f.inputs[FieldTitle].CharLimit = 200
	f.inputs[FieldCreator].CharLimit = 120
	f.inputs[FieldYear].CharLimit = 4
	f.inputs[FieldRating].CharLimit = 2
	f.inputs[FieldComment].CharLimit = 500
	f.inputs[FieldYear].Placeholder = "Year"
	f.inputs[FieldRating].Placeholder = "1-10"
	f.inputs[FieldComment].Placeholder = "Comment"
	f.SetKind(kind)
	return f
}

// SetKind relabels the form for kind
func (f *EntryForm) SetKind(kind domain.Kind) {
	f.kind = kind
	singular := kind.Singular()
	f.inputs[FieldTitle].Placeholder = strings.ToUpper(singular[:1]) + singular[1:] + " title"
	f.inputs[FieldCreator].Placeholder = kind.CreatorLabel()
}

// Restyle picks up the current palette
func (f *EntryForm) Restyle() {
	for i := range f.inputs {
		f.inputs[i].TextStyle = styles.InputTextStyle
		f.inputs[i].PlaceholderStyle = styles.DimStyle
		f.inputs[i].Cursor.Style = styles.AccentStyle
	}
}

// Kind returns the kind the form is labelled for
func (f EntryForm) Kind() domain.Kind {
	return f.kind
}

// Load fills the form from an existing entry
func (f *EntryForm) Load(e domain.Entry) {
	f.inputs[FieldTitle].SetValue(e.Title)
	f.inputs[FieldCreator].SetValue(e.Creator)
	f.inputs[FieldYear].SetValue(collection.FormatNumber(e.Year))
	f.inputs[FieldRating].SetValue(collection.FormatNumber(e.Rating))
	f.inputs[FieldComment].SetValue(e.Comment)
}

// Clear empties every field and moves focus back to the title
func (f *EntryForm) Clear() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.setFocus(FieldTitle)
}

// Entry returns the form contents as an entry
func (f EntryForm) Entry() domain.Entry {
	return domain.Entry{
		Title:   strings.TrimSpace(f.inputs[FieldTitle].Value()),
		Creator: strings.TrimSpace(f.inputs[FieldCreator].Value()),
		Year:    collection.ParseNumber(f.inputs[FieldYear].Value()),
		Comment: strings.TrimSpace(f.inputs[FieldComment].Value()),
		Rating:  collection.ParseNumber(f.inputs[FieldRating].Value()),
	}
}

// Value returns the raw text of one field
func (f EntryForm) Value(field int) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return f.inputs[field].Value()
}

// IsEmpty reports whether every field is blank
func (f EntryForm) IsEmpty() bool {
	for _, in := range f.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			return false
		}
	}
	return true
}

// Focus gives the form keyboard focus at the current field
func (f *EntryForm) Focus() tea.Cmd {
	f.focused = true
	return f.setFocus(f.focus)
}

// Blur removes keyboard focus
func (f *EntryForm) Blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Focused returns whether the form has keyboard focus
func (f EntryForm) Focused() bool {
	return f.focused
}

// FocusIndex returns the focused field (FieldSubmit for the button)
func (f EntryForm) FocusIndex() int {
	return f.focus
}

// NextField moves focus down, wrapping after the button
func (f *EntryForm) NextField() tea.Cmd {
	return f.setFocus((f.focus + 1) % (fieldCount + 1))
}

// PrevField moves focus up, wrapping before the title
func (f *EntryForm) PrevField() tea.Cmd {
	return f.setFocus((f.focus + fieldCount) % (fieldCount + 1))
}

func (f *EntryForm) setFocus(field int) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == field && f.focused {
			cmd = f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

// Update moves between fields and passes other key input to the focused
// field. Year and rating accept digits only.
func (f EntryForm) Update(msg tea.Msg) (EntryForm, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, EntryFormKeys.NextField):
			cmd := f.NextField()
			return f, cmd
		case key.Matches(keyMsg, EntryFormKeys.PrevField):
			cmd := f.PrevField()
			return f, cmd
		}
	}

	if f.focus >= fieldCount {
		return f, nil
	}

	if isKey && keyMsg.Type == tea.KeyRunes {
		if f.focus == FieldYear || f.focus == FieldRating {
			for _, r := range keyMsg.Runes {
				if !unicode.IsDigit(r) {
					return f, nil
				}
			}
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// View renders the form. submitLabel is "Add" or "Save".
func (f EntryForm) View(submitLabel string, width int) string {
	labels := [fieldCount]string{"Title", f.kind.CreatorLabel(), "Year", "Rating", "Comment"}

	// Border, padding, label and cursor take 17 columns
	if width > 0 {
		for i := range f.inputs {
			f.inputs[i].Width = max(width-17, 8)
		}
	}

	rows := make([]string, 0, fieldCount+2)
	for i, in := range f.inputs {
		label := styles.LabelStyle.Render(labels[i])
		if f.focused && f.focus == i {
			label = styles.FocusedLabelStyle.Render(labels[i])
		}
		rows = append(rows, label+" "+in.View())
	}

	button := styles.ButtonStyle.Render(submitLabel)
	if f.focused && f.focus == FieldSubmit {
		button = styles.FocusedButtonStyle.Render(submitLabel)
	}
	rows = append(rows, "", button)

	border := styles.InactiveBorder
	if f.focused {
		border = styles.ActiveBorder
	}
	if width > 4 {
		border = border.Width(width - 2)
	}
	return border.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
