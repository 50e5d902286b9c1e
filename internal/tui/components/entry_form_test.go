package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func typeText(f EntryForm, s string) EntryForm {
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return f
}

func TestEntryFormTyping(t *testing.T) {
	f := NewEntryForm(domain.KindBooks)
	f.Focus()

	f = typeText(f, "Dune")
	f.NextField()
	f = typeText(f, "Frank Herbert")
	f.NextField()
	f = typeText(f, "19")
	f = typeText(f, "x")
	f = typeText(f, "65")
	f.NextField()
	f = typeText(f, "9")

	assert.Equal(t, FieldRating, f.FocusIndex())
	assert.Equal(t, "1965", f.Value(FieldYear))
	assert.Equal(t, domain.Entry{Title: "Dune", Creator: "Frank Herbert", Year: 1965, Rating: 9}, f.Entry())
}

func TestEntryFormIgnoresInputWhenBlurred(t *testing.T) {
	f := NewEntryForm(domain.KindBooks)
	f = typeText(f, "Dune")
	assert.True(t, f.IsEmpty())
}

func TestEntryFormFocusWraps(t *testing.T) {
	f := NewEntryForm(domain.KindMovies)
	f.Focus()

	f.PrevField()
	assert.Equal(t, FieldSubmit, f.FocusIndex())
	f = typeText(f, "ignored")
	assert.True(t, f.IsEmpty())

	f.NextField()
	assert.Equal(t, FieldTitle, f.FocusIndex())
}

func TestEntryFormLoadAndClear(t *testing.T) {
	e := domain.Entry{Title: "Alien", Creator: "Ridley Scott", Year: 1979, Comment: "in space", Rating: 10}

	f := NewEntryForm(domain.KindMovies)
	f.Load(e)
	assert.Equal(t, e, f.Entry())
	assert.Equal(t, "10", f.Value(FieldRating))

	f.Focus()
	f.NextField()
	f.Clear()
	assert.True(t, f.IsEmpty())
	assert.Equal(t, FieldTitle, f.FocusIndex())
	assert.Equal(t, domain.Entry{}, f.Entry())
}

func TestEntryFormLoadLeavesAbsentNumbersBlank(t *testing.T) {
	f := NewEntryForm(domain.KindBooks)
	f.Load(domain.Entry{Title: "Emma", Rating: 7})
	assert.Equal(t, "", f.Value(FieldYear))
}

func TestEntryFormCopiesAreIndependent(t *testing.T) {
	f := NewEntryForm(domain.KindBooks)
	f.Focus()
	g := typeText(f, "Dune")

	assert.True(t, f.IsEmpty())
	assert.Equal(t, "Dune", g.Value(FieldTitle))
}

func TestEntryFormViewLabels(t *testing.T) {
	f := NewEntryForm(domain.KindMovies)
	view := f.View("Save", 60)
	assert.Contains(t, view, "Director")
	assert.Contains(t, view, "Save")
}

func TestEntryFormTabMovesFocus(t *testing.T) {
	f := NewEntryForm(domain.KindBooks)
	f.Focus()

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldCreator, f.FocusIndex())

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldSubmit, f.FocusIndex())
}
