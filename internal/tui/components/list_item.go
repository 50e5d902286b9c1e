package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/search"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// EmptyPlaceholder stands in for a blank creator or rating
const EmptyPlaceholder = "—"

// EntryRow is one visible list row
type EntryRow struct {
	Result   search.Result
	Kind     domain.Kind
	Selected bool
	Editing  bool // Row is the form's edit target
}

// RatingText formats a rating as "N / 10"
func RatingText(rating int) string {
	if rating <= 0 {
		return EmptyPlaceholder
	}
	return fmt.Sprintf("%d / 10", rating)
}

// CreatorText formats the creator line prefix, e.g. "Author: Jane Austen"
func CreatorText(kind domain.Kind, creator string) string {
	if creator == "" {
		creator = EmptyPlaceholder
	}
	return kind.CreatorLabel() + ": " + creator
}

// Render draws the row on two lines within width
func (r EntryRow) Render(width int) string {
	e := r.Result.Entry
	style := styles.NormalItemStyle
	if r.Selected {
		style = styles.SelectedItemStyle
	}

	marker := "  "
	if r.Editing {
		marker = styles.AccentStyle.Render("✎ ")
	}

	rating := RatingText(e.Rating)

	// Content width inside the item padding
	cw := width - 2

	titleText := styles.Truncate(e.Title, cw-lipgloss.Width(rating)-10)
	title := styles.HighlightMatches(titleText, r.Result.MatchedIndexes, lipgloss.NewStyle().Bold(true))
	if e.Year > 0 {
		title += fmt.Sprintf(" (%d)", e.Year)
	}

	gap := max(cw-3-lipgloss.Width(title)-lipgloss.Width(rating), 1)
	first := marker + title + strings.Repeat(" ", gap) + rating

	detail := CreatorText(r.Kind, e.Creator)
	if e.Comment != "" {
		detail += " · " + e.Comment
	}
	second := "  " + styles.DimStyle.Render(styles.Truncate(detail, cw-3))

	return style.Width(width).Render(first + "\n" + second)
}
