package tui

// Layout proportions
const (
	FormColumnPercent = 42 // Form and achievement tray on the left
	MinColumnWidth    = 30
	WideLayoutWidth   = 90 // Below this the panes stack vertically

	ChromeHeight     = 4 // Header, footer and toast lines
	RowHeight        = 2 // Each entry renders on two lines
	ListHeaderHeight = 3 // Pane title plus border
	StackedFormTray  = 22
)

// paneLayout holds calculated pane sizes for the View
type paneLayout struct {
	stacked    bool
	leftWidth  int
	rightWidth int
	listRows   int // Entries that fit in the list pane
}

// calculateLayout computes pane sizes from the terminal size
func (m Model) calculateLayout() paneLayout {
	layout := paneLayout{}

	if m.Width < WideLayoutWidth {
		layout.stacked = true
		layout.leftWidth = m.Width
		layout.rightWidth = m.Width
		layout.listRows = (m.Height - ChromeHeight - StackedFormTray - ListHeaderHeight) / RowHeight
	} else {
		layout.leftWidth = max(m.Width*FormColumnPercent/100, MinColumnWidth)
		layout.rightWidth = max(m.Width-layout.leftWidth-1, MinColumnWidth)
		layout.listRows = (m.Height - ChromeHeight - ListHeaderHeight) / RowHeight
	}

	layout.listRows = max(layout.listRows, 3)
	return layout
}

// scrollWindow returns the [start, end) range of rows to draw so that cursor
// stays visible
func scrollWindow(cursor, total, visible int) (start, end int) {
	if visible <= 0 || total <= visible {
		return 0, total
	}
	start = cursor - visible/2
	if start < 0 {
		start = 0
	}
	if start+visible > total {
		start = total - visible
	}
	return start, start + visible
}
