package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Command factories

// ClearStatusCmd returns a command that clears status after a delay.
// seq identifies the status it belongs to so a newer one is left alone.
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
