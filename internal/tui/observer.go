package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/shelf/internal/domain"
)

// Sender is the part of tea.Program the notifier needs
type Sender interface {
	Send(msg tea.Msg)
}

// ExpiryNotifier adapts the announcer's expiry callback to a Bubble Tea
// program. It runs on the timer goroutine, never inside Update.
func ExpiryNotifier(s Sender) func(domain.Announcement) {
	return func(domain.Announcement) {
		s.Send(AnnouncementExpiredMsg{})
	}
}
