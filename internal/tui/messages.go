package tui

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// AnnouncementExpiredMsg is sent from the announcer's timer when a toast times
// out. It carries nothing; the next render reads the announcer again.
type AnnouncementExpiredMsg struct{}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct {
	Seq int
}
