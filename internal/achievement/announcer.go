package achievement

import (
	"log/slog"
	"sync"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
)

// DefaultWindow is how long an announcement stays visible
const DefaultWindow = 3500 * time.Millisecond

// Announcer shows at most one announcement at a time and clears it after a
// fixed window. A newer announcement replaces the current one and restarts the
// window; unannounced unlocks are not queued.
type Announcer struct {
	mu       sync.Mutex
	window   time.Duration
	current  *domain.Announcement
	gen      uint64 // bumped on every show/clear; a timer only clears its own generation
	timer    *time.Timer
	onExpire func(domain.Announcement)
	logger   *slog.Logger
}

// NewAnnouncer creates an announcer. A non-positive window uses DefaultWindow.
func NewAnnouncer(window time.Duration, logger *slog.Logger) *Announcer {
	if window <= 0 {
		window = DefaultWindow
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Announcer{window: window, logger: logger}
}

// SetOnExpire registers a callback run on the timer goroutine after an
// announcement times out. It is not called for Dismiss or replacement.
func (a *Announcer) SetOnExpire(fn func(domain.Announcement)) {
	a.mu.Lock()
	a.onExpire = fn
	a.mu.Unlock()
}

// Window returns the display duration
func (a *Announcer) Window() time.Duration {
	return a.window
}

// Announce shows ann, replacing and cancelling any current announcement
func (a *Announcer) Announce(ann domain.Announcement) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopTimerLocked()
	a.gen++
	gen := a.gen
	a.current = &ann
	a.timer = time.AfterFunc(a.window, func() { a.expire(gen) })

	a.logger.Debug("announcing achievement", "kind", ann.Kind, "id", ann.ID)
}

// Current returns the visible announcement, if any
func (a *Announcer) Current() (domain.Announcement, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return domain.Announcement{}, false
	}
	return *a.current, true
}

// Dismiss clears the current announcement early
func (a *Announcer) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopTimerLocked()
	a.gen++
	a.current = nil
}

// Stop cancels any pending timer. Call on shutdown.
func (a *Announcer) Stop() {
	a.Dismiss()
}

func (a *Announcer) expire(gen uint64) {
	a.mu.Lock()
	if gen != a.gen || a.current == nil {
		a.mu.Unlock()
		return
	}
	expired := *a.current
	a.current = nil
	a.timer = nil
	fn := a.onExpire
	a.mu.Unlock()

	if fn != nil {
		fn(expired)
	}
}

func (a *Announcer) stopTimerLocked() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}
