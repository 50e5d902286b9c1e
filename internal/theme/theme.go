// Package theme persists the dark/light display preference.
package theme

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/shelf/internal/domain"
)

// Stored values
const (
	Dark  = "dark"
	Light = "light"
)

// Preference is the persisted display mode
type Preference struct {
	storage domain.Storage
	logger  *slog.Logger
	dark    bool
}

// Load reads the stored preference. Anything other than "dark" means light.
func Load(storage domain.Storage, logger *slog.Logger) *Preference {
	if logger == nil {
		logger = slog.Default()
	}
	v, _ := storage.Get(domain.KeyTheme)
	return &Preference{storage: storage, logger: logger, dark: v == Dark}
}

// IsDark returns the current mode
func (p *Preference) IsDark() bool {
	return p.dark
}

// Name returns "dark" or "light"
func (p *Preference) Name() string {
	if p.dark {
		return Dark
	}
	return Light
}

// Toggle flips the mode and persists it
func (p *Preference) Toggle() (bool, error) {
	next := !p.dark
	err := p.Set(next)
	return next, err
}

// Set changes the mode and persists it
func (p *Preference) Set(dark bool) error {
	p.dark = dark
	if err := p.storage.Set(domain.KeyTheme, p.Name()); err != nil {
		p.logger.Error("failed to persist theme", "error", err)
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	p.logger.Debug("theme changed", "theme", p.Name())
	return nil
}
