package collection

import (
	"testing"
	"time"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckPresence(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Check(domain.Entry{Title: "Dune", Rating: 3}))
	// Ranges are not enforced on the core path
	assert.NoError(t, v.Check(domain.Entry{Title: "Dune", Rating: 42, Year: 12}))

	err := v.Check(domain.Entry{Rating: 3})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title is required")

	err = v.Check(domain.Entry{Title: "Dune"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "rating is required")
}

func TestCheckForm(t *testing.T) {
	v := NewValidator()
	v.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name    string
		entry   domain.Entry
		wantErr string
	}{
		{"valid", domain.Entry{Title: "Dune", Year: 1965, Rating: 10}, ""},
		{"no year", domain.Entry{Title: "Dune", Rating: 1}, ""},
		{"current year", domain.Entry{Title: "Dune", Year: 2026, Rating: 1}, ""},
		{"too old", domain.Entry{Title: "Dune", Year: 1799, Rating: 5}, "year must be at least 1800"},
		{"future", domain.Entry{Title: "Dune", Year: 2027, Rating: 5}, "year cannot be in the future"},
		{"rating high", domain.Entry{Title: "Dune", Rating: 11}, "rating must be at most 10"},
		{"rating low", domain.Entry{Title: "Dune", Rating: -2}, "rating must be at least 1"},
		{"blank title", domain.Entry{Title: " ", Rating: 5}, "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckForm(tt.entry)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
