package collection

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mmcdole/shelf/internal/domain"
)

// MinYear is the earliest year the entry form accepts
const MinYear = 1800

// storedEntry holds the rules every stored entry must pass
type storedEntry struct {
	Title  string `json:"title" validate:"nonblank"`
	Rating int    `json:"rating" validate:"required"`
}

// formEntry adds the range checks applied to user input
type formEntry struct {
	Title  string `json:"title" validate:"nonblank"`
	Year   int    `json:"year" validate:"omitempty,min=1800,notfuture"`
	Rating int    `json:"rating" validate:"required,min=1,max=10"`
}

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// NewValidator creates a validator configured for entries.
func NewValidator() *Validator {
	val := &Validator{v: validator.New(), now: time.Now}

	// Use JSON tag names in error messages
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs
	_ = val.v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = val.v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(val.now().Year())
	})

	return val
}

// Check enforces presence of the required fields (title, rating).
func (v *Validator) Check(e domain.Entry) error {
	return v.validate(storedEntry{Title: e.Title, Rating: e.Rating})
}

// CheckForm enforces presence plus the form ranges (year 1800..this year, rating 1..10).
func (v *Validator) CheckForm(e domain.Entry) error {
	return v.validate(formEntry{Title: e.Title, Year: e.Year, Rating: e.Rating})
}

func (v *Validator) validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, friendlyMessage(e))
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "nonblank":
		return e.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "notfuture":
		return e.Field() + " cannot be in the future"
	default:
		return fmt.Sprintf("%s failed %s", e.Field(), e.Tag())
	}
}
