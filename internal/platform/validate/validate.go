// Package validate collects field-scoped validation failures so handlers can
// return them as a single 422 body.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldError reports a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the collected set of field errors for one request.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a field error.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err returns the collected errors as an error, or nil when empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsErrors unwraps err into an Errors value if it is one.
func AsErrors(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

var (
	emailPattern  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	mobilePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// Required rejects empty strings after trimming.
func (e *Errors) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

// Email rejects values that are not plausible email addresses. Empty values
// pass; combine with Required when the field is mandatory.
func (e *Errors) Email(field, value string) {
	if value != "" && !emailPattern.MatchString(value) {
		e.Add(field, "must be a valid email address")
	}
}

// Mobile rejects values that are not plausible phone numbers.
func (e *Errors) Mobile(field, value string) {
	if value != "" && !mobilePattern.MatchString(value) {
		e.Add(field, "must be a valid mobile number")
	}
}

// OneOf rejects values outside the allowed set. Empty values pass.
func (e *Errors) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	e.Add(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
}

// NonNegativeInt rejects negative values.
func (e *Errors) NonNegativeInt(field string, value int) {
	if value < 0 {
		e.Add(field, "must not be negative")
	}
}

// PositiveInt rejects values below one.
func (e *Errors) PositiveInt(field string, value int) {
	if value < 1 {
		e.Add(field, "must be positive")
	}
}

// Date parses a required YYYY-MM-DD value, recording an error on failure.
func (e *Errors) Date(field, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		e.Add(field, "must be a date in YYYY-MM-DD format")
		return time.Time{}
	}
	return t
}

// OptionalDate parses a YYYY-MM-DD value when present.
func (e *Errors) OptionalDate(field, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		e.Add(field, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}

// OptionalTime parses an HH:MM clock value when present.
func (e *Errors) OptionalTime(field, value string) *time.Time {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		t, err = time.Parse("15:04:05", value)
	}
	if err != nil {
		e.Add(field, "must be a time in HH:MM format")
		return nil
	}
	return &t
}

// Amount parses a required non-negative decimal money value.
func (e *Errors) Amount(field, value string) decimal.Decimal {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		e.Add(field, "must be a number")
		return decimal.Zero
	}
	if d.IsNegative() {
		e.Add(field, "must not be negative")
		return decimal.Zero
	}
	return d
}

// MinLen rejects values shorter than min runes. Empty values pass.
func (e *Errors) MinLen(field, value string, min int) {
	if value != "" && len([]rune(value)) < min {
		e.Add(field, fmt.Sprintf("must be at least %d characters", min))
	}
}
