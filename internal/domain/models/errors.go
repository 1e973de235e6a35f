package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared across services; HTTP status mapping happens at the
// handler layer.
var (
	// ErrDuplicateKey signals a unique-index violation (username/email taken).
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound signals an update or lookup against an absent record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials covers both unknown-user and wrong-password login
	// failures so that responses never leak which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidReportType signals an unknown report type tag.
	ErrInvalidReportType = errors.New("invalid report type")
)

// FieldError names one violated field constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level constraint violations for a write.
type ValidationError struct {
	Fields []FieldError
}

// Add records a violation.
func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns the error when any violation was recorded, nil otherwise.
// The pointer indirection keeps `return verr.OrNil()` from producing a
// non-nil interface around an empty value.
func (v *ValidationError) OrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	msgs := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
