package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is matched by every FieldError and by a non-empty Errors.
var ErrInvalid = errors.New("validation failed")

// FieldError describes one rejected field value.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Errors accumulates field failures so a constructor can check every field
// before deciding to build.
type Errors []*FieldError

// Check records a failure for field when ok is false and returns ok.
func (e *Errors) Check(field string, value any, ok bool, reason string) bool {
	if !ok {
		*e = append(*e, &FieldError{Field: field, Value: fmt.Sprint(value), Reason: reason})
	}
	return ok
}

// Err returns nil when nothing failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Fields lists the failing field names in check order.
func (e Errors) Fields() []string {
	out := make([]string, len(e))
	for i, fe := range e {
		out[i] = fe.Field
	}
	return out
}

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() []error {
	out := make([]error, len(e))
	for i, fe := range e {
		out[i] = fe
	}
	return out
}

func (e Errors) Is(target error) bool {
	return target == ErrInvalid && len(e) > 0
}
