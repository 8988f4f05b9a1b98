package domain

import (
	"errors"
	"strings"

	"github.com/alcyxob/fitcoach/internal/validation"
)

// ErrInvalid is matched by every construction failure in this package.
var ErrInvalid = validation.ErrInvalid

// InvalidDataError reports a rejected input value together with the field
// it was destined for. Importers return it for rows they skip.
type InvalidDataError struct {
	Message string
	Field   string
	Value   string
	Err     error
}

// NewInvalidDataError builds an InvalidDataError without a cause.
func NewInvalidDataError(message, field, value string) *InvalidDataError {
	return &InvalidDataError{Message: message, Field: field, Value: value}
}

func (e *InvalidDataError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Field != "" {
		sb.WriteString(" [Field: ")
		sb.WriteString(e.Field)
		if e.Value != "" {
			sb.WriteString(", Invalid Value: '")
			sb.WriteString(e.Value)
			sb.WriteString("'")
		}
		sb.WriteString("]")
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *InvalidDataError) Unwrap() error {
	return e.Err
}

func (e *InvalidDataError) Is(target error) bool {
	return target == ErrInvalid
}

// AsInvalidData extracts the first InvalidDataError or FieldError in err's
// chain as an InvalidDataError.
func AsInvalidData(err error) (*InvalidDataError, bool) {
	var ide *InvalidDataError
	if errors.As(err, &ide) {
		return ide, true
	}
	var fe *validation.FieldError
	if errors.As(err, &fe) {
		return &InvalidDataError{Message: fe.Reason, Field: fe.Field, Value: fe.Value, Err: err}, true
	}
	return nil, false
}
