package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeLookupError = "LOOKUP_ERROR"
	CodeAPIError    = "API_ERROR"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
)

// ErrSuperseded is returned by a search whose result was discarded because a
// newer search started before it finished.
var ErrSuperseded = stderrors.New("search superseded by a newer request")

type LookupError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *LookupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Cause
}

func NewLookupError(message, code string, statusCode int, context map[string]any) *LookupError {
	return &LookupError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *LookupError) WithCause(cause error) *LookupError {
	e.Cause = cause
	return e
}

// APIError reports a non-success response from the character API.
type APIError struct {
	*LookupError
}

func NewAPIError(message string, statusCode int, context map[string]any) *APIError {
	return &APIError{
		LookupError: &LookupError{
			Message:    message,
			Code:       CodeAPIError,
			StatusCode: statusCode,
			Context:    context,
		},
	}
}

type ValidationError struct {
	*LookupError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		LookupError: &LookupError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

// NotFoundError ends a search whose term could not be resolved, whatever the
// underlying cause. Term is the normalized search term.
type NotFoundError struct {
	*LookupError
	Term string
}

func NewNotFoundError(term string, cause error) *NotFoundError {
	status := 404
	var apiErr *APIError
	if stderrors.As(cause, &apiErr) && apiErr.StatusCode != 0 {
		status = apiErr.StatusCode
	}

	return &NotFoundError{
		LookupError: &LookupError{
			Message:    fmt.Sprintf("character %q not found", term),
			Code:       CodeNotFound,
			StatusCode: status,
			Context: map[string]any{
				"term": term,
			},
			Cause: cause,
		},
		Term: term,
	}
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// AsNotFound returns the NotFoundError in err's chain, if any.
func AsNotFound(err error) (*NotFoundError, bool) {
	var target *NotFoundError
	if stderrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// IsSuperseded reports whether err is ErrSuperseded.
func IsSuperseded(err error) bool {
	return stderrors.Is(err, ErrSuperseded)
}
