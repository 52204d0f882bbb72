package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Widget errors
	CodeInvalidSelection ErrorCode = "INVALID_SELECTION"
	CodeInvalidAction    ErrorCode = "INVALID_ACTION"
	CodeInputLocked      ErrorCode = "INPUT_LOCKED"
	CodeDegenerateRange  ErrorCode = "DEGENERATE_RANGE"
	CodeSessionNotFound  ErrorCode = "SESSION_NOT_FOUND"
	CodeSessionLimit     ErrorCode = "SESSION_LIMIT"
	CodeItemNotFound     ErrorCode = "ITEM_NOT_FOUND"
	CodePageNotFound     ErrorCode = "PAGE_NOT_FOUND"
	CodeUnknownWidget    ErrorCode = "UNKNOWN_WIDGET"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches another DomainError by code so errors.Is works against the
// sentinel-like values returned by the constructors below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches diagnostic key/value pairs.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf returns the code carried by err, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// Helper functions for common errors
func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInvalidSelectionError(message string) *DomainError {
	return NewError(CodeInvalidSelection, message, nil)
}

func NewInvalidActionError(action ActionType, state string) *DomainError {
	return NewError(CodeInvalidAction, fmt.Sprintf("action %q is not accepted in state %s", action, state), nil).
		WithContext("action", string(action)).
		WithContext("state", state)
}

func NewInputLockedError() *DomainError {
	return NewError(CodeInputLocked, "a reply is still pending", nil)
}

func NewDegenerateRangeError(correct, window, attempts int) *DomainError {
	return NewError(CodeDegenerateRange,
		fmt.Sprintf("cannot draw 3 distinct positive distractors around %d within ±%d after %d attempts", correct, window, attempts), nil).
		WithContext("correct", correct).
		WithContext("window", window)
}

func NewSessionNotFoundError(id string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("widget session not found: %s", id), nil)
}

func NewSessionLimitError(limit int) *DomainError {
	return NewError(CodeSessionLimit, fmt.Sprintf("too many open widget sessions (limit %d)", limit), nil)
}

func NewItemNotFoundError(id int) *DomainError {
	return NewError(CodeItemNotFound, fmt.Sprintf("item not found with ID: %d", id), nil)
}

func NewPageNotFoundError(slug string) *DomainError {
	return NewError(CodePageNotFound, fmt.Sprintf("page not found: %s", slug), nil)
}

func NewUnknownWidgetError(kind string) *DomainError {
	return NewError(CodeUnknownWidget, fmt.Sprintf("unknown widget kind: %s", kind), nil)
}

// ValidationError describes one failing request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every failing field of one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: field + " is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: field + " has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}

func NewFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Code: CodeValidation, Message: message}
}
