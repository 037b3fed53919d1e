package errors

import (
	"errors"
	"fmt"
)

// Error codes returned to API clients alongside the message
const (
	CodeMissingFields       = "MISSING_FIELDS"
	CodeInvalidRange        = "INVALID_RANGE"
	CodeInvalidAvailability = "INVALID_AVAILABILITY"
	CodeInvalidLeaves       = "INVALID_LEAVES"
	CodeInvalidPayload      = "INVALID_PAYLOAD"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodeInvalidWorkMode     = "INVALID_WORK_MODE"
	CodeInvalidWeek         = "INVALID_WEEK"
	CodeInvalidDate         = "INVALID_DATE"
	CodeValidation          = "VALIDATION_ERROR"
	CodeIterationNotFound   = "ITERATION_NOT_FOUND"
	CodeMemberNotFound      = "MEMBER_NOT_FOUND"
	CodeNotFound            = "NOT_FOUND"
	CodeAccessDenied        = "ACCESS_DENIED"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeConflict            = "CONFLICT"
	CodeInternal            = "INTERNAL_ERROR"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
	Code   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Code    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AccessDeniedError is returned when the project access check fails
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string {
	return e.Message
}

// ConflictError represents a unique-constraint violation that could not be absorbed
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflicts with an existing record %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflicts with an existing record", e.Entity)
}

// InternalError wraps an unexpected storage or runtime failure
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrIterationNotFound = &NotFoundError{Entity: "iteration", Code: CodeIterationNotFound}
	ErrMemberNotFound    = &NotFoundError{Entity: "member", Code: CodeMemberNotFound}
)

// Access Errors
var (
	ErrAccessDenied = &AccessDeniedError{Message: "access to this project is denied"}
	ErrMissingUser  = &AuthenticationError{Message: "authenticated user not found in context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAccessDenied checks if an error is an AccessDeniedError
func IsAccessDenied(err error) bool {
	var accessErr *AccessDeniedError
	return errors.As(err, &accessErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// CodeOf returns the API error code carried by err
func CodeOf(err error) string {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		if validationErr.Code != "" {
			return validationErr.Code
		}
		return CodeValidation
	case errors.As(err, &notFoundErr):
		if notFoundErr.Code != "" {
			return notFoundErr.Code
		}
		return CodeNotFound
	case IsAccessDenied(err):
		return CodeAccessDenied
	case IsConflict(err):
		return CodeConflict
	case IsAuthentication(err):
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity, Code: CodeNotFound}
}

// NewValidationError creates a new ValidationError with a specific code
func NewValidationError(code, field, message string) error {
	return &ValidationError{Code: code, Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewInternalError wraps err as an InternalError for the given operation
func NewInternalError(op string, err error) error {
	return &InternalError{Op: op, Err: err}
}
