// Package errors provides centralized error definitions and error handling
// utilities for souschef. It defines domain-specific errors, semantic error
// types, error constructors with context wrapping, and classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - SessionError: errors related to a live cooking session
//   - GatewayError: errors from the ingredient deduction gateway
//   - RecipeError: errors loading or parsing recipe files
//
// Semantic errors represent common error conditions:
//   - ValidationError: invalid input or state
//   - NotFoundError: resource not found
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError("timer duration must be positive").
//		WithField("minutes").WithValue(-5)
//
//	err := errors.NewGatewayError("pantry deduction failed", cause)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrStepsRemaining) { ... }
//
//	var v *errors.ValidationError
//	if errors.As(err, &v) { ... }
//
//	if errors.IsRetryable(err) { ... }
//	if errors.IsUserFacing(err) { ... }
//
// # Error Classification
//
// Errors carry severity (Debug through Critical) and two behavioral flags:
// retryable (transient, may succeed on retry) and user-facing (safe to show
// in the UI verbatim).
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Session-related sentinel errors
var (
	// ErrSessionClosed indicates an operation was attempted after teardown.
	ErrSessionClosed = New("session is closed")
	// ErrStepsRemaining indicates deduction was requested before every step
	// was completed.
	ErrStepsRemaining = New("steps remaining")
	// ErrConfirmRequired indicates a repeated deduction needs an explicit
	// confirmation.
	ErrConfirmRequired = New("confirmation required")
	// ErrInvalidMultiplier indicates a serving multiplier outside the
	// supported set.
	ErrInvalidMultiplier = New("invalid serving multiplier")
)

// Timer-related sentinel errors
var (
	// ErrTimerNotFound indicates a custom timer ID that does not exist.
	ErrTimerNotFound = New("timer not found")
	// ErrNoDetectedTimer indicates the current step has no detected timer.
	ErrNoDetectedTimer = New("no detected timer for current step")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrDeductionFailed indicates the ingredient deduction gateway failed.
	ErrDeductionFailed = New("ingredient deduction failed")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// DomainError is the base interface for all souschef errors. It extends the
// standard error interface with methods for handling and classification.
type DomainError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the error is transient and the operation
	// may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error { return e.cause }

// Is checks if this error matches the target via the wrapped cause.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

func (e *baseError) Severity() Severity { return e.severity }
func (e *baseError) IsRetryable() bool  { return e.retryable }
func (e *baseError) IsUserFacing() bool { return e.userFacing }

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// SessionError represents errors related to a live cooking session.
//
// Example:
//
//	err := errors.NewSessionError("cannot deduct", errors.ErrStepsRemaining).
//		WithStep(4)
type SessionError struct {
	baseError
	Recipe string
	Step   int
}

// NewSessionError creates a new SessionError.
func NewSessionError(message string, cause error) *SessionError {
	return &SessionError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
		Step: -1, // -1 indicates not set
	}
}

// WithRecipe adds the recipe name to the error context.
func (e *SessionError) WithRecipe(name string) *SessionError {
	e.Recipe = name
	return e
}

// WithStep adds a zero-based step index to the error context.
func (e *SessionError) WithStep(idx int) *SessionError {
	e.Step = idx
	return e
}

// WithSeverity sets the error severity.
func (e *SessionError) WithSeverity(s Severity) *SessionError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *SessionError) Error() string {
	var parts []string
	if e.Recipe != "" {
		parts = append(parts, fmt.Sprintf("recipe=%s", e.Recipe))
	}
	if e.Step >= 0 {
		parts = append(parts, fmt.Sprintf("step=%d", e.Step))
	}

	prefix := "session error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("session error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SessionError) Is(target error) bool {
	if _, ok := target.(*SessionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// GatewayError represents a failure in the ingredient deduction gateway.
// Gateway failures are retryable: the session state is unchanged and the
// user may confirm deduction again.
type GatewayError struct {
	baseError
	Ingredient string
}

// NewGatewayError creates a new GatewayError.
func NewGatewayError(message string, cause error) *GatewayError {
	return &GatewayError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityWarning,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithIngredient adds the offending ingredient name to the error context.
func (e *GatewayError) WithIngredient(name string) *GatewayError {
	e.Ingredient = name
	return e
}

// Error returns the formatted error message.
func (e *GatewayError) Error() string {
	prefix := "gateway error"
	if e.Ingredient != "" {
		prefix = fmt.Sprintf("gateway error [ingredient=%s]", e.Ingredient)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *GatewayError) Is(target error) bool {
	if _, ok := target.(*GatewayError); ok {
		return true
	}
	if errors.Is(target, ErrDeductionFailed) {
		return true
	}
	return e.baseError.Is(target)
}

// RecipeError represents errors loading or parsing recipe files.
type RecipeError struct {
	baseError
	Path string
}

// NewRecipeError creates a new RecipeError.
func NewRecipeError(message string, cause error) *RecipeError {
	return &RecipeError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithPath adds the recipe file path to the error context.
func (e *RecipeError) WithPath(path string) *RecipeError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *RecipeError) Error() string {
	prefix := "recipe error"
	if e.Path != "" {
		prefix = fmt.Sprintf("recipe error [path=%s]", e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *RecipeError) Is(target error) bool {
	if _, ok := target.(*RecipeError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ValidationError represents invalid input or state. Validation failures are
// always rejected locally with no state change.
//
// Example:
//
//	err := errors.NewValidationError("timer duration must be positive")
//	err = err.WithField("minutes").WithValue(0)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("timer", id)
//	fmt.Println(err) // "timer 'f3a1...' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry, such as a gateway failure.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var domainErr DomainError
	if As(err, &domainErr) {
		return domainErr.IsRetryable()
	}

	return Is(err, ErrDeductionFailed)
}

// IsUserFacing returns true if the error message is safe to display to end
// users verbatim.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var domainErr DomainError
	if As(err, &domainErr) {
		return domainErr.IsUserFacing()
	}

	var validation *ValidationError
	var notFound *NotFoundError
	return As(err, &validation) || As(err, &notFound)
}

// GetSeverity returns the severity level of the error. Unknown errors
// default to SeverityError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var domainErr DomainError
	if As(err, &domainErr) {
		return domainErr.Severity()
	}

	return SeverityError
}

// IsValidation returns true if the error is a validation failure.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}
	var v *ValidationError
	return As(err, &v) || Is(err, ErrInvalidInput)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to load recipe")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to load recipe %s", path)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
