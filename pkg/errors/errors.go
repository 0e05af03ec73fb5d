// Package errors provides structured error handling for the togglekit widget kit.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a fatal construction-time configuration error,
	// such as a missing animation or one set up to repeat forever.
	KindConfig
	// KindInvalidOperation indicates a recoverable caller error, such as
	// committing a checked-value change while no transition is running.
	KindInvalidOperation
	// KindResource indicates an animation resource load or lookup failure.
	KindResource
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInvalidOperation:
		return "invalid-operation"
	case KindResource:
		return "resource"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors for use with the standard errors.Is.
var (
	// ErrConfig matches any KindConfig error.
	ErrConfig = stderrors.New("togglekit: invalid configuration")
	// ErrInvalidOperation matches any KindInvalidOperation error.
	ErrInvalidOperation = stderrors.New("togglekit: invalid operation")
	// ErrResource matches any KindResource error.
	ErrResource = stderrors.New("togglekit: resource error")
)

// ToggleError represents a structured error in togglekit.
type ToggleError struct {
	// Op is the operation that failed (e.g., "widgets.CommitCheckedChange").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToggleError) Unwrap() error {
	return e.Err
}

// Is reports whether e matches one of the package sentinels, so callers can
// test error categories with errors.Is without unwrapping the ToggleError.
func (e *ToggleError) Is(target error) bool {
	switch target {
	case ErrConfig:
		return e.Kind == KindConfig
	case ErrInvalidOperation:
		return e.Kind == KindInvalidOperation
	case ErrResource:
		return e.Kind == KindResource
	}
	return false
}

// New builds a ToggleError with the given operation, kind and message.
func New(op string, kind ErrorKind, format string, args ...any) *ToggleError {
	return &ToggleError{
		Op:        op,
		Kind:      kind,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// Wrap builds a ToggleError around an existing error.
func Wrap(op string, kind ErrorKind, err error) *ToggleError {
	return &ToggleError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "animation.StepTickers").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by togglekit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ToggleError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
