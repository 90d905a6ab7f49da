// Package errors provides structured error handling for hoist and its widget host.
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
	// KindScope indicates a widget was used outside of the scope it requires.
	KindScope
	// KindConfig indicates a configuration or scenario loading failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a build-time widget error.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindScope:
		return "scope"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by the framework.
type Error struct {
	// Op is the operation that failed (e.g., "scenario.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingScopeError is raised when a widget that needs an enclosing provider
// is mounted without one. It is an integration error and is never recovered
// into an error widget; see [IsFatal].
type MissingScopeError struct {
	// Widget is the widget that looked for the scope (e.g., "Slot", "Hoist").
	Widget string
	// Provider names the provider that was expected above it.
	Provider string
}

func (e *MissingScopeError) Error() string {
	return fmt.Sprintf("hoist: %s used outside of its Provider (component %q); wrap the tree with %s.Provider",
		e.Widget, e.Provider, e.Provider)
}

// Fatal marks the error as one that must propagate to the top level.
func (e *MissingScopeError) Fatal() bool { return true }

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "outline.Render").
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

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// fatal is implemented by errors that must never be swallowed.
type fatal interface {
	Fatal() bool
}

// IsFatal reports whether a recovered panic value (or an error chain) carries
// an error that must propagate instead of being replaced by a placeholder.
func IsFatal(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var f fatal
	return stderrors.As(err, &f) && f.Fatal()
}

// AsError converts a recovered panic value into an error, keeping error
// values intact so callers can use errors.As on them.
func AsError(op string, v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Op: op, Value: v, Timestamp: time.Now()}
}

// ErrorHandler receives errors reported by the framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
