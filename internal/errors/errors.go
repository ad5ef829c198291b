// Package errors classifies cat-facts-cli failures by severity.
// A recoverable error is logged and the run continues with defaults;
// a fatal error ends the run with a non-zero exit code.
package errors

import (
	"errors"
	"fmt"

	"github.com/kokjohn0824/cat-facts-cli/internal/i18n"
)

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityRecoverable marks an error the run can continue past
	SeverityRecoverable Severity = iota
	// SeverityFatal marks an error that ends the run
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityRecoverable:
		return "recoverable"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Error is a classified failure raised by one CLI operation
type Error struct {
	Op       string // Operation that failed
	Message  string // Human-readable message
	Err      error  // Underlying error
	severity Severity
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Severity reports how the caller must react to e
func (e *Error) Severity() Severity {
	return e.severity
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewRecoverable creates a new recoverable error
func NewRecoverable(op, message string, err error) *Error {
	return &Error{Op: op, Message: message, Err: err, severity: SeverityRecoverable}
}

// NewFatal creates a new fatal error
func NewFatal(op, message string, err error) *Error {
	return &Error{Op: op, Message: message, Err: err, severity: SeverityFatal}
}

// IsRecoverable checks if an error is recoverable
func IsRecoverable(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Severity() == SeverityRecoverable
	}
	return false
}

// IsFatal checks if an error is fatal.
// Errors that were never classified are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Severity() == SeverityFatal
	}
	return true
}

// ExitCode maps err to the process exit status
func ExitCode(err error) int {
	if IsFatal(err) {
		return 1
	}
	return 0
}

// ErrLoadConfig wraps a configuration failure; the CLI falls back to defaults
func ErrLoadConfig(err error) *Error {
	return NewRecoverable(i18n.ErrOpConfig, i18n.ErrMsgLoadConfig, err)
}

// ErrWriteOutput wraps a failure to write the greeting
func ErrWriteOutput(err error) *Error {
	return NewFatal(i18n.ErrOpOutput, i18n.ErrMsgWriteOutput, err)
}
