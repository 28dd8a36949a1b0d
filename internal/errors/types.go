// Package errors provides the structured error type used across rfs.
//
// Every failure carries a Kind tag and the subject it concerns (a field name
// or a path). Message text is kept in a single table and produced by Format,
// so the scaffolding core only ever deals in kinds and subjects.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a category of failure.
type Kind string

const (
	KindEmptyInput              Kind = "empty_input"
	KindInvalidComponentPath    Kind = "invalid_component_path"
	KindInvalidFolderName       Kind = "invalid_folder_name"
	KindInvalidFileName         Kind = "invalid_file_name"
	KindInvalidStylesExtension  Kind = "invalid_styles_extension"
	KindNoWorkspaceFound        Kind = "no_workspace_found"
	KindMultipleWorkspacesFound Kind = "multiple_workspaces_found"
	KindPathNotFound            Kind = "path_not_found"
	KindFileAlreadyExists       Kind = "file_already_exists"
	KindFileCreationFailed      Kind = "file_creation_failed"
	KindDirectoryCreationFailed Kind = "directory_creation_failed"
	KindInternal                Kind = "internal"
)

// Severity controls how a failure is surfaced to the user.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// ScaffoldError is a structured error with a kind tag and subject.
type ScaffoldError struct {
	Kind        Kind
	Subject     string
	Cause       error
	Recoverable bool
}

// Error implements the error interface.
func (e *ScaffoldError) Error() string {
	msg := Format(e.Kind, e.Subject)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", strings.TrimSuffix(msg, "."), e.Cause)
	}

	return msg
}

// Unwrap returns the underlying cause error.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ScaffoldError of the same kind.
func (e *ScaffoldError) Is(target error) bool {
	var t *ScaffoldError
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}

	return false
}

// Severity reports how the error should be presented.
func (e *ScaffoldError) Severity() Severity {
	switch e.Kind {
	case KindNoWorkspaceFound, KindMultipleWorkspacesFound, KindFileAlreadyExists:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// New creates an error of the given kind about subject.
func New(kind Kind, subject string) *ScaffoldError {
	return &ScaffoldError{
		Kind:        kind,
		Subject:     subject,
		Recoverable: isRecoverableKind(kind),
	}
}

// Wrap creates an error of the given kind caused by cause.
func Wrap(kind Kind, subject string, cause error) *ScaffoldError {
	e := New(kind, subject)
	e.Cause = cause

	return e
}

func isRecoverableKind(kind Kind) bool {
	switch kind {
	case KindNoWorkspaceFound, KindMultipleWorkspacesFound, KindFileAlreadyExists:
		return true
	default:
		return false
	}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Kind
	}

	return KindInternal
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Recoverable
	}

	return false
}

// Helper constructors for the common cases.

func ErrEmptyInput() *ScaffoldError { return New(KindEmptyInput, "") }

func ErrInvalidComponentPath(path string) *ScaffoldError {
	return New(KindInvalidComponentPath, path)
}

func ErrInvalidFolderName(field string) *ScaffoldError { return New(KindInvalidFolderName, field) }

func ErrInvalidFileName(field string) *ScaffoldError { return New(KindInvalidFileName, field) }

func ErrInvalidStylesExtension(ext string) *ScaffoldError {
	return New(KindInvalidStylesExtension, ext)
}

func ErrFileAlreadyExists(path string) *ScaffoldError { return New(KindFileAlreadyExists, path) }

func ErrDirectoryCreationFailed(path string, cause error) *ScaffoldError {
	return Wrap(KindDirectoryCreationFailed, path, cause)
}

func ErrFileCreationFailed(path string, cause error) *ScaffoldError {
	return Wrap(KindFileCreationFailed, path, cause)
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// Notifier is the user-facing message sink.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}

// ErrorHandler provides centralized error reporting at the command boundary.
type ErrorHandler struct {
	logger   Logger
	notifier Notifier
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger, notifier Notifier) *ErrorHandler {
	return &ErrorHandler{
		logger:   logger,
		notifier: notifier,
	}
}

// Handle logs err and surfaces it through the notifier exactly once.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	severity := SeverityError
	var se *ScaffoldError
	if errors.As(err, &se) {
		severity = se.Severity()
	}

	if h.logger != nil {
		if severity == SeverityWarning {
			h.logger.Warn(ctx, err, "scaffolding warning", "kind", KindOf(err), "recoverable", IsRecoverable(err))
		} else {
			h.logger.Error(ctx, err, "scaffolding failed", "kind", KindOf(err), "recoverable", IsRecoverable(err))
		}
	}
	if h.notifier != nil {
		h.notifier.Notify(ctx, severity, err.Error())
	}
}
