// Package errors provides error types and handling for Imagen AI workflow operations.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a workflow operation error with context about the operation that failed.
// It wraps the underlying error with additional context for better debugging.
type Error struct {
	// Op is the operation that failed (e.g., "upload", "startEditing", "waitForJob")
	Op string

	// Project is the project UUID (if applicable)
	Project string

	// File is the local path or remote file name involved (if applicable)
	File string

	// Err is the underlying error from the transport or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Project != "" && e.File != "" {
		return fmt.Sprintf("imagen.%s %s/%s: %v", e.Op, e.Project, e.File, e.Err)
	}
	if e.Project != "" {
		return fmt.Sprintf("imagen.%s project %s: %v", e.Op, e.Project, e.Err)
	}
	if e.File != "" {
		return fmt.Sprintf("imagen.%s file %s: %v", e.Op, e.File, e.Err)
	}
	return fmt.Sprintf("imagen.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithProject adds project context to an existing error.
func (e *Error) WithProject(project string) *Error {
	e.Project = project
	return e
}

// WithFile adds file context to an existing error.
func (e *Error) WithFile(file string) *Error {
	e.File = file
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewProjectError creates a new Error with project context.
func NewProjectError(op, project string, err error) *Error {
	return &Error{
		Op:      op,
		Project: project,
		Err:     err,
	}
}

// NewFileError creates a new Error with project and file context.
func NewFileError(op, project, file string, err error) *Error {
	return &Error{
		Op:      op,
		Project: project,
		File:    file,
		Err:     err,
	}
}

// Sentinel errors for common workflow failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrMissingAPIKey indicates that no API key was provided
	ErrMissingAPIKey = errors.New("imagen: missing API key")

	// ErrEmptyBatch indicates that a batch operation received no files
	ErrEmptyBatch = errors.New("imagen: empty file batch")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("imagen: invalid input")

	// ErrNoFilesUploaded indicates that every file in an upload batch failed,
	// leaving the remote project with nothing to edit
	ErrNoFilesUploaded = errors.New("imagen: no files uploaded")

	// ErrJobFailed indicates that a remote job reached its failed terminal state
	ErrJobFailed = errors.New("imagen: job failed")

	// ErrJobTimeout indicates that polling exceeded its deadline before the job
	// reached a terminal state
	ErrJobTimeout = errors.New("imagen: job timed out")

	// ErrRequestFailed indicates that an API call returned a non-success status
	ErrRequestFailed = errors.New("imagen: request failed")

	// ErrNotFound indicates that the requested remote resource does not exist
	ErrNotFound = errors.New("imagen: not found")

	// ErrFileNotFound indicates that a local file could not be read
	ErrFileNotFound = errors.New("imagen: file not found")
)

// ValidationError represents a configuration validation failure. It carries
// every violated rule so callers see the complete diagnosis at once rather
// than one violation per attempt.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("imagen: validation failed: %s", strings.Join(e.Violations, "; "))
}

// Unwrap marks every validation failure as invalid input.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a ValidationError from the collected violations.
func NewValidationError(violations ...string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// TransportError wraps an HTTP-level failure with the response context needed
// to debug it. StatusCode is zero when the request never produced a response.
type TransportError struct {
	StatusCode int
	Endpoint   string
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("imagen: %s returned %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("imagen: %s: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying error for error chain traversal.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsJobFailed checks if an error indicates a remote job failure.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsJobFailed(err error) bool {
	return errors.Is(err, ErrJobFailed)
}

// IsJobTimeout checks if an error indicates that polling timed out.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsJobTimeout(err error) bool {
	return errors.Is(err, ErrJobTimeout)
}

// IsNotFound checks if an error indicates a missing remote resource.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMissingAPIKey checks if an error indicates a missing API key.
func IsMissingAPIKey(err error) bool {
	return errors.Is(err, ErrMissingAPIKey)
}

// IsValidation checks if an error is a ValidationError or contains one in its chain.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTransport checks if an error is a TransportError or contains one in its chain.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
