// Package errors provides custom error types for the molmap system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the molmap system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidRecord indicates that a conformer record violates the
	// layout rules the pipeline depends on
	ErrInvalidRecord = errors.New("invalid record")

	// ErrUnmergeable indicates that two records cannot be combined
	ErrUnmergeable = errors.New("records cannot be merged")

	// ErrFateUnset indicates that a conformer reached aggregation without
	// a determined fate
	ErrFateUnset = errors.New("fate undefined")

	// ErrNoStartingTopology indicates that none of a conformer's bond
	// topologies is marked as the starting one
	ErrNoStartingTopology = errors.New("no starting topology")

	// ErrReadOnly indicates an attempt to modify a read-only store
	ErrReadOnly = errors.New("read only")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// InvalidRecordError represents a conformer record that violates layout rules
type InvalidRecordError struct {
	ConformerID int64
	Message     string
}

// Error implements the error interface
func (e *InvalidRecordError) Error() string {
	if e.ConformerID != 0 {
		return fmt.Sprintf("invalid record for conformer %d: %s", e.ConformerID, e.Message)
	}
	return fmt.Sprintf("invalid record: %s", e.Message)
}

// Is implements errors.Is support
func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// NewInvalidRecordError creates a new InvalidRecordError
func NewInvalidRecordError(conformerID int64, message string) *InvalidRecordError {
	return &InvalidRecordError{ConformerID: conformerID, Message: message}
}

// UnmergeableError represents two records that cannot be combined
type UnmergeableError struct {
	ConformerID int64
	Source      string // Classification shared by both records
	Message     string
}

// Error implements the error interface
func (e *UnmergeableError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("cannot merge two %s records for conformer %d: %s", e.Source, e.ConformerID, e.Message)
	}
	return fmt.Sprintf("cannot merge records for conformer %d: %s", e.ConformerID, e.Message)
}

// Is implements errors.Is support
func (e *UnmergeableError) Is(target error) bool {
	return target == ErrUnmergeable
}

// NewUnmergeableError creates a new UnmergeableError
func NewUnmergeableError(conformerID int64, source, message string) *UnmergeableError {
	return &UnmergeableError{ConformerID: conformerID, Source: source, Message: message}
}

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// InternalError represents an inconsistency that should never happen
type InternalError struct {
	Component string
	Message   string
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("internal error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

// NewInternalError creates a new InternalError
func NewInternalError(component, message string) *InternalError {
	return &InternalError{Component: component, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "jsonl", "yaml", etc.
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "delete", "open", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// StoreError represents an error during database operations
type StoreError struct {
	Operation string // "open", "insert", "query", "close"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("store error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("store error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(operation, path string, err error) *StoreError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &StoreError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidRecord checks if an error is an invalid record error
func IsInvalidRecord(err error) bool {
	return errors.Is(err, ErrInvalidRecord)
}

// IsUnmergeable checks if an error is an unmergeable records error
func IsUnmergeable(err error) bool {
	return errors.Is(err, ErrUnmergeable)
}

// IsFateUnset checks if an error is an undefined fate error
func IsFateUnset(err error) bool {
	return errors.Is(err, ErrFateUnset)
}

// IsNoStartingTopology checks if an error is a missing starting topology error
func IsNoStartingTopology(err error) bool {
	return errors.Is(err, ErrNoStartingTopology)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsReadOnly checks if an error is a read only store error
func IsReadOnly(err error) bool {
	return errors.Is(err, ErrReadOnly)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapStore wraps an error as a StoreError
func WrapStore(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewStoreError(operation, path, err)
}
