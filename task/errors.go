package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDescription is returned when a task description is empty
	// after trimming.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrDescriptionTooLong is returned when a description exceeds
	// MaxDescriptionLength.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDate is returned when a due date does not parse as
	// YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidSortField is returned when sorting by an unknown field.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrInvalidID is returned when a task carries a non-positive ID.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrTaskNotFound is returned when a task with the given ID doesn't
	// exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrCorruptedData is returned when the store file cannot be parsed as
	// any known schema.
	ErrCorruptedData = errors.New("store file is corrupted")

	// ErrStorage is returned when the file system fails during load or
	// save.
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports invalid input, carrying the offending field and
// value.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s: %q", e.Field, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a missing task by ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// Is matches ErrTaskNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTaskNotFound
}

// StorageError reports a file system failure during a store operation.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is matches ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// CorruptedDataError reports a store file that could not be parsed as any
// known schema. The file on disk is left untouched.
type CorruptedDataError struct {
	Path string
	Err  error
}

func (e *CorruptedDataError) Error() string {
	return fmt.Sprintf("corrupted store file %s: %s", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *CorruptedDataError) Unwrap() error {
	return e.Err
}

// Is matches ErrCorruptedData.
func (e *CorruptedDataError) Is(target error) bool {
	return target == ErrCorruptedData
}
