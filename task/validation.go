package task

import (
	"strings"

	internalstrings "github.com/okeefe/tasker/internal/strings"
)

// ValidateDescription checks a trimmed description for emptiness and
// length. Returns the trimmed value.
func ValidateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", &ValidationError{Field: "description", Err: ErrEmptyDescription}
	}
	if len(trimmed) > MaxDescriptionLength {
		return "", &ValidationError{Field: "description", Err: ErrDescriptionTooLong}
	}
	return trimmed, nil
}

// ParseStatus normalizes and validates a status string.
func ParseStatus(value string) (Status, error) {
	status := Status(internalstrings.NormalizeLowerTrimSpace(value))
	if !status.IsValid() {
		return "", &ValidationError{Field: "status", Value: value, Err: ErrInvalidStatus}
	}
	return status, nil
}

// ParsePriority normalizes and validates a priority string. The empty
// string parses to PriorityNone.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeLowerTrimSpace(value))
	if !priority.IsValid() {
		return "", &ValidationError{Field: "priority", Value: value, Err: ErrInvalidPriority}
	}
	return priority, nil
}

// ParseDueDate validates an ISO date string. The empty string yields nil.
func ParseDueDate(value string) (*Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	date, err := ParseDate(value)
	if err != nil {
		return nil, &ValidationError{Field: "due_date", Value: value, Err: ErrInvalidDate}
	}
	return &date, nil
}

// NormalizeCategory trims a category and applies the default when empty.
func NormalizeCategory(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return DefaultCategory
	}
	return trimmed
}

// ValidateTask checks a task struct against the collection invariants.
func ValidateTask(t *Task) error {
	if t.ID < 1 {
		return &ValidationError{Field: "id", Err: ErrInvalidID}
	}
	if _, err := ValidateDescription(t.Description); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return &ValidationError{Field: "status", Value: string(t.Status), Err: ErrInvalidStatus}
	}
	if !t.Priority.IsValid() {
		return &ValidationError{Field: "priority", Value: string(t.Priority), Err: ErrInvalidPriority}
	}
	return nil
}
