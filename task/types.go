// Package task implements a file-backed personal task tracker.
//
// Tasks live in a single JSON store file together with a monotonic ID
// counter and schema metadata. The Store owns persistence: every mutation
// is an independent load-modify-save cycle with an atomic file replace and
// optional rotating backups. Query helpers (Filter, Search, Sort, Stats)
// are pure functions over an in-memory snapshot.
//
// The public API mirrors the CLI commands:
//   - Add, Update, Delete, Mark for the task lifecycle
//   - Load for snapshots
//   - Filter, Search, Sort, Stats for querying
package task

// Status represents the state of a task.
type Status string

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = "todo"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in-progress"

	// StatusDone indicates the task is complete.
	StatusDone Status = "done"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// StatusRank returns the sort rank for a status: todo < in-progress < done.
func StatusRank(s Status) int {
	switch s {
	case StatusTodo:
		return 0
	case StatusInProgress:
		return 1
	case StatusDone:
		return 2
	default:
		return 3
	}
}

// Priority represents the importance of a task. The zero value means the
// task has no priority set.
type Priority string

const (
	// PriorityNone is the unset priority.
	PriorityNone Priority = ""

	// PriorityLow marks a low-importance task.
	PriorityLow Priority = "low"

	// PriorityMedium marks a normal-importance task.
	PriorityMedium Priority = "medium"

	// PriorityHigh marks a high-importance task.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid non-empty priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value. The empty
// priority is valid: it means unset.
func (p Priority) IsValid() bool {
	if p == PriorityNone {
		return true
	}
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// IsSet returns true when the priority has a value.
func (p Priority) IsSet() bool {
	return p != PriorityNone
}

// PriorityRank returns the sort rank for a priority: low < medium < high.
// Unset priorities rank after all set ones.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 3
	}
}

// DefaultCategory is assigned to tasks created without a category.
const DefaultCategory = "general"

// MaxDescriptionLength is the maximum allowed length for a task description.
const MaxDescriptionLength = 1000
