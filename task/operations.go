package task

import (
	"errors"
)

// AddOptions configures a new task.
type AddOptions struct {
	// Category groups the task. Defaults to "general" when empty.
	Category string

	// Priority is the importance level. PriorityNone leaves it unset.
	Priority Priority

	// DueDate is the optional day the task is due.
	DueDate *Date
}

// Add creates a new task with the given description, assigns it the next
// ID, and persists the collection.
func (s *Store) Add(description string, opts AddOptions) (*Task, error) {
	description, err := ValidateDescription(description)
	if err != nil {
		return nil, err
	}
	if !opts.Priority.IsValid() {
		return nil, &ValidationError{Field: "priority", Value: string(opts.Priority), Err: ErrInvalidPriority}
	}

	col, err := s.loadForMutation()
	if err != nil {
		return nil, err
	}

	now := Now()
	t := Task{
		ID:          col.NextID,
		Description: description,
		Status:      StatusTodo,
		Category:    NormalizeCategory(opts.Category),
		Priority:    opts.Priority,
		DueDate:     opts.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	col.Tasks = append(col.Tasks, t)
	col.NextID++

	if err := s.Save(col); err != nil {
		return nil, err
	}

	return &t, nil
}

// UpdateOptions configures fields to update on a task.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Description *string
	Category    *string
	Priority    *Priority
	DueDate     *Date

	// ClearDueDate removes the due date. Takes precedence over DueDate.
	ClearDueDate bool
}

func (o UpdateOptions) isEmpty() bool {
	return o.Description == nil && o.Category == nil && o.Priority == nil &&
		o.DueDate == nil && !o.ClearDueDate
}

// Update applies the given options to the task with the given ID and
// persists the collection. Returns the updated task. An update with no
// fields set is a no-op that still succeeds; updated_at only advances
// when something changed.
func (s *Store) Update(id int, opts UpdateOptions) (*Task, error) {
	if opts.Description != nil {
		trimmed, err := ValidateDescription(*opts.Description)
		if err != nil {
			return nil, err
		}
		opts.Description = &trimmed
	}
	if opts.Priority != nil && !opts.Priority.IsValid() {
		return nil, &ValidationError{Field: "priority", Value: string(*opts.Priority), Err: ErrInvalidPriority}
	}

	col, err := s.loadForMutation()
	if err != nil {
		return nil, err
	}

	t := col.Find(id)
	if t == nil {
		return nil, &NotFoundError{ID: id}
	}

	// Nothing to change: succeed without touching updated_at or the file.
	if opts.isEmpty() {
		unchanged := *t
		return &unchanged, nil
	}

	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Category != nil {
		t.Category = NormalizeCategory(*opts.Category)
	}
	if opts.Priority != nil {
		t.Priority = *opts.Priority
	}
	if opts.ClearDueDate {
		t.DueDate = nil
	} else if opts.DueDate != nil {
		t.DueDate = opts.DueDate
	}
	t.UpdatedAt = Now()

	if err := ValidateTask(t); err != nil {
		return nil, err
	}

	if err := s.Save(col); err != nil {
		return nil, err
	}

	updated := *t
	return &updated, nil
}

// Delete removes the task with the given ID and persists the collection.
// The ID is never reused. Returns the deleted task.
func (s *Store) Delete(id int) (*Task, error) {
	col, err := s.loadForMutation()
	if err != nil {
		return nil, err
	}

	for i := range col.Tasks {
		if col.Tasks[i].ID != id {
			continue
		}
		deleted := col.Tasks[i]
		col.Tasks = append(col.Tasks[:i], col.Tasks[i+1:]...)
		if err := s.Save(col); err != nil {
			return nil, err
		}
		return &deleted, nil
	}

	return nil, &NotFoundError{ID: id}
}

// Mark sets the status of the task with the given ID and persists the
// collection. Marking a task with its current status is a no-op that
// still succeeds; updated_at only advances when the status changes.
func (s *Store) Mark(id int, status Status) (*Task, error) {
	if !status.IsValid() {
		return nil, &ValidationError{Field: "status", Value: string(status), Err: ErrInvalidStatus}
	}

	col, err := s.loadForMutation()
	if err != nil {
		return nil, err
	}

	t := col.Find(id)
	if t == nil {
		return nil, &NotFoundError{ID: id}
	}

	if t.Status != status {
		t.Status = status
		t.UpdatedAt = Now()
		if err := s.Save(col); err != nil {
			return nil, err
		}
	}

	marked := *t
	return &marked, nil
}

// loadForMutation loads the collection, tolerating a corrupted store file.
// A corrupted file was already replaced by a fresh collection in Load; the
// mutation proceeds against that fresh collection and the next save takes
// a backup of the damaged file before overwriting it.
func (s *Store) loadForMutation() (*Collection, error) {
	col, err := s.Load()
	if err != nil && !errors.Is(err, ErrCorruptedData) {
		return nil, err
	}
	return col, nil
}
