package task

import (
	"sort"
	"strings"
	"time"

	internalstrings "github.com/okeefe/tasker/internal/strings"
)

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now

// DueSoonDays is the inclusive due-soon window, in days from today.
const DueSoonDays = 7

// Criteria selects tasks. Absent fields impose no constraint; present
// fields compose by logical AND.
type Criteria struct {
	// Status filters by exact status match.
	Status *Status

	// Category filters by case-insensitive exact category match.
	Category *string

	// Priority filters by exact priority match.
	Priority *Priority

	// DueSoon selects tasks due on or before today+7 days. Tasks with no
	// due date never match; neither do done tasks whose due date has
	// already passed.
	DueSoon bool

	// Today anchors the due-soon window. Zero means the current date.
	Today Date
}

func (c Criteria) validate() error {
	if c.Status != nil && !c.Status.IsValid() {
		return &ValidationError{Field: "status", Value: string(*c.Status), Err: ErrInvalidStatus}
	}
	if c.Priority != nil && (!c.Priority.IsValid() || !c.Priority.IsSet()) {
		return &ValidationError{Field: "priority", Value: string(*c.Priority), Err: ErrInvalidPriority}
	}
	return nil
}

func (c Criteria) today() Date {
	if (c.Today == Date{}) {
		return DateOf(timeNow())
	}
	return c.Today
}

func (c Criteria) matches(t *Task, today Date) bool {
	if c.Status != nil && t.Status != *c.Status {
		return false
	}
	if c.Category != nil && !strings.EqualFold(t.Category, *c.Category) {
		return false
	}
	if c.Priority != nil && t.Priority != *c.Priority {
		return false
	}
	if c.DueSoon {
		if t.DueDate == nil {
			return false
		}
		if today.DaysUntil(*t.DueDate) > DueSoonDays {
			return false
		}
		if t.DueDate.Before(today) && t.Status == StatusDone {
			return false
		}
	}
	return true
}

// Filter returns the tasks matching the criteria, preserving input order.
func Filter(tasks []Task, criteria Criteria) ([]Task, error) {
	if err := criteria.validate(); err != nil {
		return nil, err
	}

	today := criteria.today()
	var result []Task
	for i := range tasks {
		if criteria.matches(&tasks[i], today) {
			result = append(result, tasks[i])
		}
	}
	return result, nil
}

// Search returns the tasks whose description contains the query
// (case-insensitive), narrowed by the criteria. An empty query matches
// every task.
func Search(tasks []Task, query string, criteria Criteria) ([]Task, error) {
	if err := criteria.validate(); err != nil {
		return nil, err
	}

	query = internalstrings.NormalizeLowerTrimSpace(query)
	today := criteria.today()
	var result []Task
	for i := range tasks {
		if query != "" && !strings.Contains(strings.ToLower(tasks[i].Description), query) {
			continue
		}
		if !criteria.matches(&tasks[i], today) {
			continue
		}
		result = append(result, tasks[i])
	}
	return result, nil
}

// SortField names a task field to sort by.
type SortField string

const (
	SortByID          SortField = "id"
	SortByDescription SortField = "description"
	SortByStatus      SortField = "status"
	SortByPriority    SortField = "priority"
	SortByCategory    SortField = "category"
	SortByCreatedAt   SortField = "created_at"
	SortByUpdatedAt   SortField = "updated_at"
	SortByDueDate     SortField = "due_date"
)

// ValidSortFields returns all recognized sort fields.
func ValidSortFields() []SortField {
	return []SortField{
		SortByID, SortByDescription, SortByStatus, SortByPriority,
		SortByCategory, SortByCreatedAt, SortByUpdatedAt, SortByDueDate,
	}
}

// IsValid returns true if the sort field is recognized.
func (f SortField) IsValid() bool {
	for _, valid := range ValidSortFields() {
		if f == valid {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of the tasks. Status and priority order by
// domain rank rather than lexically. Reverse flips the whole ordering,
// except that tasks without a due date always sort after tasks with one
// when sorting by due date. The sort is stable.
func Sort(tasks []Task, field SortField, reverse bool) ([]Task, error) {
	if !field.IsValid() {
		return nil, &ValidationError{Field: "sort", Value: string(field), Err: ErrInvalidSortField}
	}

	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]
		if field == SortByDueDate {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false // unscheduled always sorts last
			case b.DueDate == nil:
				return true
			}
		}
		cmp := compareField(a, b, field)
		if reverse {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted, nil
}

func compareField(a, b *Task, field SortField) int {
	switch field {
	case SortByID:
		return compareInt(a.ID, b.ID)
	case SortByDescription:
		return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	case SortByStatus:
		return compareInt(StatusRank(a.Status), StatusRank(b.Status))
	case SortByPriority:
		return compareInt(PriorityRank(a.Priority), PriorityRank(b.Priority))
	case SortByCategory:
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case SortByCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt.Time)
	case SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt.Time)
	case SortByDueDate:
		return a.DueDate.Compare(*b.DueDate)
	default:
		return 0
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
