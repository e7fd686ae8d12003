package task

import (
	"fmt"
)

// rawCollection is the loosely-typed on-disk shape. Pointer fields
// distinguish "absent" from zero values so schema detection can run before
// anything is backfilled.
type rawCollection struct {
	Tasks    []rawTask `json:"tasks"`
	NextID   *int      `json:"next_id"`
	Metadata *Metadata `json:"metadata"`
}

type rawTask struct {
	ID          *int    `json:"id"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"due_date"`
	CreatedAt   *string `json:"createdAt"`
	UpdatedAt   *string `json:"updatedAt"`
}

// migrate normalizes a decoded store file to the current in-memory shape.
//
// Files without metadata (or with a v1 version tag) are upgraded: category
// defaults to "general", priority and due date stay unset, and the version
// tag becomes SchemaVersion. Version tags are never downgraded. Records
// that don't satisfy the task schema produce an error, which Load reports
// as a corrupted-file condition.
func migrate(raw *rawCollection) (*Collection, error) {
	col := &Collection{}

	if raw.Metadata != nil {
		col.Metadata = *raw.Metadata
	}
	if isLegacyVersion(col.Metadata.Version) {
		now := Now()
		col.Metadata.Version = SchemaVersion
		if col.Metadata.Created.IsZero() {
			col.Metadata.Created = now
		}
		if col.Metadata.LastModified.IsZero() {
			col.Metadata.LastModified = now
		}
	}

	seen := make(map[int]bool, len(raw.Tasks))
	maxID := 0
	for i := range raw.Tasks {
		t, err := migrateTask(&raw.Tasks[i])
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = true
		if t.ID > maxID {
			maxID = t.ID
		}
		col.Tasks = append(col.Tasks, t)
	}

	// next_id must stay strictly greater than every ID ever issued; repair
	// it when the file disagrees.
	col.NextID = 1
	if raw.NextID != nil {
		col.NextID = *raw.NextID
	}
	if col.NextID <= maxID {
		col.NextID = maxID + 1
	}
	if col.NextID < 1 {
		col.NextID = 1
	}

	return col, nil
}

func isLegacyVersion(version string) bool {
	switch version {
	case "", "1", "1.0":
		return true
	default:
		return false
	}
}

func migrateTask(raw *rawTask) (Task, error) {
	var t Task

	if raw.ID == nil || *raw.ID < 1 {
		return t, fmt.Errorf("missing or invalid id")
	}
	t.ID = *raw.ID

	if raw.Description == nil {
		return t, fmt.Errorf("missing description")
	}
	description, err := ValidateDescription(*raw.Description)
	if err != nil {
		return t, err
	}
	t.Description = description

	if raw.Status == nil {
		return t, fmt.Errorf("missing status")
	}
	status, err := ParseStatus(*raw.Status)
	if err != nil {
		return t, err
	}
	t.Status = status

	// v1 records lack category, priority, and due_date; backfill here so
	// downstream code never re-checks field presence.
	if raw.Category != nil {
		t.Category = NormalizeCategory(*raw.Category)
	} else {
		t.Category = DefaultCategory
	}

	if raw.Priority != nil {
		priority, err := ParsePriority(*raw.Priority)
		if err != nil {
			return t, err
		}
		t.Priority = priority
	}

	if raw.DueDate != nil && *raw.DueDate != "" {
		due, err := ParseDueDate(*raw.DueDate)
		if err != nil {
			return t, err
		}
		t.DueDate = due
	}

	if raw.CreatedAt == nil {
		return t, fmt.Errorf("missing createdAt")
	}
	created, err := parseTimestamp(*raw.CreatedAt)
	if err != nil {
		return t, err
	}
	t.CreatedAt = NewTimestamp(created)

	if raw.UpdatedAt == nil {
		return t, fmt.Errorf("missing updatedAt")
	}
	updated, err := parseTimestamp(*raw.UpdatedAt)
	if err != nil {
		return t, err
	}
	t.UpdatedAt = NewTimestamp(updated)

	// updated_at >= created_at always holds in memory.
	if t.UpdatedAt.Before(t.CreatedAt.Time) {
		t.UpdatedAt = t.CreatedAt
	}

	return t, nil
}
