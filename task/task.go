package task

// Task represents a single tracked task.
type Task struct {
	// ID is a positive integer, unique within the collection and never
	// reused after deletion.
	ID int `json:"id"`

	// Description is the task text (max 1000 chars, never empty).
	Description string `json:"description"`

	// Status is the current state of the task.
	Status Status `json:"status"`

	// Category groups related tasks. Defaults to "general".
	Category string `json:"category"`

	// Priority is the importance level, empty when unset.
	Priority Priority `json:"priority,omitempty"`

	// DueDate is the optional day the task is due.
	DueDate *Date `json:"due_date,omitempty"`

	// CreatedAt is when the task was created.
	CreatedAt Timestamp `json:"createdAt"`

	// UpdatedAt is when the task was last modified. Equal to CreatedAt at
	// birth, refreshed on every mutation.
	UpdatedAt Timestamp `json:"updatedAt"`
}

// Metadata describes the collection itself.
type Metadata struct {
	// Version is the schema version tag of the store file.
	Version string `json:"version"`

	// Created is when the collection was first persisted.
	Created Timestamp `json:"created"`

	// LastModified is refreshed on every save.
	LastModified Timestamp `json:"last_modified"`
}

// Collection is the full set of tasks plus the ID counter and metadata.
type Collection struct {
	Tasks    []Task   `json:"tasks"`
	NextID   int      `json:"next_id"`
	Metadata Metadata `json:"metadata"`
}

// SchemaVersion is the current store file schema.
const SchemaVersion = "2.0"

// NewCollection returns an empty collection at the current schema version.
func NewCollection() *Collection {
	now := Now()
	return &Collection{
		Tasks:  nil,
		NextID: 1,
		Metadata: Metadata{
			Version:      SchemaVersion,
			Created:      now,
			LastModified: now,
		},
	}
}

// Find returns the task with the given ID, or nil.
func (c *Collection) Find(id int) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i]
		}
	}
	return nil
}

// Snapshot returns a copy of the task slice so callers can filter and sort
// without mutating the collection.
func (c *Collection) Snapshot() []Task {
	out := make([]Task, len(c.Tasks))
	copy(out, c.Tasks)
	return out
}
