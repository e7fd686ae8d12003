package task

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(Options{
		DataFile: filepath.Join(t.TempDir(), "tasks.json"),
	})
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)

	col, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(col.Tasks) != 0 {
		t.Errorf("tasks = %d, want 0", len(col.Tasks))
	}
	if col.NextID != 1 {
		t.Errorf("next_id = %d, want 1", col.NextID)
	}
	if col.Metadata.Version != SchemaVersion {
		t.Errorf("version = %q, want %q", col.Metadata.Version, SchemaVersion)
	}

	// Load must not create the file.
	if _, err := os.Stat(store.DataFile()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load created the store file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)

	added, err := store.Add("Round trip", AddOptions{Category: "work", Priority: PriorityHigh})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	due, _ := ParseDueDate("2030-01-15")
	if _, err := store.Add("With due date", AddOptions{DueDate: due}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	col, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(col.Tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(col.Tasks))
	}

	got := col.Find(added.ID)
	if got == nil {
		t.Fatalf("task %d missing after reload", added.ID)
	}
	if got.Description != "Round trip" || got.Category != "work" || got.Priority != PriorityHigh {
		t.Errorf("reloaded task = %+v", got)
	}
	if got.Status != StatusTodo {
		t.Errorf("status = %q, want todo", got.Status)
	}
	// Timestamps survive modulo microsecond wire precision.
	if got.CreatedAt.Format(TimestampLayout) != added.CreatedAt.Format(TimestampLayout) {
		t.Errorf("created_at changed across round trip: %v vs %v", got.CreatedAt, added.CreatedAt)
	}

	second := col.Find(2)
	if second == nil || second.DueDate == nil || second.DueDate.String() != "2030-01-15" {
		t.Errorf("due date lost across round trip: %+v", second)
	}
	if second.Priority != PriorityNone {
		t.Errorf("priority = %q, want unset", second.Priority)
	}
	if col.NextID != 3 {
		t.Errorf("next_id = %d, want 3", col.NextID)
	}
}

func TestLoadCorruptedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "this is not json"},
		{"json array", `["a","b"]`},
		{"tasks wrong type", `{"tasks": "nope", "next_id": 1}`},
		{"task missing description", `{"tasks": [{"id": 1, "status": "todo", "createdAt": "2026-01-01 00:00:00.000000", "updatedAt": "2026-01-01 00:00:00.000000"}], "next_id": 2}`},
		{"duplicate ids", `{"tasks": [
			{"id": 1, "description": "a", "status": "todo", "createdAt": "2026-01-01 00:00:00.000000", "updatedAt": "2026-01-01 00:00:00.000000"},
			{"id": 1, "description": "b", "status": "todo", "createdAt": "2026-01-01 00:00:00.000000", "updatedAt": "2026-01-01 00:00:00.000000"}
		], "next_id": 2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if err := os.WriteFile(store.DataFile(), []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}

			col, err := store.Load()
			if !errors.Is(err, ErrCorruptedData) {
				t.Errorf("Load = %v, want ErrCorruptedData", err)
			}
			var corrupted *CorruptedDataError
			if !errors.As(err, &corrupted) {
				t.Errorf("error is not a *CorruptedDataError: %v", err)
			}
			if col == nil || len(col.Tasks) != 0 || col.NextID != 1 {
				t.Errorf("corrupted load did not return a fresh collection: %+v", col)
			}

			// The damaged file must be left untouched.
			data, readErr := os.ReadFile(store.DataFile())
			if readErr != nil {
				t.Fatal(readErr)
			}
			if string(data) != tt.content {
				t.Errorf("corrupted file was modified on load")
			}
		})
	}
}

func TestSaveRefreshesLastModified(t *testing.T) {
	store := newTestStore(t)

	col := NewCollection()
	before := col.Metadata.LastModified
	if err := store.Save(col); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if col.Metadata.LastModified.Before(before.Time) {
		t.Errorf("last_modified went backwards")
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Metadata.Version != SchemaVersion {
		t.Errorf("version = %q, want %q", reloaded.Metadata.Version, SchemaVersion)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store := NewStore(Options{DataFile: filepath.Join(t.TempDir(), "tasks.json")})

	if _, err := store.Add("one", AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(store.DataFile()))
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if entry.Name() != filepath.Base(store.DataFile()) {
			t.Errorf("unexpected file after save: %s", entry.Name())
		}
	}
}

func TestSaveStorageError(t *testing.T) {
	dir := t.TempDir()
	// Point the store at a path whose parent is a regular file so MkdirAll
	// and the temp-file create both fail.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewStore(Options{DataFile: filepath.Join(blocker, "tasks.json")})

	err := store.Save(NewCollection())
	if !errors.Is(err, ErrStorage) {
		t.Errorf("Save = %v, want ErrStorage", err)
	}
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Errorf("error is not a *StorageError: %v", err)
	}
}
