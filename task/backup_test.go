package task

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"
)

func TestBackupName(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 45, 1, 0, time.Local)
	got := backupName("/data/tasks.json", now)
	if got != "tasks_20260830-154501.json" {
		t.Errorf("backupName = %q", got)
	}

	// Names sort chronologically.
	later := backupName("/data/tasks.json", now.Add(time.Hour))
	if !(got < later) {
		t.Errorf("backup names do not sort by time: %q vs %q", got, later)
	}
}

func TestBackupCreatedOnSave(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(Options{
		DataFile:      filepath.Join(dir, "tasks.json"),
		BackupEnabled: true,
	})

	// First save: no existing file, so no backup.
	if _, err := store.Add("one", AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if entries := backupEntries(t, store); len(entries) != 0 {
		t.Errorf("backups after first save = %d, want 0", len(entries))
	}

	// Second save: the previous file gets backed up.
	if _, err := store.Add("two", AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	entries := backupEntries(t, store)
	if len(entries) != 1 {
		t.Fatalf("backups after second save = %d, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0], "tasks_") || !strings.HasSuffix(entries[0], ".json") {
		t.Errorf("backup name = %q", entries[0])
	}
}

func TestBackupDisabled(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(Options{DataFile: filepath.Join(dir, "tasks.json")})

	if _, err := store.Add("one", AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add("two", AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := os.Stat(store.BackupDir()); !os.IsNotExist(err) {
		t.Errorf("backup dir exists with backups disabled")
	}
}

func TestBackupRotation(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(Options{
		DataFile:      filepath.Join(dir, "tasks.json"),
		BackupEnabled: true,
		BackupCount:   2,
	})
	if err := os.MkdirAll(store.BackupDir(), 0o755); err != nil {
		t.Fatal(err)
	}

	// Seed more timestamped backups than the retention count, plus a
	// foreign file that rotation must leave alone.
	seeded := []string{
		"tasks_20260101-000000.json",
		"tasks_20260102-000000.json",
		"tasks_20260103-000000.json",
		"tasks_20260104-000000.json",
	}
	for _, name := range seeded {
		if err := os.WriteFile(filepath.Join(store.BackupDir(), name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(store.BackupDir(), "notes.txt"), []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(store.DataFile(), []byte(`{"tasks": [], "next_id": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Add("trigger rotation", AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	entries := backupEntries(t, store)
	var backups []string
	keptForeign := false
	for _, name := range entries {
		if name == "notes.txt" {
			keptForeign = true
			continue
		}
		backups = append(backups, name)
	}
	if !keptForeign {
		t.Errorf("rotation deleted an unrelated file")
	}
	if len(backups) != 2 {
		t.Fatalf("backups after rotation = %d (%v), want 2", len(backups), backups)
	}

	// The survivors are the newest ones.
	sort.Strings(backups)
	if backups[0] != "tasks_20260104-000000.json" {
		t.Errorf("oldest surviving backup = %q, want the seeded newest", backups[0])
	}
}

func backupEntries(t *testing.T, store *Store) []string {
	t.Helper()
	entries, err := os.ReadDir(store.BackupDir())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
