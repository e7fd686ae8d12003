package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultBackupCount is the default backup retention limit.
const DefaultBackupCount = 5

// Options configures a Store.
type Options struct {
	// DataFile is the path to the backing store file.
	DataFile string

	// BackupEnabled copies the store file into the backup directory before
	// every save.
	BackupEnabled bool

	// BackupCount is the retention limit for backup files. Zero means
	// DefaultBackupCount.
	BackupCount int

	// Logger receives debug and warning output. If nil, logging is
	// discarded.
	Logger *log.Logger
}

// Store provides durable load/save of the task collection. Every mutation
// is an independent load-modify-save cycle; nothing is cached between
// calls, so sequential invocations of separate processes stay correct.
// Concurrent writers race (last save wins); that is an accepted property
// of the design, not something the store guards against.
type Store struct {
	dataFile      string
	backupEnabled bool
	backupCount   int
	logger        *log.Logger
}

// NewStore creates a store for the given options.
func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	backupCount := opts.BackupCount
	if backupCount <= 0 {
		backupCount = DefaultBackupCount
	}
	return &Store{
		dataFile:      opts.DataFile,
		backupEnabled: opts.BackupEnabled,
		backupCount:   backupCount,
		logger:        logger,
	}
}

// DataFile returns the path of the backing store file.
func (s *Store) DataFile() string {
	return s.dataFile
}

// Load reads the collection from disk.
//
// A missing file yields a fresh empty collection without writing anything.
// A file in the legacy v1 schema is migrated in memory. A file that cannot
// be parsed as any known schema yields a fresh empty collection together
// with a *CorruptedDataError; the damaged file is left untouched on disk
// until the next save, and the backup directory remains a manual recovery
// path.
func (s *Store) Load() (*Collection, error) {
	data, err := os.ReadFile(s.dataFile)
	if errors.Is(err, os.ErrNotExist) {
		return NewCollection(), nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.dataFile, Err: err}
	}

	col, err := decodeCollection(data)
	if err != nil {
		s.logger.Warn("store file is unreadable, starting fresh", "path", s.dataFile, "err", err)
		return NewCollection(), &CorruptedDataError{Path: s.dataFile, Err: err}
	}

	if col.Metadata.Version != SchemaVersion {
		s.logger.Debug("migrated store file", "path", s.dataFile, "from", col.Metadata.Version, "to", SchemaVersion)
	}

	return col, nil
}

// decodeCollection parses raw store bytes and normalizes them to the
// current schema. Schema detection and migration live in migrate.go.
func decodeCollection(data []byte) (*Collection, error) {
	var raw rawCollection
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return migrate(&raw)
}

// Save persists the collection, rotating backups first when enabled.
// The new content is written to a temporary file and atomically renamed
// over the store file, so a crash mid-write never leaves a truncated
// store. metadata.last_modified is refreshed before writing.
func (s *Store) Save(col *Collection) error {
	if s.backupEnabled {
		if err := s.backupCurrent(); err != nil {
			return err
		}
	}

	col.Metadata.LastModified = Now()
	if col.Metadata.Version == "" {
		col.Metadata.Version = SchemaVersion
	}

	data, err := json.MarshalIndent(col, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.dataFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "create dir", Path: dir, Err: err}
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(s.dataFile)+".tmp")
	if err != nil {
		return &StorageError{Op: "create temp file", Path: dir, Err: err}
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return &StorageError{Op: "write temp file", Path: name, Err: err}
	}

	if err := os.Rename(name, s.dataFile); err != nil {
		os.Remove(name)
		return &StorageError{Op: "rename", Path: s.dataFile, Err: err}
	}

	s.logger.Debug("saved store file", "path", s.dataFile, "tasks", len(col.Tasks))
	return nil
}
