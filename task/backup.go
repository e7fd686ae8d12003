package task

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupDirName is the backup directory, a sibling of the store file.
const BackupDirName = "backups"

// BackupDir returns the directory backup copies are written to.
func (s *Store) BackupDir() string {
	return filepath.Join(filepath.Dir(s.dataFile), BackupDirName)
}

// backupCurrent copies the on-disk store file into the backup directory
// under a timestamped name, then prunes old backups down to the retention
// count. A missing store file (first save) is not an error.
func (s *Store) backupCurrent() error {
	src, err := os.Open(s.dataFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &StorageError{Op: "open", Path: s.dataFile, Err: err}
	}
	defer src.Close()

	dir := s.BackupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "create backup dir", Path: dir, Err: err}
	}

	name := backupName(s.dataFile, time.Now())
	dstPath := filepath.Join(dir, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		return &StorageError{Op: "create backup", Path: dstPath, Err: err}
	}
	_, err = io.Copy(dst, src)
	if err1 := dst.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(dstPath)
		return &StorageError{Op: "write backup", Path: dstPath, Err: err}
	}

	s.logger.Debug("wrote backup", "path", dstPath)
	return s.pruneBackups()
}

// backupName encodes a second-granularity sortable timestamp, e.g.
// tasks_20260830-154501.json.
func backupName(dataFile string, now time.Time) string {
	base := filepath.Base(dataFile)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s%s", stem, now.Format("20060102-150405"), ext)
}

// pruneBackups deletes the oldest backups (by filename, which sorts by
// timestamp) until at most backupCount remain.
func (s *Store) pruneBackups() error {
	dir := s.BackupDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return &StorageError{Op: "read backup dir", Path: dir, Err: err}
	}

	base := filepath.Base(s.dataFile)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "_"

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ext) {
			names = append(names, name)
		}
	}

	if len(names) <= s.backupCount {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-s.backupCount] {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			return &StorageError{Op: "remove backup", Path: path, Err: err}
		}
		s.logger.Debug("pruned backup", "path", path)
	}

	return nil
}
