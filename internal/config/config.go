// Package config handles loading tasker.toml configuration files.
//
// Configuration is merged from three layers, later layers winning per key:
// the global ~/.config/tasker/config.toml, a tasker.toml in the working
// directory, and TASKER_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/okeefe/tasker/internal/paths"
)

// Defaults for unset keys.
const (
	DefaultBackupCount  = 5
	DefaultTasksPerPage = 20
)

// Config represents the tasker.toml configuration file.
type Config struct {
	// DataFile is the path to the backing store file.
	DataFile string `toml:"data-file"`

	// BackupEnabled controls whether saves take a backup first.
	BackupEnabled bool `toml:"backup-enabled"`

	// BackupCount is the backup retention limit.
	BackupCount int `toml:"backup-count"`

	// TasksPerPage is a display paging hint for the CLI.
	TasksPerPage int `toml:"tasks-per-page"`
}

// FileName is the project-local configuration file name.
const FileName = "tasker.toml"

// Load loads configuration from the global config file, the working
// directory, and the environment. Missing files are not an error.
func Load(workDir string) (*Config, error) {
	cfg := &Config{
		BackupEnabled: true,
		BackupCount:   DefaultBackupCount,
		TasksPerPage:  DefaultTasksPerPage,
	}

	globalPath, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg, globalPath); err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg, filepath.Join(workDir, FileName)); err != nil {
		return nil, err
	}
	applyEnv(cfg)

	if cfg.DataFile == "" {
		dataFile, err := paths.DefaultDataFile()
		if err != nil {
			return nil, err
		}
		cfg.DataFile = dataFile
	}
	if cfg.BackupCount < 1 {
		cfg.BackupCount = DefaultBackupCount
	}
	if cfg.TasksPerPage < 1 {
		cfg.TasksPerPage = DefaultTasksPerPage
	}

	return cfg, nil
}

// applyConfigFile overlays keys defined in the file at path onto cfg.
// Keys the file doesn't define keep their current values.
func applyConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fileCfg Config
	meta, err := toml.Decode(string(data), &fileCfg)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if meta.IsDefined("data-file") {
		cfg.DataFile = fileCfg.DataFile
	}
	if meta.IsDefined("backup-enabled") {
		cfg.BackupEnabled = fileCfg.BackupEnabled
	}
	if meta.IsDefined("backup-count") {
		cfg.BackupCount = fileCfg.BackupCount
	}
	if meta.IsDefined("tasks-per-page") {
		cfg.TasksPerPage = fileCfg.TasksPerPage
	}

	return nil
}

// applyEnv overlays TASKER_* environment variables. Unparseable values are
// ignored, matching the tolerant config behavior elsewhere.
func applyEnv(cfg *Config) {
	if value := os.Getenv("TASKER_DATA_FILE"); value != "" {
		cfg.DataFile = value
	}
	if value := os.Getenv("TASKER_BACKUP_ENABLED"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			cfg.BackupEnabled = parsed
		}
	}
	if value := os.Getenv("TASKER_BACKUP_COUNT"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			cfg.BackupCount = parsed
		}
	}
	if value := os.Getenv("TASKER_TASKS_PER_PAGE"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			cfg.TasksPerPage = parsed
		}
	}
}
