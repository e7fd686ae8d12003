// Package main implements the tasker CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okeefe/tasker/internal/config"
	"github.com/okeefe/tasker/task"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "tasker",
	Short:         "Tasker - track tasks from the command line",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagDataFile string
	flagVerbose  bool
	flagNoColor  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataFile, "data-file", "", "Path to the task store file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// newLogger builds the CLI logger. Warnings only unless --verbose.
func newLogger() *log.Logger {
	logger := log.New(os.Stderr)
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// openStore loads configuration and constructs the store. The --data-file
// flag wins over both config files and environment overrides.
func openStore() (*task.Store, *config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, nil, err
	}
	if flagDataFile != "" {
		cfg.DataFile = flagDataFile
	}

	store := task.NewStore(task.Options{
		DataFile:      cfg.DataFile,
		BackupEnabled: cfg.BackupEnabled,
		BackupCount:   cfg.BackupCount,
		Logger:        newLogger(),
	})
	return store, cfg, nil
}

// loadSnapshot opens the store and returns the current task snapshot.
// A corrupted store file degrades to an empty snapshot with a warning.
func loadSnapshot() ([]task.Task, *config.Config, error) {
	store, cfg, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	col, err := store.Load()
	if err != nil {
		if !errors.Is(err, task.ErrCorruptedData) {
			return nil, nil, err
		}
		// Load already logged the recovery; continue with the fresh
		// collection it returned.
	}
	return col.Snapshot(), cfg, nil
}

// useColor reports whether styled output should be emitted.
func useColor() bool {
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
