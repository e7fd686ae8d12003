package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okeefe/tasker/internal/markdown"
	"github.com/okeefe/tasker/internal/ui"
	"github.com/okeefe/tasker/task"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	tasks, _, err := loadSnapshot()
	if err != nil {
		return err
	}

	var found *task.Task
	for i := range tasks {
		if tasks[i].ID == id {
			found = &tasks[i]
			break
		}
	}
	if found == nil {
		return &task.NotFoundError{ID: id}
	}

	if showJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(found)
	}

	now := time.Now()
	today := task.DateOf(now)
	color := useColor()

	fmt.Printf("Task %d\n\n", found.ID)
	fmt.Print(markdown.Render(terminalWidth(), found.Description))
	fmt.Println()
	fmt.Println()
	fmt.Printf("  Status:    %s\n", ui.StatusCell(found.Status, color))
	fmt.Printf("  Priority:  %s\n", ui.PriorityCell(found.Priority, color))
	fmt.Printf("  Category:  %s\n", found.Category)
	fmt.Printf("  Due:       %s\n", ui.DueDateCell(found.DueDate, today, color))
	fmt.Printf("  Created:   %s (%s)\n", found.CreatedAt.Format(task.TimestampLayout), ui.FormatTimeAgo(found.CreatedAt.Time, now))
	fmt.Printf("  Updated:   %s (%s)\n", found.UpdatedAt.Format(task.TimestampLayout), ui.FormatTimeAgo(found.UpdatedAt.Time, now))
	return nil
}

func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
