package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/okeefe/tasker/task"
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addCategory string
	addPriority string
	addDueDate  string
)

var updateCmd = &cobra.Command{
	Use:   "update <id> [description]",
	Short: "Update a task",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runUpdate,
}

var (
	updateCategory     string
	updatePriority     string
	updateDueDate      string
	updateClearDueDate bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var markInProgressCmd = &cobra.Command{
	Use:   "mark-in-progress <id>",
	Short: "Mark a task as in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(args[0], task.StatusInProgress)
	},
}

var markDoneCmd = &cobra.Command{
	Use:   "mark-done <id>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMark(args[0], task.StatusDone)
	},
}

func init() {
	rootCmd.AddCommand(addCmd, updateCmd, deleteCmd, markInProgressCmd, markDoneCmd)

	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (default \"general\")")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addDueDate, "due", "d", "", "Due date (YYYY-MM-DD)")

	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "New category")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority (low, medium, high)")
	updateCmd.Flags().StringVarP(&updateDueDate, "due", "d", "", "New due date (YYYY-MM-DD)")
	updateCmd.Flags().BoolVar(&updateClearDueDate, "clear-due", false, "Remove the due date")

	addFilterFlagAliases(addCmd, updateCmd)
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("task ID must be a positive number, got %q", arg)
	}
	return id, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	priority, err := task.ParsePriority(addPriority)
	if err != nil {
		return err
	}
	due, err := task.ParseDueDate(addDueDate)
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	created, err := store.Add(args[0], task.AddOptions{
		Category: addCategory,
		Priority: priority,
		DueDate:  due,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Task added successfully (ID: %d)\n", created.ID)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	var opts task.UpdateOptions
	if len(args) > 1 {
		opts.Description = &args[1]
	}
	if cmd.Flags().Changed("category") {
		opts.Category = &updateCategory
	}
	if cmd.Flags().Changed("priority") {
		priority, err := task.ParsePriority(updatePriority)
		if err != nil {
			return err
		}
		opts.Priority = &priority
	}
	if updateClearDueDate {
		opts.ClearDueDate = true
	} else if cmd.Flags().Changed("due") {
		due, err := task.ParseDueDate(updateDueDate)
		if err != nil {
			return err
		}
		opts.DueDate = due
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	if _, err := store.Update(id, opts); err != nil {
		return err
	}

	fmt.Printf("Task %d updated successfully.\n", id)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	if _, err := store.Delete(id); err != nil {
		return err
	}

	fmt.Printf("Task %d deleted successfully.\n", id)
	return nil
}

func runMark(arg string, status task.Status) error {
	id, err := parseTaskID(arg)
	if err != nil {
		return err
	}

	store, _, err := openStore()
	if err != nil {
		return err
	}

	if _, err := store.Mark(id, status); err != nil {
		return err
	}

	fmt.Printf("Task %d marked as %s.\n", id, status)
	return nil
}
