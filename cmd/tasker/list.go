package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okeefe/tasker/task"
)

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search task descriptions",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	listStatus   string
	listCategory string
	listPriority string
	listDueSoon  bool
	listSort     string
	listReverse  bool
	listAll      bool
	listPage     int
	listJSON     bool
)

func init() {
	rootCmd.AddCommand(listCmd, searchCmd)

	for _, cmd := range []*cobra.Command{listCmd, searchCmd} {
		cmd.Flags().StringVarP(&listStatus, "status", "s", "", "Filter by status (todo, in-progress, done)")
		cmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category")
		cmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority (low, medium, high)")
		cmd.Flags().BoolVar(&listDueSoon, "due-soon", false, "Only tasks due within 7 days (or overdue and not done)")
		cmd.Flags().StringVar(&listSort, "sort", "", "Sort by field (id, description, status, priority, category, created_at, updated_at, due_date)")
		cmd.Flags().BoolVarP(&listReverse, "reverse", "r", false, "Reverse sort order")
		cmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show all tasks, ignoring the page size")
		cmd.Flags().IntVar(&listPage, "page", 1, "Page of results to show")
		cmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	}
	addFilterFlagAliases(listCmd, searchCmd)
}

// buildCriteria assembles filter criteria from the shared list flags.
func buildCriteria(statusArg string) (task.Criteria, error) {
	var criteria task.Criteria

	statusValue := listStatus
	if statusArg != "" {
		statusValue = statusArg
	}
	if statusValue != "" {
		status, err := task.ParseStatus(statusValue)
		if err != nil {
			return criteria, err
		}
		criteria.Status = &status
	}
	if listCategory != "" {
		criteria.Category = &listCategory
	}
	if listPriority != "" {
		priority, err := task.ParsePriority(listPriority)
		if err != nil {
			return criteria, err
		}
		criteria.Priority = &priority
	}
	criteria.DueSoon = listDueSoon
	return criteria, nil
}

func runList(cmd *cobra.Command, args []string) error {
	statusArg := ""
	if len(args) > 0 {
		statusArg = args[0]
	}
	criteria, err := buildCriteria(statusArg)
	if err != nil {
		return err
	}

	tasks, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}

	filtered, err := task.Filter(tasks, criteria)
	if err != nil {
		return err
	}

	return outputTasks(filtered, cfg.TasksPerPage)
}

func runSearch(cmd *cobra.Command, args []string) error {
	criteria, err := buildCriteria("")
	if err != nil {
		return err
	}

	tasks, cfg, err := loadSnapshot()
	if err != nil {
		return err
	}

	matched, err := task.Search(tasks, args[0], criteria)
	if err != nil {
		return err
	}

	return outputTasks(matched, cfg.TasksPerPage)
}

// outputTasks sorts, pages, and prints a task sequence.
func outputTasks(tasks []task.Task, perPage int) error {
	if listSort != "" {
		sorted, err := task.Sort(tasks, task.SortField(listSort), listReverse)
		if err != nil {
			return err
		}
		tasks = sorted
	} else if listReverse {
		sorted, err := task.Sort(tasks, task.SortByID, true)
		if err != nil {
			return err
		}
		tasks = sorted
	}

	total := len(tasks)
	if !listAll && !listJSON {
		tasks = pageOf(tasks, listPage, perPage)
	}

	if listJSON {
		if tasks == nil {
			tasks = []task.Task{}
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(tasks)
	}

	if total == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	fmt.Print(renderTaskTable(tasks, useColor()))
	if len(tasks) < total {
		fmt.Printf("\nShowing %d of %d task(s); use --page or --all for more.\n", len(tasks), total)
	} else {
		fmt.Printf("\nTotal: %d task(s)\n", total)
	}
	return nil
}

func pageOf(tasks []task.Task, page, perPage int) []task.Task {
	if perPage < 1 {
		return tasks
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(tasks) {
		return nil
	}
	end := start + perPage
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end]
}
