package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/okeefe/tasker/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var statsJSON bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	tasks, _, err := loadSnapshot()
	if err != nil {
		return err
	}

	report := task.Stats(tasks, time.Now())

	if statsJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Printf("Total tasks: %d\n", report.Total)
	if report.Total == 0 {
		return nil
	}

	fmt.Println("\nBy status:")
	for _, status := range task.ValidStatuses() {
		if b, ok := report.ByStatus[status]; ok {
			fmt.Printf("  %-12s %3d  (%.1f%%)\n", status, b.Count, b.Percent)
		}
	}

	fmt.Println("\nBy priority:")
	for _, priority := range []task.Priority{task.PriorityHigh, task.PriorityMedium, task.PriorityLow} {
		if b, ok := report.ByPriority[priority]; ok {
			fmt.Printf("  %-12s %3d  (%.1f%%)\n", priority, b.Count, b.Percent)
		}
	}
	if report.Unprioritized > 0 {
		fmt.Printf("  %-12s %3d\n", "unset", report.Unprioritized)
	}

	fmt.Println("\nBy category:")
	categories := make([]string, 0, len(report.ByCategory))
	for category := range report.ByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		b := report.ByCategory[category]
		fmt.Printf("  %-12s %3d  (%.1f%%)\n", category, b.Count, b.Percent)
	}

	fmt.Println("\nDue dates:")
	fmt.Printf("  overdue      %3d\n", report.Overdue)
	fmt.Printf("  due today    %3d\n", report.DueToday)
	fmt.Printf("  due in 7d    %3d\n", report.DueSoon)

	fmt.Println("\nLast 7 days:")
	fmt.Printf("  created      %3d\n", report.CreatedRecently)
	fmt.Printf("  completed    %3d\n", report.CompletedRecently)
	if report.Behind > 0 {
		fmt.Printf("  behind by    %3d\n", report.Behind)
	}

	fmt.Printf("\nCompletion rate: %.1f%%\n", report.CompletionRate)
	return nil
}
