package main

import (
	"strconv"
	"time"

	"github.com/okeefe/tasker/internal/ui"
	"github.com/okeefe/tasker/task"
)

var taskTableHeaders = []string{"ID", "DESCRIPTION", "STATUS", "PRIORITY", "CATEGORY", "DUE", "CREATED", "UPDATED"}

// renderTaskTable renders tasks as an aligned table.
func renderTaskTable(tasks []task.Task, color bool) string {
	now := time.Now()
	today := task.DateOf(now)

	builder := ui.NewTableBuilder(taskTableHeaders, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		builder.AddRow([]string{
			strconv.Itoa(t.ID),
			ui.TruncateTableCell(t.Description),
			ui.StatusCell(t.Status, color),
			ui.PriorityCell(t.Priority, color),
			t.Category,
			ui.DueDateCell(t.DueDate, today, color),
			ui.FormatTimeAgo(t.CreatedAt.Time, now),
			ui.FormatTimeAgo(t.UpdatedAt.Time, now),
		})
	}
	return builder.String()
}
