package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/okeefe/tasker/task"
)

var (
	todoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	doneStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// StatusCell renders a status for table output.
func StatusCell(status task.Status, color bool) string {
	if !color {
		return string(status)
	}
	switch status {
	case task.StatusTodo:
		return todoStyle.Render(string(status))
	case task.StatusInProgress:
		return inProgressStyle.Render(string(status))
	case task.StatusDone:
		return doneStyle.Render(string(status))
	default:
		return string(status)
	}
}

// PriorityCell renders a priority for table output. Unset priorities show
// as a dash.
func PriorityCell(priority task.Priority, color bool) string {
	if !priority.IsSet() {
		return "-"
	}
	if !color {
		return string(priority)
	}
	switch priority {
	case task.PriorityHigh:
		return highStyle.Render(string(priority))
	case task.PriorityMedium:
		return mediumStyle.Render(string(priority))
	case task.PriorityLow:
		return lowStyle.Render(string(priority))
	default:
		return string(priority)
	}
}

// DueDateCell renders a due date relative to today, colored by urgency.
func DueDateCell(due *task.Date, today task.Date, color bool) string {
	if due == nil {
		return "-"
	}

	days := today.DaysUntil(*due)
	var text string
	var style lipgloss.Style
	switch {
	case days < 0:
		text = fmt.Sprintf("overdue %dd", -days)
		style = overdueStyle
	case days == 0:
		text = "today"
		style = overdueStyle
	case days <= 3:
		text = fmt.Sprintf("in %dd", days)
		style = dueStyle
	default:
		text = due.String()
		style = mutedStyle
	}

	if !color {
		return text
	}
	return style.Render(text)
}
