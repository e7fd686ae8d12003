package task

import "time"

// RecentWindow is the trailing window used for creation/completion
// velocity, matching the due-soon horizon.
const RecentWindow = 7 * 24 * time.Hour

// Breakdown is a count with its share of a denominator.
type Breakdown struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Report aggregates collection statistics as of a single instant.
type Report struct {
	Total int `json:"total"`

	// ByStatus covers every task; percentages sum to 100 for non-empty
	// collections.
	ByStatus map[Status]Breakdown `json:"by_status"`

	// ByPriority covers only tasks with a priority set; the denominator
	// excludes unprioritized tasks, which are counted in Unprioritized.
	ByPriority    map[Priority]Breakdown `json:"by_priority"`
	Unprioritized int                    `json:"unprioritized"`

	// ByCategory covers every task.
	ByCategory map[string]Breakdown `json:"by_category"`

	// CompletionRate is the share of tasks that are done, in percent.
	CompletionRate float64 `json:"completion_rate"`

	// Overdue counts tasks due strictly before today that aren't done.
	Overdue int `json:"overdue"`

	// DueToday counts tasks due exactly today.
	DueToday int `json:"due_today"`

	// DueSoon counts tasks due within 7 days from today inclusive (not
	// counting overdue ones).
	DueSoon int `json:"due_soon"`

	// CreatedRecently counts tasks created in the trailing 7 days.
	CreatedRecently int `json:"created_recently"`

	// CompletedRecently counts done tasks last touched in the trailing
	// 7 days.
	CompletedRecently int `json:"completed_recently"`

	// Behind is how many more tasks were created than completed in the
	// trailing 7 days, floored at zero.
	Behind int `json:"behind"`
}

// Stats computes a report over the tasks as of now. Pure: no I/O, no
// mutation of the input.
func Stats(tasks []Task, now time.Time) *Report {
	report := &Report{
		Total:      len(tasks),
		ByStatus:   make(map[Status]Breakdown),
		ByPriority: make(map[Priority]Breakdown),
		ByCategory: make(map[string]Breakdown),
	}

	today := DateOf(now)
	cutoff := now.Add(-RecentWindow)

	statusCounts := make(map[Status]int)
	priorityCounts := make(map[Priority]int)
	categoryCounts := make(map[string]int)
	prioritized := 0

	for i := range tasks {
		t := &tasks[i]

		statusCounts[t.Status]++
		categoryCounts[t.Category]++
		if t.Priority.IsSet() {
			priorityCounts[t.Priority]++
			prioritized++
		} else {
			report.Unprioritized++
		}

		if t.DueDate != nil {
			switch days := today.DaysUntil(*t.DueDate); {
			case days < 0:
				if t.Status != StatusDone {
					report.Overdue++
				}
			case days == 0:
				report.DueToday++
				report.DueSoon++
			case days <= DueSoonDays:
				report.DueSoon++
			}
		}

		if !t.CreatedAt.Before(cutoff) {
			report.CreatedRecently++
		}
		if t.Status == StatusDone && !t.UpdatedAt.Before(cutoff) {
			report.CompletedRecently++
		}
	}

	for status, count := range statusCounts {
		report.ByStatus[status] = Breakdown{Count: count, Percent: percent(count, report.Total)}
	}
	for priority, count := range priorityCounts {
		report.ByPriority[priority] = Breakdown{Count: count, Percent: percent(count, prioritized)}
	}
	for category, count := range categoryCounts {
		report.ByCategory[category] = Breakdown{Count: count, Percent: percent(count, report.Total)}
	}

	report.CompletionRate = percent(statusCounts[StatusDone], report.Total)

	if report.CreatedRecently > report.CompletedRecently {
		report.Behind = report.CreatedRecently - report.CompletedRecently
	}

	return report
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
