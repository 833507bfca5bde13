package domain

import (
	"sort"
	"strings"
)

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID    string
	Date  string
	Title string
	Done  bool
	Order int64
}

// NewTask creates a not-done task for the given day.
func NewTask(date, title string) Task {
	return Task{
		Date:  date,
		Title: strings.TrimSpace(title),
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Title) != "" && IsValidDateKey(t.Date)
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// Less reports whether t sorts before other within one day: not-done first,
// then ascending order. The id breaks ties so the result is stable.
func (t Task) Less(other Task) bool {
	if t.Done != other.Done {
		return !t.Done
	}
	if t.Order != other.Order {
		return t.Order < other.Order
	}
	return t.ID < other.ID
}

// SortTasks orders tasks in place by Less.
func SortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Less(tasks[j])
	})
}

// DayStatistics summarizes the tasks of one day.
type DayStatistics struct {
	Date      string
	Total     int
	Done      int
	Remaining int
}

// ComputeDayStatistics counts done and remaining tasks.
func ComputeDayStatistics(date string, tasks []Task) DayStatistics {
	stats := DayStatistics{Date: date, Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			stats.Done++
		}
	}
	stats.Remaining = stats.Total - stats.Done
	return stats
}
