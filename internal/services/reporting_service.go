package services

import (
	"context"
	"fmt"
	"strings"

	"ritual/internal/domain"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	taskService TaskService
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(taskService TaskService) ReportingService {
	return &reportingServiceImpl{taskService: taskService}
}

// DayStatistics counts the done and remaining tasks of date
func (r *reportingServiceImpl) DayStatistics(ctx context.Context, date string) (*domain.DayStatistics, error) {
	tasks, err := r.taskService.TasksForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeDayStatistics(date, tasks)
	return &stats, nil
}

// DaySummary renders the tasks of date as a markdown checklist, remaining
// tasks first and completed ones under their own heading
func (r *reportingServiceImpl) DaySummary(ctx context.Context, date string) (string, error) {
	tasks, err := r.taskService.TasksForDate(ctx, date)
	if err != nil {
		return "", err
	}

	var remaining, completed []string
	for _, task := range tasks {
		if task.Done {
			completed = append(completed, "- [x] "+task.Title)
		} else {
			remaining = append(remaining, "- [ ] "+task.Title)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Task Summary for %s\n\n", date)
	b.WriteString(strings.Join(remaining, "\n"))
	b.WriteString("\n\n## Completed\n")
	b.WriteString(strings.Join(completed, "\n"))
	b.WriteString("\n\n(From Ritual app)\n")
	return b.String(), nil
}
