package services

import (
	"context"
	"strings"

	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/logging"
)

// dayStartServiceImpl implements the DayStartService interface
type dayStartServiceImpl struct {
	tasks     TaskService
	templates TemplateService
	settings  SettingsService
	debugLog  DebugLogService
}

// NewDayStartService creates a new DayStartService instance
func NewDayStartService(tasks TaskService, templates TemplateService, settings SettingsService, debugLog DebugLogService) DayStartService {
	return &dayStartServiceImpl{
		tasks:     tasks,
		templates: templates,
		settings:  settings,
		debugLog:  debugLog,
	}
}

func (s *dayStartServiceImpl) trace(ctx context.Context, format string, args ...interface{}) {
	logging.Debugf(format+"\n", args...)
	if s.debugLog == nil {
		return
	}
	if err := s.debugLog.Log(ctx, format, args...); err != nil {
		logging.Debugf("debug log write failed: %v\n", err)
	}
}

// CheckStartOfDay reports what to propose for today. Once today has been
// handled it reports DayStartAlreadyHandled until the date changes.
func (s *dayStartServiceImpl) CheckStartOfDay(ctx context.Context, today string) (*DayStartResult, error) {
	yesterday, err := domain.PreviousDateKey(today)
	if err != nil {
		return nil, errors.NewInvalidInputError("date", today, "must be YYYY-MM-DD")
	}

	lastPrompted, err := s.settings.LastPrompted(ctx)
	if err != nil {
		return nil, err
	}
	if lastPrompted == today {
		return &DayStartResult{Status: DayStartAlreadyHandled, Date: today}, nil
	}

	previous, err := s.tasks.TasksForDate(ctx, yesterday)
	if err != nil {
		return nil, err
	}
	var unfinished []domain.Task
	for _, task := range previous {
		if !task.Done {
			unfinished = append(unfinished, task)
		}
	}

	recurring, err := s.templates.TemplatesForDate(ctx, today)
	if err != nil {
		return nil, err
	}

	if len(unfinished) == 0 && len(recurring) == 0 {
		if err := s.settings.SetLastPrompted(ctx, today); err != nil {
			return nil, err
		}
		s.trace(ctx, "start of day %s: nothing to propose", today)
		return &DayStartResult{Status: DayStartNothingToPropose, Date: today}, nil
	}

	s.trace(ctx, "start of day %s: proposing %d from %s and %d recurring", today, len(unfinished), yesterday, len(recurring))
	return &DayStartResult{
		Status:             DayStartProposal,
		Date:               today,
		FromYesterday:      unfinished,
		RecurringTemplates: recurring,
	}, nil
}

// Resolve adds a task for each accepted title and marks today as handled,
// even when nothing was accepted. Titles that fail validation are skipped so
// the day is still marked handled and a retry cannot add the rest twice.
func (s *dayStartServiceImpl) Resolve(ctx context.Context, today string, acceptedTitles []string) ([]string, error) {
	if !domain.IsValidDateKey(today) {
		return nil, errors.NewInvalidInputError("date", today, "must be YYYY-MM-DD")
	}

	var titles []string
	for _, title := range acceptedTitles {
		if strings.TrimSpace(title) != "" {
			titles = append(titles, title)
		}
	}

	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		id, err := s.tasks.AddTask(ctx, today, title)
		if errors.IsErrorType(err, errors.ErrorTypeValidation) {
			s.trace(ctx, "start of day %s: skipped invalid title: %v", today, err)
			continue
		}
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	if err := s.settings.SetLastPrompted(ctx, today); err != nil {
		return ids, err
	}
	s.trace(ctx, "start of day %s: accepted %d of the proposal", today, len(ids))
	return ids, nil
}
