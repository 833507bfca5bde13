package api

import (
	"context"

	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/services"
)

// apiImpl implements API on top of the service container
type apiImpl struct {
	svc *services.ServiceContainer
}

// ========== Tasks ==========

func (a *apiImpl) GetDay(ctx context.Context, date string) (*DayView, error) {
	tasks, err := a.svc.TaskService.TasksForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	holidays, err := a.svc.HolidayService.HolidaysForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DayView{
		Date:     date,
		Tasks:    tasks,
		Stats:    domain.ComputeDayStatistics(date, tasks),
		Holidays: holidays,
	}, nil
}

func (a *apiImpl) TasksForDate(ctx context.Context, date string) ([]domain.Task, error) {
	return a.svc.TaskService.TasksForDate(ctx, date)
}

func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	return a.svc.TaskService.GetTask(ctx, id)
}

// AddTask creates a task and returns it as stored
func (a *apiImpl) AddTask(ctx context.Context, date, title string) (*domain.Task, error) {
	id, err := a.svc.TaskService.AddTask(ctx, date, title)
	if err != nil {
		return nil, err
	}
	return a.svc.TaskService.GetTask(ctx, id)
}

func (a *apiImpl) UpdateTaskTitle(ctx context.Context, id, title string) error {
	return a.svc.TaskService.UpdateTaskTitle(ctx, id, title)
}

func (a *apiImpl) ToggleTaskDone(ctx context.Context, id string) error {
	return a.svc.TaskService.ToggleTaskDone(ctx, id)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) error {
	return a.svc.TaskService.DeleteTask(ctx, id)
}

func (a *apiImpl) ReorderTasks(ctx context.Context, date string, ids []string) error {
	return a.svc.TaskService.ReorderTasks(ctx, date, ids)
}

// loadTasks fetches the tasks behind ids, skipping any that vanished
func (a *apiImpl) loadTasks(ctx context.Context, ids []string) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		task, err := a.svc.TaskService.GetTask(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (a *apiImpl) ImportPlan(ctx context.Context, date, text string) ([]domain.Task, error) {
	ids, err := a.svc.TaskService.ImportPlan(ctx, date, text)
	if err != nil {
		return nil, err
	}
	return a.loadTasks(ctx, ids)
}

func (a *apiImpl) ClearDone(ctx context.Context, date string) (int, error) {
	return a.svc.TaskService.ClearDone(ctx, date)
}

func (a *apiImpl) DaySummary(ctx context.Context, date string) (string, error) {
	return a.svc.ReportingService.DaySummary(ctx, date)
}

// ========== Templates ==========

func (a *apiImpl) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return a.svc.TemplateService.ListTemplates(ctx)
}

func (a *apiImpl) AddTemplate(ctx context.Context, def domain.TemplateDefinition) (*domain.Template, error) {
	id, err := a.svc.TemplateService.AddTemplate(ctx, def)
	if err != nil {
		return nil, err
	}
	return a.svc.TemplateService.GetTemplate(ctx, id)
}

func (a *apiImpl) UpdateTemplate(ctx context.Context, id string, patch domain.TemplatePatch) error {
	return a.svc.TemplateService.UpdateTemplate(ctx, id, patch)
}

func (a *apiImpl) DeleteTemplate(ctx context.Context, id string) error {
	return a.svc.TemplateService.DeleteTemplate(ctx, id)
}

func (a *apiImpl) TemplatesForDate(ctx context.Context, date string) ([]domain.Template, error) {
	return a.svc.TemplateService.TemplatesForDate(ctx, date)
}

// ========== Start of day ==========

func (a *apiImpl) CheckStartOfDay(ctx context.Context, today string) (*StartOfDay, error) {
	return a.svc.DayStartService.CheckStartOfDay(ctx, today)
}

func (a *apiImpl) ResolveStartOfDay(ctx context.Context, today string, acceptedTitles []string) ([]domain.Task, error) {
	ids, err := a.svc.DayStartService.Resolve(ctx, today, acceptedTitles)
	if err != nil {
		return nil, err
	}
	return a.loadTasks(ctx, ids)
}

// ========== Backup ==========

func (a *apiImpl) ExportSnapshot(ctx context.Context) ([]byte, error) {
	return a.svc.BackupService.ExportSnapshot(ctx)
}

func (a *apiImpl) ImportSnapshot(ctx context.Context, data []byte) error {
	return a.svc.BackupService.ImportSnapshot(ctx, data)
}

// ========== Score ==========

func (a *apiImpl) GetScore(ctx context.Context) (*domain.Score, error) {
	return a.svc.ScoreService.Score(ctx)
}

// ========== Holidays ==========

func (a *apiImpl) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	return a.svc.HolidayService.ListHolidays(ctx)
}

func (a *apiImpl) AddHoliday(ctx context.Context, mmdd, name string) (*domain.Holiday, error) {
	id, err := a.svc.HolidayService.AddHoliday(ctx, mmdd, name)
	if err != nil {
		return nil, err
	}

	all, err := a.svc.HolidayService.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range all {
		if h.ID == id {
			return &h, nil
		}
	}
	return &domain.Holiday{ID: id, MMDD: mmdd, Name: name}, nil
}

func (a *apiImpl) UpdateHoliday(ctx context.Context, id string, patch domain.HolidayPatch) error {
	return a.svc.HolidayService.UpdateHoliday(ctx, id, patch)
}

func (a *apiImpl) DeleteHoliday(ctx context.Context, id string) error {
	return a.svc.HolidayService.DeleteHoliday(ctx, id)
}

func (a *apiImpl) HolidaysForDate(ctx context.Context, date string) ([]domain.Holiday, error) {
	return a.svc.HolidayService.HolidaysForDate(ctx, date)
}

// ========== Settings and debug log ==========

func (a *apiImpl) GetSettings(ctx context.Context) (domain.Settings, error) {
	return a.svc.SettingsService.GetSettings(ctx)
}

func (a *apiImpl) SetAccent(ctx context.Context, color string) error {
	return a.svc.SettingsService.SetAccent(ctx, color)
}

func (a *apiImpl) SetDebugEnabled(ctx context.Context, enabled bool) error {
	return a.svc.SettingsService.SetDebugEnabled(ctx, enabled)
}

func (a *apiImpl) DebugLog(ctx context.Context) ([]domain.DebugLogEntry, error) {
	return a.svc.DebugLogService.Entries(ctx)
}

func (a *apiImpl) ClearDebugLog(ctx context.Context) error {
	return a.svc.DebugLogService.Clear(ctx)
}
