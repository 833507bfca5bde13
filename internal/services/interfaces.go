package services

import (
	"context"
	"time"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/repository/sqlite"
)

// timeNow is the clock used for task ordering and debug timestamps.
var timeNow = time.Now

// DayStartStatus is the outcome of a start-of-day check.
type DayStartStatus string

const (
	// DayStartAlreadyHandled means the user was already prompted today.
	DayStartAlreadyHandled DayStartStatus = "already_handled"
	// DayStartNothingToPropose means there was nothing to offer; today is now marked handled.
	DayStartNothingToPropose DayStartStatus = "nothing_to_propose"
	// DayStartProposal means the caller should present the proposal and call Resolve.
	DayStartProposal DayStartStatus = "proposal"
)

// DayStartResult is what CheckStartOfDay reports.
type DayStartResult struct {
	Status             DayStartStatus
	Date               string
	FromYesterday      []domain.Task
	RecurringTemplates []domain.Template
}

// Titles lists the proposed titles, recurring templates first.
func (r *DayStartResult) Titles() []string {
	titles := make([]string, 0, len(r.RecurringTemplates)+len(r.FromYesterday))
	for _, t := range r.RecurringTemplates {
		titles = append(titles, t.Title)
	}
	for _, t := range r.FromYesterday {
		titles = append(titles, t.Title)
	}
	return titles
}

// TaskService handles the tasks of each calendar day. Operations naming a
// missing id are silent no-ops.
type TaskService interface {
	TasksForDate(ctx context.Context, date string) ([]domain.Task, error)
	AllTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)

	AddTask(ctx context.Context, date, title string) (string, error)
	UpdateTaskTitle(ctx context.Context, id, title string) error
	DeleteTask(ctx context.Context, id string) error
	ToggleTaskDone(ctx context.Context, id string) error
	ReorderTasks(ctx context.Context, date string, ids []string) error

	ImportPlan(ctx context.Context, date, text string) ([]string, error)
	ClearDone(ctx context.Context, date string) (int, error)
}

// ReportingService derives read-only views of a day
type ReportingService interface {
	DayStatistics(ctx context.Context, date string) (*domain.DayStatistics, error)
	DaySummary(ctx context.Context, date string) (string, error)
}

// TemplateService manages recurring task definitions
type TemplateService interface {
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	GetTemplate(ctx context.Context, id string) (*domain.Template, error)
	AddTemplate(ctx context.Context, def domain.TemplateDefinition) (string, error)
	UpdateTemplate(ctx context.Context, id string, patch domain.TemplatePatch) error
	DeleteTemplate(ctx context.Context, id string) error
	TemplatesForDate(ctx context.Context, date string) ([]domain.Template, error)
}

// DayStartService proposes the tasks to start a day with, at most once per day
type DayStartService interface {
	CheckStartOfDay(ctx context.Context, today string) (*DayStartResult, error)
	Resolve(ctx context.Context, today string, acceptedTitles []string) ([]string, error)
}

// BackupService exports and restores whole-store snapshots
type BackupService interface {
	ExportSnapshot(ctx context.Context) ([]byte, error)
	ImportSnapshot(ctx context.Context, data []byte) error
}

// ScoreService computes experience from completed tasks
type ScoreService interface {
	TotalExperience(ctx context.Context) (int, error)
	Score(ctx context.Context) (*domain.Score, error)
}

// HolidayService manages custom holidays and reports the holidays of a day
type HolidayService interface {
	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
	AddHoliday(ctx context.Context, mmdd, name string) (string, error)
	UpdateHoliday(ctx context.Context, id string, patch domain.HolidayPatch) error
	DeleteHoliday(ctx context.Context, id string) error
	HolidaysForDate(ctx context.Context, date string) ([]domain.Holiday, error)
}

// SettingsService reads and writes the single settings record
type SettingsService interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	Accent(ctx context.Context) (string, error)
	SetAccent(ctx context.Context, color string) error
	DebugEnabled(ctx context.Context) (bool, error)
	SetDebugEnabled(ctx context.Context, enabled bool) error
	LastPrompted(ctx context.Context) (string, error)
	SetLastPrompted(ctx context.Context, date string) error
}

// DebugLogService records diagnostic lines in the store while debug is on
type DebugLogService interface {
	Log(ctx context.Context, format string, args ...interface{}) error
	Entries(ctx context.Context) ([]domain.DebugLogEntry, error)
	Clear(ctx context.Context) error
	Format(entries []domain.DebugLogEntry) string
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
	TemplateService  TemplateService
	DayStartService  DayStartService
	BackupService    BackupService
	ScoreService     ScoreService
	HolidayService   HolidayService
	SettingsService  SettingsService
	DebugLogService  DebugLogService
}

// NewServiceContainer wires every service to repo. cfg may be nil, in which
// case defaults apply.
func NewServiceContainer(repo sqlite.Repository, cfg *config.Config) *ServiceContainer {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	settings := NewSettingsService(repo)
	debugLog := NewDebugLogService(repo, settings)
	tasks := NewTaskService(repo, cfg)
	templates := NewTemplateService(repo, cfg)

	return &ServiceContainer{
		TaskService:      tasks,
		ReportingService: NewReportingService(tasks),
		TemplateService:  templates,
		DayStartService:  NewDayStartService(tasks, templates, settings, debugLog),
		BackupService:    NewBackupService(repo),
		ScoreService:     NewScoreService(tasks, cfg.Score.PointsPerTask),
		HolidayService:   NewHolidayService(repo, cfg),
		SettingsService:  settings,
		DebugLogService:  debugLog,
	}
}
