package api

import (
	"context"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/repository/sqlite"
	"ritual/internal/services"
)

// DayView is everything a renderer needs to draw one day.
type DayView struct {
	Date     string
	Tasks    []domain.Task
	Stats    domain.DayStatistics
	Holidays []domain.Holiday
}

// StartOfDay is the result of the start-of-day check.
type StartOfDay = services.DayStartResult

// API is the single entry point used by the CLI and the HTTP server.
type API interface {
	// ========== Tasks ==========

	// GetDay returns the sorted tasks, statistics and holidays of date
	GetDay(ctx context.Context, date string) (*DayView, error)
	TasksForDate(ctx context.Context, date string) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	AddTask(ctx context.Context, date, title string) (*domain.Task, error)
	UpdateTaskTitle(ctx context.Context, id, title string) error
	ToggleTaskDone(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	ReorderTasks(ctx context.Context, date string, ids []string) error

	// ImportPlan adds one task per non-blank line of text
	ImportPlan(ctx context.Context, date, text string) ([]domain.Task, error)
	ClearDone(ctx context.Context, date string) (int, error)
	DaySummary(ctx context.Context, date string) (string, error)

	// ========== Templates ==========

	ListTemplates(ctx context.Context) ([]domain.Template, error)
	AddTemplate(ctx context.Context, def domain.TemplateDefinition) (*domain.Template, error)
	UpdateTemplate(ctx context.Context, id string, patch domain.TemplatePatch) error
	DeleteTemplate(ctx context.Context, id string) error
	TemplatesForDate(ctx context.Context, date string) ([]domain.Template, error)

	// ========== Start of day ==========

	CheckStartOfDay(ctx context.Context, today string) (*StartOfDay, error)
	ResolveStartOfDay(ctx context.Context, today string, acceptedTitles []string) ([]domain.Task, error)

	// ========== Backup ==========

	ExportSnapshot(ctx context.Context) ([]byte, error)
	ImportSnapshot(ctx context.Context, data []byte) error

	// ========== Score ==========

	GetScore(ctx context.Context) (*domain.Score, error)

	// ========== Holidays ==========

	ListHolidays(ctx context.Context) ([]domain.Holiday, error)
	AddHoliday(ctx context.Context, mmdd, name string) (*domain.Holiday, error)
	UpdateHoliday(ctx context.Context, id string, patch domain.HolidayPatch) error
	DeleteHoliday(ctx context.Context, id string) error
	HolidaysForDate(ctx context.Context, date string) ([]domain.Holiday, error)

	// ========== Settings and debug log ==========

	GetSettings(ctx context.Context) (domain.Settings, error)
	SetAccent(ctx context.Context, color string) error
	SetDebugEnabled(ctx context.Context, enabled bool) error
	DebugLog(ctx context.Context) ([]domain.DebugLogEntry, error)
	ClearDebugLog(ctx context.Context) error
}

// New creates an API backed by repo. cfg may be nil.
func New(repo sqlite.Repository, cfg *config.Config) API {
	return &apiImpl{svc: services.NewServiceContainer(repo, cfg)}
}
