package domain

import (
	"time"

	"ritual/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(t Task) *sqlite.Task {
	return &sqlite.Task{
		ID:    t.ID,
		Date:  t.Date,
		Title: t.Title,
		Done:  t.Done,
		Order: t.Order,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(t *sqlite.Task) Task {
	return Task{
		ID:    t.ID,
		Date:  t.Date,
		Title: t.Title,
		Done:  t.Done,
		Order: t.Order,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	tasks := make([]Task, len(dbTasks))
	for i, t := range dbTasks {
		tasks[i] = m.FromDatabase(t)
	}
	return tasks
}

// TemplateMapper handles conversion between domain and database Template models.
type TemplateMapper struct{}

// NewTemplateMapper creates a new TemplateMapper instance.
func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

// ToDatabase converts a domain Template to a database Template.
func (m *TemplateMapper) ToDatabase(t Template) *sqlite.Template {
	return &sqlite.Template{
		ID:      t.ID,
		Title:   t.Title,
		Type:    string(t.Type),
		Enabled: t.Enabled,
		Days:    append([]int{}, t.Days...),
	}
}

// FromDatabase converts a database Template to a domain Template.
func (m *TemplateMapper) FromDatabase(t *sqlite.Template) Template {
	return Template{
		ID:      t.ID,
		Title:   t.Title,
		Type:    TemplateType(t.Type),
		Enabled: t.Enabled,
		Days:    append([]int{}, t.Days...),
	}
}

// FromDatabaseSlice converts a slice of database Templates to domain Templates.
func (m *TemplateMapper) FromDatabaseSlice(dbTemplates []*sqlite.Template) []Template {
	templates := make([]Template, len(dbTemplates))
	for i, t := range dbTemplates {
		templates[i] = m.FromDatabase(t)
	}
	return templates
}

// HolidayMapper handles conversion between domain and database Holiday models.
type HolidayMapper struct{}

// NewHolidayMapper creates a new HolidayMapper instance.
func NewHolidayMapper() *HolidayMapper {
	return &HolidayMapper{}
}

// ToDatabase converts a domain Holiday to a database Holiday.
func (m *HolidayMapper) ToDatabase(h Holiday) *sqlite.Holiday {
	return &sqlite.Holiday{ID: h.ID, MMDD: h.MMDD, Name: h.Name}
}

// FromDatabase converts a database Holiday to a domain Holiday.
func (m *HolidayMapper) FromDatabase(h *sqlite.Holiday) Holiday {
	return Holiday{ID: h.ID, MMDD: h.MMDD, Name: h.Name}
}

// FromDatabaseSlice converts a slice of database Holidays to domain Holidays.
func (m *HolidayMapper) FromDatabaseSlice(dbHolidays []*sqlite.Holiday) []Holiday {
	holidays := make([]Holiday, len(dbHolidays))
	for i, h := range dbHolidays {
		holidays[i] = m.FromDatabase(h)
	}
	return holidays
}

// SettingsMapper handles conversion between domain and database Settings.
type SettingsMapper struct{}

// NewSettingsMapper creates a new SettingsMapper instance.
func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

// ToDatabase converts domain Settings to database Settings.
func (m *SettingsMapper) ToDatabase(s Settings) *sqlite.Settings {
	return &sqlite.Settings{Accent: s.Accent, Debug: s.Debug, LastPrompted: s.LastPrompted}
}

// FromDatabase converts database Settings to domain Settings.
func (m *SettingsMapper) FromDatabase(s *sqlite.Settings) Settings {
	return Settings{Accent: s.Accent, Debug: s.Debug, LastPrompted: s.LastPrompted}
}

// DebugLogMapper converts debug log entries; the database keeps Unix milliseconds.
type DebugLogMapper struct{}

// NewDebugLogMapper creates a new DebugLogMapper instance.
func NewDebugLogMapper() *DebugLogMapper {
	return &DebugLogMapper{}
}

// ToDatabase converts a domain DebugLogEntry to a database DebugLogEntry.
func (m *DebugLogMapper) ToDatabase(e DebugLogEntry) *sqlite.DebugLogEntry {
	return &sqlite.DebugLogEntry{
		ID:        e.ID,
		Timestamp: e.Timestamp.UnixMilli(),
		Message:   e.Message,
	}
}

// FromDatabase converts a database DebugLogEntry to a domain DebugLogEntry.
func (m *DebugLogMapper) FromDatabase(e *sqlite.DebugLogEntry) DebugLogEntry {
	return DebugLogEntry{
		ID:        e.ID,
		Timestamp: time.UnixMilli(e.Timestamp).UTC(),
		Message:   e.Message,
	}
}

// FromDatabaseSlice converts a slice of database entries to domain entries.
func (m *DebugLogMapper) FromDatabaseSlice(dbEntries []*sqlite.DebugLogEntry) []DebugLogEntry {
	entries := make([]DebugLogEntry, len(dbEntries))
	for i, e := range dbEntries {
		entries[i] = m.FromDatabase(e)
	}
	return entries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task     *TaskMapper
	Template *TemplateMapper
	Holiday  *HolidayMapper
	Settings *SettingsMapper
	DebugLog *DebugLogMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:     NewTaskMapper(),
		Template: NewTemplateMapper(),
		Holiday:  NewHolidayMapper(),
		Settings: NewSettingsMapper(),
		DebugLog: NewDebugLogMapper(),
	}
}
