package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ritual/internal/errors"
	"ritual/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SettingsKey is the literal key of the only settings record.
const SettingsKey = "main"

// DefaultDriver is the pure-Go modernc.org/sqlite driver.
const DefaultDriver = "sqlite"

// availableDrivers lists the database/sql driver names compiled into this binary.
var availableDrivers = map[string]bool{DefaultDriver: true}

// Options tunes how the store is opened.
type Options struct {
	Driver       string
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// Repository is the persistent store: one group of operations per named
// collection. Every single call is atomic; Replace* clears and repopulates
// one collection inside a single transaction.
type Repository interface {
	// tasks
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByDate(ctx context.Context, date string) ([]*Task, error)
	PutTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id string) error
	ClearTasks(ctx context.Context) error
	ReplaceTasks(ctx context.Context, tasks []*Task) error

	// templates
	GetTemplate(ctx context.Context, id string) (*Template, error)
	ListTemplates(ctx context.Context) ([]*Template, error)
	PutTemplate(ctx context.Context, tmpl *Template) error
	DeleteTemplate(ctx context.Context, id string) error
	ClearTemplates(ctx context.Context) error
	ReplaceTemplates(ctx context.Context, templates []*Template) error

	// holidays
	GetHoliday(ctx context.Context, id string) (*Holiday, error)
	ListHolidays(ctx context.Context) ([]*Holiday, error)
	PutHoliday(ctx context.Context, holiday *Holiday) error
	DeleteHoliday(ctx context.Context, id string) error
	ClearHolidays(ctx context.Context) error
	ReplaceHolidays(ctx context.Context, holidays []*Holiday) error

	// settings
	GetSettings(ctx context.Context) (*Settings, error)
	ListSettings(ctx context.Context) ([]*Settings, error)
	PutSettings(ctx context.Context, settings *Settings) error
	ClearSettings(ctx context.Context) error
	ReplaceSettings(ctx context.Context, settings []*Settings) error

	// meta
	GetMeta(ctx context.Context, key string) (*MetaEntry, error)
	ListMeta(ctx context.Context) ([]*MetaEntry, error)
	PutMeta(ctx context.Context, entry *MetaEntry) error
	DeleteMeta(ctx context.Context, key string) error
	ClearMeta(ctx context.Context) error
	ReplaceMeta(ctx context.Context, entries []*MetaEntry) error

	// debug log
	GetDebugLogEntry(ctx context.Context, id int64) (*DebugLogEntry, error)
	ListDebugLog(ctx context.Context) ([]*DebugLogEntry, error)
	AppendDebugLog(ctx context.Context, entry *DebugLogEntry) error
	DeleteDebugLogEntry(ctx context.Context, id int64) error
	ClearDebugLog(ctx context.Context) error
	ReplaceDebugLog(ctx context.Context, entries []*DebugLogEntry) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens (creating if needed) the store at dbPath and brings its
// schema up to date. Opening an already migrated store is a no-op.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	driver := opts.Driver
	if driver == "" {
		driver = DefaultDriver
	}
	if !availableDrivers[driver] {
		return nil, errors.NewStorageUnavailableError(dbPath, fmt.Errorf("sqlite driver %q is not compiled in", driver))
	}

	db, err := sql.Open(driver, dbPath)
	if err != nil {
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}
	// One connection: serializes statements and keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageUnavailableError(dbPath, err)
	}

	return &SQLiteRepository{
		db:           db,
		queryTimeout: opts.QueryTimeout,
		writeTimeout: opts.WriteTimeout,
	}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout > 0 {
		return context.WithTimeout(ctx, r.queryTimeout)
	}
	return context.WithCancel(ctx)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.writeTimeout > 0 {
		return context.WithTimeout(ctx, r.writeTimeout)
	}
	return context.WithCancel(ctx)
}

// replace clears table and inserts every row with insert, in one transaction.
func (r *SQLiteRepository) replace(ctx context.Context, table string, n int, insert func(tx *sql.Tx, i int) error) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return WithTransaction(ctx, r.db, "replace "+table, func(tx *sql.Tx) error {
		if err := Execute(ctx, tx, "clear "+table, "DELETE FROM "+table); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := insert(tx, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// ========== tasks ==========

const taskColumns = `id, date, title, done, sort_order`

const upsertTaskQuery = `
	INSERT INTO tasks (id, date, title, done, sort_order)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		date = excluded.date,
		title = excluded.title,
		done = excluded.done,
		sort_order = excluded.sort_order`

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// ListTasks retrieves every task in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY rowid ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListTasksByDate retrieves the tasks of one calendar day using the (date, order) index
func (r *SQLiteRepository) ListTasksByDate(ctx context.Context, date string) ([]*Task, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE date = ? ORDER BY done ASC, sort_order ASC, id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", date)
}

// PutTask inserts or replaces a task by ID
func (r *SQLiteRepository) PutTask(ctx context.Context, task *Task) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "put task", upsertTaskQuery, task.ID, task.Date, task.Title, task.Done, task.Order)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM tasks WHERE id = ?`, "task", id, id)
}

// ClearTasks removes every task
func (r *SQLiteRepository) ClearTasks(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "clear tasks", `DELETE FROM tasks`)
}

// ReplaceTasks swaps the whole collection for tasks
func (r *SQLiteRepository) ReplaceTasks(ctx context.Context, tasks []*Task) error {
	return r.replace(ctx, "tasks", len(tasks), func(tx *sql.Tx, i int) error {
		t := tasks[i]
		return Execute(ctx, tx, "put task", upsertTaskQuery, t.ID, t.Date, t.Title, t.Done, t.Order)
	})
}

// ========== templates ==========

const templateColumns = `id, title, type, enabled, days`

const upsertTemplateQuery = `
	INSERT INTO templates (id, title, type, enabled, days)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		type = excluded.type,
		enabled = excluded.enabled,
		days = excluded.days`

// GetTemplate retrieves a template by ID
func (r *SQLiteRepository) GetTemplate(ctx context.Context, id string) (*Template, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + templateColumns + ` FROM templates WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTemplate, "template", id, id)
}

// ListTemplates retrieves all templates in insertion order
func (r *SQLiteRepository) ListTemplates(ctx context.Context) ([]*Template, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT ` + templateColumns + ` FROM templates ORDER BY rowid ASC`
	return QueryMultiple(ctx, r.db, query, ScanTemplates, "templates")
}

// PutTemplate inserts or replaces a template by ID
func (r *SQLiteRepository) PutTemplate(ctx context.Context, tmpl *Template) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "put template", upsertTemplateQuery,
		tmpl.ID, tmpl.Title, tmpl.Type, tmpl.Enabled, FormatDaysForDB(tmpl.Days))
}

// DeleteTemplate deletes a template by ID
func (r *SQLiteRepository) DeleteTemplate(ctx context.Context, id string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM templates WHERE id = ?`, "template", id, id)
}

// ClearTemplates removes every template
func (r *SQLiteRepository) ClearTemplates(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "clear templates", `DELETE FROM templates`)
}

// ReplaceTemplates swaps the whole collection for templates
func (r *SQLiteRepository) ReplaceTemplates(ctx context.Context, templates []*Template) error {
	return r.replace(ctx, "templates", len(templates), func(tx *sql.Tx, i int) error {
		t := templates[i]
		return Execute(ctx, tx, "put template", upsertTemplateQuery,
			t.ID, t.Title, t.Type, t.Enabled, FormatDaysForDB(t.Days))
	})
}

// ========== holidays ==========

const upsertHolidayQuery = `
	INSERT INTO holidays (id, mmdd, name)
	VALUES (?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		mmdd = excluded.mmdd,
		name = excluded.name`

// GetHoliday retrieves a custom holiday by ID
func (r *SQLiteRepository) GetHoliday(ctx context.Context, id string) (*Holiday, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QuerySingle(ctx, r.db, `SELECT id, mmdd, name FROM holidays WHERE id = ?`, ScanHoliday, "holiday", id, id)
}

// ListHolidays retrieves all custom holidays in insertion order
func (r *SQLiteRepository) ListHolidays(ctx context.Context) ([]*Holiday, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QueryMultiple(ctx, r.db, `SELECT id, mmdd, name FROM holidays ORDER BY rowid ASC`, ScanHolidays, "holidays")
}

// PutHoliday inserts or replaces a custom holiday by ID
func (r *SQLiteRepository) PutHoliday(ctx context.Context, holiday *Holiday) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "put holiday", upsertHolidayQuery, holiday.ID, holiday.MMDD, holiday.Name)
}

// DeleteHoliday deletes a custom holiday by ID
func (r *SQLiteRepository) DeleteHoliday(ctx context.Context, id string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM holidays WHERE id = ?`, "holiday", id, id)
}

// ClearHolidays removes every custom holiday
func (r *SQLiteRepository) ClearHolidays(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "clear holidays", `DELETE FROM holidays`)
}

// ReplaceHolidays swaps the whole collection for holidays
func (r *SQLiteRepository) ReplaceHolidays(ctx context.Context, holidays []*Holiday) error {
	return r.replace(ctx, "holidays", len(holidays), func(tx *sql.Tx, i int) error {
		h := holidays[i]
		return Execute(ctx, tx, "put holiday", upsertHolidayQuery, h.ID, h.MMDD, h.Name)
	})
}

// ========== settings ==========

const upsertSettingsQuery = `
	INSERT INTO settings (key, accent, debug, last_prompted)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		accent = excluded.accent,
		debug = excluded.debug,
		last_prompted = excluded.last_prompted`

// GetSettings retrieves the settings record; not found until first written
func (r *SQLiteRepository) GetSettings(ctx context.Context) (*Settings, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT accent, debug, last_prompted FROM settings WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanSettings, "settings", SettingsKey, SettingsKey)
}

// ListSettings returns the settings record as a zero- or one-element slice
func (r *SQLiteRepository) ListSettings(ctx context.Context) ([]*Settings, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT accent, debug, last_prompted FROM settings WHERE key = ?`
	return QueryMultiple(ctx, r.db, query, ScanSettingsRows, "settings", SettingsKey)
}

// PutSettings writes the settings record under SettingsKey
func (r *SQLiteRepository) PutSettings(ctx context.Context, settings *Settings) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "put settings", upsertSettingsQuery,
		SettingsKey, settings.Accent, settings.Debug, settings.LastPrompted)
}

// ClearSettings removes the settings record
func (r *SQLiteRepository) ClearSettings(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "clear settings", `DELETE FROM settings`)
}

// ReplaceSettings clears settings and stores the last element, if any, under SettingsKey
func (r *SQLiteRepository) ReplaceSettings(ctx context.Context, settings []*Settings) error {
	n := 0
	if len(settings) > 0 {
		n = 1
	}
	return r.replace(ctx, "settings", n, func(tx *sql.Tx, _ int) error {
		s := settings[len(settings)-1]
		return Execute(ctx, tx, "put settings", upsertSettingsQuery,
			SettingsKey, s.Accent, s.Debug, s.LastPrompted)
	})
}

// ========== meta ==========

const upsertMetaQuery = `
	INSERT INTO meta (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

// GetMeta retrieves a meta record by key
func (r *SQLiteRepository) GetMeta(ctx context.Context, key string) (*MetaEntry, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QuerySingle(ctx, r.db, `SELECT key, value FROM meta WHERE key = ?`, ScanMetaEntry, "meta", key, key)
}

// ListMeta retrieves all meta records ordered by key
func (r *SQLiteRepository) ListMeta(ctx context.Context) ([]*MetaEntry, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	return QueryMultiple(ctx, r.db, `SELECT key, value FROM meta ORDER BY key ASC`, ScanMetaEntries, "meta")
}

// PutMeta inserts or replaces a meta record
func (r *SQLiteRepository) PutMeta(ctx context.Context, entry *MetaEntry) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "put meta", upsertMetaQuery, entry.Key, entry.Value)
}

// DeleteMeta deletes a meta record by key
func (r *SQLiteRepository) DeleteMeta(ctx context.Context, key string) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM meta WHERE key = ?`, "meta", key, key)
}

// ClearMeta removes every meta record
func (r *SQLiteRepository) ClearMeta(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "clear meta", `DELETE FROM meta`)
}

// ReplaceMeta swaps the whole collection for entries
func (r *SQLiteRepository) ReplaceMeta(ctx context.Context, entries []*MetaEntry) error {
	return r.replace(ctx, "meta", len(entries), func(tx *sql.Tx, i int) error {
		return Execute(ctx, tx, "put meta", upsertMetaQuery, entries[i].Key, entries[i].Value)
	})
}

// ========== debug log ==========

// GetDebugLogEntry retrieves one debug log line by its sequence number
func (r *SQLiteRepository) GetDebugLogEntry(ctx context.Context, id int64) (*DebugLogEntry, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT id, timestamp, message FROM debug_log WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanDebugLogEntry, "debug log entry", fmt.Sprintf("%d", id), id)
}

// ListDebugLog retrieves the debug log oldest first
func (r *SQLiteRepository) ListDebugLog(ctx context.Context) ([]*DebugLogEntry, error) {
	ctx, cancel := r.readContext(ctx)
	defer cancel()

	query := `SELECT id, timestamp, message FROM debug_log ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanDebugLogEntries, "debug log")
}

// AppendDebugLog adds a line and assigns its sequence number
func (r *SQLiteRepository) AppendDebugLog(ctx context.Context, entry *DebugLogEntry) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, r.db,
		`INSERT INTO debug_log (timestamp, message) VALUES (?, ?)`, entry.Timestamp, entry.Message)
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// DeleteDebugLogEntry deletes one debug log line
func (r *SQLiteRepository) DeleteDebugLogEntry(ctx context.Context, id int64) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM debug_log WHERE id = ?`, "debug log entry", fmt.Sprintf("%d", id), id)
}

// ClearDebugLog removes every debug log line
func (r *SQLiteRepository) ClearDebugLog(ctx context.Context) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	return Execute(ctx, r.db, "clear debug log", `DELETE FROM debug_log`)
}

// ReplaceDebugLog swaps the log for entries, keeping their sequence numbers
func (r *SQLiteRepository) ReplaceDebugLog(ctx context.Context, entries []*DebugLogEntry) error {
	return r.replace(ctx, "debug_log", len(entries), func(tx *sql.Tx, i int) error {
		e := entries[i]
		return Execute(ctx, tx, "put debug log entry",
			`INSERT OR REPLACE INTO debug_log (id, timestamp, message) VALUES (?, ?, ?)`,
			e.ID, e.Timestamp, e.Message)
	})
}
