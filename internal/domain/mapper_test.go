package domain

import (
	"testing"
	"time"

	"ritual/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
)

func TestTaskMapper_RoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	task := Task{ID: "a", Date: "2024-03-10", Title: "Read", Done: true, Order: 7}

	db := mapper.ToDatabase(task)
	assert.Equal(t, &sqlite.Task{ID: "a", Date: "2024-03-10", Title: "Read", Done: true, Order: 7}, db)
	assert.Equal(t, task, mapper.FromDatabase(db))
}

func TestTaskMapper_FromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()

	result := mapper.FromDatabaseSlice([]*sqlite.Task{
		{ID: "1", Title: "Task 1"},
		{ID: "2", Title: "Task 2"},
	})

	expected := []Task{
		{ID: "1", Title: "Task 1"},
		{ID: "2", Title: "Task 2"},
	}
	assert.Equal(t, expected, result)
	assert.Empty(t, mapper.FromDatabaseSlice(nil))
}

func TestTemplateMapper(t *testing.T) {
	mapper := NewTemplateMapper()
	tmpl := Template{ID: "t", Title: "Gym", Type: TemplateTypeWeekly, Enabled: true, Days: []int{2}}

	db := mapper.ToDatabase(tmpl)
	assert.Equal(t, "weekly", db.Type)
	assert.Equal(t, []int{2}, db.Days)

	// copies, not aliases
	db.Days[0] = 5
	assert.Equal(t, []int{2}, tmpl.Days)

	back := mapper.FromDatabase(&sqlite.Template{ID: "t", Title: "Gym", Type: "daily", Days: []int{0, 1}})
	assert.Equal(t, TemplateTypeDaily, back.Type)
	assert.Equal(t, []int{0, 1}, back.Days)
}

func TestHolidayAndSettingsMapper(t *testing.T) {
	m := NewMapper()

	h := Holiday{ID: "h", MMDD: "04-01", Name: "Fools"}
	assert.Equal(t, h, m.Holiday.FromDatabase(m.Holiday.ToDatabase(h)))

	s := Settings{Accent: "#abc", Debug: true, LastPrompted: "2024-03-10"}
	assert.Equal(t, s, m.Settings.FromDatabase(m.Settings.ToDatabase(s)))
}

func TestDebugLogMapper(t *testing.T) {
	mapper := NewDebugLogMapper()
	ts := time.Date(2024, 3, 10, 8, 30, 0, 123000000, time.UTC)

	db := mapper.ToDatabase(DebugLogEntry{ID: 3, Timestamp: ts, Message: "hi"})
	assert.Equal(t, ts.UnixMilli(), db.Timestamp)

	back := mapper.FromDatabase(db)
	assert.True(t, ts.Equal(back.Timestamp))
	assert.Equal(t, "hi", back.Message)
	assert.Len(t, mapper.FromDatabaseSlice([]*sqlite.DebugLogEntry{db}), 1)
}
