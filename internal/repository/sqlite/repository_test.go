package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"ritual/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*SQLiteRepository, func()) {
	dbPath := filepath.Join(t.TempDir(), "ritual.db")

	repo, err := New(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
	}

	return repo, cleanup
}

func TestNew_ReopenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ritual.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.PutTask(ctx, &Task{ID: "a", Date: "2024-03-10", Title: "Stretch", Order: 1}))
	require.NoError(t, repo.Close())

	repo, err = New(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	task, err := repo.GetTask(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Stretch", task.Title)
}

func TestNew_ReopenKeepsEmptyMeta(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ritual.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	require.NoError(t, err)
	meta, err := repo.ListMeta(ctx)
	require.NoError(t, err)
	assert.Empty(t, meta)

	require.NoError(t, repo.PutMeta(ctx, &MetaEntry{Key: "version", Value: "1"}))
	require.NoError(t, repo.ReplaceMeta(ctx, nil))
	require.NoError(t, repo.Close())

	repo, err = New(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	meta, err = repo.ListMeta(ctx)
	require.NoError(t, err)
	assert.Empty(t, meta)
}

func TestNew_InMemory(t *testing.T) {
	repo, err := New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.PutTask(ctx, &Task{ID: "a", Date: "2024-03-10", Title: "Read"}))
	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := NewWithOptions(filepath.Join(t.TempDir(), "x.db"), Options{Driver: "postgres"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageUnavailable))
}

func TestNew_UnwritablePath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "ritual.db"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorageUnavailable))
}

func TestTaskCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	task := &Task{ID: "t1", Date: "2024-03-10", Title: "Write", Order: 100}
	require.NoError(t, repo.PutTask(ctx, task))

	got, err := repo.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, task, got)

	// Put is an upsert
	task.Done = true
	task.Title = "Write more"
	require.NoError(t, repo.PutTask(ctx, task))
	got, err = repo.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, "Write more", got.Title)

	all, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteTask(ctx, "t1"))
	_, err = repo.GetTask(ctx, "t1")
	assert.True(t, errors.IsNotFound(err))

	err = repo.DeleteTask(ctx, "t1")
	assert.True(t, errors.IsNotFound(err))
}

func TestListTasksByDate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	fixtures := []*Task{
		{ID: "a", Date: "2024-03-10", Title: "A", Order: 3},
		{ID: "b", Date: "2024-03-10", Title: "B", Order: 1, Done: true},
		{ID: "c", Date: "2024-03-10", Title: "C", Order: 2},
		{ID: "d", Date: "2024-03-11", Title: "D", Order: 0},
	}
	for _, f := range fixtures {
		require.NoError(t, repo.PutTask(ctx, f))
	}

	tasks, err := repo.ListTasksByDate(ctx, "2024-03-10")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "c", tasks[0].ID)
	assert.Equal(t, "a", tasks[1].ID)
	assert.Equal(t, "b", tasks[2].ID)

	empty, err := repo.ListTasksByDate(ctx, "1999-01-01")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestReplaceTasks(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repo.PutTask(ctx, &Task{ID: "old", Date: "2024-01-01", Title: "Old"}))

	replacement := []*Task{
		{ID: "n2", Date: "2024-02-02", Title: "Second", Order: 5},
		{ID: "n1", Date: "2024-02-01", Title: "First", Order: 9, Done: true},
	}
	require.NoError(t, repo.ReplaceTasks(ctx, replacement))

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, tasks)

	require.NoError(t, repo.ReplaceTasks(ctx, nil))
	tasks, err = repo.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestReplaceTasks_DuplicateIDLastWins(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTasks(ctx, []*Task{
		{ID: "x", Date: "2024-02-02", Title: "one"},
		{ID: "x", Date: "2024-02-02", Title: "two"},
	}))

	tasks, err := repo.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "two", tasks[0].Title)
}

func TestTemplateCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	tmpl := &Template{ID: "w", Title: "Gym", Type: "weekly", Enabled: true, Days: []int{3}}
	require.NoError(t, repo.PutTemplate(ctx, tmpl))
	require.NoError(t, repo.PutTemplate(ctx, &Template{ID: "d", Title: "Meditate", Type: "daily", Enabled: false, Days: []int{0, 1, 2, 3, 4, 5, 6}}))

	got, err := repo.GetTemplate(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, tmpl, got)

	all, err := repo.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "w", all[0].ID)
	assert.False(t, all[1].Enabled)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, all[1].Days)

	require.NoError(t, repo.DeleteTemplate(ctx, "w"))
	assert.True(t, errors.IsNotFound(repo.DeleteTemplate(ctx, "w")))

	require.NoError(t, repo.ClearTemplates(ctx))
	all, err = repo.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHolidayCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	h := &Holiday{ID: "h1", MMDD: "04-01", Name: "Fools"}
	require.NoError(t, repo.PutHoliday(ctx, h))

	got, err := repo.GetHoliday(ctx, "h1")
	require.NoError(t, err)
	assert.Equal(t, h, got)

	require.NoError(t, repo.ReplaceHolidays(ctx, []*Holiday{{ID: "h2", MMDD: "12-31", Name: "NYE"}}))
	_, err = repo.GetHoliday(ctx, "h1")
	assert.True(t, errors.IsNotFound(err))

	all, err := repo.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "NYE", all[0].Name)

	require.NoError(t, repo.DeleteHoliday(ctx, "h2"))
	require.NoError(t, repo.ClearHolidays(ctx))
}

func TestSettings(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	_, err := repo.GetSettings(ctx)
	assert.True(t, errors.IsNotFound(err))

	list, err := repo.ListSettings(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	s := &Settings{Accent: "#112233", Debug: true, LastPrompted: "2024-03-10"}
	require.NoError(t, repo.PutSettings(ctx, s))

	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	require.NoError(t, repo.ReplaceSettings(ctx, []*Settings{
		{Accent: "#000"},
		{Accent: "#fff", LastPrompted: "2024-03-11"},
	}))
	list, err = repo.ListSettings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "#fff", list[0].Accent)

	require.NoError(t, repo.ReplaceSettings(ctx, nil))
	_, err = repo.GetSettings(ctx)
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, repo.PutSettings(ctx, s))
	require.NoError(t, repo.ClearSettings(ctx))
	_, err = repo.GetSettings(ctx)
	assert.True(t, errors.IsNotFound(err))
}

func TestMeta(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repo.PutMeta(ctx, &MetaEntry{Key: "version", Value: "3"}))
	require.NoError(t, repo.PutMeta(ctx, &MetaEntry{Key: "version", Value: "4"}))

	got, err := repo.GetMeta(ctx, "version")
	require.NoError(t, err)
	assert.Equal(t, "4", got.Value)

	all, err := repo.ListMeta(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteMeta(ctx, "version"))
	assert.True(t, errors.IsNotFound(repo.DeleteMeta(ctx, "version")))

	require.NoError(t, repo.ReplaceMeta(ctx, []*MetaEntry{{Key: "k", Value: "v"}}))
	all, err = repo.ListMeta(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*MetaEntry{{Key: "k", Value: "v"}}, all)

	require.NoError(t, repo.ClearMeta(ctx))
	all, err = repo.ListMeta(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDebugLog(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	first := &DebugLogEntry{Timestamp: 1000, Message: "one"}
	second := &DebugLogEntry{Timestamp: 2000, Message: "two"}
	require.NoError(t, repo.AppendDebugLog(ctx, first))
	require.NoError(t, repo.AppendDebugLog(ctx, second))
	assert.Greater(t, second.ID, first.ID)

	got, err := repo.GetDebugLogEntry(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "one", got.Message)

	entries, err := repo.ListDebugLog(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "two", entries[1].Message)

	require.NoError(t, repo.DeleteDebugLogEntry(ctx, first.ID))
	assert.True(t, errors.IsNotFound(repo.DeleteDebugLogEntry(ctx, first.ID)))

	require.NoError(t, repo.ReplaceDebugLog(ctx, []*DebugLogEntry{{ID: 42, Timestamp: 5, Message: "restored"}}))
	entries, err = repo.ListDebugLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*DebugLogEntry{{ID: 42, Timestamp: 5, Message: "restored"}}, entries)

	// Sequence continues past restored ids
	next := &DebugLogEntry{Timestamp: 6, Message: "next"}
	require.NoError(t, repo.AppendDebugLog(ctx, next))
	assert.Greater(t, next.ID, int64(42))

	require.NoError(t, repo.ClearDebugLog(ctx))
	entries, err = repo.ListDebugLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCancelledContext(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListTasks(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeTimeout))
}
