package api

import (
	"context"
	"testing"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (sqlite.Repository, func()) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	cleanup := func() { repo.Close() }
	return repo, cleanup
}

func TestAddTask_Errors(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		title          string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:  "should return validation error for empty title",
			date:  "2024-03-10",
			title: "",
			errorAssertion: func(t *testing.T, err error) {
				var appErr *errors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.True(t, appErr.IsType(errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name:  "should return validation error for invalid date",
			date:  "2024-02-30",
			title: "Task",
			errorAssertion: func(t *testing.T, err error) {
				var appErr *errors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.True(t, appErr.IsType(errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "date")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, cleanup := setupTestRepo(t)
			defer cleanup()

			task, err := New(repo, config.NewConfig()).AddTask(context.Background(), tt.date, tt.title)

			require.Error(t, err)
			assert.Nil(t, task)
			tt.errorAssertion(t, err)
		})
	}
}

func TestTitleLimitFromConfig(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 5
	api := New(repo, cfg)

	_, err := api.AddTask(context.Background(), "2024-03-10", "Too long")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	task, err := api.AddTask(context.Background(), "2024-03-10", "Short")
	require.NoError(t, err)
	assert.Equal(t, "Short", task.Title)
}

func TestReorderAndClearDone(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	api := New(repo, nil)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		task, err := api.AddTask(ctx, "2024-03-10", title)
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	require.NoError(t, api.ReorderTasks(ctx, "2024-03-10", []string{ids[2], ids[0], ids[1]}))
	require.NoError(t, api.ToggleTaskDone(ctx, ids[0]))

	tasks, err := api.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{tasks[0].Title, tasks[1].Title, tasks[2].Title})

	cleared, err := api.ClearDone(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	summary, err := api.DaySummary(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Contains(t, summary, "- [ ] c\n- [ ] b")
	assert.NotContains(t, summary, "- [x]")
}

func TestHolidaysAndSettings(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	api := New(repo, nil)
	ctx := context.Background()

	holiday, err := api.AddHoliday(ctx, "04-01", "Pranks")
	require.NoError(t, err)
	assert.Equal(t, "Pranks", holiday.Name)

	name := "Fools"
	require.NoError(t, api.UpdateHoliday(ctx, holiday.ID, domain.HolidayPatch{Name: &name}))
	onDay, err := api.HolidaysForDate(ctx, "2025-04-01")
	require.NoError(t, err)
	require.Len(t, onDay, 1)
	assert.Equal(t, "Fools", onDay[0].Name)

	require.NoError(t, api.DeleteHoliday(ctx, holiday.ID))
	all, err := api.ListHolidays(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, api.SetAccent(ctx, "green"))
	require.NoError(t, api.SetDebugEnabled(ctx, true))
	settings, err := api.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "#66bb6a", settings.Accent)
	assert.True(t, settings.Debug)

	_, err = api.CheckStartOfDay(ctx, "2024-03-10")
	require.NoError(t, err)
	entries, err := api.DebugLog(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	require.NoError(t, api.ClearDebugLog(ctx))
	entries, err = api.DebugLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestTemplateUpdateAndDelete(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	api := New(repo, nil)
	ctx := context.Background()

	tmpl, err := api.AddTemplate(ctx, domain.TemplateDefinition{Title: "Review", Type: domain.TemplateTypeDaily})
	require.NoError(t, err)

	weekly, day := domain.TemplateTypeWeekly, 5
	require.NoError(t, api.UpdateTemplate(ctx, tmpl.ID, domain.TemplatePatch{Type: &weekly, Day: &day}))

	friday, err := api.TemplatesForDate(ctx, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, friday, 1)
	saturday, err := api.TemplatesForDate(ctx, "2024-03-16")
	require.NoError(t, err)
	assert.Empty(t, saturday)

	require.NoError(t, api.DeleteTemplate(ctx, tmpl.ID))
	all, err := api.ListTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
