package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/repository/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepository opens an in-memory store closed at the end of the test
func setupRepository(t *testing.T) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func setupTaskService(t *testing.T) (TaskService, sqlite.Repository) {
	t.Helper()
	repo := setupRepository(t)
	return NewTaskService(repo, config.NewConfig()), repo
}

// freezeClock pins timeNow for the duration of the test
func freezeClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = prev })
}

func titles(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

func TestTaskService_AddTask(t *testing.T) {
	tests := []struct {
		name           string
		date           string
		title          string
		expectedTitle  string
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:          "should add task with valid title",
			date:          "2024-03-10",
			title:         "Write report",
			expectedTitle: "Write report",
		},
		{
			name:          "should trim surrounding whitespace",
			date:          "2024-03-10",
			title:         "  Stretch  ",
			expectedTitle: "Stretch",
		},
		{
			name:  "should reject empty title",
			date:  "2024-03-10",
			title: "   ",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "title")
			},
		},
		{
			name:  "should reject title over the maximum length",
			date:  "2024-03-10",
			title: strings.Repeat("x", 501),
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			},
		},
		{
			name:  "should reject malformed date",
			date:  "10/03/2024",
			title: "Write report",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				assert.Contains(t, err.Error(), "date")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setupTaskService(t)
			ctx := context.Background()

			id, err := service.AddTask(ctx, tt.date, tt.title)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, id)

			task, err := service.GetTask(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTitle, task.Title)
			assert.Equal(t, tt.date, task.Date)
			assert.False(t, task.Done)
		})
	}
}

func TestTaskService_AddTask_OrderStrictlyIncreasing(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	freezeClock(t, now)

	for _, title := range []string{"a", "b", "c"} {
		_, err := service.AddTask(ctx, "2024-03-10", title)
		require.NoError(t, err)
	}

	tasks, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, []string{"a", "b", "c"}, titles(tasks))
	assert.Equal(t, now.UnixMilli(), tasks[0].Order)
	assert.Equal(t, now.UnixMilli()+1, tasks[1].Order)
	assert.Equal(t, now.UnixMilli()+2, tasks[2].Order)
}

func TestTaskService_TasksForDate_DoneLast(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	ids := make([]string, 0, 3)
	for _, title := range []string{"first", "second", "third"} {
		id, err := service.AddTask(ctx, "2024-03-10", title)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	_, err := service.AddTask(ctx, "2024-03-11", "tomorrow")
	require.NoError(t, err)

	require.NoError(t, service.ToggleTaskDone(ctx, ids[0]))

	tasks, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "third", "first"}, titles(tasks))

	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]
		if prev.Done == cur.Done {
			assert.Less(t, prev.Order, cur.Order)
		} else {
			assert.False(t, prev.Done)
		}
	}
}

func TestTaskService_ToggleTaskDone_Involution(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		id, err := service.AddTask(ctx, "2024-03-10", title)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	before, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)

	require.NoError(t, service.ToggleTaskDone(ctx, ids[1]))
	middle, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, titles(middle))

	require.NoError(t, service.ToggleTaskDone(ctx, ids[1]))
	after, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTaskService_ReorderTasks(t *testing.T) {
	tests := []struct {
		name     string
		titles   []string
		done     []int
		order    func(ids []string) []string
		expected []string
	}{
		{
			name:     "should apply full reversal",
			order:    func(ids []string) []string { return []string{ids[2], ids[1], ids[0]} },
			expected: []string{"c", "b", "a"},
		},
		{
			name:     "should put named tasks before unnamed ones",
			order:    func(ids []string) []string { return []string{ids[2]} },
			expected: []string{"c", "a", "b"},
		},
		{
			name:     "should ignore unknown ids",
			order:    func(ids []string) []string { return []string{"missing", ids[1], ids[0], ids[2]} },
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "should keep the first position of a repeated id",
			order:    func(ids []string) []string { return []string{ids[1], ids[0], ids[1], ids[2]} },
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "should leave done tasks in place when only not-done tasks move",
			titles:   []string{"a", "b", "c", "d", "e"},
			done:     []int{1, 3},
			order:    func(ids []string) []string { return []string{ids[4], ids[2], ids[0]} },
			expected: []string{"e", "c", "a", "b", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setupTaskService(t)
			ctx := context.Background()

			names := tt.titles
			if names == nil {
				names = []string{"a", "b", "c"}
			}
			var ids []string
			for _, title := range names {
				id, err := service.AddTask(ctx, "2024-03-10", title)
				require.NoError(t, err)
				ids = append(ids, id)
			}
			doneOrders := make(map[string]int64, len(tt.done))
			for _, i := range tt.done {
				require.NoError(t, service.ToggleTaskDone(ctx, ids[i]))
				task, err := service.GetTask(ctx, ids[i])
				require.NoError(t, err)
				doneOrders[ids[i]] = task.Order
			}

			require.NoError(t, service.ReorderTasks(ctx, "2024-03-10", tt.order(ids)))

			tasks, err := service.TasksForDate(ctx, "2024-03-10")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, titles(tasks))
			for id, order := range doneOrders {
				task, err := service.GetTask(ctx, id)
				require.NoError(t, err)
				assert.True(t, task.Done)
				assert.Equal(t, order, task.Order)
			}
		})
	}
}

func TestTaskService_ReorderTasks_LeavesOtherDatesAlone(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	today, err := service.AddTask(ctx, "2024-03-10", "today")
	require.NoError(t, err)
	other, err := service.AddTask(ctx, "2024-03-11", "tomorrow")
	require.NoError(t, err)

	before, err := service.GetTask(ctx, other)
	require.NoError(t, err)

	require.NoError(t, service.ReorderTasks(ctx, "2024-03-10", []string{other, today}))

	after, err := service.GetTask(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, before.Order, after.Order)

	moved, err := service.GetTask(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), moved.Order)
}

func TestTaskService_UpdateTaskTitle(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	id, err := service.AddTask(ctx, "2024-03-10", "Draft")
	require.NoError(t, err)
	require.NoError(t, service.ToggleTaskDone(ctx, id))
	original, err := service.GetTask(ctx, id)
	require.NoError(t, err)

	require.NoError(t, service.UpdateTaskTitle(ctx, id, " Final "))

	updated, err := service.GetTask(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.True(t, updated.Done)
	assert.Equal(t, original.Order, updated.Order)

	err = service.UpdateTaskTitle(ctx, id, "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestTaskService_MissingIDsAreNoOps(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	assert.NoError(t, service.UpdateTaskTitle(ctx, "missing", "title"))
	assert.NoError(t, service.ToggleTaskDone(ctx, "missing"))
	assert.NoError(t, service.DeleteTask(ctx, "missing"))

	all, err := service.AllTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = service.GetTask(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestTaskService_DeleteTask(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	id, err := service.AddTask(ctx, "2024-03-10", "Temporary")
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(ctx, id))

	tasks, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskService_ImportPlan(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expected      []string
		expectedError bool
	}{
		{
			name:     "should add one task per non-blank line",
			text:     "Email Sam\n\n   Gym  \r\n\t\nRead",
			expected: []string{"Email Sam", "Gym", "Read"},
		},
		{
			name:     "should add nothing for blank text",
			text:     "\n \n",
			expected: []string{},
		},
		{
			name:          "should add nothing when any line is invalid",
			text:          "Fine\n" + strings.Repeat("y", 600),
			expected:      []string{},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := setupTaskService(t)
			ctx := context.Background()

			ids, err := service.ImportPlan(ctx, "2024-03-10", tt.text)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, ids, len(tt.expected))
			}

			tasks, err := service.TasksForDate(ctx, "2024-03-10")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, titles(tasks))
		})
	}
}

func TestTaskService_ClearDone(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		id, err := service.AddTask(ctx, "2024-03-10", title)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	otherDay, err := service.AddTask(ctx, "2024-03-11", "other")
	require.NoError(t, err)

	require.NoError(t, service.ToggleTaskDone(ctx, ids[0]))
	require.NoError(t, service.ToggleTaskDone(ctx, ids[2]))
	require.NoError(t, service.ToggleTaskDone(ctx, otherDay))

	cleared, err := service.ClearDone(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2, cleared)

	tasks, err := service.TasksForDate(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, titles(tasks))

	_, err = service.GetTask(ctx, otherDay)
	assert.NoError(t, err)
}
