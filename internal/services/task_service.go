package services

import (
	"context"
	"strings"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/logging"
	"ritual/internal/repository/sqlite"
	"ritual/internal/validation"

	"github.com/google/uuid"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

func (t *taskServiceImpl) validateDate(date string) error {
	return validation.ToAppError(t.taskValidator.ValidateDateKey(date))
}

// validateAndTrimTitle validates and trims a task title
func (t *taskServiceImpl) validateAndTrimTitle(title string) (string, error) {
	trimmed, err := t.taskValidator.GetValidTitle(title)
	if err != nil {
		return "", validation.ToAppError(err)
	}
	return trimmed, nil
}

// TasksForDate returns the tasks of date, not-done first, then by order
func (t *taskServiceImpl) TasksForDate(ctx context.Context, date string) ([]domain.Task, error) {
	if err := t.validateDate(date); err != nil {
		return nil, err
	}

	dbTasks, err := t.repo.ListTasksByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	tasks := t.mapper.Task.FromDatabaseSlice(dbTasks)
	domain.SortTasks(tasks)
	return tasks, nil
}

// AllTasks returns every task across all dates
func (t *taskServiceImpl) AllTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.NewValidationError("invalid task id", nil)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(dbTask)
	return &task, nil
}

// nextOrder returns an order that sorts after every existing task of date:
// the current time in ms, bumped past the largest order already used.
func (t *taskServiceImpl) nextOrder(ctx context.Context, date string) (int64, error) {
	existing, err := t.repo.ListTasksByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	order := timeNow().UnixMilli()
	for _, task := range existing {
		if task.Order >= order {
			order = task.Order + 1
		}
	}
	return order, nil
}

// AddTask creates a not-done task at the end of date and returns its id
func (t *taskServiceImpl) AddTask(ctx context.Context, date, title string) (string, error) {
	if err := t.validateDate(date); err != nil {
		return "", err
	}
	trimmed, err := t.validateAndTrimTitle(title)
	if err != nil {
		return "", err
	}

	order, err := t.nextOrder(ctx, date)
	if err != nil {
		return "", err
	}

	task := domain.NewTask(date, trimmed)
	task.ID = uuid.NewString()
	task.Order = order

	if err := t.repo.PutTask(ctx, t.mapper.Task.ToDatabase(task)); err != nil {
		return "", err
	}
	logging.Debugf("added task %s on %s (order %d)\n", task.ID, date, order)
	return task.ID, nil
}

// lookup fetches a task, reporting (nil, nil) when it does not exist.
func (t *taskServiceImpl) lookup(ctx context.Context, id string) (*sqlite.Task, error) {
	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			logging.Debugf("task %s not found, ignoring\n", id)
			return nil, nil
		}
		return nil, err
	}
	return dbTask, nil
}

// UpdateTaskTitle changes a task's title, leaving done and order alone
func (t *taskServiceImpl) UpdateTaskTitle(ctx context.Context, id, title string) error {
	trimmed, err := t.validateAndTrimTitle(title)
	if err != nil {
		return err
	}

	dbTask, err := t.lookup(ctx, id)
	if err != nil || dbTask == nil {
		return err
	}

	dbTask.Title = trimmed
	return t.repo.PutTask(ctx, dbTask)
}

// DeleteTask removes a task
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return errors.IgnoreNotFound(t.repo.DeleteTask(ctx, id))
}

// ToggleTaskDone flips done without touching order, so a reopened task
// returns to its original position
func (t *taskServiceImpl) ToggleTaskDone(ctx context.Context, id string) error {
	dbTask, err := t.lookup(ctx, id)
	if err != nil || dbTask == nil {
		return err
	}

	dbTask.Done = !dbTask.Done
	return t.repo.PutTask(ctx, dbTask)
}

// ReorderTasks sets order to the position in ids for each task of date named
// there. Other tasks, including ones from other dates, are left untouched.
// A repeated id keeps its first position.
func (t *taskServiceImpl) ReorderTasks(ctx context.Context, date string, ids []string) error {
	if err := t.validateDate(date); err != nil {
		return err
	}

	dbTasks, err := t.repo.ListTasksByDate(ctx, date)
	if err != nil {
		return err
	}

	byID := make(map[string]*sqlite.Task, len(dbTasks))
	for _, task := range dbTasks {
		byID[task.ID] = task
	}

	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		task, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true

		task.Order = int64(i)
		if err := t.repo.PutTask(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

// ImportPlan adds one task per non-blank line of text. Every line is
// validated before anything is written.
func (t *taskServiceImpl) ImportPlan(ctx context.Context, date, text string) ([]string, error) {
	if err := t.validateDate(date); err != nil {
		return nil, err
	}

	var titles []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := t.validateAndTrimTitle(line); err != nil {
			return nil, err
		}
		titles = append(titles, line)
	}

	ids := make([]string, 0, len(titles))
	for _, title := range titles {
		id, err := t.AddTask(ctx, date, title)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ClearDone deletes the done tasks of date and returns how many went
func (t *taskServiceImpl) ClearDone(ctx context.Context, date string) (int, error) {
	if err := t.validateDate(date); err != nil {
		return 0, err
	}

	dbTasks, err := t.repo.ListTasksByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	cleared := 0
	for _, task := range dbTasks {
		if !task.Done {
			continue
		}
		if err := errors.IgnoreNotFound(t.repo.DeleteTask(ctx, task.ID)); err != nil {
			return cleared, err
		}
		cleared++
	}
	return cleared, nil
}
