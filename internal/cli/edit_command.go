package cli

import (
	"context"
	"strings"

	"ritual/internal/errors"
)

// taskCommand holds what the commands acting on existing tasks share
type taskCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date string
}

func newTaskCommand(app *App) taskCommand {
	return taskCommand{app: app, errorHandler: NewErrorHandler()}
}

// resolve maps every ref to a task id before anything is changed, so list
// positions refer to the list as it was printed
func (c *taskCommand) resolve(ctx context.Context, refs []string) (string, []string, error) {
	date, err := c.app.resolveDate(c.Date)
	if err != nil {
		return "", nil, err
	}
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		id, err := c.app.resolveTaskID(ctx, date, ref)
		if err != nil {
			return "", nil, err
		}
		ids = append(ids, id)
	}
	return date, ids, nil
}

// EditCommand renames a task
type EditCommand struct{ taskCommand }

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{newTaskCommand(app)}
}

// Execute runs `edit <task> <new title...>`
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: ritual edit <task> \"new title\"")
	}
	_, ids, err := c.resolve(ctx, args[:1])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	title := strings.Join(args[1:], " ")
	if err := c.app.api.UpdateTaskTitle(ctx, ids[0], title); err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	c.app.printf("Renamed task to: %s\n", strings.TrimSpace(title))
	return nil
}

// DoneCommand toggles the done state of tasks
type DoneCommand struct{ taskCommand }

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{newTaskCommand(app)}
}

// Execute toggles every named task
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "done", "usage: ritual done <task>...")
	}
	_, ids, err := c.resolve(ctx, args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	for _, id := range ids {
		if err := c.app.api.ToggleTaskDone(ctx, id); err != nil {
			return c.errorHandler.Handle("toggle task", err)
		}
		task, err := c.app.api.GetTask(ctx, id)
		if err != nil {
			continue
		}
		c.app.printf("%s %s\n", checkbox(task.Done), task.Title)
	}
	return nil
}

// DeleteCommand removes tasks
type DeleteCommand struct{ taskCommand }

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{newTaskCommand(app)}
}

// Execute deletes every named task
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: ritual delete <task>...")
	}
	_, ids, err := c.resolve(ctx, args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	for _, id := range ids {
		if err := c.app.api.DeleteTask(ctx, id); err != nil {
			return c.errorHandler.Handle("delete task", err)
		}
	}
	c.app.printf("Deleted %d task(s)\n", len(ids))
	return nil
}

// ReorderCommand sets the order of a day's tasks
type ReorderCommand struct{ taskCommand }

// NewReorderCommand creates a new reorder command handler
func NewReorderCommand(app *App) *ReorderCommand {
	return &ReorderCommand{newTaskCommand(app)}
}

// Execute puts the named tasks first, in the order given
func (c *ReorderCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "reorder", "usage: ritual reorder <task> <task>...")
	}
	date, ids, err := c.resolve(ctx, args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.ReorderTasks(ctx, date, ids); err != nil {
		return c.errorHandler.Handle("reorder tasks", err)
	}
	return NewListCommand(c.app).Execute(ctx, []string{date})
}

// ClearDoneCommand deletes the finished tasks of a day
type ClearDoneCommand struct{ taskCommand }

// NewClearDoneCommand creates a new clear-done command handler
func NewClearDoneCommand(app *App) *ClearDoneCommand {
	return &ClearDoneCommand{newTaskCommand(app)}
}

// Execute runs the clear-done command
func (c *ClearDoneCommand) Execute(ctx context.Context, args []string) error {
	date, err := c.app.resolveDate(c.Date)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	cleared, err := c.app.api.ClearDone(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("clear done tasks", err)
	}
	c.app.printf("Cleared %d done task(s) from %s\n", cleared, date)
	return nil
}
