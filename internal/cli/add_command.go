package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"ritual/internal/errors"
)

// AddCommand adds one task
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute adds a task titled by the joined arguments
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: ritual add \"task title\"")
	}
	date, err := c.app.resolveDate(c.Date)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.api.AddTask(ctx, date, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}
	c.app.printf("Added task: %s (%s)\n", task.Title, task.Date)
	return nil
}

// PlanCommand adds one task per line of a plan
type PlanCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date string
	File string
}

// NewPlanCommand creates a new plan command handler
func NewPlanCommand(app *App) *PlanCommand {
	return &PlanCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute reads the plan from File, or from stdin when File is empty or "-"
func (c *PlanCommand) Execute(ctx context.Context, args []string) error {
	date, err := c.app.resolveDate(c.Date)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	var text []byte
	if c.File == "" || c.File == "-" {
		text, err = io.ReadAll(c.app.in)
	} else {
		text, err = os.ReadFile(c.File)
	}
	if err != nil {
		return c.errorHandler.Handle("read plan", err)
	}

	tasks, err := c.app.api.ImportPlan(ctx, date, string(text))
	if err != nil {
		return c.errorHandler.Handle("import plan", err)
	}
	c.app.printf("Added %d task(s) to %s\n", len(tasks), date)
	return nil
}
