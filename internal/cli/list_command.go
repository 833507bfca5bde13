package cli

import (
	"context"
)

// ListCommand prints the tasks of one day
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date     string
	ShowIDs  bool
	HideDone bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the list command. An optional argument names the day.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	dateArg := c.Date
	if len(args) > 0 {
		dateArg = args[0]
	}
	date, err := c.app.resolveDate(dateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	day, err := c.app.api.GetDay(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	c.app.printf("%s (%d/%d done)\n", day.Date, day.Stats.Done, day.Stats.Total)
	for _, h := range day.Holidays {
		c.app.printf("  * %s\n", h.Name)
	}

	if len(day.Tasks) == 0 {
		c.app.println("No tasks for this day")
		return nil
	}

	hideDone := c.HideDone || !c.app.config.Display.ShowDone
	for i, task := range day.Tasks {
		if task.Done && hideDone {
			continue
		}
		if c.ShowIDs {
			c.app.printf("%2d. %s %s  (%s)\n", i+1, checkbox(task.Done), task.Title, task.ID)
		} else {
			c.app.printf("%2d. %s %s\n", i+1, checkbox(task.Done), task.Title)
		}
	}
	return nil
}
