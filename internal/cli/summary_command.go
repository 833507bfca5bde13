package cli

import (
	"context"
)

// SummaryCommand prints a day as a markdown checklist
type SummaryCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date string
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	dateArg := c.Date
	if len(args) > 0 {
		dateArg = args[0]
	}
	date, err := c.app.resolveDate(dateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	summary, err := c.app.api.DaySummary(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("summarize day", err)
	}
	c.app.printf("%s", summary)
	return nil
}
