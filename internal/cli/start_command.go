package cli

import (
	"bufio"
	"context"
	"strconv"
	"strings"

	"ritual/internal/api"
	"ritual/internal/errors"
	"ritual/internal/services"
)

// StartCommand runs the start-of-day check and applies the user's selection
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Date string
	All  bool
	Skip bool
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	date, err := c.app.resolveDate(c.Date)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	result, err := c.app.api.CheckStartOfDay(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("check start of day", err)
	}

	switch result.Status {
	case services.DayStartAlreadyHandled:
		c.app.printf("Already started %s.\n", date)
		return nil
	case services.DayStartNothingToPropose:
		c.app.printf("Nothing to carry over or repeat for %s.\n", date)
		return nil
	}

	titles := result.Titles()
	c.printProposal(result)

	var accepted []string
	switch {
	case c.Skip:
	case c.All:
		accepted = titles
	default:
		accepted, err = c.promptSelection(titles)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	added, err := c.app.api.ResolveStartOfDay(ctx, date, accepted)
	if err != nil {
		return c.errorHandler.Handle("start day", err)
	}
	if len(added) == 0 {
		c.app.println("Skipped. Nothing added.")
		return nil
	}
	c.app.printf("Added %d task(s) to %s\n", len(added), date)
	return nil
}

func (c *StartCommand) printProposal(result *api.StartOfDay) {
	c.app.printf("Good morning! Proposed tasks for %s:\n", result.Date)
	n := 1
	for _, tmpl := range result.RecurringTemplates {
		c.app.printf("%2d. %s (%s)\n", n, tmpl.Title, tmpl.Type)
		n++
	}
	for _, task := range result.FromYesterday {
		c.app.printf("%2d. %s (from yesterday)\n", n, task.Title)
		n++
	}
}

// promptSelection reads one line: numbers separated by commas or spaces,
// "a" for all, or an empty line / "s" to skip
func (c *StartCommand) promptSelection(titles []string) ([]string, error) {
	c.app.printf("Enter numbers to add (e.g. 1,3), 'a' for all, or press Enter to skip: ")

	line, err := bufio.NewReader(c.app.in).ReadString('\n')
	if err != nil && line == "" {
		return nil, nil
	}
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case "", "s", "skip", "q":
		return nil, nil
	case "a", "all":
		return titles, nil
	}

	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' })
	seen := make(map[int]bool, len(fields))
	selected := make([]string, 0, len(fields))
	for _, field := range fields {
		idx, err := strconv.Atoi(field)
		if err != nil || idx < 1 || idx > len(titles) {
			return nil, errors.NewInvalidInputError("selection", field, "invalid selection")
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		selected = append(selected, titles[idx-1])
	}
	return selected, nil
}
