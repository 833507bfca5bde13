package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"ritual/internal/api"
	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries what every command handler needs: the API, the resolved
// configuration and the terminal streams
type App struct {
	api    api.API
	config *config.Config
	in     io.Reader
	out    io.Writer
}

// NewApp creates a new CLI application with default configuration
func NewApp(apiInstance api.API) *App {
	return NewAppWithConfig(apiInstance, config.NewConfig())
}

// NewAppWithConfig creates a new CLI application with dependency injection
func NewAppWithConfig(apiInstance api.API, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// WithIO replaces the input and output streams
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.in = in
	a.out = out
	return a
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// today returns the local calendar day
func (a *App) today() string {
	return domain.DateKeyFor(timeNow())
}

// resolveDate accepts a date key or one of today, yesterday and tomorrow.
// An empty string means today.
func (a *App) resolveDate(arg string) (string, error) {
	now := timeNow()
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "", "today":
		return domain.DateKeyFor(now), nil
	case "yesterday":
		return domain.DateKeyFor(now.AddDate(0, 0, -1)), nil
	case "tomorrow":
		return domain.DateKeyFor(now.AddDate(0, 0, 1)), nil
	}
	if !domain.IsValidDateKey(arg) {
		return "", errors.NewInvalidInputError("date", arg, "use YYYY-MM-DD, today, yesterday or tomorrow")
	}
	return arg, nil
}

// resolveTaskID maps a list position (as printed by `ritual list`) or a
// task id to a task id
func (a *App) resolveTaskID(ctx context.Context, date, ref string) (string, error) {
	position, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}

	tasks, err := a.api.TasksForDate(ctx, date)
	if err != nil {
		return "", err
	}
	if position < 1 || position > len(tasks) {
		return "", errors.NewInvalidInputError("task", ref, fmt.Sprintf("no task #%d on %s", position, date))
	}
	return tasks[position-1].ID, nil
}

// checkbox renders the done state of a task
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
