package cli

import (
	"context"

	"github.com/dustin/go-humanize"

	"ritual/internal/domain"
	"ritual/internal/errors"
)

// SettingsCommand shows and changes the stored preferences
type SettingsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(app *App) *SettingsCommand {
	return &SettingsCommand{app: app, errorHandler: NewErrorHandler()}
}

// Show prints the settings record
func (c *SettingsCommand) Show(ctx context.Context, args []string) error {
	settings, err := c.app.api.GetSettings(ctx)
	if err != nil {
		return c.errorHandler.Handle("read settings", err)
	}

	accent := settings.EffectiveAccent()
	c.app.printf("accent:        %s", accent)
	if name := domain.AccentName(accent); name != accent {
		c.app.printf(" (%s)", name)
	}
	c.app.println()
	c.app.printf("debug:         %t\n", settings.Debug)
	lastPrompted := settings.LastPrompted
	if lastPrompted == "" {
		lastPrompted = "never"
	}
	c.app.printf("last started:  %s\n", lastPrompted)
	return nil
}

// Accent sets the accent color from a hex color or a palette name
func (c *SettingsCommand) Accent(ctx context.Context, args []string) error {
	if len(args) != 1 {
		c.app.println("Palette:")
		for _, a := range domain.AccentPalette {
			c.app.printf("  %-14s %s\n", a.Name, a.Color)
		}
		return errors.NewInvalidInputError("command", "settings accent", "usage: ritual settings accent <#hex|name>")
	}
	if err := c.app.api.SetAccent(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("set accent", err)
	}
	c.app.printf("Accent set to %s\n", args[0])
	return nil
}

// Debug turns the persisted debug log on or off
func (c *SettingsCommand) Debug(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errors.NewInvalidInputError("command", "settings debug", "usage: ritual settings debug on|off")
	}
	enabled := args[0] == "on"
	if err := c.app.api.SetDebugEnabled(ctx, enabled); err != nil {
		return c.errorHandler.Handle("set debug", err)
	}
	c.app.printf("Debug log %s\n", args[0])
	return nil
}

// DebugLogCommand prints and clears the persisted debug log
type DebugLogCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Raw bool
}

// NewDebugLogCommand creates a new log command handler
func NewDebugLogCommand(app *App) *DebugLogCommand {
	return &DebugLogCommand{app: app, errorHandler: NewErrorHandler()}
}

// Show prints the log. Raw prints the "[timestamp] message" export form.
func (c *DebugLogCommand) Show(ctx context.Context, args []string) error {
	entries, err := c.app.api.DebugLog(ctx)
	if err != nil {
		return c.errorHandler.Handle("read debug log", err)
	}
	if len(entries) == 0 {
		c.app.println("Debug log is empty")
		return nil
	}

	for _, e := range entries {
		if c.Raw {
			c.app.println(e.String())
			continue
		}
		c.app.printf("%s (%s)  %s\n",
			e.Timestamp.Local().Format(c.app.config.Display.TimestampFormat),
			humanize.RelTime(e.Timestamp, timeNow(), "ago", "from now"),
			e.Message)
	}
	return nil
}

// Clear empties the log
func (c *DebugLogCommand) Clear(ctx context.Context, args []string) error {
	if err := c.app.api.ClearDebugLog(ctx); err != nil {
		return c.errorHandler.Handle("clear debug log", err)
	}
	c.app.println("Debug log cleared")
	return nil
}
