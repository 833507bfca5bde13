package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"ritual/internal/domain"
	"ritual/internal/errors"
)

// TemplateCommand manages recurring task templates. Templates are named on
// the command line by their position in `ritual template list` or their id.
type TemplateCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Weekly string
}

// NewTemplateCommand creates a new template command handler
func NewTemplateCommand(app *App) *TemplateCommand {
	return &TemplateCommand{app: app, errorHandler: NewErrorHandler()}
}

// List prints every template, enabled or not
func (c *TemplateCommand) List(ctx context.Context, args []string) error {
	templates, err := c.app.api.ListTemplates(ctx)
	if err != nil {
		return c.errorHandler.Handle("list templates", err)
	}
	if len(templates) == 0 {
		c.app.println("No templates")
		return nil
	}
	for i, tmpl := range templates {
		state := ""
		if !tmpl.Enabled {
			state = " [disabled]"
		}
		c.app.printf("%2d. %s (%s)%s\n", i+1, tmpl.Title, describeDays(tmpl), state)
	}
	return nil
}

// Add creates a daily template, or a weekly one when Weekly names a day
func (c *TemplateCommand) Add(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "template add", "usage: ritual template add \"title\" [--weekly mon]")
	}
	def := domain.TemplateDefinition{Title: strings.Join(args, " "), Type: domain.TemplateTypeDaily}
	if c.Weekly != "" {
		day, err := parseWeekday(c.Weekly)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		def.Type = domain.TemplateTypeWeekly
		def.Day = day
	}

	tmpl, err := c.app.api.AddTemplate(ctx, def)
	if err != nil {
		return c.errorHandler.Handle("add template", err)
	}
	c.app.printf("Added template: %s (%s)\n", tmpl.Title, describeDays(*tmpl))
	return nil
}

// Edit renames a template and, with Weekly set, changes its recurrence.
// Weekly "daily" turns a weekly template back into a daily one.
func (c *TemplateCommand) Edit(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "template edit", "usage: ritual template edit <template> [\"new title\"] [--weekly day|daily]")
	}
	id, err := c.resolveTemplateID(ctx, args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	var patch domain.TemplatePatch
	if len(args) > 1 {
		title := strings.Join(args[1:], " ")
		patch.Title = &title
	}
	if c.Weekly != "" {
		if strings.EqualFold(c.Weekly, "daily") {
			daily := domain.TemplateTypeDaily
			patch.Type = &daily
		} else {
			day, err := parseWeekday(c.Weekly)
			if err != nil {
				return c.errorHandler.HandleSimple(err)
			}
			weekly := domain.TemplateTypeWeekly
			patch.Type = &weekly
			patch.Day = &day
		}
	}
	if patch.IsEmpty() {
		return errors.NewInvalidInputError("command", "template edit", "nothing to change")
	}

	if err := c.app.api.UpdateTemplate(ctx, id, patch); err != nil {
		return c.errorHandler.Handle("edit template", err)
	}
	c.app.println("Template updated")
	return nil
}

// SetEnabled enables or disables a template
func (c *TemplateCommand) SetEnabled(ctx context.Context, args []string, enabled bool) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "template", "name exactly one template")
	}
	id, err := c.resolveTemplateID(ctx, args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.UpdateTemplate(ctx, id, domain.TemplatePatch{Enabled: &enabled}); err != nil {
		return c.errorHandler.Handle("update template", err)
	}
	if enabled {
		c.app.println("Template enabled")
	} else {
		c.app.println("Template disabled")
	}
	return nil
}

// Delete removes a template
func (c *TemplateCommand) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "template delete", "name exactly one template")
	}
	id, err := c.resolveTemplateID(ctx, args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.DeleteTemplate(ctx, id); err != nil {
		return c.errorHandler.Handle("delete template", err)
	}
	c.app.println("Template deleted")
	return nil
}

func (c *TemplateCommand) resolveTemplateID(ctx context.Context, ref string) (string, error) {
	position, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	templates, err := c.app.api.ListTemplates(ctx)
	if err != nil {
		return "", err
	}
	if position < 1 || position > len(templates) {
		return "", errors.NewInvalidInputError("template", ref, "no such template")
	}
	return templates[position-1].ID, nil
}

// parseWeekday accepts 0-6 (Sunday = 0) or an English day name or prefix
func parseWeekday(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if !domain.IsValidWeekday(n) {
			return 0, errors.NewInvalidInputError("day", s, "day must be 0-6 (Sunday = 0)")
		}
		return n, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	if len(name) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), name) {
				return int(d), nil
			}
		}
	}
	return 0, errors.NewInvalidInputError("day", s, "use a weekday name like mon or 0-6")
}

func describeDays(tmpl domain.Template) string {
	if tmpl.Type == domain.TemplateTypeDaily {
		return "daily"
	}
	names := make([]string, 0, len(tmpl.Days))
	for _, d := range tmpl.Days {
		names = append(names, time.Weekday(d).String())
	}
	return "weekly on " + strings.Join(names, ", ")
}
