package cli

import (
	"context"
	"strconv"
	"strings"

	"ritual/internal/domain"
	"ritual/internal/errors"
)

// HolidayCommand manages custom holidays and shows the holidays of a day
type HolidayCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Name string
	MMDD string
}

// NewHolidayCommand creates a new holiday command handler
func NewHolidayCommand(app *App) *HolidayCommand {
	return &HolidayCommand{app: app, errorHandler: NewErrorHandler()}
}

// List prints the custom holidays
func (c *HolidayCommand) List(ctx context.Context, args []string) error {
	holidays, err := c.app.api.ListHolidays(ctx)
	if err != nil {
		return c.errorHandler.Handle("list holidays", err)
	}
	if len(holidays) == 0 {
		c.app.println("No custom holidays")
		return nil
	}
	for i, h := range holidays {
		c.app.printf("%2d. %s\n", i+1, h)
	}
	return nil
}

// Add runs `holiday add MM-DD name...`
func (c *HolidayCommand) Add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "holiday add", "usage: ritual holiday add MM-DD \"name\"")
	}
	holiday, err := c.app.api.AddHoliday(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("add holiday", err)
	}
	c.app.printf("Added holiday: %s\n", holiday)
	return nil
}

// Edit changes the date (MMDD) and/or name of a custom holiday
func (c *HolidayCommand) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "holiday edit", "usage: ritual holiday edit <holiday> [--date MM-DD] [--name \"name\"]")
	}
	id, err := c.resolveHolidayID(ctx, args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	var patch domain.HolidayPatch
	if c.MMDD != "" {
		patch.MMDD = &c.MMDD
	}
	if c.Name != "" {
		patch.Name = &c.Name
	}
	if patch.MMDD == nil && patch.Name == nil {
		return errors.NewInvalidInputError("command", "holiday edit", "nothing to change")
	}

	if err := c.app.api.UpdateHoliday(ctx, id, patch); err != nil {
		return c.errorHandler.Handle("edit holiday", err)
	}
	c.app.println("Holiday updated")
	return nil
}

// Delete removes a custom holiday
func (c *HolidayCommand) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "holiday delete", "name exactly one holiday")
	}
	id, err := c.resolveHolidayID(ctx, args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if err := c.app.api.DeleteHoliday(ctx, id); err != nil {
		return c.errorHandler.Handle("delete holiday", err)
	}
	c.app.println("Holiday deleted")
	return nil
}

// Show prints the federal and custom holidays falling on a day
func (c *HolidayCommand) Show(ctx context.Context, args []string) error {
	dateArg := ""
	if len(args) > 0 {
		dateArg = args[0]
	}
	date, err := c.app.resolveDate(dateArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	holidays, err := c.app.api.HolidaysForDate(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("show holidays", err)
	}
	if len(holidays) == 0 {
		c.app.printf("No holidays on %s\n", date)
		return nil
	}
	for _, h := range holidays {
		kind := "custom"
		if h.Federal {
			kind = "federal"
		}
		c.app.printf("%s  %s (%s)\n", date, h.Name, kind)
	}
	return nil
}

func (c *HolidayCommand) resolveHolidayID(ctx context.Context, ref string) (string, error) {
	position, err := strconv.Atoi(ref)
	if err != nil {
		return ref, nil
	}
	holidays, err := c.app.api.ListHolidays(ctx)
	if err != nil {
		return "", err
	}
	if position < 1 || position > len(holidays) {
		return "", errors.NewInvalidInputError("holiday", ref, "no such holiday")
	}
	return holidays[position-1].ID, nil
}
