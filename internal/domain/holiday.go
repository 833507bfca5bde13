package domain

import (
	"fmt"
	"sort"
	"time"
)

// Holiday is a named, year-less calendar day in MM-DD form.
type Holiday struct {
	ID   string
	MMDD string
	Name string
	// Federal is set for computed US federal holidays, which have no ID.
	Federal bool
}

// HolidayPatch carries the fields to change on a custom holiday.
type HolidayPatch struct {
	MMDD *string
	Name *string
}

// MMDDFor returns the MM-DD part of a date key.
func MMDDFor(dateKey string) (string, error) {
	t, err := ParseDateKey(dateKey)
	if err != nil {
		return "", err
	}
	return t.Format("01-02"), nil
}

// IsValidMMDD reports whether s is MM-DD naming a day that exists in some
// year. 02-29 is accepted.
func IsValidMMDD(s string) bool {
	if len(s) != 5 || s[2] != '-' {
		return false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	// 2000 is a leap year so every real MM-DD parses.
	_, err := time.Parse("2006-01-02", "2000-"+s)
	return err == nil
}

// FederalHolidays returns the US federal holidays observed in year, sorted by date.
func FederalHolidays(year int) []Holiday {
	dates := []struct {
		date time.Time
		name string
	}{
		{time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), "New Year's Day"},
		{nthWeekday(year, time.January, time.Monday, 3), "Martin Luther King Jr. Day"},
		{nthWeekday(year, time.February, time.Monday, 3), "Presidents' Day"},
		{lastWeekday(year, time.May, time.Monday), "Memorial Day"},
		{time.Date(year, time.July, 4, 0, 0, 0, 0, time.UTC), "Independence Day"},
		{nthWeekday(year, time.September, time.Monday, 1), "Labor Day"},
		{nthWeekday(year, time.October, time.Monday, 2), "Columbus Day"},
		{nthWeekday(year, time.November, time.Thursday, 4), "Thanksgiving"},
		{time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), "Christmas Day"},
	}

	holidays := make([]Holiday, 0, len(dates))
	for _, d := range dates {
		holidays = append(holidays, Holiday{
			MMDD:    d.date.Format("01-02"),
			Name:    d.name,
			Federal: true,
		})
	}
	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].MMDD < holidays[j].MMDD
	})
	return holidays
}

// nthWeekday returns the n-th (1-based) weekday of month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+7*(n-1))
}

// lastWeekday returns the last weekday of month.
func lastWeekday(year int, month time.Month, weekday time.Weekday) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// String renders the holiday as "MM-DD Name".
func (h Holiday) String() string {
	return fmt.Sprintf("%s %s", h.MMDD, h.Name)
}
