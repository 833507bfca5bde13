package domain

import (
	"sort"
	"time"
)

// TemplateType selects how a template recurs.
type TemplateType string

const (
	TemplateTypeDaily  TemplateType = "daily"
	TemplateTypeWeekly TemplateType = "weekly"
)

// IsValid reports whether tt is a known recurrence type.
func (tt TemplateType) IsValid() bool {
	return tt == TemplateTypeDaily || tt == TemplateTypeWeekly
}

// Template is a recurring task definition. Days is the weekday set (Sunday = 0)
// and is the only thing consulted when deciding if the template applies.
type Template struct {
	ID      string
	Title   string
	Type    TemplateType
	Enabled bool
	Days    []int
}

// TemplateDefinition is the input for creating a template. Day is only
// meaningful for weekly templates.
type TemplateDefinition struct {
	Title string
	Type  TemplateType
	Day   int
}

// TemplatePatch carries the fields to change on an existing template.
// Nil fields are left as they are.
type TemplatePatch struct {
	Title   *string
	Type    *TemplateType
	Enabled *bool
	Day     *int
}

// IsEmpty reports whether the patch changes nothing.
func (p TemplatePatch) IsEmpty() bool {
	return p.Title == nil && p.Type == nil && p.Enabled == nil && p.Day == nil
}

// NormalizeDays maps a recurrence type to its weekday set: the full week for
// daily, the single selected day for weekly.
func NormalizeDays(tt TemplateType, day int) []int {
	if tt == TemplateTypeDaily {
		return []int{0, 1, 2, 3, 4, 5, 6}
	}
	return []int{day}
}

// IsValidWeekday reports whether day is in 0..6.
func IsValidWeekday(day int) bool {
	return day >= 0 && day <= 6
}

// NewTemplate builds an enabled template from def with normalized days.
func NewTemplate(def TemplateDefinition) Template {
	return Template{
		Title:   def.Title,
		Type:    def.Type,
		Enabled: true,
		Days:    NormalizeDays(def.Type, def.Day),
	}
}

// HasWeekday reports whether the template's day set contains weekday.
func (t Template) HasWeekday(weekday time.Weekday) bool {
	for _, d := range t.Days {
		if d == int(weekday) {
			return true
		}
	}
	return false
}

// AppliesOn reports whether the template should be proposed on weekday.
func (t Template) AppliesOn(weekday time.Weekday) bool {
	return t.Enabled && t.HasWeekday(weekday)
}

// SelectedDay returns the weekday a weekly template runs on, or the lowest
// day in the set for anything else. Empty sets report Sunday.
func (t Template) SelectedDay() int {
	if len(t.Days) == 0 {
		return 0
	}
	days := append([]int(nil), t.Days...)
	sort.Ints(days)
	return days[0]
}

// Apply returns a copy of t with the patch applied. Changing type or day
// re-normalizes Days.
func (t Template) Apply(p TemplatePatch) Template {
	out := t
	out.Days = append([]int(nil), t.Days...)
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Enabled != nil {
		out.Enabled = *p.Enabled
	}
	if p.Type != nil || p.Day != nil {
		if p.Type != nil {
			out.Type = *p.Type
		}
		day := t.SelectedDay()
		if p.Day != nil {
			day = *p.Day
		}
		out.Days = NormalizeDays(out.Type, day)
	}
	return out
}

// WeekdayNames are the short names used when rendering day sets.
var WeekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DescribeDays renders a template's recurrence, e.g. "daily" or "weekly (Wed)".
func (t Template) DescribeDays() string {
	if t.Type == TemplateTypeDaily {
		return string(TemplateTypeDaily)
	}
	day := t.SelectedDay()
	if !IsValidWeekday(day) {
		return string(t.Type)
	}
	return string(t.Type) + " (" + WeekdayNames[day] + ")"
}
