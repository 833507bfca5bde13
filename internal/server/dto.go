package server

import (
	"ritual/internal/api"
	"ritual/internal/domain"

	"github.com/dustin/go-humanize"
)

type taskJSON struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
	Order int64  `json:"order"`
}

type templateJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Enabled     bool   `json:"enabled"`
	Days        []int  `json:"days"`
	Description string `json:"description"`
}

type holidayJSON struct {
	ID      string `json:"id,omitempty"`
	MMDD    string `json:"mmdd"`
	Name    string `json:"name"`
	Federal bool   `json:"federal"`
}

type statsJSON struct {
	Total     int `json:"total"`
	Done      int `json:"done"`
	Remaining int `json:"remaining"`
}

type dayJSON struct {
	Date     string        `json:"date"`
	Tasks    []taskJSON    `json:"tasks"`
	Stats    statsJSON     `json:"stats"`
	Holidays []holidayJSON `json:"holidays"`
}

type startJSON struct {
	Status             string         `json:"status"`
	Date               string         `json:"date"`
	FromYesterday      []taskJSON     `json:"fromYesterday"`
	RecurringTemplates []templateJSON `json:"recurringTemplates"`
	Titles             []string       `json:"titles"`
}

type scoreJSON struct {
	CompletedTasks int    `json:"completedTasks"`
	Experience     int    `json:"experience"`
	ExperienceText string `json:"experienceText"`
	Level          string `json:"level"`
	NextLevel      string `json:"nextLevel,omitempty"`
	NextThreshold  int    `json:"nextThreshold,omitempty"`
	Progress       int    `json:"progress"`
}

type settingsJSON struct {
	Accent       string `json:"accent"`
	AccentName   string `json:"accentName"`
	Debug        bool   `json:"debug"`
	LastPrompted string `json:"lastPrompted"`
}

type debugEntryJSON struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func toTaskJSON(t domain.Task) taskJSON {
	return taskJSON{ID: t.ID, Date: t.Date, Title: t.Title, Done: t.Done, Order: t.Order}
}

func toTasksJSON(tasks []domain.Task) []taskJSON {
	out := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskJSON(t)
	}
	return out
}

func toTemplateJSON(t domain.Template) templateJSON {
	days := t.Days
	if days == nil {
		days = []int{}
	}
	return templateJSON{
		ID:          t.ID,
		Title:       t.Title,
		Type:        string(t.Type),
		Enabled:     t.Enabled,
		Days:        days,
		Description: t.DescribeDays(),
	}
}

func toTemplatesJSON(templates []domain.Template) []templateJSON {
	out := make([]templateJSON, len(templates))
	for i, t := range templates {
		out[i] = toTemplateJSON(t)
	}
	return out
}

func toHolidaysJSON(holidays []domain.Holiday) []holidayJSON {
	out := make([]holidayJSON, len(holidays))
	for i, h := range holidays {
		out[i] = holidayJSON{ID: h.ID, MMDD: h.MMDD, Name: h.Name, Federal: h.Federal}
	}
	return out
}

func toDayJSON(day *api.DayView) dayJSON {
	return dayJSON{
		Date:     day.Date,
		Tasks:    toTasksJSON(day.Tasks),
		Stats:    statsJSON{Total: day.Stats.Total, Done: day.Stats.Done, Remaining: day.Stats.Remaining},
		Holidays: toHolidaysJSON(day.Holidays),
	}
}

func toStartJSON(start *api.StartOfDay) startJSON {
	return startJSON{
		Status:             string(start.Status),
		Date:               start.Date,
		FromYesterday:      toTasksJSON(start.FromYesterday),
		RecurringTemplates: toTemplatesJSON(start.RecurringTemplates),
		Titles:             start.Titles(),
	}
}

func toScoreJSON(score *domain.Score) scoreJSON {
	out := scoreJSON{
		CompletedTasks: score.CompletedTasks,
		Experience:     score.Experience,
		ExperienceText: humanize.Comma(int64(score.Experience)) + " XP",
		Level:          score.Level.Name,
		Progress:       score.Progress,
	}
	if score.Next != nil {
		out.NextLevel = score.Next.Name
		out.NextThreshold = score.Next.Threshold
	}
	return out
}

func toSettingsJSON(s domain.Settings) settingsJSON {
	accent := s.EffectiveAccent()
	return settingsJSON{
		Accent:       accent,
		AccentName:   domain.AccentName(accent),
		Debug:        s.Debug,
		LastPrompted: s.LastPrompted,
	}
}

func toDebugLogJSON(entries []domain.DebugLogEntry) []debugEntryJSON {
	out := make([]debugEntryJSON, len(entries))
	for i, e := range entries {
		out[i] = debugEntryJSON{
			ID:        e.ID,
			Timestamp: e.Timestamp.UTC().Format(domain.ISOMillisLayout),
			Message:   e.Message,
		}
	}
	return out
}
