package server

import (
	"io"
	"net/http"

	"ritual/internal/api"
	"ritual/internal/domain"
	"ritual/internal/errors"

	"github.com/gorilla/mux"
)

// maxBackupSize caps the body accepted by the backup import route.
const maxBackupSize = 32 << 20

// Handlers handles HTTP requests for every resource.
type Handlers struct {
	API api.API
}

// NewHandlers creates a new Handlers.
func NewHandlers(a api.API) *Handlers {
	return &Handlers{API: a}
}

// ========== Days and tasks ==========

// GetDay handles GET /api/days/{date}.
func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.API.GetDay(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayJSON(day))
}

// GetTasks handles GET /api/days/{date}/tasks.
func (h *Handlers) GetTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.API.TasksForDate(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTasksJSON(tasks))
}

// AddTask handles POST /api/days/{date}/tasks.
func (h *Handlers) AddTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	task, err := h.API.AddTask(r.Context(), mux.Vars(r)["date"], body.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskJSON(*task))
}

// ReorderTasks handles POST /api/days/{date}/reorder.
func (h *Handlers) ReorderTasks(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := h.API.ReorderTasks(r.Context(), mux.Vars(r)["date"], body.IDs); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearDone handles POST /api/days/{date}/clear-done.
func (h *Handlers) ClearDone(w http.ResponseWriter, r *http.Request) {
	cleared, err := h.API.ClearDone(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}

// ImportPlan handles POST /api/days/{date}/plan.
func (h *Handlers) ImportPlan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	tasks, err := h.API.ImportPlan(r.Context(), mux.Vars(r)["date"], body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTasksJSON(tasks))
}

// DaySummary handles GET /api/days/{date}/summary and answers markdown.
func (h *Handlers) DaySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.API.DaySummary(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	io.WriteString(w, summary)
}

// GetTask handles GET /api/tasks/{id}.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.API.GetTask(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskJSON(*task))
}

// UpdateTask handles PATCH /api/tasks/{id}.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := h.API.UpdateTaskTitle(r.Context(), mux.Vars(r)["id"], body.Title); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleTask handles POST /api/tasks/{id}/toggle.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	if err := h.API.ToggleTaskDone(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteTask(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ========== Templates ==========

// ListTemplates handles GET /api/templates.
func (h *Handlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.API.ListTemplates(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplatesJSON(templates))
}

// AddTemplate handles POST /api/templates.
func (h *Handlers) AddTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
		Type  string `json:"type"`
		Day   int    `json:"day"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	tmpl, err := h.API.AddTemplate(r.Context(), domain.TemplateDefinition{
		Title: body.Title,
		Type:  domain.TemplateType(body.Type),
		Day:   body.Day,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateJSON(*tmpl))
}

// UpdateTemplate handles PATCH /api/templates/{id}. Absent fields are left alone.
func (h *Handlers) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   *string `json:"title"`
		Type    *string `json:"type"`
		Enabled *bool   `json:"enabled"`
		Day     *int    `json:"day"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	patch := domain.TemplatePatch{Title: body.Title, Enabled: body.Enabled, Day: body.Day}
	if body.Type != nil {
		tt := domain.TemplateType(*body.Type)
		patch.Type = &tt
	}

	if err := h.API.UpdateTemplate(r.Context(), mux.Vars(r)["id"], patch); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteTemplate handles DELETE /api/templates/{id}.
func (h *Handlers) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteTemplate(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TemplatesForDate handles GET /api/days/{date}/templates.
func (h *Handlers) TemplatesForDate(w http.ResponseWriter, r *http.Request) {
	templates, err := h.API.TemplatesForDate(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplatesJSON(templates))
}

// ========== Start of day ==========

// CheckStartOfDay handles POST /api/start/{date}/check. When there is nothing
// to propose the day is marked handled, so the check is not a safe read.
func (h *Handlers) CheckStartOfDay(w http.ResponseWriter, r *http.Request) {
	start, err := h.API.CheckStartOfDay(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStartJSON(start))
}

// ResolveStartOfDay handles POST /api/start/{date}. An empty titles list
// skips the day.
func (h *Handlers) ResolveStartOfDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Titles []string `json:"titles"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	tasks, err := h.API.ResolveStartOfDay(r.Context(), mux.Vars(r)["date"], body.Titles)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTasksJSON(tasks))
}

// ========== Holidays ==========

// ListHolidays handles GET /api/holidays.
func (h *Handlers) ListHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.API.ListHolidays(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHolidaysJSON(holidays))
}

// AddHoliday handles POST /api/holidays.
func (h *Handlers) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MMDD string `json:"mmdd"`
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	holiday, err := h.API.AddHoliday(r.Context(), body.MMDD, body.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHolidaysJSON([]domain.Holiday{*holiday})[0])
}

// UpdateHoliday handles PATCH /api/holidays/{id}.
func (h *Handlers) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MMDD *string `json:"mmdd"`
		Name *string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	patch := domain.HolidayPatch{MMDD: body.MMDD, Name: body.Name}
	if err := h.API.UpdateHoliday(r.Context(), mux.Vars(r)["id"], patch); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteHoliday handles DELETE /api/holidays/{id}.
func (h *Handlers) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteHoliday(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HolidaysForDate handles GET /api/days/{date}/holidays.
func (h *Handlers) HolidaysForDate(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.API.HolidaysForDate(r.Context(), mux.Vars(r)["date"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHolidaysJSON(holidays))
}

// ========== Score, backup, settings, debug log ==========

// GetScore handles GET /api/score.
func (h *Handlers) GetScore(w http.ResponseWriter, r *http.Request) {
	score, err := h.API.GetScore(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScoreJSON(score))
}

// ExportSnapshot handles GET /api/backup.
func (h *Handlers) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := h.API.ExportSnapshot(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="ritual-backup.json"`)
	w.Write(data)
}

// ImportSnapshot handles POST /api/backup. The body is the snapshot itself.
func (h *Handlers) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupSize))
	if err != nil {
		writeError(w, errors.NewInvalidBackupError("could not read request body", err))
		return
	}

	if err := h.API.ImportSnapshot(r.Context(), data); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings handles GET /api/settings.
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.API.GetSettings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsJSON(settings))
}

// UpdateSettings handles PATCH /api/settings.
func (h *Handlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Accent *string `json:"accent"`
		Debug  *bool   `json:"debug"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	ctx := r.Context()
	if body.Accent != nil {
		if err := h.API.SetAccent(ctx, *body.Accent); err != nil {
			writeError(w, err)
			return
		}
	}
	if body.Debug != nil {
		if err := h.API.SetDebugEnabled(ctx, *body.Debug); err != nil {
			writeError(w, err)
			return
		}
	}
	h.GetSettings(w, r)
}

// GetDebugLog handles GET /api/debug.
func (h *Handlers) GetDebugLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.API.DebugLog(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toDebugLogJSON(entries))
}

// ClearDebugLog handles DELETE /api/debug.
func (h *Handlers) ClearDebugLog(w http.ResponseWriter, r *http.Request) {
	if err := h.API.ClearDebugLog(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
