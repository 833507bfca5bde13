package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all routes for the application.
func RegisterRoutes(router *mux.Router, h *Handlers) {
	r := router.PathPrefix("/api").Subrouter()

	// days
	r.HandleFunc("/days/{date}", h.GetDay).Methods(http.MethodGet)
	r.HandleFunc("/days/{date}/tasks", h.GetTasks).Methods(http.MethodGet)
	r.HandleFunc("/days/{date}/tasks", h.AddTask).Methods(http.MethodPost)
	r.HandleFunc("/days/{date}/reorder", h.ReorderTasks).Methods(http.MethodPost)
	r.HandleFunc("/days/{date}/clear-done", h.ClearDone).Methods(http.MethodPost)
	r.HandleFunc("/days/{date}/plan", h.ImportPlan).Methods(http.MethodPost)
	r.HandleFunc("/days/{date}/summary", h.DaySummary).Methods(http.MethodGet)
	r.HandleFunc("/days/{date}/templates", h.TemplatesForDate).Methods(http.MethodGet)
	r.HandleFunc("/days/{date}/holidays", h.HolidaysForDate).Methods(http.MethodGet)

	// tasks
	r.HandleFunc("/tasks/{id}", h.GetTask).Methods(http.MethodGet)
	r.HandleFunc("/tasks/{id}", h.UpdateTask).Methods(http.MethodPatch)
	r.HandleFunc("/tasks/{id}", h.DeleteTask).Methods(http.MethodDelete)
	r.HandleFunc("/tasks/{id}/toggle", h.ToggleTask).Methods(http.MethodPost)

	// templates
	r.HandleFunc("/templates", h.ListTemplates).Methods(http.MethodGet)
	r.HandleFunc("/templates", h.AddTemplate).Methods(http.MethodPost)
	r.HandleFunc("/templates/{id}", h.UpdateTemplate).Methods(http.MethodPatch)
	r.HandleFunc("/templates/{id}", h.DeleteTemplate).Methods(http.MethodDelete)

	// start of day
	r.HandleFunc("/start/{date}/check", h.CheckStartOfDay).Methods(http.MethodPost)
	r.HandleFunc("/start/{date}", h.ResolveStartOfDay).Methods(http.MethodPost)

	// holidays
	r.HandleFunc("/holidays", h.ListHolidays).Methods(http.MethodGet)
	r.HandleFunc("/holidays", h.AddHoliday).Methods(http.MethodPost)
	r.HandleFunc("/holidays/{id}", h.UpdateHoliday).Methods(http.MethodPatch)
	r.HandleFunc("/holidays/{id}", h.DeleteHoliday).Methods(http.MethodDelete)

	// score, backup, settings, debug log
	r.HandleFunc("/score", h.GetScore).Methods(http.MethodGet)
	r.HandleFunc("/backup", h.ExportSnapshot).Methods(http.MethodGet)
	r.HandleFunc("/backup", h.ImportSnapshot).Methods(http.MethodPost)
	r.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	r.HandleFunc("/settings", h.UpdateSettings).Methods(http.MethodPatch)
	r.HandleFunc("/debug", h.GetDebugLog).Methods(http.MethodGet)
	r.HandleFunc("/debug", h.ClearDebugLog).Methods(http.MethodDelete)
}
