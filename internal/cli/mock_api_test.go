package cli

import (
	"context"

	"ritual/internal/api"
	"ritual/internal/domain"
)

// mockAPI fails every call it overrides with err. Calls it does not
// override panic through the nil embedded interface.
type mockAPI struct {
	api.API
	err error
}

func (m *mockAPI) GetDay(ctx context.Context, date string) (*api.DayView, error) {
	return nil, m.err
}

func (m *mockAPI) AddTask(ctx context.Context, date, title string) (*domain.Task, error) {
	return nil, m.err
}

func (m *mockAPI) TasksForDate(ctx context.Context, date string) ([]domain.Task, error) {
	return nil, m.err
}

func (m *mockAPI) GetScore(ctx context.Context) (*domain.Score, error) {
	return nil, m.err
}

func (m *mockAPI) ExportSnapshot(ctx context.Context) ([]byte, error) {
	return nil, m.err
}

func (m *mockAPI) CheckStartOfDay(ctx context.Context, today string) (*api.StartOfDay, error) {
	return nil, m.err
}

func (m *mockAPI) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return nil, m.err
}
