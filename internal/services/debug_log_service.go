package services

import (
	"context"
	"fmt"
	"strings"

	"ritual/internal/domain"
	"ritual/internal/repository/sqlite"
)

// debugLogServiceImpl implements the DebugLogService interface
type debugLogServiceImpl struct {
	repo     sqlite.Repository
	settings SettingsService
	mapper   *domain.DebugLogMapper
}

// NewDebugLogService creates a new DebugLogService instance
func NewDebugLogService(repo sqlite.Repository, settings SettingsService) DebugLogService {
	return &debugLogServiceImpl{
		repo:     repo,
		settings: settings,
		mapper:   domain.NewDebugLogMapper(),
	}
}

// Log appends a line to the debug collection when settings.debug is on and
// does nothing otherwise
func (s *debugLogServiceImpl) Log(ctx context.Context, format string, args ...interface{}) error {
	enabled, err := s.settings.DebugEnabled(ctx)
	if err != nil || !enabled {
		return err
	}

	entry := domain.DebugLogEntry{
		Timestamp: timeNow(),
		Message:   fmt.Sprintf(format, args...),
	}
	return s.repo.AppendDebugLog(ctx, s.mapper.ToDatabase(entry))
}

// Entries returns the log in insertion order
func (s *debugLogServiceImpl) Entries(ctx context.Context) ([]domain.DebugLogEntry, error) {
	dbEntries, err := s.repo.ListDebugLog(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.FromDatabaseSlice(dbEntries), nil
}

func (s *debugLogServiceImpl) Clear(ctx context.Context) error {
	return s.repo.ClearDebugLog(ctx)
}

// Format renders entries one per line as "[timestamp] message"
func (s *debugLogServiceImpl) Format(entries []domain.DebugLogEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	return strings.Join(lines, "\n")
}
