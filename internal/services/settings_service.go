package services

import (
	"context"

	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/repository/sqlite"
	"ritual/internal/validation"
)

// settingsServiceImpl implements the SettingsService interface
type settingsServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.SettingsMapper
}

// NewSettingsService creates a new SettingsService instance
func NewSettingsService(repo sqlite.Repository) SettingsService {
	return &settingsServiceImpl{repo: repo, mapper: domain.NewSettingsMapper()}
}

// GetSettings returns the stored settings, or the defaults if none were saved
func (s *settingsServiceImpl) GetSettings(ctx context.Context) (domain.Settings, error) {
	dbSettings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return s.mapper.FromDatabase(dbSettings), nil
}

// update applies change to the current settings and writes the whole record
// back, so fields other than the one being set are preserved.
func (s *settingsServiceImpl) update(ctx context.Context, change func(*domain.Settings)) error {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return err
	}
	change(&current)
	return s.repo.PutSettings(ctx, s.mapper.ToDatabase(current))
}

// Accent returns the accent color, DefaultAccent when unset
func (s *settingsServiceImpl) Accent(ctx context.Context) (string, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return current.EffectiveAccent(), nil
}

// SetAccent stores a #rgb or #rrggbb color. Palette names are accepted too.
func (s *settingsServiceImpl) SetAccent(ctx context.Context, color string) error {
	color = domain.ResolveAccent(color)
	if err := validation.ValidateAccent(color); err != nil {
		return validation.ToAppError(err)
	}
	return s.update(ctx, func(st *domain.Settings) { st.Accent = color })
}

func (s *settingsServiceImpl) DebugEnabled(ctx context.Context) (bool, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return false, err
	}
	return current.Debug, nil
}

func (s *settingsServiceImpl) SetDebugEnabled(ctx context.Context, enabled bool) error {
	return s.update(ctx, func(st *domain.Settings) { st.Debug = enabled })
}

// LastPrompted returns the date key of the last handled start of day
func (s *settingsServiceImpl) LastPrompted(ctx context.Context) (string, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return current.LastPrompted, nil
}

func (s *settingsServiceImpl) SetLastPrompted(ctx context.Context, date string) error {
	if !domain.IsValidDateKey(date) {
		return errors.NewInvalidInputError("lastPrompted", date, "must be YYYY-MM-DD")
	}
	return s.update(ctx, func(st *domain.Settings) { st.LastPrompted = date })
}
