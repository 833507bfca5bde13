package services

import (
	"context"
	"strings"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"
	"ritual/internal/repository/sqlite"
	"ritual/internal/validation"

	"github.com/google/uuid"
)

// holidayServiceImpl implements the HolidayService interface
type holidayServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.HolidayValidator
}

// NewHolidayService creates a new HolidayService instance
func NewHolidayService(repo sqlite.Repository, cfg *config.Config) HolidayService {
	return &holidayServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewHolidayValidatorWithConfig(cfg),
	}
}

// ListHolidays returns the custom holidays
func (s *holidayServiceImpl) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	dbHolidays, err := s.repo.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.Holiday.FromDatabaseSlice(dbHolidays), nil
}

// AddHoliday stores a custom holiday and returns its id
func (s *holidayServiceImpl) AddHoliday(ctx context.Context, mmdd, name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.ValidateHoliday(mmdd, name); err != nil {
		return "", validation.ToAppError(err)
	}

	holiday := domain.Holiday{ID: uuid.NewString(), MMDD: mmdd, Name: name}
	if err := s.repo.PutHoliday(ctx, s.mapper.Holiday.ToDatabase(holiday)); err != nil {
		return "", err
	}
	return holiday.ID, nil
}

// UpdateHoliday changes the fields set in patch. Unknown ids are ignored.
func (s *holidayServiceImpl) UpdateHoliday(ctx context.Context, id string, patch domain.HolidayPatch) error {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if err := s.validator.ValidatePatch(patch); err != nil {
		return validation.ToAppError(err)
	}

	dbHoliday, err := s.repo.GetHoliday(ctx, id)
	if err != nil {
		return errors.IgnoreNotFound(err)
	}
	if patch.MMDD != nil {
		dbHoliday.MMDD = *patch.MMDD
	}
	if patch.Name != nil {
		dbHoliday.Name = *patch.Name
	}
	return s.repo.PutHoliday(ctx, dbHoliday)
}

// DeleteHoliday removes a custom holiday
func (s *holidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	return errors.IgnoreNotFound(s.repo.DeleteHoliday(ctx, id))
}

// HolidaysForDate returns the federal holidays falling on date followed by
// the custom holidays with the same MM-DD
func (s *holidayServiceImpl) HolidaysForDate(ctx context.Context, date string) ([]domain.Holiday, error) {
	day, err := domain.ParseDateKey(date)
	if err != nil {
		return nil, errors.NewInvalidInputError("date", date, "must be YYYY-MM-DD")
	}
	mmdd := day.Format("01-02")

	var matching []domain.Holiday
	for _, h := range domain.FederalHolidays(day.Year()) {
		if h.MMDD == mmdd {
			matching = append(matching, h)
		}
	}

	custom, err := s.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range custom {
		if h.MMDD == mmdd {
			matching = append(matching, h)
		}
	}
	return matching, nil
}
