package services

import (
	"context"
	"testing"

	"ritual/internal/config"
	"ritual/internal/domain"
	"ritual/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHolidayService(t *testing.T) HolidayService {
	t.Helper()
	return NewHolidayService(setupRepository(t), config.NewConfig())
}

func TestHolidayService_AddHoliday(t *testing.T) {
	tests := []struct {
		name          string
		mmdd          string
		holidayName   string
		expectedError bool
	}{
		{name: "valid holiday", mmdd: "06-15", holidayName: "Birthday"},
		{name: "leap day", mmdd: "02-29", holidayName: "Leap"},
		{name: "impossible day", mmdd: "02-30", holidayName: "Nope", expectedError: true},
		{name: "month out of range", mmdd: "13-01", holidayName: "Nope", expectedError: true},
		{name: "wrong format", mmdd: "6-15", holidayName: "Nope", expectedError: true},
		{name: "blank name", mmdd: "06-15", holidayName: "  ", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := setupHolidayService(t)
			ctx := context.Background()

			id, err := service.AddHoliday(ctx, tt.mmdd, tt.holidayName)
			if tt.expectedError {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				return
			}
			require.NoError(t, err)

			all, err := service.ListHolidays(ctx)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, domain.Holiday{ID: id, MMDD: tt.mmdd, Name: tt.holidayName}, all[0])
		})
	}
}

func TestHolidayService_UpdateAndDelete(t *testing.T) {
	service := setupHolidayService(t)
	ctx := context.Background()

	id, err := service.AddHoliday(ctx, "06-15", "Birthday")
	require.NoError(t, err)

	name := " Party "
	require.NoError(t, service.UpdateHoliday(ctx, id, domain.HolidayPatch{Name: &name}))
	mmdd := "07-01"
	require.NoError(t, service.UpdateHoliday(ctx, id, domain.HolidayPatch{MMDD: &mmdd}))

	all, err := service.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Party", all[0].Name)
	assert.Equal(t, "07-01", all[0].MMDD)

	bad := "7/1"
	err = service.UpdateHoliday(ctx, id, domain.HolidayPatch{MMDD: &bad})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	assert.NoError(t, service.UpdateHoliday(ctx, "missing", domain.HolidayPatch{Name: &name}))

	require.NoError(t, service.DeleteHoliday(ctx, id))
	require.NoError(t, service.DeleteHoliday(ctx, id))
	all, err = service.ListHolidays(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHolidayService_HolidaysForDate(t *testing.T) {
	service := setupHolidayService(t)
	ctx := context.Background()

	_, err := service.AddHoliday(ctx, "07-04", "Fireworks")
	require.NoError(t, err)
	_, err = service.AddHoliday(ctx, "03-10", "Anniversary")
	require.NoError(t, err)

	july, err := service.HolidaysForDate(ctx, "2024-07-04")
	require.NoError(t, err)
	require.Len(t, july, 2)
	assert.Equal(t, "Independence Day", july[0].Name)
	assert.True(t, july[0].Federal)
	assert.Equal(t, "Fireworks", july[1].Name)
	assert.False(t, july[1].Federal)

	thanksgiving, err := service.HolidaysForDate(ctx, "2024-11-28")
	require.NoError(t, err)
	require.Len(t, thanksgiving, 1)
	assert.Equal(t, "Thanksgiving", thanksgiving[0].Name)

	custom, err := service.HolidaysForDate(ctx, "2031-03-10")
	require.NoError(t, err)
	require.Len(t, custom, 1)
	assert.Equal(t, "Anniversary", custom[0].Name)

	none, err := service.HolidaysForDate(ctx, "2024-03-11")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = service.HolidaysForDate(ctx, "2024-3-11")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}
