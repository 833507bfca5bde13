package services

import (
	"context"
	"testing"

	"ritual/internal/domain"
	"ritual/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_Defaults(t *testing.T) {
	service := NewSettingsService(setupRepository(t))
	ctx := context.Background()

	settings, err := service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	accent, err := service.Accent(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAccent, accent)

	debug, err := service.DebugEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, debug)
}

func TestSettingsService_SetAccent(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      string
		expectedError bool
	}{
		{name: "six digit hex", input: "#00ff00", expected: "#00ff00"},
		{name: "three digit hex", input: "#abc", expected: "#abc"},
		{name: "palette name", input: "blue", expected: "#42a5f5"},
		{name: "missing hash", input: "00ff00", expectedError: true},
		{name: "not hex", input: "#zzzzzz", expectedError: true},
		{name: "empty", input: "", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(setupRepository(t))
			ctx := context.Background()

			err := service.SetAccent(ctx, tt.input)
			if tt.expectedError {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
				accent, err := service.Accent(ctx)
				require.NoError(t, err)
				assert.Equal(t, domain.DefaultAccent, accent)
				return
			}
			require.NoError(t, err)

			accent, err := service.Accent(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, accent)
		})
	}
}

func TestSettingsService_WritesPreserveOtherFields(t *testing.T) {
	service := NewSettingsService(setupRepository(t))
	ctx := context.Background()

	require.NoError(t, service.SetLastPrompted(ctx, "2024-03-10"))
	require.NoError(t, service.SetAccent(ctx, "#e34242"))
	require.NoError(t, service.SetDebugEnabled(ctx, true))

	settings, err := service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{Accent: "#e34242", Debug: true, LastPrompted: "2024-03-10"}, settings)

	require.NoError(t, service.SetDebugEnabled(ctx, false))
	lastPrompted, err := service.LastPrompted(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", lastPrompted)

	err = service.SetLastPrompted(ctx, "yesterday")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}
