package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviousDateKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"2024-03-10", "2024-03-09"},
		{"2024-03-01", "2024-02-29"},
		{"2025-01-01", "2024-12-31"},
		// DST switch in many zones; keys are UTC so nothing shifts
		{"2024-03-11", "2024-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := PreviousDateKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := PreviousDateKey("yesterday")
	assert.Error(t, err)
}

func TestWeekdayOf(t *testing.T) {
	wd, err := WeekdayOf("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	wd, err = WeekdayOf("2024-03-13")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, wd)
}

func TestIsValidDateKey(t *testing.T) {
	assert.True(t, IsValidDateKey("2024-02-29"))
	assert.False(t, IsValidDateKey("2023-02-29"))
	assert.False(t, IsValidDateKey("2024-3-1"))
	assert.False(t, IsValidDateKey(""))
}

func TestDateKeyFor(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	ts := time.Date(2024, 3, 10, 2, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-10", DateKeyFor(ts))
}
