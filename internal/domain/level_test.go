package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentLevelAndProgress(t *testing.T) {
	tests := []struct {
		xp       int
		level    string
		progress int
	}{
		{0, "Rookie", 0},
		{50, "Rookie", 25},
		{199, "Rookie", 99},
		{200, "Runner", 0},
		{599, "Runner", 99},
		{600, "Striver", 0},
		{1500, "Knight", 37},
		{2000, "Legend", 100},
		{99999, "Legend", 100},
	}

	for _, tt := range tests {
		level := CurrentLevel(tt.xp)
		assert.Equal(t, tt.level, level.Name, "xp=%d", tt.xp)
		assert.Equal(t, tt.progress, ProgressToNext(tt.xp), "xp=%d", tt.xp)
	}
}

func TestLevels_Ascending(t *testing.T) {
	assert.Equal(t, 0, Levels[0].Threshold)
	for i := 1; i < len(Levels); i++ {
		assert.Greater(t, Levels[i].Threshold, Levels[i-1].Threshold)
	}
}

func TestNewScore(t *testing.T) {
	score := NewScore(5, PointsPerTask)
	assert.Equal(t, 50, score.Experience)
	assert.Equal(t, "Rookie", score.Level.Name)
	assert.Equal(t, 25, score.Progress)
	if assert.NotNil(t, score.Next) {
		assert.Equal(t, "Runner", score.Next.Name)
	}

	top := NewScore(500, PointsPerTask)
	assert.Equal(t, "Legend", top.Level.Name)
	assert.Nil(t, top.Next)
	assert.Equal(t, 100, top.Progress)
}

func TestSettings_Accent(t *testing.T) {
	assert.Equal(t, DefaultAccent, DefaultSettings().EffectiveAccent())
	assert.Equal(t, DefaultAccent, Settings{}.EffectiveAccent())
	assert.Equal(t, "#123", Settings{Accent: "#123"}.EffectiveAccent())

	assert.True(t, IsValidAccent("#fff"))
	assert.True(t, IsValidAccent("#A0b1C2"))
	assert.False(t, IsValidAccent("fff"))
	assert.False(t, IsValidAccent("#ffff"))
	assert.False(t, IsValidAccent("#gggggg"))
}

func TestAccentPalette(t *testing.T) {
	assert.Equal(t, "Blue", AccentName("#42A5F5"))
	assert.Equal(t, "#123456", AccentName("#123456"))
	assert.Equal(t, "#ab47bc", ResolveAccent("purple"))
	assert.Equal(t, "#fff", ResolveAccent("#fff"))
	for _, a := range AccentPalette {
		assert.True(t, IsValidAccent(a.Color), a.Name)
	}
}

func TestDebugLogEntry_String(t *testing.T) {
	e := DebugLogEntry{Timestamp: time.Date(2024, 3, 10, 8, 30, 0, 123000000, time.UTC), Message: "hello"}
	assert.Equal(t, "[2024-03-10T08:30:00.123Z] hello", e.String())
}
