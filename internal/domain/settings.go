package domain

import (
	"regexp"
	"strings"
)

// DefaultAccent is the accent color used until the user picks one.
const DefaultAccent = "#ff4b4b"

var accentPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Settings is the single user preferences record.
type Settings struct {
	Accent       string
	Debug        bool
	LastPrompted string
}

// DefaultSettings returns the settings of a store that has never written any.
func DefaultSettings() Settings {
	return Settings{Accent: DefaultAccent}
}

// IsValidAccent reports whether color is a #rgb or #rrggbb hex color.
func IsValidAccent(color string) bool {
	return accentPattern.MatchString(color)
}

// EffectiveAccent returns the stored accent or DefaultAccent if none is set.
func (s Settings) EffectiveAccent() string {
	if s.Accent == "" {
		return DefaultAccent
	}
	return s.Accent
}

// Accent is a named entry of the built-in accent palette.
type Accent struct {
	Name  string
	Color string
}

// AccentPalette lists the named accent colors offered to the user.
var AccentPalette = []Accent{
	{Name: "Red", Color: "#e34242"},
	{Name: "Blue", Color: "#42a5f5"},
	{Name: "Green", Color: "#66bb6a"},
	{Name: "Purple", Color: "#ab47bc"},
	{Name: "Pink", Color: "#f06292"},
	{Name: "SeaBelly Pink", Color: "#F5E2E3"},
}

// AccentName returns the palette name for color, or color itself when it
// is not in the palette.
func AccentName(color string) string {
	for _, a := range AccentPalette {
		if strings.EqualFold(a.Color, color) {
			return a.Name
		}
	}
	return color
}

// ResolveAccent maps a palette name (case-insensitive) to its color and
// returns anything else unchanged.
func ResolveAccent(nameOrColor string) string {
	for _, a := range AccentPalette {
		if strings.EqualFold(a.Name, nameOrColor) {
			return a.Color
		}
	}
	return nameOrColor
}
