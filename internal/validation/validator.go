package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ritual/internal/config"
	"ritual/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed rune count is within [min, max]
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsSingleLine reports whether s has no control characters, so titles
// stay on one line.
func (v *Validator) IsSingleLine(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// IsValidDateKey checks for a YYYY-MM-DD calendar day
func (v *Validator) IsValidDateKey(s string) bool {
	return domain.IsValidDateKey(s)
}

// IsValidWeekday checks for a weekday number in 0..6
func (v *Validator) IsValidWeekday(day int) bool {
	return domain.IsValidWeekday(day)
}

// IsValidMMDD checks for a real MM-DD day
func (v *Validator) IsValidMMDD(s string) bool {
	return domain.IsValidMMDD(s)
}

// IsValidAccent checks for a #rgb or #rrggbb color
func (v *Validator) IsValidAccent(s string) bool {
	return domain.IsValidAccent(s)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// validateTitle checks a task or template title under field name field.
func (v *Validator) validateTitle(field, title string) error {
	validationError := NewValidationError()
	trimmed := v.TrimAndValidateString(title)

	if !v.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(field)
		return validationError
	}

	minLen, maxLen := v.getTitleMinLength(), v.getTitleMaxLength()
	if !v.IsValidStringLength(trimmed, minLen, maxLen) {
		validationError.AddInvalidLengthError(field, trimmed, minLen, maxLen)
	}

	if !v.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError(field, trimmed)
	}

	return validationError.OrNil()
}

// getTitleMinLength returns configured minimum title length or default
func (v *Validator) getTitleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1
}

// getTitleMaxLength returns configured maximum title length or default
func (v *Validator) getTitleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 500
}

// getHolidayNameMaxLength returns configured maximum holiday name length or default
func (v *Validator) getHolidayNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.HolidayNameMaxLength
	}
	return 100
}
