package validation

import "ritual/internal/domain"

// ValidateAccent validates a #rgb or #rrggbb accent color
func ValidateAccent(color string) error {
	if !domain.IsValidAccent(color) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("accent", color, "#rgb or #rrggbb")
		return validationError
	}
	return nil
}
