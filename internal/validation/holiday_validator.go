package validation

import (
	"ritual/internal/config"
	"ritual/internal/domain"
)

// HolidayValidator validates custom holiday input
type HolidayValidator struct {
	validator *Validator
}

// NewHolidayValidator creates a new holiday validator
func NewHolidayValidator() *HolidayValidator {
	return &HolidayValidator{validator: NewValidator()}
}

// NewHolidayValidatorWithConfig creates a holiday validator using configured limits
func NewHolidayValidatorWithConfig(cfg *config.Config) *HolidayValidator {
	return &HolidayValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateMMDD validates a MM-DD day
func (hv *HolidayValidator) ValidateMMDD(mmdd string) error {
	if !hv.validator.IsValidMMDD(mmdd) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("mmdd", mmdd, "MM-DD")
		return validationError
	}
	return nil
}

// ValidateName validates a holiday name
func (hv *HolidayValidator) ValidateName(name string) error {
	validationError := NewValidationError()
	trimmed := hv.validator.TrimAndValidateString(name)
	if !hv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("name")
		return validationError
	}
	maxLen := hv.validator.getHolidayNameMaxLength()
	if !hv.validator.IsValidStringLength(trimmed, 1, maxLen) {
		validationError.AddInvalidLengthError("name", trimmed, 1, maxLen)
	}
	if !hv.validator.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError("name", trimmed)
	}
	return validationError.OrNil()
}

// ValidateHoliday validates the input of AddHoliday
func (hv *HolidayValidator) ValidateHoliday(mmdd, name string) error {
	validationError := NewValidationError()
	validationError.Merge(hv.ValidateMMDD(mmdd))
	validationError.Merge(hv.ValidateName(name))
	return validationError.OrNil()
}

// ValidatePatch validates the fields present in an UpdateHoliday patch
func (hv *HolidayValidator) ValidatePatch(patch domain.HolidayPatch) error {
	validationError := NewValidationError()
	if patch.MMDD != nil {
		validationError.Merge(hv.ValidateMMDD(*patch.MMDD))
	}
	if patch.Name != nil {
		validationError.Merge(hv.ValidateName(*patch.Name))
	}
	return validationError.OrNil()
}
