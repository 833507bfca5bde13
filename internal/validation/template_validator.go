package validation

import (
	"fmt"

	"ritual/internal/config"
	"ritual/internal/domain"
)

// TemplateValidator validates recurring template input
type TemplateValidator struct {
	validator *Validator
}

// NewTemplateValidator creates a new template validator
func NewTemplateValidator() *TemplateValidator {
	return &TemplateValidator{validator: NewValidator()}
}

// NewTemplateValidatorWithConfig creates a template validator using configured limits
func NewTemplateValidatorWithConfig(cfg *config.Config) *TemplateValidator {
	return &TemplateValidator{validator: NewValidatorWithConfig(cfg)}
}

func (tv *TemplateValidator) validateType(ve *ValidationError, tt domain.TemplateType) {
	if !tt.IsValid() {
		ve.AddInvalidValueError("type", string(tt), fmt.Sprintf("must be %q or %q", domain.TemplateTypeDaily, domain.TemplateTypeWeekly))
	}
}

func (tv *TemplateValidator) validateDay(ve *ValidationError, day int) {
	if !tv.validator.IsValidWeekday(day) {
		ve.AddInvalidRangeError("day", day, "weekday must be between 0 (Sunday) and 6 (Saturday)")
	}
}

// ValidateDefinition validates the input of AddTemplate. The day is only
// checked for weekly templates.
func (tv *TemplateValidator) ValidateDefinition(def domain.TemplateDefinition) error {
	validationError := NewValidationError()
	validationError.Merge(tv.validator.validateTitle("title", def.Title))
	tv.validateType(validationError, def.Type)
	if def.Type == domain.TemplateTypeWeekly {
		tv.validateDay(validationError, def.Day)
	}
	return validationError.OrNil()
}

// ValidatePatch validates the fields present in an UpdateTemplate patch.
func (tv *TemplateValidator) ValidatePatch(patch domain.TemplatePatch) error {
	validationError := NewValidationError()
	if patch.Title != nil {
		validationError.Merge(tv.validator.validateTitle("title", *patch.Title))
	}
	if patch.Type != nil {
		tv.validateType(validationError, *patch.Type)
	}
	if patch.Day != nil {
		tv.validateDay(validationError, *patch.Day)
	}
	return validationError.OrNil()
}
