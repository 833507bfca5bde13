package validation

import (
	"ritual/internal/config"
	"ritual/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	return tv.validator.validateTitle("title", title)
}

// ValidateDateKey validates a YYYY-MM-DD day key
func (tv *TaskValidator) ValidateDateKey(date string) error {
	if !tv.validator.IsValidDateKey(date) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("date", date, "YYYY-MM-DD")
		return validationError
	}
	return nil
}

// ValidateTaskForCreation validates the inputs of AddTask
func (tv *TaskValidator) ValidateTaskForCreation(date, title string) error {
	validationError := NewValidationError()
	validationError.Merge(tv.ValidateDateKey(date))
	validationError.Merge(tv.ValidateTitle(title))
	return validationError.OrNil()
}

// ValidateTask validates a domain.Task object
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()
	if task.ID == "" {
		validationError.AddRequiredError("id")
	}
	validationError.Merge(tv.ValidateTaskForCreation(task.Date, task.Title))
	return validationError.OrNil()
}

// GetValidTitle returns a cleaned title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}
