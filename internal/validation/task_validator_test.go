package validation

import (
	"strings"
	"testing"

	"ritual/internal/domain"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid title", "Water plants", false, ""},
		{"Empty title", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Too long", strings.Repeat("a", 501), true, ErrorTypeInvalidLength},
		{"Max length", strings.Repeat("a", 500), false, ""},
		{"Embedded newline", "one\ntwo", true, ErrorTypeInvalidCharacter},
		{"Symbols allowed", "Email @bob re: Q3 #1", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.input)

			if !tt.expectError {
				if err != nil {
					t.Errorf("ValidateTitle(%q) unexpected error: %v", tt.input, err)
				}
				return
			}

			validationErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("ValidateTitle(%q) expected ValidationError but got %T", tt.input, err)
			}
			if validationErr.Errors[0].Type != tt.errorType {
				t.Errorf("ValidateTitle(%q) error type = %v, expected %v", tt.input, validationErr.Errors[0].Type, tt.errorType)
			}
		})
	}
}

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidateTaskForCreation("2024-03-10", "Stretch"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := validator.ValidateTaskForCreation("2024/03/10", "")
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 2 {
		t.Errorf("expected 2 errors (date and title), got %d", len(ve.Errors))
	}
	if len(ve.GetFieldErrors("date")) != 1 {
		t.Error("expected a date error")
	}
}

func TestTaskValidator_ValidateTask(t *testing.T) {
	validator := NewTaskValidator()

	if err := validator.ValidateTask(domain.Task{ID: "x", Date: "2024-03-10", Title: "ok"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validator.ValidateTask(domain.Task{Date: "2024-03-10", Title: "ok"}); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	title, err := validator.GetValidTitle("  Read  ")
	if err != nil || title != "Read" {
		t.Errorf("GetValidTitle() = %q, %v", title, err)
	}

	if _, err := validator.GetValidTitle(" "); err == nil {
		t.Error("expected error for blank title")
	}
}
