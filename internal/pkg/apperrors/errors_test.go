package apperrors

import (
	"errors"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "With Code",
			appError: &AppError{
				Code:    "TEST_CODE",
				Message: "This is a test error",
			},
			expected: "[TEST_CODE] This is a test error",
		},
		{
			name: "Without Code",
			appError: &AppError{
				Message: "This is a test error without code",
			},
			expected: "This is a test error without code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestValidationErrorError(t *testing.T) {
	tests := []struct {
		name     string
		valError *ValidationError
		expected string
	}{
		{
			name: "With Field",
			valError: &ValidationError{
				Field:   "email",
				Message: "is required",
			},
			expected: "validation failed for field 'email': is required",
		},
		{
			name: "Without Field",
			valError: &ValidationError{
				Message: "payload is empty",
			},
			expected: "validation failed: payload is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.valError.Error()
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("name", "is required")

	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected error to wrap ErrValidation, got %v", err)
	}

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected error chain to contain *ValidationError, got %v", err)
	}
	if valErr.Field != "name" {
		t.Errorf("expected field %q, got %q", "name", valErr.Field)
	}
}

func TestWrapDatabaseError(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapDatabaseError(cause, "failed to query customers")

	if !errors.Is(err, ErrDatabase) {
		t.Errorf("expected error to wrap ErrDatabase, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected error to wrap the original cause, got %v", err)
	}

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected error chain to contain *AppError, got %v", err)
	}
	if appErr.Code != "DB_ERROR" {
		t.Errorf("expected code %q, got %q", "DB_ERROR", appErr.Code)
	}
}
