package validator_test

import (
	"strings"
	"testing"

	"roam/shared/validator"
)

type signupForm struct {
	Email    string `validate:"required,email"             json:"email"`
	Password string `validate:"required,min=8"             json:"password"`
	Role     string `validate:"omitempty,oneof=user admin" json:"role"`
	Rating   int    `validate:"omitempty,min=1,max=5"      json:"rating"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        signupForm
		expectError bool
	}{
		{
			name: "valid form",
			data: signupForm{
				Email:    "test@example.com",
				Password: "password123",
				Role:     "user",
				Rating:   5,
			},
			expectError: false,
		},
		{
			name: "missing email",
			data: signupForm{
				Password: "password123",
			},
			expectError: true,
		},
		{
			name: "malformed email",
			data: signupForm{
				Email:    "not-an-email",
				Password: "password123",
			},
			expectError: true,
		},
		{
			name: "short password",
			data: signupForm{
				Email:    "test@example.com",
				Password: "short",
			},
			expectError: true,
		},
		{
			name: "unknown role",
			data: signupForm{
				Email:    "test@example.com",
				Password: "password123",
				Role:     "superuser",
			},
			expectError: true,
		},
		{
			name: "rating out of range",
			data: signupForm{
				Email:    "test@example.com",
				Password: "password123",
				Rating:   6,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body := `{"email":"test@example.com","password":"password123"}`

		var form signupForm
		if err := validator.Validate(strings.NewReader(body), &form); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		if form.Email != "test@example.com" {
			t.Errorf("expected email to be populated, got %q", form.Email)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		var form signupForm
		if err := validator.Validate(strings.NewReader("{not json"), &form); err == nil {
			t.Error("expected error for malformed json, got nil")
		}
	})

	t.Run("invalid body", func(t *testing.T) {
		body := `{"email":"nope","password":"short"}`

		var form signupForm
		if err := validator.Validate(strings.NewReader(body), &form); err == nil {
			t.Error("expected validation error, got nil")
		}
	})
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("test@example.com", "required,email"); err != nil {
		t.Errorf("expected no error for valid email, got: %v", err)
	}

	if err := validator.ValidateVar("", "required"); err == nil {
		t.Error("expected error for empty required value, got nil")
	}
}
