package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/registration-flow/internal/domain"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestNavigateRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		screen  string
		wantErr bool
	}{
		{name: "create screen", screen: "create"},
		{name: "success screen", screen: "success"},
		{name: "empty screen", screen: "", wantErr: true},
		{name: "whitespace screen", screen: "   ", wantErr: true},
		{name: "unknown screen", screen: "checkout", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := dto.NavigateRequest{Screen: tt.screen}
			err := req.Validate()

			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "screen")
		})
	}
}

func TestAccountRequest_ToForm(t *testing.T) {
	t.Parallel()

	req := dto.AccountRequest{
		Email:           "ada@example.com",
		Password:        "Secret1!",
		ConfirmPassword: "Secret1!",
		AcceptedTerms:   true,
	}

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	want := registration.AccountForm{
		Email:           "ada@example.com",
		Password:        "Secret1!",
		ConfirmPassword: "Secret1!",
		AcceptedTerms:   true,
	}
	if got := req.ToForm(); got != want {
		t.Errorf("ToForm() = %+v, want %+v", got, want)
	}
}

func TestValidateAccountRequest_ToTouched(t *testing.T) {
	t.Parallel()

	req := dto.ValidateAccountRequest{
		Touched: dto.TouchedRequest{Email: true, ConfirmPassword: true},
	}

	want := registration.Touched{Email: true, Confirm: true}
	if got := req.ToTouched(); got != want {
		t.Errorf("ToTouched() = %+v, want %+v", got, want)
	}
}
