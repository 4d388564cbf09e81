package dto

import (
	"strings"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// NavigateRequest represents the JSON body for a free screen transition.
type NavigateRequest struct {
	Screen string `json:"screen"`
}

// Validate checks that the target screen is present and known.
// Returns a *domain.ValidationError if any checks fail.
func (r *NavigateRequest) Validate() error {
	if strings.TrimSpace(r.Screen) == "" {
		return &domain.ValidationError{Fields: map[string]string{"screen": domain.MsgRequired}}
	}
	_, err := registration.ParseScreen(r.Screen)
	return err
}

// AccountRequest represents the JSON body of the account-creation form.
// Field validation is the domain validator's job; the DTO only decodes.
type AccountRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AcceptedTerms   bool   `json:"accepted_terms"`
}

// Validate is a no-op: every account field rule lives in the domain so the
// same messages are produced for live validation and submit.
func (r *AccountRequest) Validate() error {
	return nil
}

// ToForm converts the request to the domain form.
func (r *AccountRequest) ToForm() registration.AccountForm {
	return registration.AccountForm{
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		AcceptedTerms:   r.AcceptedTerms,
	}
}

// TouchedRequest lists the account fields the user has visited.
type TouchedRequest struct {
	Email           bool `json:"email"`
	Password        bool `json:"password"`
	ConfirmPassword bool `json:"confirm_password"`
}

// ValidateAccountRequest represents the JSON body for live account validation.
type ValidateAccountRequest struct {
	AccountRequest
	Touched TouchedRequest `json:"touched"`
}

// ToTouched converts the request's touched flags to the domain type.
func (r *ValidateAccountRequest) ToTouched() registration.Touched {
	return registration.Touched{
		Email:    r.Touched.Email,
		Password: r.Touched.Password,
		Confirm:  r.Touched.ConfirmPassword,
	}
}

// ProfileRequest represents the JSON body of the profile-setup submit.
type ProfileRequest struct {
	FullName string `json:"full_name"`
}

// Validate is a no-op; the full name rules live in the domain.
func (r *ProfileRequest) Validate() error {
	return nil
}
