package dto

import (
	"time"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

// PictureResponse represents an encoded profile picture.
type PictureResponse struct {
	ContentType string `json:"content_type"`
	DataURL     string `json:"data_url"`
	Size        int    `json:"size"`
}

// InterestOption is one catalogue entry with its selection state.
type InterestOption struct {
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// ProfileFormResponse is the working state of the profile-setup screen.
type ProfileFormResponse struct {
	Interests []InterestOption `json:"interests"`
	Picture   *PictureResponse `json:"picture,omitempty"`
}

// RegistrationResponse is the client-facing view of a flow. It never
// carries the password or its hash.
type RegistrationResponse struct {
	ID          string               `json:"id"`
	Screen      string               `json:"screen"`
	Step        int                  `json:"step"`
	Theme       string               `json:"theme"`
	Email       string               `json:"email,omitempty"`
	FullName    string               `json:"full_name,omitempty"`
	Picture     *PictureResponse     `json:"picture,omitempty"`
	Interests   []string             `json:"interests,omitempty"`
	Profile     *ProfileFormResponse `json:"profile,omitempty"`
	Submitting  bool                 `json:"submitting"`
	Celebrating bool                 `json:"celebrating"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
	CompletedAt string               `json:"completed_at,omitempty"`
}

// ToRegistrationResponse converts a flow view to an HTTP response DTO.
// The profile form is only included while the flow is on the profile screen.
func ToRegistrationResponse(v *ports.FlowView) RegistrationResponse {
	resp := RegistrationResponse{
		ID:          v.ID,
		Screen:      v.Screen.String(),
		Step:        v.Screen.Index() + 1,
		Theme:       v.Theme.String(),
		Email:       v.Email,
		FullName:    v.FullName,
		Picture:     toPictureResponse(v.Picture),
		Interests:   v.Interests,
		Submitting:  v.Submitting,
		Celebrating: v.Celebrating,
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
	}
	if !v.CompletedAt.IsZero() {
		resp.CompletedAt = v.CompletedAt.Format(time.RFC3339)
	}

	if v.Screen == registration.ScreenProfile {
		catalogue := registration.Interests()
		options := make([]InterestOption, len(catalogue))
		for i, name := range catalogue {
			options[i] = InterestOption{Name: name, Selected: v.Profile.Selected(name)}
		}
		resp.Profile = &ProfileFormResponse{
			Interests: options,
			Picture:   toPictureResponse(v.Profile.Picture),
		}
	}

	return resp
}

func toPictureResponse(p *registration.Picture) *PictureResponse {
	if p == nil {
		return nil
	}
	return &PictureResponse{ContentType: p.ContentType, DataURL: p.DataURL, Size: p.Size}
}

// PasswordRulesResponse reports each password composition rule.
type PasswordRulesResponse struct {
	MinLength    bool `json:"min_length"`
	HasUppercase bool `json:"has_uppercase"`
	HasNumber    bool `json:"has_number"`
	HasSpecial   bool `json:"has_special"`
}

// StrengthResponse is the derived password strength meter.
type StrengthResponse struct {
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Tone    string `json:"tone"`
	Percent int    `json:"percent"`
}

// AccountValidationResponse is the live validation state of the account form.
type AccountValidationResponse struct {
	EmailValid     bool                  `json:"email_valid"`
	Rules          PasswordRulesResponse `json:"rules"`
	Strength       StrengthResponse      `json:"strength"`
	PasswordsMatch bool                  `json:"passwords_match"`
	Submittable    bool                  `json:"submittable"`
	Errors         map[string]string     `json:"errors"`
}

// ToAccountValidationResponse converts a domain validation result to an
// HTTP response DTO.
func ToAccountValidationResponse(v *registration.AccountValidation) AccountValidationResponse {
	errs := v.Errors
	if errs == nil {
		errs = map[string]string{}
	}
	return AccountValidationResponse{
		EmailValid: v.EmailValid,
		Rules: PasswordRulesResponse{
			MinLength:    v.Rules.MinLength,
			HasUppercase: v.Rules.HasUppercase,
			HasNumber:    v.Rules.HasNumber,
			HasSpecial:   v.Rules.HasSpecial,
		},
		Strength: StrengthResponse{
			Score:   v.Strength.Score,
			Label:   v.Strength.Label,
			Tone:    string(v.Strength.Tone),
			Percent: v.Strength.Percent,
		},
		PasswordsMatch: v.PasswordsMatch,
		Submittable:    v.Submittable,
		Errors:         errs,
	}
}

// InterestListResponse represents the interest catalogue.
type InterestListResponse struct {
	Interests []string `json:"interests"`
	Count     int      `json:"count"`
}

// ToInterestListResponse wraps the catalogue in a response DTO.
func ToInterestListResponse(interests []string) InterestListResponse {
	return InterestListResponse{Interests: interests, Count: len(interests)}
}

// HealthResponse is the body of the liveness and readiness probes. Checks
// maps a dependency name to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
