package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
)

// RegistrationService defines the service port for the registration flow.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every method returning a FlowView reflects the flow after the operation.
type RegistrationService interface {
	// Start creates a new flow on the start screen.
	Start(ctx context.Context) (*FlowView, error)

	// Get returns the current view of a flow.
	// Returns domain.ErrNotFound if the flow does not exist.
	Get(ctx context.Context, id string) (*FlowView, error)

	// Navigate performs a transition that needs no screen submit (the start
	// screen's call to action and the profile screen's skip).
	// Returns a *domain.TransitionError for any other target.
	Navigate(ctx context.Context, id string, to registration.Screen) (*FlowView, error)

	// ToggleTheme flips the flow between light and dark.
	ToggleTheme(ctx context.Context, id string) (*FlowView, error)

	// ValidateAccount recomputes the account form validation without
	// changing the flow. Only allowed on the create screen.
	ValidateAccount(ctx context.Context, id string, form registration.AccountForm,
		touched registration.Touched) (*registration.AccountValidation, error)

	// SubmitAccount validates the form, waits out the simulated remote call,
	// merges email and password into the draft and moves to the profile
	// screen. Returns domain.ErrValidation if the form is not submittable
	// and domain.ErrConflict while another submit is running.
	SubmitAccount(ctx context.Context, id string, form registration.AccountForm) (*FlowView, error)

	// ToggleInterest flips one interest on the profile screen's working form.
	ToggleInterest(ctx context.Context, id, interest string) (*FlowView, error)

	// UploadPicture stores an encoded profile picture on the working form.
	UploadPicture(ctx context.Context, id string, pic registration.Picture) (*FlowView, error)

	// SubmitProfile validates the full name, waits out the simulated remote
	// call, merges the profile into the draft and moves to success.
	SubmitProfile(ctx context.Context, id, fullName string) (*FlowView, error)

	// SkipProfile moves straight to success leaving the profile unset.
	SkipProfile(ctx context.Context, id string) (*FlowView, error)
}

// FlowView is a read-only snapshot of a flow for presentation. It never
// contains the password or its hash.
type FlowView struct {
	ID          string
	Screen      registration.Screen
	Theme       registration.Theme
	Email       string
	FullName    string
	Picture     *registration.Picture
	Interests   []string
	Profile     registration.ProfileForm
	Submitting  bool
	Celebrating bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time
}
