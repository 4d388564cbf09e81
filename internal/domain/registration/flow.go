package registration

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
)

// Flow is the navigation coordinator for a single registration. It holds
// the screen selector and the shared Draft; screen operations call Navigate
// and MergeDraft after their own validation succeeds.
type Flow struct {
	ID     string
	Screen Screen
	Draft  Draft
	Theme  Theme

	// Profile is the working form of the profile screen. It is seeded from
	// the draft on entry and discarded when the screen is left.
	Profile ProfileForm

	// Submitting is set while a simulated submit is in flight.
	Submitting bool

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt time.Time
}

// NewFlow creates a flow on the start screen with an empty draft.
func NewFlow(id string, now time.Time) *Flow {
	return &Flow{
		ID:        id,
		Screen:    ScreenStart,
		Theme:     ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Navigate moves the flow to the next screen. Any other target, including
// the current screen, is rejected with a *domain.TransitionError.
func (f *Flow) Navigate(to Screen, now time.Time) error {
	if !to.IsValid() {
		return &domain.TransitionError{From: f.Screen.String(), To: to.String(), Reason: "unknown screen"}
	}
	next, ok := f.Screen.Next()
	switch {
	case !ok:
		return &domain.TransitionError{From: f.Screen.String(), To: to.String(), Reason: "flow is complete"}
	case to.Index() < f.Screen.Index():
		return &domain.TransitionError{From: f.Screen.String(), To: to.String(), Reason: "flow never moves backwards"}
	case to != next:
		return &domain.TransitionError{From: f.Screen.String(), To: to.String(), Reason: "screens cannot be skipped"}
	}

	if f.Screen == ScreenProfile {
		f.Profile = ProfileForm{}
	}
	f.Screen = to
	f.UpdatedAt = now

	switch to {
	case ScreenProfile:
		f.Profile = ProfileForm{Interests: f.Draft.Clone().Interests}
		if f.Draft.ProfilePicture != nil {
			pic := *f.Draft.ProfilePicture
			f.Profile.Picture = &pic
		}
	case ScreenSuccess:
		f.CompletedAt = now
	}
	return nil
}

// MergeDraft applies a partial update to the draft.
func (f *Flow) MergeDraft(p DraftPatch, now time.Time) {
	f.Draft.Merge(p)
	f.UpdatedAt = now
}

// Require returns a conflict error unless the flow is on screen s.
func (f *Flow) Require(s Screen) error {
	if f.Screen != s {
		return fmt.Errorf("registration %s is on screen %q, not %q: %w", f.ID, f.Screen, s, domain.ErrConflict)
	}
	return nil
}

// RequireEditable returns a conflict error unless the flow is on screen s
// with no submit in flight. A submit merges the form as it was when the
// submit began, so later edits would be lost.
func (f *Flow) RequireEditable(s Screen) error {
	if err := f.Require(s); err != nil {
		return err
	}
	if f.Submitting {
		return fmt.Errorf("registration %s: submission in progress: %w", f.ID, domain.ErrConflict)
	}
	return nil
}

// BeginSubmit marks a submit of screen s as in flight. It fails when the
// flow is on another screen or a submit is already running.
func (f *Flow) BeginSubmit(s Screen, now time.Time) error {
	if err := f.RequireEditable(s); err != nil {
		return err
	}
	f.Submitting = true
	f.UpdatedAt = now
	return nil
}

// EndSubmit clears the in-flight marker.
func (f *Flow) EndSubmit(now time.Time) {
	f.Submitting = false
	f.UpdatedAt = now
}

// ToggleTheme flips between light and dark.
func (f *Flow) ToggleTheme(now time.Time) {
	f.Theme = f.Theme.Toggle()
	f.UpdatedAt = now
}

// Celebrating reports whether the success screen's decorative flag is still
// raised: it is set on arrival and clears itself after window.
func (f *Flow) Celebrating(now time.Time, window time.Duration) bool {
	if f.Screen != ScreenSuccess || f.CompletedAt.IsZero() {
		return false
	}
	return now.Before(f.CompletedAt.Add(window))
}

// Clone returns a deep copy of f.
func (f *Flow) Clone() *Flow {
	out := *f
	out.Draft = f.Draft.Clone()
	out.Profile = f.Profile.Clone()
	return &out
}
