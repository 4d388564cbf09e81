// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsamuelsen11/registration-flow/internal/domain"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

// Compile-time check that RegistrationService implements ports.RegistrationService.
var _ ports.RegistrationService = (*RegistrationService)(nil)

const (
	defaultSubmitDelay = time.Second
	defaultCelebration = 3 * time.Second
)

// Settings tunes the simulated parts of the flow.
type Settings struct {
	// SubmitDelay is the simulated remote call latency of both submits.
	SubmitDelay time.Duration

	// Celebration is how long the success screen's decorative flag stays up.
	Celebration time.Duration

	// PasswordCost is the bcrypt cost used for the draft's password hash.
	// Zero selects bcrypt.DefaultCost.
	PasswordCost int
}

// Option customizes a RegistrationService.
type Option func(*RegistrationService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *RegistrationService) {
		s.now = now
	}
}

// WithIDGenerator replaces the UUID-based flow ID generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *RegistrationService) {
		s.newID = gen
	}
}

// RegistrationService implements ports.RegistrationService. It owns the
// screen guards, the simulated submit latency and the analytics markers;
// the validation rules themselves live in domain/registration.
type RegistrationService struct {
	store    ports.FlowStore
	tracker  *Tracker
	settings Settings
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
	newID    func() string
}

// NewRegistrationService creates a RegistrationService. A nil tracker
// disables analytics; a nil logger discards log output.
func NewRegistrationService(
	store ports.FlowStore,
	tracker *Tracker,
	settings Settings,
	logger *slog.Logger,
	opts ...Option,
) *RegistrationService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if settings.SubmitDelay < 0 {
		settings.SubmitDelay = defaultSubmitDelay
	}
	if settings.Celebration <= 0 {
		settings.Celebration = defaultCelebration
	}
	if settings.PasswordCost == 0 {
		settings.PasswordCost = bcrypt.DefaultCost
	}

	s := &RegistrationService{
		store:    store,
		tracker:  tracker,
		settings: settings,
		logger:   logger,
		tracer:   otel.GetTracerProvider().Tracer("app"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates a new flow on the start screen.
func (s *RegistrationService) Start(ctx context.Context) (*ports.FlowView, error) {
	flow := registration.NewFlow(s.newID(), s.now())

	if err := s.store.Create(ctx, flow); err != nil {
		s.logger.ErrorContext(ctx, "failed to create registration",
			slog.String("operation", "Start"),
			slog.String("registration_id", flow.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "registration started", slog.String("registration_id", flow.ID))
	return s.view(flow), nil
}

// Get returns the current view of a flow.
func (s *RegistrationService) Get(ctx context.Context, id string) (*ports.FlowView, error) {
	flow, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(flow), nil
}

// Navigate performs a free transition: start -> create or profile -> success.
func (s *RegistrationService) Navigate(ctx context.Context, id string, to registration.Screen) (*ports.FlowView, error) {
	var from registration.Screen

	flow, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		from = f.Screen
		if f.Submitting {
			return fmt.Errorf("registration %s: submission in progress: %w", id, domain.ErrConflict)
		}
		// Flow.Navigate explains skips, backward moves and moves past the end;
		// only the gated next step is refused here.
		if next, ok := f.Screen.Next(); ok && next == to && !registration.IsFreeTransition(f.Screen, to) {
			return &domain.TransitionError{
				From:   f.Screen.String(),
				To:     to.String(),
				Reason: "requires submitting the current screen",
			}
		}
		return f.Navigate(to, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "registration navigated",
		slog.String("registration_id", id),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	switch from {
	case registration.ScreenStart:
		s.emit(ctx, flow, registration.EventRegistrationStart)
	case registration.ScreenProfile:
		s.emit(ctx, flow, registration.EventProfileSkipped)
	}
	return s.view(flow), nil
}

// SkipProfile leaves the profile screen without saving anything.
func (s *RegistrationService) SkipProfile(ctx context.Context, id string) (*ports.FlowView, error) {
	return s.Navigate(ctx, id, registration.ScreenSuccess)
}

// ToggleTheme flips the flow's colour scheme. Allowed on every screen.
func (s *RegistrationService) ToggleTheme(ctx context.Context, id string) (*ports.FlowView, error) {
	flow, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		f.ToggleTheme(s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(flow), nil
}

// ValidateAccount returns the live validation state of the account form.
func (s *RegistrationService) ValidateAccount(
	ctx context.Context,
	id string,
	form registration.AccountForm,
	touched registration.Touched,
) (*registration.AccountValidation, error) {
	flow, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := flow.Require(registration.ScreenCreate); err != nil {
		return nil, err
	}

	v := registration.ValidateAccount(form, touched)
	return &v, nil
}

// SubmitAccount validates the account form, simulates the remote call and
// moves the flow to the profile screen.
func (s *RegistrationService) SubmitAccount(
	ctx context.Context,
	id string,
	form registration.AccountForm,
) (*ports.FlowView, error) {
	ctx, span := s.tracer.Start(ctx, "RegistrationService.SubmitAccount",
		trace.WithAttributes(attribute.String("registration.id", id)),
	)
	defer span.End()

	_, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		if err := f.Require(registration.ScreenCreate); err != nil {
			return err
		}
		v := registration.ValidateAccount(form, registration.AllTouched())
		if err := v.SubmitError(); err != nil {
			return err
		}
		return f.BeginSubmit(registration.ScreenCreate, s.now())
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	hash, err := hashPassword(form.Password, s.settings.PasswordCost)
	if err == nil {
		err = s.simulateRemoteCall(ctx)
	}
	if err != nil {
		s.abortSubmit(ctx, id, "SubmitAccount", err)
		recordSpanError(span, err)
		return nil, err
	}

	flow, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		now := s.now()
		f.EndSubmit(now)
		f.MergeDraft(registration.DraftPatch{
			Email:        &form.Email,
			PasswordHash: &hash,
		}, now)
		return f.Navigate(registration.ScreenProfile, now)
	})
	if err != nil {
		s.abortSubmit(ctx, id, "SubmitAccount", err)
		recordSpanError(span, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "account submitted", slog.String("registration_id", id))
	s.emit(ctx, flow, registration.EventRegisterSubmit)
	return s.view(flow), nil
}

// ToggleInterest flips one interest on the profile screen's working form.
func (s *RegistrationService) ToggleInterest(ctx context.Context, id, interest string) (*ports.FlowView, error) {
	flow, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		if err := f.RequireEditable(registration.ScreenProfile); err != nil {
			return err
		}
		if err := f.Profile.ToggleInterest(interest); err != nil {
			return err
		}
		f.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(flow), nil
}

// UploadPicture stores an encoded profile picture on the working form.
// There is no size or type enforcement beyond the transport's body limit.
func (s *RegistrationService) UploadPicture(
	ctx context.Context,
	id string,
	pic registration.Picture,
) (*ports.FlowView, error) {
	if pic.DataURL == "" {
		return nil, &domain.ValidationError{
			Fields: map[string]string{registration.FieldPicture: domain.MsgRequired},
		}
	}

	flow, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		if err := f.RequireEditable(registration.ScreenProfile); err != nil {
			return err
		}
		stored := pic
		f.Profile.Picture = &stored
		f.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile picture uploaded",
		slog.String("registration_id", id),
		slog.String("content_type", pic.ContentType),
		slog.Int("size", pic.Size),
	)
	s.emit(ctx, flow, registration.EventProfilePictureUploaded)
	return s.view(flow), nil
}

// SubmitProfile validates the full name, simulates the remote call, merges
// the profile into the draft and moves the flow to success.
func (s *RegistrationService) SubmitProfile(ctx context.Context, id, fullName string) (*ports.FlowView, error) {
	ctx, span := s.tracer.Start(ctx, "RegistrationService.SubmitProfile",
		trace.WithAttributes(attribute.String("registration.id", id)),
	)
	defer span.End()

	var snapshot registration.ProfileForm

	_, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		if err := f.Require(registration.ScreenProfile); err != nil {
			return err
		}
		if err := registration.ValidateFullName(fullName); err != nil {
			return err
		}
		if err := f.BeginSubmit(registration.ScreenProfile, s.now()); err != nil {
			return err
		}
		snapshot = f.Profile.Clone()
		return nil
	})
	if err != nil {
		recordSpanError(span, err)
		return nil, err
	}

	if err := s.simulateRemoteCall(ctx); err != nil {
		s.abortSubmit(ctx, id, "SubmitProfile", err)
		recordSpanError(span, err)
		return nil, err
	}

	name := strings.TrimSpace(fullName)
	interests := snapshot.Interests
	if interests == nil {
		interests = []string{}
	}

	flow, err := s.store.Update(ctx, id, func(f *registration.Flow) error {
		now := s.now()
		f.EndSubmit(now)
		f.MergeDraft(registration.DraftPatch{
			FullName:       &name,
			Interests:      &interests,
			ProfilePicture: snapshot.Picture,
		}, now)
		return f.Navigate(registration.ScreenSuccess, now)
	})
	if err != nil {
		s.abortSubmit(ctx, id, "SubmitProfile", err)
		recordSpanError(span, err)
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile saved",
		slog.String("registration_id", id),
		slog.Int("interests", len(interests)),
		slog.Bool("has_picture", snapshot.Picture != nil),
	)
	s.emit(ctx, flow, registration.EventProfileSaved)
	s.emit(ctx, flow, registration.EventRegisterSuccess)
	return s.view(flow), nil
}

// simulateRemoteCall stands in for the registration backend. It cannot fail
// except by cancellation of ctx.
func (s *RegistrationService) simulateRemoteCall(ctx context.Context) error {
	if s.settings.SubmitDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.settings.SubmitDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("simulated submit interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// abortSubmit clears the in-flight marker after a failed submit. It uses a
// context detached from cancellation so the flag is cleared even when the
// request itself was cancelled.
func (s *RegistrationService) abortSubmit(ctx context.Context, id, operation string, cause error) {
	level := slog.LevelError
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "submit aborted",
		slog.String("operation", operation),
		slog.String("registration_id", id),
		slog.Any("error", cause),
	)

	_, err := s.store.Update(context.WithoutCancel(ctx), id, func(f *registration.Flow) error {
		f.EndSubmit(s.now())
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.ErrorContext(ctx, "failed to clear submitting flag",
			slog.String("operation", operation),
			slog.String("registration_id", id),
			slog.Any("error", err),
		)
	}
}

func (s *RegistrationService) emit(ctx context.Context, flow *registration.Flow, name registration.EventName) {
	s.tracker.Emit(ctx, registration.Event{
		Name:   name,
		FlowID: flow.ID,
		Screen: flow.Screen,
		At:     s.now(),
	})
}

func (s *RegistrationService) view(f *registration.Flow) *ports.FlowView {
	draft := f.Draft.Clone()
	return &ports.FlowView{
		ID:          f.ID,
		Screen:      f.Screen,
		Theme:       f.Theme,
		Email:       draft.Email,
		FullName:    draft.FullName,
		Picture:     draft.ProfilePicture,
		Interests:   draft.Interests,
		Profile:     f.Profile.Clone(),
		Submitting:  f.Submitting,
		Celebrating: f.Celebrating(s.now(), s.settings.Celebration),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
		CompletedAt: f.CompletedAt,
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
