package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/registration-flow/internal/app"
	"github.com/jsamuelsen11/registration-flow/internal/domain/registration"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
	"github.com/jsamuelsen11/registration-flow/mocks"
)

func testEvent() registration.Event {
	return registration.Event{
		Name:   registration.EventRegisterSubmit,
		FlowID: "flow-1",
		Screen: registration.ScreenCreate,
		At:     time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC),
	}
}

func TestTracker_DeliversToEverySink(t *testing.T) {
	t.Parallel()

	event := testEvent()
	first := mocks.NewMockAnalyticsSink(t)
	second := mocks.NewMockAnalyticsSink(t)
	first.EXPECT().Record(mock.Anything, event).Return(nil).Once()
	second.EXPECT().Record(mock.Anything, event).Return(nil).Once()

	tracker := app.NewTracker([]ports.AnalyticsSink{first, second}, 2, nil)
	tracker.Emit(context.Background(), event)
}

func TestTracker_FailingSinkDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	event := testEvent()
	failing := mocks.NewMockAnalyticsSink(t)
	failing.EXPECT().Record(mock.Anything, event).Return(errors.New("collector down")).Once()
	failing.EXPECT().Name().Return("collector").Once()

	healthy := &recordingSink{}

	tracker := app.NewTracker([]ports.AnalyticsSink{failing, healthy}, 0, nil)
	tracker.Emit(context.Background(), event)

	assertEvents(t, healthy, registration.EventRegisterSubmit)
}

func TestTracker_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilTracker *app.Tracker
	nilTracker.Emit(context.Background(), testEvent())

	app.NewTracker(nil, 1, nil).Emit(context.Background(), testEvent())
}
