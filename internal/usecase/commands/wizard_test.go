//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"rooftop-wizard/internal/domain/wizard"
	"rooftop-wizard/internal/infra"
	"rooftop-wizard/internal/pkg/clock"
	"rooftop-wizard/internal/usecase/commands"
	"rooftop-wizard/tests/common/builder"
	commandsmock "rooftop-wizard/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const submitTimeout = 2 * time.Second

type commandsEnv struct {
	sessions     *commandsmock.MockSessionRepository
	availability *commandsmock.MockAvailabilityChecker
	gateway      *commandsmock.MockBookingGateway
	clock        *clock.MockClock
	commands     commands.WizardCommands
}

func newCommandsEnv(t *testing.T, now time.Time) *commandsEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &commandsEnv{
		sessions:     commandsmock.NewMockSessionRepository(ctrl),
		availability: commandsmock.NewMockAvailabilityChecker(ctrl),
		gateway:      commandsmock.NewMockBookingGateway(ctrl),
		clock:        clock.NewMockClock(now),
	}
	env.commands = commands.NewWizardCommands(
		env.sessions,
		env.availability,
		env.gateway,
		env.clock,
		time.UTC,
		submitTimeout,
	)
	return env
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notFoundErr() error {
	return infra.WrapStoreErr(discardLogger(), infra.KindNotFound, "session not found", nil)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	b := builder.NewWizardBuilder()

	t.Run("creates and saves a fresh session", func(t *testing.T) {
		env := newCommandsEnv(t, b.Now)
		env.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		view, err := env.commands.Open(ctx, b.UserID, commands.OpenWizardInput{Rooftop: b.BuildSummaryParams()})
		require.NoError(t, err)

		assert.Equal(t, "date", view.Step)
		assert.Equal(t, "Next", view.ActionLabel)
		assert.False(t, view.CanAdvance)
		assert.Equal(t, "08:00", view.StartTime)
		assert.Equal(t, "14:00", view.EndTime)
		assert.Equal(t, b.RooftopID, view.Rooftop.ID)
	})

	t.Run("rejects an incomplete rooftop summary", func(t *testing.T) {
		env := newCommandsEnv(t, b.Now)

		params := b.BuildSummaryParams()
		params.Title = ""
		_, err := env.commands.Open(ctx, b.UserID, commands.OpenWizardInput{Rooftop: params})
		assert.ErrorIs(t, err, commands.ErrInvalidRooftop)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		env := newCommandsEnv(t, b.Now)
		env.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := env.commands.Open(ctx, b.UserID, commands.OpenWizardInput{Rooftop: b.BuildSummaryParams()})
		assert.ErrorIs(t, err, commands.ErrStoreFailed)
	})
}

func TestSelectDate(t *testing.T) {
	ctx := context.Background()

	t.Run("records the date with a fresh availability verdict", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)

		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.availability.EXPECT().
			Check(gomock.Any(), b.RooftopID,
				time.Date(2026, 7, 14, 8, 0, 0, 0, time.UTC),
				time.Date(2026, 7, 14, 14, 0, 0, 0, time.UTC)).
			Return(true, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		view, err := env.commands.SelectDate(ctx, b.UserID, b.SessionID, b.Date)
		require.NoError(t, err)
		assert.Equal(t, "2026-07-14", view.SelectedDate)
		assert.True(t, view.Available)
		assert.True(t, view.CanAdvance)
	})

	t.Run("an occupied window disables the primary action", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)

		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.availability.EXPECT().Check(gomock.Any(), b.RooftopID, gomock.Any(), gomock.Any()).Return(false, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		view, err := env.commands.SelectDate(ctx, b.UserID, b.SessionID, b.Date)
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.False(t, view.CanAdvance)
	})

	t.Run("rejects past dates", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)

		_, err = env.commands.SelectDate(ctx, b.UserID, b.SessionID, "2026-07-01")
		assert.ErrorIs(t, err, commands.ErrInvalidDate)
	})

	t.Run("surfaces availability backend failures", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.availability.EXPECT().Check(gomock.Any(), b.RooftopID, gomock.Any(), gomock.Any()).
			Return(false, errors.New("db down"))

		_, err = env.commands.SelectDate(ctx, b.UserID, b.SessionID, b.Date)
		assert.ErrorIs(t, err, commands.ErrAvailabilityFailed)
	})

	t.Run("unknown session", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(nil, notFoundErr())

		_, err := env.commands.SelectDate(ctx, b.UserID, b.SessionID, b.Date)
		assert.ErrorIs(t, err, commands.ErrSessionNotFound)
	})

	t.Run("another user's session", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)

		_, err = env.commands.SelectDate(ctx, uuid.New(), b.SessionID, b.Date)
		assert.ErrorIs(t, err, commands.ErrSessionAccessDenied)
	})
}

func TestSetTimes(t *testing.T) {
	ctx := context.Background()

	intPtr := func(v int) *int { return &v }

	t.Run("start edit drags the end and keeps no date unchecked", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		view, err := env.commands.SetTimes(ctx, b.UserID, b.SessionID, intPtr(14), nil)
		require.NoError(t, err)
		assert.Equal(t, "14:00", view.StartTime)
		assert.Equal(t, "15:00", view.EndTime)
	})

	t.Run("window edits re-check availability for a picked date", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionWithDate()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.availability.EXPECT().
			Check(gomock.Any(), b.RooftopID,
				time.Date(2026, 7, 14, 10, 0, 0, 0, time.UTC),
				time.Date(2026, 7, 14, 14, 0, 0, 0, time.UTC)).
			Return(false, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		view, err := env.commands.SetTimes(ctx, b.UserID, b.SessionID, intPtr(10), nil)
		require.NoError(t, err)
		assert.False(t, view.Available)
	})

	t.Run("end edit of 00:00 is rejected", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)

		_, err = env.commands.SetTimes(ctx, b.UserID, b.SessionID, nil, intPtr(0))
		assert.ErrorIs(t, err, commands.ErrInvalidTimeSlot)
	})

	t.Run("time edits locked after the date step", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtDetails()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)

		_, err = env.commands.SetTimes(ctx, b.UserID, b.SessionID, intPtr(10), nil)
		assert.ErrorIs(t, err, commands.ErrWrongStep)
	})
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()
	strPtr := func(v string) *string { return &v }

	t.Run("applies the masks and persists", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtPayment()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		view, err := env.commands.UpdatePayment(ctx, b.UserID, b.SessionID, wizard.CardUpdate{
			Number: strPtr("4111111111111111"),
			Name:   strPtr("john doe"),
		})
		require.NoError(t, err)
		assert.Equal(t, "4111 1111 1111 1111", view.Payment.CardNumber)
		assert.Equal(t, "JOHN DOE", view.Payment.CardName)
	})

	t.Run("rejected outside the payment step", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)

		_, err = env.commands.UpdatePayment(ctx, b.UserID, b.SessionID, wizard.CardUpdate{Number: strPtr("4111")})
		assert.ErrorIs(t, err, commands.ErrWrongStep)
	})
}

func TestAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("date step blocked without a picked available date", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSession()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)

		_, err = env.commands.Advance(ctx, b.UserID, b.SessionID)
		assert.ErrorIs(t, err, commands.ErrAdvanceBlocked)
	})

	t.Run("date to details", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionWithDate()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		outcome, err := env.commands.Advance(ctx, b.UserID, b.SessionID)
		require.NoError(t, err)
		require.NotNil(t, outcome.Session)
		assert.Equal(t, "details", outcome.Session.Step)
		assert.Equal(t, "Proceed to payment", outcome.Session.ActionLabel)
		assert.False(t, outcome.Completed)
	})

	t.Run("details to payment", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtDetails()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		outcome, err := env.commands.Advance(ctx, b.UserID, b.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "payment", outcome.Session.Step)
		assert.Equal(t, "Complete transaction", outcome.Session.ActionLabel)
	})

	t.Run("payment submits the booking and moves to confirmation", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtPayment()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().AcquireSubmitGuard(gomock.Any(), b.SessionID, submitTimeout+5*time.Second).Return(true, nil)
		env.gateway.EXPECT().
			Submit(gomock.Any(), wizard.BookingDraft{
				RooftopID: b.RooftopID,
				StartAt:   time.Date(2026, 7, 14, 8, 0, 0, 0, time.UTC),
				EndAt:     time.Date(2026, 7, 14, 14, 0, 0, 0, time.UTC),
			}, gomock.Any()).
			Return(&commands.BookingReceipt{ID: "booking-42", Status: "PENDING"}, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)
		env.sessions.EXPECT().ReleaseSubmitGuard(gomock.Any(), b.SessionID).Return(nil)

		outcome, err := env.commands.Advance(ctx, b.UserID, b.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "confirmation", outcome.Session.Step)
		assert.Equal(t, "booking-42", outcome.Session.BookingID)
		assert.Equal(t, wizard.ConfirmationMessage, outcome.Session.ConfirmationMessage)
	})

	t.Run("rejected submission stays on payment with a visible failure", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtPayment()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().AcquireSubmitGuard(gomock.Any(), b.SessionID, gomock.Any()).Return(true, nil)
		env.gateway.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("422 rejected"))
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)
		env.sessions.EXPECT().ReleaseSubmitGuard(gomock.Any(), b.SessionID).Return(nil)

		_, err = env.commands.Advance(ctx, b.UserID, b.SessionID)
		assert.ErrorIs(t, err, commands.ErrSubmissionFailed)

		assert.Equal(t, wizard.StepPayment, sess.Step())
		assert.NotEmpty(t, sess.SubmitError())
	})

	t.Run("concurrent submit is refused while the guard is held", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtPayment()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().AcquireSubmitGuard(gomock.Any(), b.SessionID, gomock.Any()).Return(false, nil)

		_, err = env.commands.Advance(ctx, b.UserID, b.SessionID)
		assert.ErrorIs(t, err, commands.ErrSubmissionInFlight)
	})

	t.Run("confirmation completes the workflow and drops the session", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtConfirmation("booking-42")
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Delete(gomock.Any(), b.SessionID).Return(nil)

		outcome, err := env.commands.Advance(ctx, b.UserID, b.SessionID)
		require.NoError(t, err)
		assert.True(t, outcome.Completed)
		assert.Equal(t, "booking-42", outcome.BookingID)
		assert.Nil(t, outcome.Session)
	})
}

func TestBack(t *testing.T) {
	ctx := context.Background()

	t.Run("regresses one step", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionAtPayment()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Save(gomock.Any(), sess).Return(nil)

		outcome, err := env.commands.Back(ctx, b.UserID, b.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "details", outcome.Session.Step)
		assert.False(t, outcome.Cancelled)
	})

	t.Run("cancels from the first step and drops the session", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		env := newCommandsEnv(t, b.Now)

		sess, err := b.BuildSessionWithDate()
		require.NoError(t, err)
		env.sessions.EXPECT().Find(gomock.Any(), b.SessionID).Return(sess, nil)
		env.sessions.EXPECT().Delete(gomock.Any(), b.SessionID).Return(nil)

		outcome, err := env.commands.Back(ctx, b.UserID, b.SessionID)
		require.NoError(t, err)
		assert.True(t, outcome.Cancelled)
		assert.Nil(t, outcome.Session)
	})
}
