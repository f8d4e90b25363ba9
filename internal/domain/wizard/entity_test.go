//go:build unit

package wizard_test

import (
	"testing"
	"time"

	"rooftop-wizard/internal/domain/wizard"
	"rooftop-wizard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	sess, err := builder.NewWizardBuilder().BuildSession()
	require.NoError(t, err)

	assert.Equal(t, wizard.StepDate, sess.Step())
	assert.True(t, sess.Date().IsZero())
	assert.False(t, sess.Available())
	assert.Equal(t, wizard.DefaultStartHour, sess.Times().Start().Hour())
	assert.Equal(t, wizard.DefaultEndHour, sess.Times().End().Hour())
	assert.False(t, sess.CanAdvance())
}

func TestSessionSelectDate(t *testing.T) {
	t.Run("records date and availability together", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionWithDate()
		require.NoError(t, err)

		assert.False(t, sess.Date().IsZero())
		assert.True(t, sess.Available())
		assert.True(t, sess.CanAdvance())
	})

	t.Run("rejected outside the date step", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		sess, err := b.BuildSessionAtDetails()
		require.NoError(t, err)

		day, err := wizard.NewCalendarDate(b.Date, b.Now)
		require.NoError(t, err)

		assert.ErrorIs(t, sess.SelectDate(day, true), wizard.ErrWrongStep)
	})

	t.Run("rejects the zero date", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSession()
		require.NoError(t, err)

		assert.ErrorIs(t, sess.SelectDate(wizard.CalendarDate{}, true), wizard.ErrDateNotSelected)
	})
}

func TestSessionTimeEdits(t *testing.T) {
	t.Run("start edit drags the end along", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSession()
		require.NoError(t, err)

		start, _ := wizard.NewHourTime(14)
		require.NoError(t, sess.SetStart(start))
		assert.Equal(t, 14, sess.Times().Start().Hour())
		assert.Equal(t, 15, sess.Times().End().Hour())
	})

	t.Run("time edits are locked after the date step", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtDetails()
		require.NoError(t, err)

		h, _ := wizard.NewHourTime(10)
		assert.ErrorIs(t, sess.SetStart(h), wizard.ErrWrongStep)
		assert.ErrorIs(t, sess.SetEnd(h), wizard.ErrWrongStep)
	})
}

func TestSessionAdvance(t *testing.T) {
	t.Run("date step requires a selected available date", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSession()
		require.NoError(t, err)
		assert.ErrorIs(t, sess.AdvanceFromDate(), wizard.ErrDateNotSelected)

		unavailable := builder.NewWizardBuilder().With(func(b *builder.WizardBuilder) {
			b.Available = false
		})
		sess, err = unavailable.BuildSessionWithDate()
		require.NoError(t, err)
		assert.ErrorIs(t, sess.AdvanceFromDate(), wizard.ErrDateUnavailable)
	})

	t.Run("walks date to payment", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionWithDate()
		require.NoError(t, err)

		require.NoError(t, sess.AdvanceFromDate())
		assert.Equal(t, wizard.StepDetails, sess.Step())

		require.NoError(t, sess.AdvanceFromDetails())
		assert.Equal(t, wizard.StepPayment, sess.Step())
	})

	t.Run("details advance rejected on other steps", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSession()
		require.NoError(t, err)
		assert.ErrorIs(t, sess.AdvanceFromDetails(), wizard.ErrWrongStep)
	})
}

func TestSessionUpdateCard(t *testing.T) {
	t.Run("applies masks to touched fields only", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtPayment()
		require.NoError(t, err)

		number := "4111111111111111"
		require.NoError(t, sess.UpdateCard(wizard.CardUpdate{Number: &number}))
		assert.Equal(t, "4111 1111 1111 1111", sess.Card().Number())
		assert.Equal(t, "", sess.Card().Name())

		name := "john doe"
		require.NoError(t, sess.UpdateCard(wizard.CardUpdate{Name: &name}))
		assert.Equal(t, "JOHN DOE", sess.Card().Name())
		assert.Equal(t, "4111 1111 1111 1111", sess.Card().Number())
	})

	t.Run("rejected outside the payment step", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSession()
		require.NoError(t, err)

		number := "4111"
		assert.ErrorIs(t, sess.UpdateCard(wizard.CardUpdate{Number: &number}), wizard.ErrWrongStep)
	})
}

func TestSessionDraft(t *testing.T) {
	t.Run("builds the submission payload", func(t *testing.T) {
		b := builder.NewWizardBuilder()
		sess, err := b.BuildSessionAtPayment()
		require.NoError(t, err)

		draft, err := sess.Draft(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, b.RooftopID, draft.RooftopID)
		assert.Equal(t, time.Date(2026, 7, 14, 8, 0, 0, 0, time.UTC), draft.StartAt)
		assert.Equal(t, time.Date(2026, 7, 14, 14, 0, 0, 0, time.UTC), draft.EndAt)
	})

	t.Run("only valid on the payment step", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionWithDate()
		require.NoError(t, err)

		_, err = sess.Draft(time.UTC)
		assert.ErrorIs(t, err, wizard.ErrWrongStep)
	})
}

func TestSessionSubmission(t *testing.T) {
	t.Run("failure keeps the step and entered state", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtPayment()
		require.NoError(t, err)

		number := "4111111111111111"
		require.NoError(t, sess.UpdateCard(wizard.CardUpdate{Number: &number}))

		sess.FailSubmission("backend rejected the booking")
		assert.Equal(t, wizard.StepPayment, sess.Step())
		assert.Equal(t, "backend rejected the booking", sess.SubmitError())
		assert.Equal(t, "4111 1111 1111 1111", sess.Card().Number())
	})

	t.Run("success moves to confirmation and clears the failure", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtPayment()
		require.NoError(t, err)

		sess.FailSubmission("transient failure")
		require.NoError(t, sess.CompleteSubmission("booking-42"))

		assert.Equal(t, wizard.StepConfirmation, sess.Step())
		assert.Equal(t, "booking-42", sess.BookingID())
		assert.Empty(t, sess.SubmitError())
	})

	t.Run("completion rejected off the payment step", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionWithDate()
		require.NoError(t, err)
		assert.ErrorIs(t, sess.CompleteSubmission("booking-42"), wizard.ErrWrongStep)
	})
}

func TestSessionFinish(t *testing.T) {
	t.Run("completes and resets the step", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtConfirmation("booking-42")
		require.NoError(t, err)

		result, err := sess.Finish()
		require.NoError(t, err)
		assert.Equal(t, wizard.ResultCompleted, result)
		assert.Equal(t, wizard.StepDate, sess.Step())
	})

	t.Run("rejected before confirmation", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtPayment()
		require.NoError(t, err)

		_, err = sess.Finish()
		assert.ErrorIs(t, err, wizard.ErrWrongStep)
	})
}

func TestSessionBack(t *testing.T) {
	t.Run("regresses one step at a time", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionAtConfirmation("booking-42")
		require.NoError(t, err)

		assert.Equal(t, wizard.Result(""), sess.Back())
		assert.Equal(t, wizard.StepPayment, sess.Step())

		assert.Equal(t, wizard.Result(""), sess.Back())
		assert.Equal(t, wizard.StepDetails, sess.Step())

		assert.Equal(t, wizard.Result(""), sess.Back())
		assert.Equal(t, wizard.StepDate, sess.Step())
	})

	t.Run("cancels on the first step without moving", func(t *testing.T) {
		sess, err := builder.NewWizardBuilder().BuildSessionWithDate()
		require.NoError(t, err)

		assert.Equal(t, wizard.ResultCancelled, sess.Back())
		assert.Equal(t, wizard.StepDate, sess.Step())
	})
}
