//go:build unit

package appointment_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func TestAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewAppointmentBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.BusinessID, actual.BusinessID())
		assert.Equal(t, appointment.StatusConfirmed, actual.Status())
		assert.Nil(t, actual.CancelledAt())
		assert.False(t, actual.Token().IsZero())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, "Jane Doe", actual.Customer().Name())

		_, err = appointment.ParseToken(actual.Token().String())
		assert.NoError(t, err)
	})

	t.Run("initial status", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "pending",
				mutate: func(b *builder.AppointmentBuilder) { b.AsPending() },
			},
			{
				name:   "cancelled",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus(appointment.StatusCancelled) },
				errIs:  appointment.ErrInvalidInitialStatus,
			},
			{
				name:   "completed",
				mutate: func(b *builder.AppointmentBuilder) { b.WithStatus(appointment.StatusCompleted) },
				errIs:  appointment.ErrInvalidInitialStatus,
			},
		})
	})

	t.Run("customer validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.AppointmentBuilder) { b.WithCustomer("   ", "jane@example.com", "") },
				errIs:  appointment.ErrInvalidCustomerName,
			},
			{
				name: "name too long",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithCustomer(strings.Repeat("a", appointment.MaxCustomerNameLength+1), "jane@example.com", "")
				},
				errIs: appointment.ErrInvalidCustomerName,
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.AppointmentBuilder) { b.WithCustomer("Jane", "jane.example.com", "") },
				errIs:  appointment.ErrInvalidCustomerEmail,
			},
			{
				name:   "empty phone",
				mutate: func(b *builder.AppointmentBuilder) { b.WithCustomer("Jane", "jane@example.com", "") },
			},
			{
				name: "phone too long",
				mutate: func(b *builder.AppointmentBuilder) {
					b.WithCustomer("Jane", "jane@example.com", strings.Repeat("1", appointment.MaxCustomerPhoneLength+1))
				},
				errIs: appointment.ErrInvalidCustomerPhone,
			},
			{
				name:   "notes too long",
				mutate: func(b *builder.AppointmentBuilder) { b.WithNotes(strings.Repeat("n", appointment.MaxCustomerNotesLength+1)) },
				errIs:  appointment.ErrCustomerNotesTooLong,
			},
		})
	})

	t.Run("interval validation", func(t *testing.T) {
		start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
		runCases(t, []testCase{
			{
				name:   "empty interval",
				mutate: func(b *builder.AppointmentBuilder) { b.WithSlot(start, start) },
				errIs:  appointment.ErrInvalidInterval,
			},
			{
				name:   "inverted interval",
				mutate: func(b *builder.AppointmentBuilder) { b.WithSlot(start, start.Add(-time.Minute)) },
				errIs:  appointment.ErrInvalidInterval,
			},
			{
				name:   "missing business",
				mutate: func(b *builder.AppointmentBuilder) { b.WithBusinessID(uuid.Nil) },
				errIs:  appointment.ErrMissingBusiness,
			},
		})
	})
}

type failingTokens struct{}

func (failingTokens) Generate() (appointment.Token, error) {
	return appointment.Token{}, errors.New("entropy exhausted")
}

func TestNewAppointment_TokenFailure(t *testing.T) {
	b := builder.NewAppointmentBuilder()
	customer, err := b.BuildCustomer()
	require.NoError(t, err)

	services := &appointment.Services{Clock: clock.NewMockClock(b.Now), Tokens: failingTokens{}}
	_, err = appointment.NewAppointment(services, b.BusinessID, b.Slot(), customer, appointment.StatusConfirmed)

	assert.True(t, errs.Is(err, appointment.ErrTokenGenerationFailed))
}

func TestValidateProposal(t *testing.T) {
	now := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	skew := appointment.DefaultClockSkew

	testCases := []struct {
		name  string
		start time.Time
		dur   time.Duration
		errIs error
	}{
		{name: "future hour", start: now.Add(time.Hour), dur: time.Hour},
		{name: "starting now", start: now, dur: time.Hour},
		{name: "inside clock skew", start: now.Add(-59 * time.Second), dur: time.Hour},
		{name: "beyond clock skew", start: now.Add(-61 * time.Second), dur: time.Hour, errIs: appointment.ErrStartInPast},
		{name: "one minute", start: now.Add(time.Hour), dur: time.Minute},
		{name: "under one minute", start: now.Add(time.Hour), dur: 59 * time.Second, errIs: appointment.ErrDurationOutOfRange},
		{name: "whole day", start: now.Add(time.Hour), dur: 24 * time.Hour},
		{name: "over a day", start: now.Add(time.Hour), dur: 24*time.Hour + time.Minute, errIs: appointment.ErrDurationOutOfRange},
		{name: "zero length", start: now.Add(time.Hour), dur: 0, errIs: appointment.ErrInvalidInterval},
		{name: "negative length", start: now.Add(time.Hour), dur: -time.Hour, errIs: appointment.ErrInvalidInterval},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slot := interval.Interval{Start: tc.start, End: tc.start.Add(tc.dur)}
			err := appointment.ValidateProposal(slot, now, skew)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestAppointment_ChangeStatus(t *testing.T) {
	all := []appointment.Status{
		appointment.StatusPending,
		appointment.StatusConfirmed,
		appointment.StatusCancelled,
		appointment.StatusCompleted,
		appointment.StatusNoShow,
	}
	allowed := map[appointment.Status][]appointment.Status{
		appointment.StatusPending:   {appointment.StatusConfirmed, appointment.StatusCancelled},
		appointment.StatusConfirmed: {appointment.StatusCancelled, appointment.StatusCompleted, appointment.StatusNoShow},
		appointment.StatusCancelled: {appointment.StatusPending, appointment.StatusConfirmed},
	}
	now := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				a := reconstruct(t, from)

				err := a.ChangeStatus(to, now)

				if contains(allowed[from], to) {
					require.NoError(t, err)
					assert.Equal(t, to, a.Status())
					assert.Equal(t, to == appointment.StatusCancelled, a.CancelledAt() != nil)
					assert.Equal(t, now, a.UpdatedAt())
				} else {
					assert.ErrorIs(t, err, appointment.ErrInvalidTransition)
					assert.Equal(t, from, a.Status())
				}
			})
		}
	}
}

func TestAppointment_CancelByCustomer(t *testing.T) {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		status appointment.Status
		now    time.Time
		errIs  error
	}{
		{name: "confirmed before start", status: appointment.StatusConfirmed, now: start.Add(-time.Minute)},
		{name: "pending before start", status: appointment.StatusPending, now: start.Add(-time.Hour)},
		{name: "at start", status: appointment.StatusConfirmed, now: start, errIs: appointment.ErrNotCancellable},
		{name: "after start", status: appointment.StatusConfirmed, now: start.Add(time.Minute), errIs: appointment.ErrNotCancellable},
		{name: "already cancelled", status: appointment.StatusCancelled, now: start.Add(-time.Hour), errIs: appointment.ErrNotCancellable},
		{name: "completed", status: appointment.StatusCompleted, now: start.Add(-time.Hour), errIs: appointment.ErrNotCancellable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := reconstruct(t, tc.status)

			err := a.CancelByCustomer(tc.now)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, appointment.StatusCancelled, a.Status())
			require.NotNil(t, a.CancelledAt())
			assert.Equal(t, tc.now, *a.CancelledAt())
		})
	}
}

func TestReconstructAppointment_CancellationInvariant(t *testing.T) {
	b := builder.NewAppointmentBuilder()
	customer, err := b.BuildCustomer()
	require.NoError(t, err)
	token, err := appointment.NewRandomTokenGenerator().Generate()
	require.NoError(t, err)
	cancelledAt := b.Now

	_, err = appointment.ReconstructAppointment(uuid.New(), b.BusinessID, b.Slot(), appointment.StatusCancelled, token, customer, nil, b.Now, b.Now)
	assert.ErrorIs(t, err, appointment.ErrCancellationInvariant)

	_, err = appointment.ReconstructAppointment(uuid.New(), b.BusinessID, b.Slot(), appointment.StatusConfirmed, token, customer, &cancelledAt, b.Now, b.Now)
	assert.ErrorIs(t, err, appointment.ErrCancellationInvariant)

	_, err = appointment.ReconstructAppointment(uuid.New(), b.BusinessID, b.Slot(), appointment.Status("archived"), token, customer, nil, b.Now, b.Now)
	assert.ErrorIs(t, err, appointment.ErrInvalidStatus)

	_, err = appointment.ReconstructAppointment(uuid.New(), b.BusinessID, b.Slot(), appointment.StatusConfirmed, appointment.Token{}, customer, nil, b.Now, b.Now)
	assert.ErrorIs(t, err, appointment.ErrAppointmentWithoutToken)
}

func TestStatus_OccupiesTime(t *testing.T) {
	assert.True(t, appointment.StatusPending.OccupiesTime())
	assert.True(t, appointment.StatusConfirmed.OccupiesTime())
	assert.True(t, appointment.StatusCompleted.OccupiesTime())
	assert.False(t, appointment.StatusCancelled.OccupiesTime())
	assert.False(t, appointment.StatusNoShow.OccupiesTime())
	assert.ElementsMatch(t,
		[]appointment.Status{appointment.StatusPending, appointment.StatusConfirmed, appointment.StatusCompleted},
		appointment.OccupyingStatuses(),
	)
}

func TestParseToken(t *testing.T) {
	token, err := appointment.NewRandomTokenGenerator().Generate()
	require.NoError(t, err)
	assert.Len(t, token.String(), 43)

	parsed, err := appointment.ParseToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, token, parsed)

	for _, bad := range []string{"", "short", strings.Repeat("a", 44), "!!!!"} {
		_, err := appointment.ParseToken(bad)
		assert.ErrorIs(t, err, appointment.ErrInvalidToken, "input %q", bad)
	}
}

func reconstruct(t *testing.T, status appointment.Status) *appointment.Appointment {
	t.Helper()
	b := builder.NewAppointmentBuilder()
	customer, err := b.BuildCustomer()
	require.NoError(t, err)
	token, err := appointment.NewRandomTokenGenerator().Generate()
	require.NoError(t, err)

	var cancelledAt *time.Time
	if status == appointment.StatusCancelled {
		ts := b.Now
		cancelledAt = &ts
	}
	a, err := appointment.ReconstructAppointment(uuid.New(), b.BusinessID, b.Slot(), status, token, customer, cancelledAt, b.Now, b.Now)
	require.NoError(t, err)
	return a
}

func contains(list []appointment.Status, s appointment.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAppointmentBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
