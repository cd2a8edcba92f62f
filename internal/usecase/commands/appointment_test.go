//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/user"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/shared"
	"github.com/aljonb/sched/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *bookingFixture) owner() shared.Actor {
	return shared.NewActor(f.biz.OwnerID(), user.RoleOwner)
}

func (f *bookingFixture) appointmentCommands() commands.AppointmentCommands {
	return commands.NewAppointmentCommands(f.store, shared.NoopSlotCache{}, f.clock)
}

// seed stores an appointment in the given status and returns it.
func (f *bookingFixture) seed(t *testing.T, start, end time.Time, status appointment.Status) *appointment.Appointment {
	t.Helper()
	b := builder.NewAppointmentBuilder().WithBusinessID(f.biz.ID()).WithSlot(start, end)
	if status == appointment.StatusPending {
		b.AsPending()
	}
	a := b.MustBuildDomain()
	if status != a.Status() {
		require.NoError(t, a.ChangeStatus(status, bookingNow.Add(-time.Hour)))
	}
	f.store.AddAppointment(a)
	return a
}

func TestChangeStatus(t *testing.T) {
	testCases := []struct {
		name    string
		from    appointment.Status
		to      string
		actor   func(f *bookingFixture) shared.Actor
		wantErr error
	}{
		{
			name: "owner completes a confirmed appointment",
			from: appointment.StatusConfirmed,
			to:   "completed",
		},
		{
			name: "owner cancels a confirmed appointment",
			from: appointment.StatusConfirmed,
			to:   "cancelled",
		},
		{
			name: "admin marks a no-show",
			from: appointment.StatusConfirmed,
			to:   "no_show",
			actor: func(*bookingFixture) shared.Actor {
				return shared.NewActor(uuid.New(), user.RoleAdmin)
			},
		},
		{
			name: "another owner is rejected",
			from: appointment.StatusConfirmed,
			to:   "completed",
			actor: func(*bookingFixture) shared.Actor {
				return shared.NewActor(uuid.New(), user.RoleOwner)
			},
			wantErr: commands.ErrForbidden,
		},
		{
			name:    "unknown status",
			from:    appointment.StatusConfirmed,
			to:      "archived",
			wantErr: commands.ErrInvalidInput,
		},
		{
			name:    "completed cannot be reopened",
			from:    appointment.StatusCompleted,
			to:      "confirmed",
			wantErr: appointment.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t)
			appt := f.seed(t, at(12, 0), at(13, 0), tc.from)
			actor := f.owner()
			if tc.actor != nil {
				actor = tc.actor(f)
			}

			updated, err := f.appointmentCommands().ChangeStatus(context.Background(), actor, f.biz.ID(), appt.ID(), tc.to)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				stored, _ := f.store.Appointment(appt.ID())
				assert.Equal(t, tc.from, stored.Status())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, appointment.Status(tc.to), updated.Status())
			stored, ok := f.store.Appointment(appt.ID())
			require.True(t, ok)
			assert.Equal(t, appointment.Status(tc.to), stored.Status())

			events := f.store.Events()
			require.Len(t, events, 1)
			assert.Equal(t, shared.EventAppointmentStatusChanged, events[0].Type)
			payload, ok := events[0].Payload.(shared.AppointmentPayload)
			require.True(t, ok)
			assert.Equal(t, tc.from.String(), payload.PreviousStatus)
		})
	}
}

func TestChangeStatus_Reactivation(t *testing.T) {
	t.Run("free interval can be reactivated", func(t *testing.T) {
		f := newBookingFixture(t)
		appt := f.seed(t, at(12, 0), at(13, 0), appointment.StatusCancelled)

		updated, err := f.appointmentCommands().ChangeStatus(context.Background(), f.owner(), f.biz.ID(), appt.ID(), "confirmed")
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusConfirmed, updated.Status())
		assert.Nil(t, updated.CancelledAt())
	})

	t.Run("taken interval cannot be reactivated", func(t *testing.T) {
		f := newBookingFixture(t)
		appt := f.seed(t, at(10, 0), at(11, 0), appointment.StatusCancelled)

		_, err := f.appointmentCommands().ChangeStatus(context.Background(), f.owner(), f.biz.ID(), appt.ID(), "pending")
		assert.ErrorIs(t, err, commands.ErrAppointmentConflict)
	})

	t.Run("blocked interval cannot be reactivated", func(t *testing.T) {
		f := newBookingFixture(t)
		appt := f.seed(t, at(14, 0), at(15, 0), appointment.StatusCancelled)
		block, err := builder.NewBlockedSlotBuilder().WithBusinessID(f.biz.ID()).WithSlot(at(14, 30), at(16, 0)).BuildDomain()
		require.NoError(t, err)
		f.store.AddBlock(block)

		_, err = f.appointmentCommands().ChangeStatus(context.Background(), f.owner(), f.biz.ID(), appt.ID(), "confirmed")
		assert.ErrorIs(t, err, commands.ErrBlockedConflict)
	})
}

func TestChangeStatus_AppointmentOfAnotherBusiness(t *testing.T) {
	f := newBookingFixture(t)
	other := builder.NewAppointmentBuilder().WithSlot(at(12, 0), at(13, 0)).MustBuildDomain()
	f.store.AddAppointment(other)

	_, err := f.appointmentCommands().ChangeStatus(context.Background(), f.owner(), f.biz.ID(), other.ID(), "completed")
	assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
}

func TestCancelByToken(t *testing.T) {
	t.Run("customer cancels an upcoming appointment", func(t *testing.T) {
		f := newBookingFixture(t)
		appt := f.seed(t, at(12, 0), at(13, 0), appointment.StatusPending)

		cancelled, err := f.appointmentCommands().CancelByToken(context.Background(), appt.Token().String())
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusCancelled, cancelled.Status())
		require.NotNil(t, cancelled.CancelledAt())
		assert.Equal(t, bookingNow, *cancelled.CancelledAt())
	})

	t.Run("started appointment cannot be cancelled", func(t *testing.T) {
		f := newBookingFixture(t)
		appt := f.seed(t, at(12, 0), at(13, 0), appointment.StatusConfirmed)
		f.clock = clock.NewMockClock(at(12, 5))

		_, err := f.appointmentCommands().CancelByToken(context.Background(), appt.Token().String())
		assert.ErrorIs(t, err, appointment.ErrNotCancellable)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newBookingFixture(t)
		appt := f.seed(t, at(12, 0), at(13, 0), appointment.StatusCancelled)

		_, err := f.appointmentCommands().CancelByToken(context.Background(), appt.Token().String())
		assert.ErrorIs(t, err, appointment.ErrNotCancellable)
	})

	t.Run("malformed or unknown token", func(t *testing.T) {
		f := newBookingFixture(t)
		token, err := appointment.NewRandomTokenGenerator().Generate()
		require.NoError(t, err)

		for _, raw := range []string{"", "short", token.String()} {
			_, err := f.appointmentCommands().CancelByToken(context.Background(), raw)
			assert.ErrorIs(t, err, commands.ErrAppointmentNotFound, raw)
		}
	})
}
