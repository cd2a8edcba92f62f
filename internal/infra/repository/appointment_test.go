//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/tests/common/builder"
	repositorymock "github.com/aljonb/sched/tests/mock/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAppointmentRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockAppointmentWriteQueries, *appointment.Appointment, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row inserted with domain values",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, a *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateAppointmentParams) error {
						assert.Equal(t, a.ID(), arg.ID)
						assert.Equal(t, a.BusinessID(), arg.BusinessID)
						assert.Equal(t, a.Start(), arg.StartTime.Time)
						assert.Equal(t, a.End(), arg.EndTime.Time)
						assert.Equal(t, "confirmed", arg.Status)
						assert.Equal(t, a.Token().String(), arg.Token)
						assert.False(t, arg.CancelledAt.Valid)
						return nil
					})
			},
		},
		{
			name: "error: exclusion constraint maps to conflict",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(pgErr)
			},
			expectKind: infra.KindConflict,
		},
		{
			name: "error: token collision maps to duplicate key",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "appointments_token_key"}
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(pgErr)
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: serialization failure is retryable",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(&pgconn.PgError{Code: "40001"})
			},
			expectKind: infra.KindRetryable,
		},
		{
			name: "error: connection failure",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, _ *appointment.Appointment, tx sqlc.DBTX) {
				mock.EXPECT().CreateAppointment(ctx, tx, gomock.Any()).Return(errors.New("connection refused"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries)

			appt := builder.NewAppointmentBuilder().MustBuildDomain()
			tc.setupMock(mockQueries, appt, mockDB)

			err := repo.Create(ctx, mockDB, appt)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
		})
	}
}

func TestAppointmentRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	cancelledAt := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockAppointmentWriteQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: cancellation timestamp is written",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointmentStatus(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error) {
						assert.Equal(t, "cancelled", arg.Status)
						assert.True(t, arg.CancelledAt.Valid)
						assert.Equal(t, cancelledAt, arg.CancelledAt.Time)
						return 1, nil
					})
			},
		},
		{
			name: "error: no row updated",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointmentStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: check constraint violated",
			setupMock: func(mock *repositorymock.MockAppointmentWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateAppointmentStatus(ctx, tx, gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "23514"})
			},
			expectKind: infra.KindCheckViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockAppointmentWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewAppointmentRepository(mockQueries)

			appt := builder.NewAppointmentBuilder().MustBuildDomain()
			require.NoError(t, appt.ChangeStatus(appointment.StatusCancelled, cancelledAt))
			tc.setupMock(mockQueries, mockDB)

			err := repo.UpdateStatus(ctx, mockDB, appt)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
		})
	}
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
