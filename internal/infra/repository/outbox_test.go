//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/infra/repository"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/usecase/shared"
	repositorymock "github.com/aljonb/sched/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxRepository_Append(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockQueries := repositorymock.NewMockOutboxWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOutboxRepository(mockQueries)

	businessID := uuid.New()
	apptID := uuid.New()
	at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	event := shared.DomainEvent{
		Type:        shared.EventAppointmentBooked,
		BusinessID:  businessID,
		AggregateID: apptID,
		OccurredAt:  at,
		Payload: shared.AppointmentPayload{
			AppointmentID: apptID,
			Start:         at.Add(time.Hour),
			End:           at.Add(2 * time.Hour),
			Status:        "confirmed",
		},
	}

	mockQueries.EXPECT().InsertOutboxEvent(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error {
			assert.NotEqual(t, uuid.Nil, arg.ID)
			assert.Equal(t, businessID, arg.BusinessID)
			assert.Equal(t, apptID, arg.AggregateID)
			assert.Equal(t, "appointment.booked", arg.EventType)
			assert.Equal(t, at, arg.CreatedAt.Time)

			var payload map[string]any
			require.NoError(t, json.Unmarshal(arg.Payload, &payload))
			assert.Equal(t, "confirmed", payload["status"])
			assert.NotContains(t, payload, "previous_status")

			var carrier map[string]string
			require.NoError(t, json.Unmarshal(arg.TraceCarrier, &carrier))
			return nil
		})

	assert.NoError(t, repo.Append(ctx, mockDB, event))
}
