//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/tests/common/builder"
	repositorymock "github.com/aljonb/sched/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBlockedSlotRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockQueries := repositorymock.NewMockBlockedSlotWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBlockedSlotRepository(mockQueries)

	block, err := builder.NewBlockedSlotBuilder().BuildDomain()
	require.NoError(t, err)

	mockQueries.EXPECT().CreateBlockedSlot(ctx, mockDB, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBlockedSlotParams) error {
			assert.Equal(t, block.ID(), arg.ID)
			assert.True(t, arg.Reason.Valid)
			assert.Equal(t, "Staff meeting", arg.Reason.String)
			return nil
		})

	assert.NoError(t, repo.Create(ctx, mockDB, block))
}

func TestBlockedSlotRepository_Delete(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()
	blockID := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: block deleted", rows: 1},
		{name: "error: block missing or owned by another business", rows: 0, expectKind: infra.KindNotFound},
		{name: "error: database failure", dbErr: errors.New("boom"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockQueries := repositorymock.NewMockBlockedSlotWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBlockedSlotRepository(mockQueries)

			mockQueries.EXPECT().
				DeleteBlockedSlot(ctx, mockDB, sqlc.DeleteBlockedSlotParams{ID: blockID, BusinessID: businessID}).
				Return(tc.rows, tc.dbErr)

			err := repo.Delete(ctx, mockDB, businessID, blockID)

			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
		})
	}
}
