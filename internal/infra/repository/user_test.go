//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository"
	"github.com/aljonb/sched/internal/infra/sqlc"
	repositorymock "github.com/aljonb/sched/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "user not found", rows: 0, expectKind: infra.KindNotFound},
		{name: "database error", dbErr: errors.New("database error"), expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewUserRepository(mockQueries)

			mockQueries.EXPECT().UpdateUserLastLogin(ctx, mockDB, userID).Return(tc.rows, tc.dbErr)

			err := repo.UpdateLastLogin(ctx, mockDB, userID)
			if tc.expectKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, tc.expectKind))
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	params := sqlc.CreateUserParams{Email: "owner@example.com", PasswordHash: "hash", Role: "owner"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries)

		want := uuid.New()
		mockQueries.EXPECT().CreateUser(ctx, mockDB, params).Return(want, nil)

		got, err := repo.Create(ctx, mockDB, params)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockUserWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewUserRepository(mockQueries)

		mockQueries.EXPECT().CreateUser(ctx, mockDB, params).Return(uuid.Nil, &pgconn.PgError{Code: "23505"})

		got, err := repo.Create(ctx, mockDB, params)
		require.Error(t, err)
		assert.Equal(t, uuid.Nil, got)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}
