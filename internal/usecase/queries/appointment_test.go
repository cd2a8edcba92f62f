//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/user"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/usecase/queries"
	"github.com/aljonb/sched/internal/usecase/shared"
	"github.com/aljonb/sched/tests/common/builder"
	queriesmock "github.com/aljonb/sched/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func views(n int, from time.Time) []*queries.AppointmentView {
	out := make([]*queries.AppointmentView, n)
	for i := range out {
		start := from.Add(time.Duration(i) * time.Hour)
		out[i] = &queries.AppointmentView{ID: uuid.New(), Start: start, End: start.Add(time.Hour), Status: "confirmed"}
	}
	return out
}

func TestListForBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	businesses := queriesmock.NewMockBusinessReadStore(ctrl)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAppointmentQueries(businesses, store)

	biz := builder.NewBusinessBuilder().MustBuildDomain()
	owner := shared.NewActor(biz.OwnerID(), user.RoleOwner)
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	filter := queries.AppointmentFilter{From: from, To: from.AddDate(0, 0, 7)}

	t.Run("full page returns a cursor to the next one", func(t *testing.T) {
		rows := views(4, from.Add(9*time.Hour))
		businesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		store.EXPECT().ListByBusiness(gomock.Any(), biz.ID(), filter, time.Time{}, uuid.Nil, int32(4)).Return(rows, nil)

		page, err := q.ListForBusiness(context.Background(), owner, biz.ID(), filter, "", 3)
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		require.NotEmpty(t, page.NextCursor)

		afterStart, afterID, err := queries.DecodeAfterCursor(page.NextCursor)
		require.NoError(t, err)
		assert.True(t, rows[2].Start.Equal(afterStart))
		assert.Equal(t, rows[2].ID, afterID)
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		cursor := queries.EncodeAfterCursor(from.Add(9*time.Hour), uuid.New())
		businesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		store.EXPECT().ListByBusiness(gomock.Any(), biz.ID(), filter, gomock.Any(), gomock.Any(), int32(4)).Return(views(2, from), nil)

		page, err := q.ListForBusiness(context.Background(), owner, biz.ID(), filter, cursor, 3)
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("open-ended filter gets default bounds", func(t *testing.T) {
		businesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
		store.EXPECT().ListByBusiness(gomock.Any(), biz.ID(), gomock.Cond(func(f queries.AppointmentFilter) bool {
			return !f.From.IsZero() && f.To.After(f.From)
		}), gomock.Any(), gomock.Any(), int32(21)).Return(nil, nil)

		page, err := q.ListForBusiness(context.Background(), owner, biz.ID(), queries.AppointmentFilter{}, "", 0)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("rejections", func(t *testing.T) {
		bad := "archived"
		testCases := []struct {
			name    string
			actor   shared.Actor
			filter  queries.AppointmentFilter
			cursor  string
			wantErr error
		}{
			{name: "not the owner", actor: shared.NewActor(uuid.New(), user.RoleOwner), filter: filter, wantErr: queries.ErrForbidden},
			{name: "garbage cursor", actor: owner, filter: filter, cursor: "###", wantErr: queries.ErrInvalidCursor},
			{name: "reversed range", actor: owner, filter: queries.AppointmentFilter{From: from, To: from.Add(-time.Hour)}, wantErr: queries.ErrInvalidDateRange},
			{name: "unknown status", actor: owner, filter: queries.AppointmentFilter{Status: &bad}, wantErr: appointment.ErrInvalidStatus},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				businesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)

				_, err := q.ListForBusiness(context.Background(), tc.actor, biz.ID(), tc.filter, tc.cursor, 10)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestExport_WalksEveryPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	businesses := queriesmock.NewMockBusinessReadStore(ctrl)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAppointmentQueries(businesses, store)

	biz := builder.NewBusinessBuilder().MustBuildDomain()
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	first := views(queries.MaxListLimit, from)
	second := views(5, from.AddDate(0, 0, 30))
	tail := first[len(first)-1]

	businesses.EXPECT().FindByID(gomock.Any(), biz.ID()).Return(biz, nil)
	gomock.InOrder(
		store.EXPECT().ListByBusiness(gomock.Any(), biz.ID(), gomock.Any(), time.Time{}, uuid.Nil, int32(queries.MaxListLimit)).Return(first, nil),
		store.EXPECT().ListByBusiness(gomock.Any(), biz.ID(), gomock.Any(), tail.Start, tail.ID, int32(queries.MaxListLimit)).Return(second, nil),
	)

	rows, err := q.Export(context.Background(), shared.NewActor(uuid.New(), user.RoleAdmin), biz.ID(), queries.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, rows, queries.MaxListLimit+5)
}

func TestGetByToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAppointmentReadStore(ctrl)
	q := queries.NewAppointmentQueries(queriesmock.NewMockBusinessReadStore(ctrl), store)

	token, err := appointment.NewRandomTokenGenerator().Generate()
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		view := &queries.AppointmentView{ID: uuid.New(), Token: token.String()}
		store.EXPECT().FindByToken(gomock.Any(), token.String()).Return(view, nil)

		got, err := q.GetByToken(context.Background(), token.String())
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("unknown", func(t *testing.T) {
		store.EXPECT().FindByToken(gomock.Any(), token.String()).Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		_, err := q.GetByToken(context.Background(), token.String())
		assert.ErrorIs(t, err, queries.ErrAppointmentNotFound)
	})

	t.Run("malformed never reaches storage", func(t *testing.T) {
		_, err := q.GetByToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, queries.ErrAppointmentNotFound)
	})
}
