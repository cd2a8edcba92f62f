package queries

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
)

const exportPageSize = MaxListLimit

var (
	listFloor   = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	listCeiling = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

type AppointmentPage struct {
	Items      []*AppointmentView `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type AppointmentQueries interface {
	// GetByToken is the customer's view; the token is the only credential.
	GetByToken(ctx context.Context, rawToken string) (*AppointmentView, error)
	ListForBusiness(ctx context.Context, actor shared.Actor, businessID uuid.UUID, filter AppointmentFilter, cursor string, limit int) (*AppointmentPage, error)
	// Export returns every appointment matching filter, in start order.
	Export(ctx context.Context, actor shared.Actor, businessID uuid.UUID, filter AppointmentFilter) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	businesses   BusinessReadStore
	appointments AppointmentReadStore
}

func NewAppointmentQueries(businesses BusinessReadStore, appointments AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{
		businesses:   businesses,
		appointments: appointments,
	}
}

func (q *appointmentQueriesImpl) GetByToken(ctx context.Context, rawToken string) (*AppointmentView, error) {
	token, err := appointment.ParseToken(rawToken)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	view, err := q.appointments.FindByToken(ctx, token.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListForBusiness(ctx context.Context, actor shared.Actor, businessID uuid.UUID, filter AppointmentFilter, cursor string, limit int) (*AppointmentPage, error) {
	if _, err := findManagedBusiness(ctx, q.businesses, actor, businessID); err != nil {
		return nil, err
	}
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	var afterStart time.Time
	var afterID uuid.UUID
	if cursor != "" {
		afterStart, afterID, err = DecodeAfterCursor(cursor)
		if err != nil {
			return nil, ErrInvalidCursor
		}
	}

	limit = ValidateLimit(limit)
	// one extra row tells whether another page exists
	items, err := q.appointments.ListByBusiness(ctx, businessID, filter, afterStart, afterID, int32(limit+1))
	if err != nil {
		return nil, err
	}

	page := &AppointmentPage{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		tail := page.Items[limit-1]
		page.NextCursor = EncodeAfterCursor(tail.Start, tail.ID)
	}
	return page, nil
}

func (q *appointmentQueriesImpl) Export(ctx context.Context, actor shared.Actor, businessID uuid.UUID, filter AppointmentFilter) ([]*AppointmentView, error) {
	if _, err := findManagedBusiness(ctx, q.businesses, actor, businessID); err != nil {
		return nil, err
	}
	filter, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	var (
		out        []*AppointmentView
		afterStart time.Time
		afterID    uuid.UUID
	)
	for {
		items, err := q.appointments.ListByBusiness(ctx, businessID, filter, afterStart, afterID, exportPageSize)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(items) < exportPageSize {
			return out, nil
		}
		tail := items[len(items)-1]
		afterStart, afterID = tail.Start, tail.ID
	}
}

func normalizeFilter(f AppointmentFilter) (AppointmentFilter, error) {
	if f.From.IsZero() {
		f.From = listFloor
	}
	if f.To.IsZero() {
		f.To = listCeiling
	}
	if !f.From.Before(f.To) {
		return f, ErrInvalidDateRange
	}
	if f.Status != nil {
		if _, err := appointment.NewStatus(*f.Status); err != nil {
			return f, err
		}
	}
	return f, nil
}
