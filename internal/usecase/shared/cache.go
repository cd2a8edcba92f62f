package shared

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/interval"

	"github.com/google/uuid"
)

// SlotCache stores computed slots for one business day. Implementations must
// treat every error as a miss; the calculator is always the source of truth.
//
// Get reports the cache version it read, and Set writes under that version.
// Slots computed before an Invalidate therefore land under a version nobody
// reads any more. An empty version means the cache is unusable for this call.
type SlotCache interface {
	Get(ctx context.Context, businessID uuid.UUID, date string) (slots []interval.Interval, version string, ok bool)
	Set(ctx context.Context, businessID uuid.UUID, date, version string, slots []interval.Interval, ttl time.Duration)
	Invalidate(ctx context.Context, businessID uuid.UUID) error
}

type NoopSlotCache struct{}

func (NoopSlotCache) Get(context.Context, uuid.UUID, string) ([]interval.Interval, string, bool) {
	return nil, "", false
}

func (NoopSlotCache) Set(context.Context, uuid.UUID, string, string, []interval.Interval, time.Duration) {
}

func (NoopSlotCache) Invalidate(context.Context, uuid.UUID) error { return nil }
