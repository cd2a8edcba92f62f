package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "slots"

type cachedSlot struct {
	Start time.Time `json:"s"`
	End   time.Time `json:"e"`
}

// RedisSlotCache keys each business day under a per-business version number.
// Invalidate bumps the version, so stale days are never read again and expire
// on their own TTL.
type RedisSlotCache struct {
	rdb *redis.Client
}

func NewRedisSlotCache(rdb *redis.Client) *RedisSlotCache {
	return &RedisSlotCache{rdb: rdb}
}

func versionKey(businessID uuid.UUID) string {
	return keyPrefix + ":" + businessID.String() + ":v"
}

func dayKey(businessID uuid.UUID, version, date string) string {
	return keyPrefix + ":" + businessID.String() + ":" + version + ":" + date
}

func (c *RedisSlotCache) version(ctx context.Context, businessID uuid.UUID) (string, error) {
	v, err := c.rdb.Get(ctx, versionKey(businessID)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return v, err
}

func (c *RedisSlotCache) Get(ctx context.Context, businessID uuid.UUID, date string) ([]interval.Interval, string, bool) {
	v, err := c.version(ctx, businessID)
	if err != nil {
		slog.Warn("slot cache version lookup failed", "business_id", businessID, "error", err.Error())
		return nil, "", false
	}
	raw, err := c.rdb.Get(ctx, dayKey(businessID, v, date)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("slot cache read failed", "business_id", businessID, "date", date, "error", err.Error())
		}
		return nil, v, false
	}

	var cached []cachedSlot
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.Warn("slot cache entry unreadable", "business_id", businessID, "date", date, "error", err.Error())
		return nil, v, false
	}
	out := make([]interval.Interval, 0, len(cached))
	for _, s := range cached {
		out = append(out, interval.Interval{Start: s.Start, End: s.End})
	}
	return out, v, true
}

// Set stores slots under the version the caller's Get observed. If the
// version moved on in between, the entry is unreachable and just expires.
func (c *RedisSlotCache) Set(ctx context.Context, businessID uuid.UUID, date, version string, slots []interval.Interval, ttl time.Duration) {
	if ttl <= 0 || version == "" {
		return
	}
	cached := make([]cachedSlot, 0, len(slots))
	for _, s := range slots {
		cached = append(cached, cachedSlot{Start: s.Start, End: s.End})
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, dayKey(businessID, version, date), raw, ttl).Err(); err != nil {
		slog.Warn("slot cache write failed", "business_id", businessID, "date", date, "error", err.Error())
	}
}

func (c *RedisSlotCache) Invalidate(ctx context.Context, businessID uuid.UUID) error {
	if err := c.rdb.Incr(ctx, versionKey(businessID)).Err(); err != nil {
		return errs.Wrap(err, "failed to bump slot cache version")
	}
	return nil
}
