package sqlc

import (
	"context"

	"github.com/google/uuid"
)

// Held until the surrounding transaction ends. Two different businesses can
// hash to the same key; that only costs throughput. The lock queues writers
// but does not refresh a SERIALIZABLE snapshot taken before it was granted.
const acquireBusinessLock = `-- name: AcquireBusinessLock :exec
SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`

func (q *Queries) AcquireBusinessLock(ctx context.Context, db DBTX, businessID uuid.UUID) error {
	_, err := db.Exec(ctx, acquireBusinessLock, businessID.String())
	return err
}
