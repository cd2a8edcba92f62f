package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const businessColumns = `id, owner_id, name, timezone, auto_confirm, created_at, updated_at`

func scanBusiness(row pgx.Row) (Businesses, error) {
	var i Businesses
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.Timezone,
		&i.AutoConfirm,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createBusiness = `-- name: CreateBusiness :one
INSERT INTO businesses (id, owner_id, name, timezone, auto_confirm, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + businessColumns

type CreateBusinessParams struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	Name        string             `json:"name"`
	Timezone    string             `json:"timezone"`
	AutoConfirm bool               `json:"auto_confirm"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBusiness(ctx context.Context, db DBTX, arg CreateBusinessParams) (Businesses, error) {
	row := db.QueryRow(ctx, createBusiness,
		arg.ID,
		arg.OwnerID,
		arg.Name,
		arg.Timezone,
		arg.AutoConfirm,
		arg.CreatedAt,
	)
	return scanBusiness(row)
}

const getBusinessByID = `-- name: GetBusinessByID :one
SELECT ` + businessColumns + `
FROM businesses
WHERE id = $1`

func (q *Queries) GetBusinessByID(ctx context.Context, db DBTX, id uuid.UUID) (Businesses, error) {
	return scanBusiness(db.QueryRow(ctx, getBusinessByID, id))
}

const listBusinessesByOwner = `-- name: ListBusinessesByOwner :many
SELECT ` + businessColumns + `
FROM businesses
WHERE owner_id = $1
ORDER BY created_at, id`

func (q *Queries) ListBusinessesByOwner(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]Businesses, error) {
	rows, err := db.Query(ctx, listBusinessesByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Businesses
	for rows.Next() {
		i, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
