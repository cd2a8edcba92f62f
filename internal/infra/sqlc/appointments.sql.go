package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentColumns = `id, business_id, start_time, end_time, status, token,
       customer_name, customer_email, customer_phone, notes, cancelled_at, created_at, updated_at`

func scanAppointment(row pgx.Row) (Appointments, error) {
	var i Appointments
	err := row.Scan(
		&i.ID,
		&i.BusinessID,
		&i.StartTime,
		&i.EndTime,
		&i.Status,
		&i.Token,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CustomerPhone,
		&i.Notes,
		&i.CancelledAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectAppointments(rows pgx.Rows) ([]Appointments, error) {
	defer rows.Close()
	var items []Appointments
	for rows.Next() {
		i, err := scanAppointment(rows)
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

const createAppointment = `-- name: CreateAppointment :exec
INSERT INTO appointments (
    id, business_id, start_time, end_time, status, token,
    customer_name, customer_email, customer_phone, notes, cancelled_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

type CreateAppointmentParams struct {
	ID            uuid.UUID          `json:"id"`
	BusinessID    uuid.UUID          `json:"business_id"`
	StartTime     pgtype.Timestamptz `json:"start_time"`
	EndTime       pgtype.Timestamptz `json:"end_time"`
	Status        string             `json:"status"`
	Token         string             `json:"token"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone"`
	Notes         string             `json:"notes"`
	CancelledAt   pgtype.Timestamptz `json:"cancelled_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateAppointment(ctx context.Context, db DBTX, arg CreateAppointmentParams) error {
	_, err := db.Exec(ctx, createAppointment,
		arg.ID,
		arg.BusinessID,
		arg.StartTime,
		arg.EndTime,
		arg.Status,
		arg.Token,
		arg.CustomerName,
		arg.CustomerEmail,
		arg.CustomerPhone,
		arg.Notes,
		arg.CancelledAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getAppointmentByID = `-- name: GetAppointmentByID :one
SELECT ` + appointmentColumns + `
FROM appointments
WHERE id = $1`

func (q *Queries) GetAppointmentByID(ctx context.Context, db DBTX, id uuid.UUID) (Appointments, error) {
	return scanAppointment(db.QueryRow(ctx, getAppointmentByID, id))
}

const getAppointmentByToken = `-- name: GetAppointmentByToken :one
SELECT ` + appointmentColumns + `
FROM appointments
WHERE token = $1`

func (q *Queries) GetAppointmentByToken(ctx context.Context, db DBTX, token string) (Appointments, error) {
	return scanAppointment(db.QueryRow(ctx, getAppointmentByToken, token))
}

const updateAppointmentStatus = `-- name: UpdateAppointmentStatus :execrows
UPDATE appointments
SET status = $2, cancelled_at = $3, updated_at = $4
WHERE id = $1`

type UpdateAppointmentStatusParams struct {
	ID          uuid.UUID          `json:"id"`
	Status      string             `json:"status"`
	CancelledAt pgtype.Timestamptz `json:"cancelled_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateAppointmentStatus(ctx context.Context, db DBTX, arg UpdateAppointmentStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateAppointmentStatus, arg.ID, arg.Status, arg.CancelledAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listOverlappingAppointments = `-- name: ListOverlappingAppointments :many
SELECT ` + appointmentColumns + `
FROM appointments
WHERE business_id = $1
  AND start_time < $3
  AND end_time > $2
  AND status = ANY($4::text[])
ORDER BY start_time, id`

type ListOverlappingAppointmentsParams struct {
	BusinessID uuid.UUID          `json:"business_id"`
	RangeStart pgtype.Timestamptz `json:"range_start"`
	RangeEnd   pgtype.Timestamptz `json:"range_end"`
	Statuses   []string           `json:"statuses"`
}

func (q *Queries) ListOverlappingAppointments(ctx context.Context, db DBTX, arg ListOverlappingAppointmentsParams) ([]Appointments, error) {
	rows, err := db.Query(ctx, listOverlappingAppointments, arg.BusinessID, arg.RangeStart, arg.RangeEnd, arg.Statuses)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

const listAppointmentsByBusiness = `-- name: ListAppointmentsByBusiness :many
SELECT ` + appointmentColumns + `
FROM appointments
WHERE business_id = $1
  AND start_time < $3
  AND end_time > $2
  AND ($4::text IS NULL OR status = $4::text)
  AND ($6::timestamptz IS NULL OR (start_time, id) > ($6::timestamptz, $7::uuid))
ORDER BY start_time, id
LIMIT $5`

type ListAppointmentsByBusinessParams struct {
	BusinessID uuid.UUID          `json:"business_id"`
	RangeStart pgtype.Timestamptz `json:"range_start"`
	RangeEnd   pgtype.Timestamptz `json:"range_end"`
	Status     pgtype.Text        `json:"status"`
	Limit      int32              `json:"limit"`
	AfterStart pgtype.Timestamptz `json:"after_start"`
	AfterID    uuid.UUID          `json:"after_id"`
}

func (q *Queries) ListAppointmentsByBusiness(ctx context.Context, db DBTX, arg ListAppointmentsByBusinessParams) ([]Appointments, error) {
	rows, err := db.Query(ctx, listAppointmentsByBusiness, arg.BusinessID, arg.RangeStart, arg.RangeEnd, arg.Status, arg.Limit, arg.AfterStart, arg.AfterID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}
