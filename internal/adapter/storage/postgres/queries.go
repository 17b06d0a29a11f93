package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

const findUnitsInCell = `
SELECT id, name, address, phone, lat, lng, created_at, updated_at
FROM units
WHERE round(lat) = $1 AND round(lng) = $2
`

// FindUnitsInCell returns every unit inside the 1-degree cell whose stored
// coordinates round to the given integers. Coarse by design; the service
// layer re-checks exact distance.
func (q *Queries) FindUnitsInCell(ctx context.Context, roundedLat, roundedLng int) ([]domain.Unit, error) {
	rows, err := q.db.Query(ctx, findUnitsInCell, roundedLat, roundedLng)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

const getUnit = `
SELECT id, name, address, phone, lat, lng, created_at, updated_at
FROM units
WHERE id = $1
`

func (q *Queries) GetUnit(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	u, err := scanUnit(q.db.QueryRow(ctx, getUnit, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Unit{}, domain.ErrUnitNotFound
	}
	return u, err
}

const createUnit = `
INSERT INTO units (name, address, phone, lat, lng)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, address, phone, lat, lng, created_at, updated_at
`

func (q *Queries) CreateUnit(ctx context.Context, arg port.CreateUnitParams) (domain.Unit, error) {
	phone := pgtype.Text{String: arg.Phone, Valid: arg.Phone != ""}
	return scanUnit(q.db.QueryRow(ctx, createUnit,
		arg.Name, arg.Address, phone, arg.Location.Lat, arg.Location.Lng))
}

const recordSearchedLocation = `
INSERT INTO searched_locations (address, lat, lng)
VALUES ($1, $2, $3)
`

func (q *Queries) RecordSearchedLocation(ctx context.Context, address string, location domain.Point) error {
	_, err := q.db.Exec(ctx, recordSearchedLocation, address, location.Lat, location.Lng)
	return err
}

const getOperatorByEmail = `
SELECT id, name, email, password_hash, created_at
FROM operators
WHERE email = $1
`

func (q *Queries) GetOperatorByEmail(ctx context.Context, email string) (domain.Operator, error) {
	var op domain.Operator
	err := q.db.QueryRow(ctx, getOperatorByEmail, email).
		Scan(&op.ID, &op.Name, &op.Email, &op.PasswordHash, &op.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Operator{}, domain.ErrOperatorNotFound
	}
	return op, err
}

const createOperator = `
INSERT INTO operators (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, password_hash, created_at
`

func (q *Queries) CreateOperator(ctx context.Context, name, email, passwordHash string) (domain.Operator, error) {
	var op domain.Operator
	err := q.db.QueryRow(ctx, createOperator, name, email, passwordHash).
		Scan(&op.ID, &op.Name, &op.Email, &op.PasswordHash, &op.CreatedAt)
	return op, err
}

func scanUnit(row pgx.Row) (domain.Unit, error) {
	var u domain.Unit
	var phone pgtype.Text
	err := row.Scan(&u.ID, &u.Name, &u.Address, &phone,
		&u.Location.Lat, &u.Location.Lng, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.Unit{}, err
	}
	u.Phone = phone.String
	return u, nil
}
