package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

type CreateUnitParams struct {
	Name     string
	Address  string
	Phone    string
	Location domain.Point
}

// UnitStore is the persistence boundary for health units. FindUnitsInCell
// is the coarse prefilter: it must return every unit whose stored
// coordinates round to the given integer degrees, and may not miss any.
type UnitStore interface {
	FindUnitsInCell(ctx context.Context, roundedLat, roundedLng int) ([]domain.Unit, error)
	GetUnit(ctx context.Context, id uuid.UUID) (domain.Unit, error)
	CreateUnit(ctx context.Context, arg CreateUnitParams) (domain.Unit, error)
	RecordSearchedLocation(ctx context.Context, address string, location domain.Point) error
}

type OperatorStore interface {
	GetOperatorByEmail(ctx context.Context, email string) (domain.Operator, error)
	CreateOperator(ctx context.Context, name, email, passwordHash string) (domain.Operator, error)
}
