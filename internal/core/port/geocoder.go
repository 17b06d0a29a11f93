package port

import (
	"context"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

// Geocoder resolves a free-form address to coordinates. Implementations
// wrap an external provider and should honor ctx cancellation.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Point, error)
}

// GeocodeCache stores resolved addresses so repeated searches skip the
// provider. Get returns ok=false on a miss.
type GeocodeCache interface {
	Get(ctx context.Context, address string) (domain.Point, bool, error)
	Set(ctx context.Context, address string, location domain.Point) error
}
