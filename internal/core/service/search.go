package service

import (
	"context"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
	"github.com/myrp-alexandre/ubsvoce/internal/core/geo"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
)

// SearchParams describes one proximity search. Page and PerPage are
// optional but must be provided together; both are 1-based positive.
type SearchParams struct {
	Center       domain.Point
	RadiusMeters float64
	Page         *int
	PerPage      *int
}

type SearchService struct {
	store port.UnitStore
	log   *zap.Logger
}

func NewSearchService(store port.UnitStore, log *zap.Logger) *SearchService {
	return &SearchService{
		store: store,
		log:   log,
	}
}

// SearchNear returns the units within RadiusMeters of Center, sorted by
// ascending distance, optionally sliced to one page.
//
// Candidates come from the store's rounded-degree cell of Center. One
// degree of latitude is roughly 112.12 km, so the prefilter can drop
// matches near a cell edge for very large radii; searches are expected to
// stay at neighborhood scale.
//
// With no paging the full sorted list is returned, empty (never nil) when
// nothing matches. With paging, a page past the end yields ErrNoSuchPage.
func (s *SearchService) SearchNear(ctx context.Context, params SearchParams) ([]domain.Unit, error) {
	if params.RadiusMeters < 0 {
		return nil, domain.ErrInvalidRadius
	}
	if err := validatePaging(params.Page, params.PerPage); err != nil {
		return nil, err
	}

	roundedLat := int(math.Round(params.Center.Lat))
	roundedLng := int(math.Round(params.Center.Lng))

	candidates, err := s.store.FindUnitsInCell(ctx, roundedLat, roundedLng)
	if err != nil {
		// Store failures are the caller's problem; no retry here.
		return nil, err
	}

	matched := make([]domain.Unit, 0, len(candidates))
	for _, u := range candidates {
		d := geo.Distance(params.Center, u.Location)
		if d > params.RadiusMeters {
			continue
		}
		u.Distance = d // u is a copy, the candidate is untouched
		matched = append(matched, u)
	}

	// Stable: equal distances keep candidate order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Distance < matched[j].Distance
	})

	s.log.Debug("proximity search",
		zap.Int("candidates", len(candidates)),
		zap.Int("matched", len(matched)),
		zap.Float64("radius_m", params.RadiusMeters),
	)

	if params.Page == nil && params.PerPage == nil {
		return matched, nil
	}

	return paginate(matched, *params.Page, *params.PerPage)
}

func validatePaging(page, perPage *int) error {
	if page == nil && perPage == nil {
		return nil
	}
	if page == nil || perPage == nil {
		return domain.ErrInvalidPaging
	}
	if *page <= 0 || *perPage <= 0 {
		return domain.ErrInvalidPaging
	}
	return nil
}

// paginate slices units into consecutive perPage-sized chunks and returns
// the 1-based page. When everything fits on one page the whole list comes
// back regardless of the page asked for. An empty list has zero pages, so
// any page request on it is ErrNoSuchPage.
//
// Callers must have validated page and perPage already; perPage > 0 is
// assumed here.
func paginate(units []domain.Unit, page, perPage int) ([]domain.Unit, error) {
	totalPages := len(units) / perPage
	if totalPages*perPage < len(units) {
		totalPages++
	}

	if totalPages == 1 {
		return units, nil
	}

	idx := page - 1
	if idx < 0 || idx > totalPages-1 {
		return nil, domain.ErrNoSuchPage
	}

	start := idx * perPage
	end := start + perPage
	if end > len(units) {
		end = len(units)
	}
	return units[start:end], nil
}
