package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
)

// GeocodeService turns addresses into coordinates, fronting the external
// provider with an injected cache. Resolved locations are also recorded in
// the store so past searches can be inspected offline.
type GeocodeService struct {
	geocoder port.Geocoder
	cache    port.GeocodeCache
	store    port.UnitStore
	log      *zap.Logger
}

func NewGeocodeService(geocoder port.Geocoder, cache port.GeocodeCache, store port.UnitStore, log *zap.Logger) *GeocodeService {
	return &GeocodeService{
		geocoder: geocoder,
		cache:    cache,
		store:    store,
		log:      log,
	}
}

func (s *GeocodeService) Resolve(ctx context.Context, address string) (domain.Point, error) {
	key := normalizeAddress(address)
	if key == "" {
		return domain.Point{}, domain.ErrAddressNotFound
	}

	location, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		// Cache trouble downgrades to a provider call.
		s.log.Warn("geocode cache get failed", zap.Error(err))
	} else if ok {
		return location, nil
	}

	location, err = s.geocoder.Geocode(ctx, address)
	if err != nil {
		return domain.Point{}, err
	}

	if err := s.cache.Set(ctx, key, location); err != nil {
		s.log.Warn("geocode cache set failed", zap.Error(err))
	}
	if err := s.store.RecordSearchedLocation(ctx, address, location); err != nil {
		s.log.Warn("failed to record searched location", zap.Error(err))
	}

	return location, nil
}

func normalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}
