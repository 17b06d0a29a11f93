package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

func TestGeocodeService_CacheHitSkipsProvider(t *testing.T) {
	cached := domain.Point{Lat: -23.5505, Lng: -46.6333}

	mockGeocoder := new(MockGeocoder)
	mockCache := new(MockGeocodeCache)
	mockStore := new(MockUnitStore)

	mockCache.On("Get", mock.Anything, "av. paulista, 100").Return(cached, true, nil)

	svc := NewGeocodeService(mockGeocoder, mockCache, mockStore, zap.NewNop())
	got, err := svc.Resolve(context.Background(), "  Av. Paulista,   100 ")

	assert.NoError(t, err)
	assert.Equal(t, cached, got)
	mockGeocoder.AssertNotCalled(t, "Geocode")
	mockStore.AssertNotCalled(t, "RecordSearchedLocation")
}

func TestGeocodeService_CacheMissResolvesAndRecords(t *testing.T) {
	resolved := domain.Point{Lat: -23.5505, Lng: -46.6333}
	address := "Av. Paulista, 100"

	mockGeocoder := new(MockGeocoder)
	mockCache := new(MockGeocodeCache)
	mockStore := new(MockUnitStore)

	mockCache.On("Get", mock.Anything, "av. paulista, 100").Return(domain.Point{}, false, nil)
	mockGeocoder.On("Geocode", mock.Anything, address).Return(resolved, nil)
	mockCache.On("Set", mock.Anything, "av. paulista, 100", resolved).Return(nil)
	mockStore.On("RecordSearchedLocation", mock.Anything, address, resolved).Return(nil)

	svc := NewGeocodeService(mockGeocoder, mockCache, mockStore, zap.NewNop())
	got, err := svc.Resolve(context.Background(), address)

	assert.NoError(t, err)
	assert.Equal(t, resolved, got)
	mockCache.AssertExpectations(t)
	mockGeocoder.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestGeocodeService_CacheFailureFallsBackToProvider(t *testing.T) {
	resolved := domain.Point{Lat: 1, Lng: 2}

	mockGeocoder := new(MockGeocoder)
	mockCache := new(MockGeocodeCache)
	mockStore := new(MockUnitStore)

	mockCache.On("Get", mock.Anything, mock.Anything).
		Return(domain.Point{}, false, errors.New("redis down"))
	mockGeocoder.On("Geocode", mock.Anything, "somewhere").Return(resolved, nil)
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))
	mockStore.On("RecordSearchedLocation", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewGeocodeService(mockGeocoder, mockCache, mockStore, zap.NewNop())
	got, err := svc.Resolve(context.Background(), "somewhere")

	assert.NoError(t, err)
	assert.Equal(t, resolved, got)
}

func TestGeocodeService_ProviderErrorPropagates(t *testing.T) {
	mockGeocoder := new(MockGeocoder)
	mockCache := new(MockGeocodeCache)
	mockStore := new(MockUnitStore)

	mockCache.On("Get", mock.Anything, mock.Anything).Return(domain.Point{}, false, nil)
	mockGeocoder.On("Geocode", mock.Anything, mock.Anything).
		Return(domain.Point{}, domain.ErrAddressNotFound)

	svc := NewGeocodeService(mockGeocoder, mockCache, mockStore, zap.NewNop())
	_, err := svc.Resolve(context.Background(), "nowhere at all")

	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
	mockCache.AssertNotCalled(t, "Set")
	mockStore.AssertNotCalled(t, "RecordSearchedLocation")
}

func TestGeocodeService_BlankAddress(t *testing.T) {
	svc := NewGeocodeService(new(MockGeocoder), new(MockGeocodeCache), new(MockUnitStore), zap.NewNop())

	_, err := svc.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (domain.Point, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.Point), args.Error(1)
}

type MockGeocodeCache struct {
	mock.Mock
}

func (m *MockGeocodeCache) Get(ctx context.Context, address string) (domain.Point, bool, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.Point), args.Bool(1), args.Error(2)
}

func (m *MockGeocodeCache) Set(ctx context.Context, address string, location domain.Point) error {
	args := m.Called(ctx, address, location)
	return args.Error(0)
}
