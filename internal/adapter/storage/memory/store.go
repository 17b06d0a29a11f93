// Package memory is an in-process UnitStore used for local development and
// tests. Units are indexed in an R-Tree so the rounded-degree cell query
// stays cheap even with large fixtures.
package memory

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50

	// Tolerance for point rects and padding around the degree cell box.
	// Exact cell membership is re-checked by rounding, the box only
	// narrows the scan.
	cellPadding = 1e-9
)

type unitItem struct {
	id   uuid.UUID
	rect *rtreego.Rect
}

func (it *unitItem) Bounds() *rtreego.Rect {
	return it.rect
}

type searchedLocation struct {
	Address    string
	Location   domain.Point
	SearchedAt time.Time
}

type Store struct {
	mu        sync.RWMutex
	tree      *rtreego.Rtree
	units     map[uuid.UUID]domain.Unit
	operators map[string]domain.Operator
	searched  []searchedLocation
}

func NewStore() *Store {
	return &Store{
		tree:      rtreego.NewTree(dimensions, minChildren, maxChildren),
		units:     make(map[uuid.UUID]domain.Unit),
		operators: make(map[string]domain.Operator),
	}
}

func (s *Store) FindUnitsInCell(ctx context.Context, roundedLat, roundedLng int) ([]domain.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	box, err := rtreego.NewRect(
		rtreego.Point{float64(roundedLat) - 0.5 - cellPadding, float64(roundedLng) - 0.5 - cellPadding},
		[]float64{1 + 2*cellPadding, 1 + 2*cellPadding},
	)
	if err != nil {
		return nil, err
	}

	var units []domain.Unit
	for _, item := range s.tree.SearchIntersect(box) {
		u := s.units[item.(*unitItem).id]
		if int(math.Round(u.Location.Lat)) != roundedLat || int(math.Round(u.Location.Lng)) != roundedLng {
			continue
		}
		units = append(units, u)
	}
	return units, nil
}

func (s *Store) GetUnit(ctx context.Context, id uuid.UUID) (domain.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.units[id]
	if !ok {
		return domain.Unit{}, domain.ErrUnitNotFound
	}
	return u, nil
}

func (s *Store) CreateUnit(ctx context.Context, arg port.CreateUnitParams) (domain.Unit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	u := domain.Unit{
		ID:        uuid.New(),
		Name:      arg.Name,
		Address:   arg.Address,
		Phone:     arg.Phone,
		Location:  arg.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}

	rect := rtreego.Point{u.Location.Lat, u.Location.Lng}.ToRect(cellPadding)

	s.units[u.ID] = u
	s.tree.Insert(&unitItem{id: u.ID, rect: rect})
	return u, nil
}

func (s *Store) RecordSearchedLocation(ctx context.Context, address string, location domain.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searched = append(s.searched, searchedLocation{
		Address:    address,
		Location:   location,
		SearchedAt: time.Now(),
	})
	return nil
}

func (s *Store) GetOperatorByEmail(ctx context.Context, email string) (domain.Operator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	op, ok := s.operators[email]
	if !ok {
		return domain.Operator{}, domain.ErrOperatorNotFound
	}
	return op, nil
}

func (s *Store) CreateOperator(ctx context.Context, name, email, passwordHash string) (domain.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	op := domain.Operator{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.operators[email] = op
	return op, nil
}
