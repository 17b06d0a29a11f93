package domain

import (
	"time"

	"github.com/google/uuid"
)

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Unit is a basic health unit (UBS).
type Unit struct {
	ID       uuid.UUID
	Name     string
	Address  string
	Phone    string
	Location Point

	// Distance is meters from the search center. It is only meaningful on
	// units returned by the proximity filter; zero before that.
	Distance float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Operator is a back-office account allowed to manage units.
type Operator struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
