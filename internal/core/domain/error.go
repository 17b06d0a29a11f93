package domain

import "errors"

var (
	ErrUnitNotFound     = errors.New("unit not found")
	ErrOperatorNotFound = errors.New("operator not found")

	ErrInvalidRadius   = errors.New("radius must be non-negative")
	ErrInvalidPaging   = errors.New("page and per_page must be positive and provided together")
	ErrNoSuchPage      = errors.New("no such page")
	ErrAddressNotFound = errors.New("no coordinates found for address")
)
