// Package geo resolves places to coordinates and addresses and measures
// distances between them.
package geo

import (
	"context"
	"errors"
)

// ErrNoMatch is returned by a Provider when the lookup produced no result.
var ErrNoMatch = errors.New("geocode: no match")

// Result is a single geocoding answer.
type Result struct {
	Lat              float64
	Lng              float64
	FormattedAddress string
	City             string
	Country          string
}

// Provider performs forward and reverse geocoding.
// Implementations return ErrNoMatch when the lookup is valid but empty.
type Provider interface {
	Forward(ctx context.Context, address string) (Result, error)
	Reverse(ctx context.Context, lat, lng float64) (Result, error)
}
