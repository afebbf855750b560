package geo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidLocation is returned when the input cannot be turned into a location.
var ErrInvalidLocation = errors.New("invalid location")

// Location is a fully reconciled place position.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
	City    string
	Country string
}

// Resolver reconciles partial coordinate/address input through a Provider.
//
// A latitude or longitude of exactly 0 is treated as "unset", so points on the
// equator or the prime meridian cannot be stored by coordinates alone.
type Resolver struct {
	provider Provider
	timeout  time.Duration
}

// NewResolver creates a Resolver. Each provider call is bounded by timeout;
// a non-positive timeout leaves the caller's context as the only bound.
func NewResolver(provider Provider, timeout time.Duration) *Resolver {
	return &Resolver{provider: provider, timeout: timeout}
}

// Resolve applies, in order:
//   - a missing coordinate with an address: forward geocode the address;
//   - a blank address with both coordinates: reverse geocode, keeping lat/lng;
//   - anything else: pass through with empty city and country.
func (r *Resolver) Resolve(ctx context.Context, lat, lng float64, address string) (Location, error) {
	blankAddress := strings.TrimSpace(address) == ""

	switch {
	case (lat == 0 || lng == 0) && !blankAddress:
		res, err := r.forward(ctx, address)
		if err != nil {
			return Location{}, fmt.Errorf("%w: could not geocode address %q: %v", ErrInvalidLocation, address, err)
		}
		return Location{
			Lat:     res.Lat,
			Lng:     res.Lng,
			Address: res.FormattedAddress,
			City:    res.City,
			Country: res.Country,
		}, nil

	case blankAddress && lat != 0 && lng != 0:
		res, err := r.reverse(ctx, lat, lng)
		if err != nil {
			return Location{}, fmt.Errorf("%w: could not resolve coordinates %f,%f: %v", ErrInvalidLocation, lat, lng, err)
		}
		return Location{
			Lat:     lat,
			Lng:     lng,
			Address: res.FormattedAddress,
			City:    res.City,
			Country: res.Country,
		}, nil
	}

	return Location{Lat: lat, Lng: lng, Address: address}, nil
}

func (r *Resolver) forward(ctx context.Context, address string) (Result, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.provider.Forward(ctx, address)
}

func (r *Resolver) reverse(ctx context.Context, lat, lng float64) (Result, error) {
	ctx, cancel := r.bound(ctx)
	defer cancel()
	return r.provider.Reverse(ctx, lat, lng)
}

func (r *Resolver) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}
