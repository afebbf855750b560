package service

import (
	"context"
	"math"

	"placebook/backend/internal/geo"
	"placebook/backend/internal/models"
	"placebook/backend/internal/store"
)

// ProximityService finds the nearest of a user's places.
type ProximityService struct {
	store store.Store
}

// NewProximityService creates a ProximityService.
func NewProximityService(st store.Store) *ProximityService {
	return &ProximityService{store: st}
}

// Nearest returns the place owned by ownerID closest to (lat, lng) by
// great-circle distance. A non-empty category restricts the candidates.
// Ties keep the earliest created place.
func (s *ProximityService) Nearest(ctx context.Context, ownerID uint, lat, lng float64, category string) (*models.Place, error) {
	places, err := s.store.Places().ListByOwner(ctx, ownerID, store.PlaceFilter{Category: category})
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		if category != "" {
			return nil, fail(ErrPlaceNotFound, "User has no saved places of category: %s", category)
		}
		return nil, fail(ErrPlaceNotFound, "User has no saved places")
	}

	best := Nearest(places, geo.Point{Lat: lat, Lng: lng})
	if best == nil {
		return nil, fail(ErrPlaceNotFound, "User has no saved places")
	}
	return best, nil
}

// Nearest returns the candidate closest to origin, or nil for no candidates.
// Candidates whose distance is not a number are skipped.
func Nearest(candidates []models.Place, origin geo.Point) *models.Place {
	var best *models.Place
	bestDist := math.Inf(1)
	for i := range candidates {
		p := &candidates[i]
		d := geo.Haversine(origin, geo.Point{Lat: p.Latitude, Lng: p.Longitude})
		if math.IsNaN(d) {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}
