package service_test

import (
	"context"
	"math"
	"testing"

	"placebook/backend/internal/geo"
	"placebook/backend/internal/models"
	"placebook/backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearest(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	ctx := context.Background()

	p1 := env.place(t, alice, "P1", "Park", 52.1, 21.1)
	env.place(t, alice, "P2", "Park", 10, 10)
	museum := env.place(t, alice, "M1", "Museum", 52.01, 21.01)

	t.Run("category filter", func(t *testing.T) {
		got, err := env.proximity.Nearest(ctx, alice.ID, 52.0, 21.0, "Park")
		require.NoError(t, err)
		assert.Equal(t, p1.ID, got.ID)
	})

	t.Run("any category", func(t *testing.T) {
		got, err := env.proximity.Nearest(ctx, alice.ID, 52.0, 21.0, "")
		require.NoError(t, err)
		assert.Equal(t, museum.ID, got.ID)
	})

	t.Run("no places of category", func(t *testing.T) {
		_, err := env.proximity.Nearest(ctx, alice.ID, 52.0, 21.0, "Cafe")
		assert.ErrorIs(t, err, service.ErrPlaceNotFound)
		assert.Contains(t, err.Error(), "Cafe")
	})

	t.Run("antipodal first candidate", func(t *testing.T) {
		carol := env.user(t, "carol")
		env.place(t, carol, "Far side", "Park", 85.46, 1)
		nextDoor := env.place(t, carol, "Next door", "Park", -85.4, -179)

		got, err := env.proximity.Nearest(ctx, carol.ID, -85.46, -179, "")
		require.NoError(t, err)
		assert.Equal(t, nextDoor.ID, got.ID)
	})

	t.Run("only own places are candidates", func(t *testing.T) {
		bob := env.user(t, "bob")
		_, err := env.proximity.Nearest(ctx, bob.ID, 52.0, 21.0, "")
		assert.ErrorIs(t, err, service.ErrPlaceNotFound)
	})
}

func TestNearestHelper(t *testing.T) {
	origin := geo.Point{Lat: 0, Lng: 0}

	assert.Nil(t, service.Nearest(nil, origin))

	candidates := []models.Place{
		{ID: 1, Latitude: 1, Longitude: 1},
		{ID: 2, Latitude: -1, Longitude: -1},
		{ID: 3, Latitude: 5, Longitude: 5},
	}
	got := service.Nearest(candidates, origin)
	require.NotNil(t, got)
	assert.Equal(t, uint(1), got.ID, "ties keep the first candidate")
}

func TestNearestSkipsUnmeasurableCandidates(t *testing.T) {
	origin := geo.Point{Lat: 10, Lng: 10}
	candidates := []models.Place{
		{ID: 1, Latitude: math.NaN(), Longitude: 10},
		{ID: 2, Latitude: 40, Longitude: 40},
		{ID: 3, Latitude: 11, Longitude: 11},
	}

	got := service.Nearest(candidates, origin)
	require.NotNil(t, got)
	assert.Equal(t, uint(3), got.ID)

	assert.Nil(t, service.Nearest(candidates[:1], origin))
}
