package service_test

import (
	"context"
	"testing"
	"time"

	"placebook/backend/internal/database"
	"placebook/backend/internal/geo"
	"placebook/backend/internal/geo/geotest"
	"placebook/backend/internal/models"
	"placebook/backend/internal/service"
	"placebook/backend/internal/store"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	store      *store.GormStore
	geo        *geotest.Provider
	places     *service.PlaceService
	proximity  *service.ProximityService
	sharing    *service.SharingService
	friends    *service.FriendService
	categories *service.CategoryService
	users      *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	st := store.New(db)
	provider := geotest.New().
		Add("Plac Defilad 1, Warszawa", geo.Result{
			Lat: 52.2317, Lng: 21.0059,
			FormattedAddress: "Plac Defilad 1, 00-901 Warszawa, Poland",
			City:             "Warszawa", Country: "Poland",
		}).
		Add("Rynek Główny, Kraków", geo.Result{
			Lat: 50.0617, Lng: 19.9373,
			FormattedAddress: "Rynek Główny, 31-042 Kraków, Poland",
			City:             "Kraków", Country: "Poland",
		})

	friends := service.NewFriendService(st)
	env := &testEnv{
		store:      st,
		geo:        provider,
		places:     service.NewPlaceService(st, geo.NewResolver(provider, time.Second), friends),
		proximity:  service.NewProximityService(st),
		sharing:    service.NewSharingService(st),
		friends:    friends,
		categories: service.NewCategoryService(st),
		users:      service.NewUserService(st, bcrypt.MinCost),
	}

	_, err = env.categories.EnsureDefaults(context.Background(), []string{"Park", "Museum", "Cafe"})
	require.NoError(t, err)
	return env
}

func (e *testEnv) user(t *testing.T, username string, roles ...models.Role) *models.User {
	t.Helper()
	if len(roles) == 0 {
		roles = []models.Role{models.RoleFree}
	}
	u := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "unused",
		Roles:        roles,
	}
	require.NoError(t, e.store.Users().Create(context.Background(), u))
	return u
}

func (e *testEnv) place(t *testing.T, owner *models.User, name, category string, lat, lng float64) *models.Place {
	t.Helper()
	p, err := e.places.Create(context.Background(), owner.ID, service.CreatePlaceInput{
		Name:      name,
		Category:  category,
		Latitude:  lat,
		Longitude: lng,
		Address:   "somewhere",
	})
	require.NoError(t, err)
	return p
}

func (e *testEnv) befriend(t *testing.T, a, b *models.User) {
	t.Helper()
	ctx := context.Background()
	_, err := e.friends.SendInvitation(ctx, a.ID, b.Username)
	require.NoError(t, err)
	_, err = e.friends.AcceptInvitation(ctx, b.ID, a.Username)
	require.NoError(t, err)
}

func boolPtr(b bool) *bool { return &b }
