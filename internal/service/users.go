package service

import (
	"context"
	"errors"
	"strings"

	"placebook/backend/internal/models"
	"placebook/backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// UpdateProfileInput holds a partial profile update.
type UpdateProfileInput struct {
	Username Optional[string]
	Email    Optional[string]
}

// UserService manages accounts and plans.
type UserService struct {
	store store.Store
	cost  int
}

// NewUserService creates a UserService hashing passwords with bcrypt at cost.
func NewUserService(st store.Store, cost int) *UserService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserService{store: st, cost: cost}
}

// Register creates a free plan account.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	return s.create(ctx, username, email, password, models.Roles{models.RoleFree})
}

func (s *UserService) create(ctx context.Context, username, email, password string, roles models.Roles) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
	}

	err = s.store.Transaction(ctx, func(tx store.Store) error {
		if err := ensureLoginFree(ctx, tx, username, email, 0); err != nil {
			return err
		}
		if err := tx.Users().Create(ctx, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fail(ErrUserAlreadyExists, "Username or email already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a username-or-email and password pair.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	user, err := s.store.Users().FindByLogin(ctx, login)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fail(ErrInvalidCredentials, "Invalid credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fail(ErrInvalidCredentials, "Invalid credentials")
	}
	return user, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	return findUser(ctx, s.store, id)
}

// List returns one page of users and the total count. page starts at 1.
func (s *UserService) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.store.Users().List(ctx, (page-1)*limit, limit)
}

// UpdateProfile changes the username and/or email. Absent or blank values are kept.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, in UpdateProfileInput) (*models.User, error) {
	var updated *models.User

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		user, err := findUser(ctx, tx, id)
		if err != nil {
			return err
		}

		username, email := user.Username, user.Email
		if v := in.Username.OrZero(); !isBlank(v) {
			username = strings.TrimSpace(v)
		}
		if v := in.Email.OrZero(); !isBlank(v) {
			email = strings.TrimSpace(v)
		}
		if err := ensureLoginFree(ctx, tx, username, email, user.ID); err != nil {
			return err
		}

		user.Username, user.Email = username, email
		if err := tx.Users().Save(ctx, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fail(ErrUserAlreadyExists, "Username or email already exists")
			}
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePassword replaces the user's password.
func (s *UserService) ChangePassword(ctx context.Context, id uint, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	return s.store.Transaction(ctx, func(tx store.Store) error {
		user, err := findUser(ctx, tx, id)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
		return tx.Users().Save(ctx, user)
	})
}

// SetRoles replaces the user's role set, e.g. to move them to the premium plan.
func (s *UserService) SetRoles(ctx context.Context, id uint, roles models.Roles) (*models.User, error) {
	var updated *models.User

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		user, err := findUser(ctx, tx, id)
		if err != nil {
			return err
		}
		user.Roles = dedupe(roles)
		if len(user.Roles) == 0 {
			user.Roles = models.Roles{models.RoleFree}
		}
		if err := tx.Users().Save(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a user together with their places, friendships and the
// sharing memberships they hold.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := findUser(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Places().DeleteSharesForUser(ctx, id); err != nil {
			return err
		}
		if err := tx.Places().DeleteByOwner(ctx, id); err != nil {
			return err
		}
		if err := tx.Friendships().DeleteForUser(ctx, id); err != nil {
			return err
		}
		return tx.Users().Delete(ctx, id)
	})
}

// EnsureAdmin creates an admin account unless the username is taken.
// It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	_, err := s.store.Users().FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	if _, err := s.create(ctx, username, email, password, models.Roles{models.RoleAdmin}); err != nil {
		return false, err
	}
	return true, nil
}

// ensureLoginFree fails when another user (not selfID) holds username or email.
func ensureLoginFree(ctx context.Context, tx store.Store, username, email string, selfID uint) error {
	for _, login := range []string{username, email} {
		other, err := tx.Users().FindByLogin(ctx, login)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if other.ID != selfID {
			return fail(ErrUserAlreadyExists, "Username or email already exists")
		}
	}
	return nil
}

func dedupe(roles models.Roles) models.Roles {
	out := make(models.Roles, 0, len(roles))
	for _, r := range roles {
		if !out.Has(r) {
			out = append(out, r)
		}
	}
	return out
}
