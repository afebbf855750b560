package service

import (
	"errors"
	"fmt"

	"placebook/backend/internal/geo"
)

// Error kinds. Every failure returned by a service wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	ErrPlaceNotFound           = errors.New("place not found")
	ErrPlaceAlreadyExists      = errors.New("place already exists")
	ErrPlaceLimitExceeded      = errors.New("place limit exceeded")
	ErrCategoryNotFound        = errors.New("category not found")
	ErrCategoryAlreadyExists   = errors.New("category already exists")
	ErrCategoryInUse           = errors.New("category in use")
	ErrResourceOwnership       = errors.New("resource ownership")
	ErrCannotShareWithYourself = errors.New("cannot share with yourself")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrFriendNotFound          = errors.New("friend not found")
	ErrCannotInviteYourself    = errors.New("cannot invite yourself")
	ErrInvitationAlreadyExists = errors.New("invitation already exists")
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrFriendshipNotFound      = errors.New("friendship not found")

	// ErrInvalidLocation is shared with the geo package so resolver failures
	// need no rewrapping.
	ErrInvalidLocation = geo.ErrInvalidLocation
)

// Error is a recoverable failure of a service operation.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Kind returns the error kind carried by err, or nil for infrastructure errors.
func Kind(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, ErrInvalidLocation) {
		return ErrInvalidLocation
	}
	return nil
}
