package handler

import (
	"errors"
	"log"
	"net/http"

	"placebook/backend/internal/service"

	"github.com/gin-gonic/gin"
)

var statusByKind = map[error]int{
	service.ErrPlaceNotFound:      http.StatusNotFound,
	service.ErrCategoryNotFound:   http.StatusNotFound,
	service.ErrUserNotFound:       http.StatusNotFound,
	service.ErrFriendNotFound:     http.StatusNotFound,
	service.ErrInvitationNotFound: http.StatusNotFound,
	service.ErrFriendshipNotFound: http.StatusNotFound,

	service.ErrPlaceAlreadyExists:      http.StatusConflict,
	service.ErrInvitationAlreadyExists: http.StatusConflict,
	service.ErrCategoryAlreadyExists:   http.StatusConflict,
	service.ErrUserAlreadyExists:       http.StatusConflict,
	service.ErrCategoryInUse:           http.StatusConflict,

	service.ErrResourceOwnership:  http.StatusForbidden,
	service.ErrPlaceLimitExceeded: http.StatusForbidden,

	service.ErrCannotShareWithYourself: http.StatusBadRequest,
	service.ErrCannotInviteYourself:    http.StatusBadRequest,
	service.ErrInvalidLocation:         http.StatusBadRequest,

	service.ErrInvalidCredentials: http.StatusUnauthorized,
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	for kind, status := range statusByKind {
		if errors.Is(err, kind) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as {"error": ...}. Infrastructure errors are logged
// and hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
