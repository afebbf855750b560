// Package handler exposes the place book services over HTTP.
package handler

import (
	"net/http"
	"strconv"

	"placebook/backend/internal/auth"
	"placebook/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler holds the services behind the HTTP API.
type Handler struct {
	Places     *service.PlaceService
	Proximity  *service.ProximityService
	Sharing    *service.SharingService
	Friends    *service.FriendService
	Categories *service.CategoryService
	Users      *service.UserService
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"Place deleted"`
}

// currentUser returns the authenticated user's ID, writing a 401 when absent.
func currentUser(c *gin.Context) (uint, bool) {
	id, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
	}
	return id, ok
}

// pathID parses the named path parameter, writing a 400 when it is not an ID.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
