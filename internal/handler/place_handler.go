package handler

import (
	"net/http"
	"strconv"
	"time"

	"placebook/backend/internal/models"
	"placebook/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// CreatePlaceInput defines the structure for saving a place. Give an address,
// coordinates, or both; the missing side is geocoded.
type CreatePlaceInput struct {
	Name      string  `json:"name" binding:"required" example:"Saxon Garden"`
	Category  string  `json:"category" binding:"required" example:"Park"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90" example:"52.2401"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180" example:"21.0076"`
	Address   string  `json:"address" example:"Marszałkowska, Warszawa"`
	Note      string  `json:"note" example:"Fountain in the middle"`
	IsPublic  *bool   `json:"isPublic" example:"true"`
}

// UpdatePlaceInput defines a partial place update. Absent or blank fields are kept.
type UpdatePlaceInput struct {
	Name      service.Optional[string]  `json:"name" swaggertype:"string"`
	Category  service.Optional[string]  `json:"category" swaggertype:"string"`
	Latitude  service.Optional[float64] `json:"latitude" swaggertype:"number"`
	Longitude service.Optional[float64] `json:"longitude" swaggertype:"number"`
	Address   service.Optional[string]  `json:"address" swaggertype:"string"`
	Note      service.Optional[string]  `json:"note" swaggertype:"string"`
}

// PlaceResponse defines the structure for a saved place.
type PlaceResponse struct {
	ID         uint      `json:"id" example:"1"`
	Name       string    `json:"name" example:"Saxon Garden"`
	Category   string    `json:"category" example:"Park"`
	Owner      string    `json:"owner" example:"alice"`
	Latitude   float64   `json:"latitude" example:"52.2401"`
	Longitude  float64   `json:"longitude" example:"21.0076"`
	Address    string    `json:"address"`
	City       string    `json:"city" example:"Warszawa"`
	Country    string    `json:"country" example:"Poland"`
	Note       string    `json:"note"`
	IsPublic   bool      `json:"isPublic"`
	PostDate   time.Time `json:"postDate"`
	SharedWith []string  `json:"sharedWith"`
}

func newPlaceResponse(p *models.Place) PlaceResponse {
	sharedWith := make([]string, len(p.SharedWith))
	for i, u := range p.SharedWith {
		sharedWith[i] = u.Username
	}
	return PlaceResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category.Name,
		Owner:      p.User.Username,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		Address:    p.Address,
		City:       p.City,
		Country:    p.Country,
		Note:       p.Note,
		IsPublic:   p.IsPublic,
		PostDate:   p.PostDate,
		SharedWith: sharedWith,
	}
}

func newPlaceResponses(places []models.Place) []PlaceResponse {
	out := make([]PlaceResponse, len(places))
	for i := range places {
		out[i] = newPlaceResponse(&places[i])
	}
	return out
}

// endregion

// GetPlaces godoc
// @Summary      List my places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PlaceResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /places [get]
func (h *Handler) GetPlaces(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	places, err := h.Places.FindAll(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponses(places))
}

// GetPrivatePlaces godoc
// @Summary      List my private places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PlaceResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /places/private [get]
func (h *Handler) GetPrivatePlaces(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	places, err := h.Places.FindAllPrivate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponses(places))
}

// GetSharedPlaces godoc
// @Summary      List places shared with me
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PlaceResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /places/shared [get]
func (h *Handler) GetSharedPlaces(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	places, err := h.Sharing.ListShared(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponses(places))
}

// GetNearestPlace godoc
// @Summary      Find my nearest place
// @Description  Returns the saved place closest to the given point, optionally within one category.
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        latitude   query     number  true   "Latitude"
// @Param        longitude  query     number  true   "Longitude"
// @Param        category   query     string  false  "Category name"
// @Success      200  {object}  PlaceResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No saved places"
// @Router       /places/nearest [get]
func (h *Handler) GetNearestPlace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil || lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil || lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}

	place, err := h.Proximity.Nearest(c.Request.Context(), userID, lat, lng, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponse(place))
}

// GetFriendPlaces godoc
// @Summary      List a friend's public places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Friend username"
// @Success      200  {array}   PlaceResponse
// @Failure      404  {object}  ErrorResponse "Not a friend"
// @Router       /places/friend/{username} [get]
func (h *Handler) GetFriendPlaces(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	places, err := h.Places.FindFriendPlaces(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponses(places))
}

// GetPlaceByID godoc
// @Summary      Get one of my places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Place ID"
// @Success      200  {object}  PlaceResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Place not found"
// @Router       /places/{id} [get]
func (h *Handler) GetPlaceByID(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	place, err := h.Places.FindByID(c.Request.Context(), userID, placeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponse(place))
}

// CreatePlace godoc
// @Summary      Save a place
// @Description  Saves a new place. Free plan users can save at most 10.
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreatePlaceInput true "Place Info"
// @Success      201  {object}  PlaceResponse
// @Failure      400  {object}  ErrorResponse "Invalid input or location"
// @Failure      403  {object}  ErrorResponse "Place limit exceeded"
// @Failure      404  {object}  ErrorResponse "Category not found"
// @Failure      409  {object}  ErrorResponse "Place already exists"
// @Router       /places [post]
func (h *Handler) CreatePlace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreatePlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := h.Places.Create(c.Request.Context(), userID, service.CreatePlaceInput{
		Name:      input.Name,
		Category:  input.Category,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
		Note:      input.Note,
		IsPublic:  input.IsPublic,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newPlaceResponse(place))
}

// UpdatePlace godoc
// @Summary      Update one of my places
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Place ID"
// @Param        input body      UpdatePlaceInput  true  "Changes"
// @Success      200  {object}  PlaceResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Place or category not found"
// @Failure      409  {object}  ErrorResponse "Place already exists"
// @Router       /places/{id} [put]
func (h *Handler) UpdatePlace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input UpdatePlaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if lat := input.Latitude.OrZero(); lat < -90 || lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Latitude must be between -90 and 90"})
		return
	}
	if lng := input.Longitude.OrZero(); lng < -180 || lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Longitude must be between -180 and 180"})
		return
	}

	place, err := h.Places.Update(c.Request.Context(), userID, placeID, service.UpdatePlaceInput{
		Name:      input.Name,
		Category:  input.Category,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
		Note:      input.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponse(place))
}

// DeletePlace godoc
// @Summary      Delete one of my places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Place ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not the owner"
// @Failure      404  {object}  ErrorResponse "Place not found"
// @Router       /places/{id} [delete]
func (h *Handler) DeletePlace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Places.Delete(c.Request.Context(), userID, placeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Place deleted"})
}

// SharePlace godoc
// @Summary      Share a place
// @Description  Gives another user read access to one of my places. Sharing twice is a no-op.
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        id        path      int     true  "Place ID"
// @Param        username  path      string  true  "Receiver username"
// @Success      200  {object}  PlaceResponse
// @Failure      400  {object}  ErrorResponse "Cannot share with yourself"
// @Failure      404  {object}  ErrorResponse "Place or user not found"
// @Router       /places/{id}/share/{username} [post]
func (h *Handler) SharePlace(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	placeID, ok := pathID(c, "id")
	if !ok {
		return
	}

	place, err := h.Sharing.Share(c.Request.Context(), userID, c.Param("username"), placeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPlaceResponse(place))
}
