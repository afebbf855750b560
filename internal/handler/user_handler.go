package handler

import (
	"net/http"
	"time"

	"placebook/backend/internal/models"
	"placebook/backend/internal/service"
	"placebook/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UpdateProfileInput defines a partial profile update. Absent or blank fields are kept.
type UpdateProfileInput struct {
	Username service.Optional[string] `json:"username" swaggertype:"string" example:"alice"`
	Email    service.Optional[string] `json:"email" swaggertype:"string" example:"alice@example.com"`
}

// ChangePasswordInput defines the structure for a password change.
type ChangePasswordInput struct {
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

// SetRolesInput defines the structure for an admin plan change.
type SetRolesInput struct {
	Roles []string `json:"roles" binding:"required" example:"FREE,PREMIUM"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the structure for a user's profile.
type UserResponse struct {
	ID         uint      `json:"id" example:"1"`
	Username   string    `json:"username" example:"alice"`
	Email      string    `json:"email" example:"alice@example.com"`
	Roles      []string  `json:"roles" example:"FREE"`
	PlaceCount int       `json:"place_count" example:"3"`
	CreatedAt  time.Time `json:"created_at"`
}

func newUserResponse(u *models.User) UserResponse {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Roles:      roles,
		PlaceCount: u.PlaceCount,
		CreatedAt:  u.CreatedAt,
	}
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new free plan user and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username or email already exists"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates a user with username/email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  TokenResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), input.Login, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// endregion

// region --- Current User Handlers ---

// GetMe godoc
// @Summary      Get current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.Users.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMe godoc
// @Summary      Update current user profile
// @Description  Changes the username and/or email. Absent or blank fields are kept.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateProfileInput true "Profile changes"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Username or email already exists"
// @Router       /users/me [put]
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Users.UpdateProfile(c.Request.Context(), userID, service.UpdateProfileInput{
		Username: input.Username,
		Email:    input.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// ChangePassword godoc
// @Summary      Change current user password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ChangePasswordInput true "New password"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me/password [put]
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Users.ChangePassword(c.Request.Context(), userID, input.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Password changed"})
}

// DeleteMe godoc
// @Summary      Delete current user
// @Description  Deletes the account with its places, friendships and sharing memberships.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [delete]
func (h *Handler) DeleteMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Users.Delete(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// endregion

// region --- Admin User Handlers ---

// ListUsers godoc
// @Summary      List users
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[UserResponse]
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Router       /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)

	users, total, err := h.Users.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	data := make([]UserResponse, len(users))
	for i := range users {
		data[i] = newUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, NewPaginatedResponse(data, total, page, limit))
}

// GetUser godoc
// @Summary      Get a user
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /admin/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// SetUserRoles godoc
// @Summary      Replace a user's roles
// @Description  Moves a user between plans, e.g. FREE to PREMIUM. An empty list resets to FREE.
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "User ID"
// @Param        input body      SetRolesInput  true  "Roles"
// @Success      200   {object}  UserResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Admin access required"
// @Failure      404   {object}  ErrorResponse "User not found"
// @Router       /admin/users/{id}/roles [put]
func (h *Handler) SetUserRoles(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input SetRolesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roles := make(models.Roles, 0, len(input.Roles))
	for _, name := range input.Roles {
		role := models.Role(name)
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role: " + name})
			return
		}
		roles = append(roles, role)
	}

	user, err := h.Users.SetRoles(c.Request.Context(), id, roles)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /admin/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// endregion
