package handler

import (
	"net/http"
	"time"

	"placebook/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// FriendshipResponse defines the structure for a friendship row.
type FriendshipResponse struct {
	ID                uint                    `json:"id" example:"1"`
	RequesterUsername string                  `json:"requesterUsername" example:"bob"`
	ReceiverUsername  string                  `json:"receiverUsername" example:"alice"`
	Status            models.FriendshipStatus `json:"status" example:"pending"`
	CreatedAt         time.Time               `json:"createdAt"`
}

func newFriendshipResponse(f *models.Friendship) FriendshipResponse {
	return FriendshipResponse{
		ID:                f.ID,
		RequesterUsername: f.Requester.Username,
		ReceiverUsername:  f.Receiver.Username,
		Status:            f.Status,
		CreatedAt:         f.CreatedAt,
	}
}

func newFriendshipResponses(rows []models.Friendship) []FriendshipResponse {
	out := make([]FriendshipResponse, len(rows))
	for i := range rows {
		out[i] = newFriendshipResponse(&rows[i])
	}
	return out
}

// GetFriends godoc
// @Summary      List my friends
// @Description  Returns the accepted friendships, whichever side sent the invitation.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendshipResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *Handler) GetFriends(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.Friends.GetFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFriendshipResponses(rows))
}

// GetInvitations godoc
// @Summary      List invitations I received
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendshipResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/invitations [get]
func (h *Handler) GetInvitations(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	rows, err := h.Friends.GetInvitations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFriendshipResponses(rows))
}

// SendInvitation godoc
// @Summary      Invite a user
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Receiver username"
// @Success      201  {object}  FriendshipResponse
// @Failure      400  {object}  ErrorResponse "Cannot invite yourself"
// @Failure      404  {object}  ErrorResponse "User not found"
// @Failure      409  {object}  ErrorResponse "Invitation already exists"
// @Router       /friends/{username}/invite [post]
func (h *Handler) SendInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	row, err := h.Friends.SendInvitation(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newFriendshipResponse(row))
}

// DeleteInvitation godoc
// @Summary      Withdraw an invitation I sent
// @Description  Withdrawing an invitation that does not exist succeeds.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Receiver username"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "User not found"
// @Router       /friends/{username}/invite [delete]
func (h *Handler) DeleteInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Friends.DeleteInvitation(c.Request.Context(), userID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Invitation deleted"})
}

// AcceptInvitation godoc
// @Summary      Accept an invitation
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Requester username"
// @Success      200  {object}  FriendshipResponse
// @Failure      404  {object}  ErrorResponse "Invitation not found"
// @Router       /friends/invitations/{username}/accept [post]
func (h *Handler) AcceptInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	row, err := h.Friends.AcceptInvitation(c.Request.Context(), userID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFriendshipResponse(row))
}

// DeclineInvitation godoc
// @Summary      Decline an invitation
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Requester username"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "Invitation not found"
// @Router       /friends/invitations/{username}/decline [post]
func (h *Handler) DeclineInvitation(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Friends.DeclineInvitation(c.Request.Context(), userID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Invitation declined"})
}

// DeleteFriend godoc
// @Summary      Remove a friend
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Friend username"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Router       /friends/{username} [delete]
func (h *Handler) DeleteFriend(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Friends.DeleteFriend(c.Request.Context(), userID, c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Friend removed"})
}
