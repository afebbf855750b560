package handler

import (
	"net/http"

	"placebook/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under apiV1.
func (h *Handler) RegisterRoutes(apiV1 *gin.RouterGroup) {
	requireAuth := auth.AuthMiddleware()
	requireAdmin := auth.AdminMiddleware(h.Users)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	{
		authRoutes.POST("/register", h.RegisterUser)
		authRoutes.POST("/login", h.LoginUser)
	}

	apiV1.GET("/public/info", GetAppInfo)

	// User routes (protected)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(requireAuth)
	{
		userRoutes.GET("/me", h.GetMe)
		userRoutes.PUT("/me", h.UpdateMe)
		userRoutes.DELETE("/me", h.DeleteMe)
		userRoutes.PUT("/me/password", h.ChangePassword)
	}

	// Place routes (protected)
	placeRoutes := apiV1.Group("/places")
	placeRoutes.Use(requireAuth)
	{
		placeRoutes.GET("", h.GetPlaces)
		placeRoutes.GET("/private", h.GetPrivatePlaces) // Must be before /:id
		placeRoutes.GET("/shared", h.GetSharedPlaces)
		placeRoutes.GET("/nearest", h.GetNearestPlace)
		placeRoutes.GET("/friend/:username", h.GetFriendPlaces)
		placeRoutes.GET("/:id", h.GetPlaceByID)
		placeRoutes.POST("", h.CreatePlace)
		placeRoutes.PUT("/:id", h.UpdatePlace)
		placeRoutes.DELETE("/:id", h.DeletePlace)
		placeRoutes.POST("/:id/share/:username", h.SharePlace)
	}

	// Friendship routes (protected)
	friendRoutes := apiV1.Group("/friends")
	friendRoutes.Use(requireAuth)
	{
		friendRoutes.GET("", h.GetFriends)
		friendRoutes.GET("/invitations", h.GetInvitations)
		friendRoutes.POST("/:username/invite", h.SendInvitation)
		friendRoutes.DELETE("/:username/invite", h.DeleteInvitation)
		friendRoutes.POST("/invitations/:username/accept", h.AcceptInvitation)
		friendRoutes.POST("/invitations/:username/decline", h.DeclineInvitation)
		friendRoutes.DELETE("/:username", h.DeleteFriend)
	}

	apiV1.GET("/categories", requireAuth, h.GetCategories)

	// Admin routes (protected by auth and admin check)
	adminRoutes := apiV1.Group("/admin")
	adminRoutes.Use(requireAuth, requireAdmin)
	{
		categories := adminRoutes.Group("/categories")
		{
			categories.POST("", h.CreateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}

		users := adminRoutes.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/:id", h.GetUser)
			users.PUT("/:id/roles", h.SetUserRoles)
			users.DELETE("/:id", h.DeleteUser)
		}
	}
}

// Ping is the health check endpoint.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
