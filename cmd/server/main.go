package main

import (
	"context"
	"fmt"
	"log"

	"placebook/backend/internal/config"
	"placebook/backend/internal/database"
	"placebook/backend/internal/geo"
	"placebook/backend/internal/handler"
	"placebook/backend/internal/middleware"
	"placebook/backend/internal/service"
	"placebook/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "placebook/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Placebook API
// @version         1.0
// @description     Save, categorise, share and find the nearest of your places.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.AppConfig
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to the database
	database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)

	provider, err := geo.NewGoogleProvider(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Fatalf("Failed to create geocoding client: %v", err)
	}

	st := store.New(database.DB)
	friends := service.NewFriendService(st)
	h := &handler.Handler{
		Places:     service.NewPlaceService(st, geo.NewResolver(provider, cfg.GeocodeTimeout), friends),
		Proximity:  service.NewProximityService(st),
		Sharing:    service.NewSharingService(st),
		Friends:    friends,
		Categories: service.NewCategoryService(st),
		Users:      service.NewUserService(st, 0),
	}

	seed(h, cfg)

	router := gin.Default()
	router.Use(middleware.RequestID())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", handler.Ping)

	// API v1 routes
	h.RegisterRoutes(router.Group("/api/v1"))

	fmt.Printf("Server is running on %s\n", cfg.ServerAddr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", cfg.ServerAddr)
	log.Fatal(router.Run(cfg.ServerAddr))
}

// seed creates the default categories and the bootstrap admin.
func seed(h *handler.Handler, cfg *config.Config) {
	ctx := context.Background()

	added, err := h.Categories.EnsureDefaults(ctx, database.DefaultCategories)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	if added > 0 {
		log.Printf("Seeded %d default categories.", added)
	}

	if cfg.AdminPassword == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin account.")
		return
	}
	created, err := h.Users.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}
	if created {
		log.Printf("Created admin account %q.", cfg.AdminUsername)
	}
}
