package router

import (
	"github.com/gin-gonic/gin"

	"github.com/recipesnap/backend/internal/api"
	"github.com/recipesnap/backend/internal/database"
	"github.com/recipesnap/backend/internal/middleware"
	"github.com/recipesnap/backend/internal/service"
)

// Handlers groups the per-surface handlers wired into the route table
type Handlers struct {
	Auth     *api.AuthHandler
	Identify *api.IdentifyHandler
	Suggest  *api.SuggestHandler
	Pantry   *api.PantryHandler
	Photo    *api.PhotoHandler
	History  *api.HistoryHandler
}

// Limiters groups the optional rate limiters for the model-calling routes
type Limiters struct {
	Identify *middleware.RateLimiter
	Suggest  *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(
	handlers Handlers,
	authService service.IAuthService,
	limiters Limiters,
	healthDB *database.DB,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(allowedOrigins))

	router.GET("/health", api.HealthCheck(healthDB))

	v1 := router.Group("/api/v1")

	handlers.Auth.RegisterRoutes(v1)

	// Identification and suggestion work with or without a session; a
	// session only adds pantry sync and history persistence.
	model := v1.Group("")
	model.Use(middleware.OptionalAuthMiddleware(authService))
	{
		identify := model.Group("")
		if limiters.Identify != nil {
			identify.Use(limiters.Identify.RateLimitMiddleware())
		}
		identify.POST("/identify", handlers.Identify.Identify)

		suggest := model.Group("")
		if limiters.Suggest != nil {
			suggest.Use(limiters.Suggest.RateLimitMiddleware())
		}
		suggest.POST("/suggest", handlers.Suggest.Suggest)
	}

	// Everything below requires a session
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/recipes", handlers.History.List)

		if handlers.Pantry != nil {
			protected.GET("/pantry", handlers.Pantry.Get)
			protected.PUT("/pantry", handlers.Pantry.Update)
			protected.DELETE("/pantry", handlers.Pantry.Clear)
			protected.DELETE("/pantry/identified/:name", handlers.Pantry.RemoveIdentified)
		}

		if handlers.Photo != nil {
			protected.POST("/photos", handlers.Photo.Upload)
		}
	}

	return router
}
