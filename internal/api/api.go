package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/service"
)

// HealthCheck returns the health status of the API.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recetario API is running",
	})
}

// RegisterRoutes wires every handler onto the engine. imageService and the
// rate limiters may be nil (tests, Redis-less or S3-less deployments).
func RegisterRoutes(
	router gin.IRouter,
	catalog *service.CatalogService,
	authService *service.AuthService,
	imageService *service.ImageService,
	ratingLimiter *middleware.RateLimiter,
	commentLimiter *middleware.RateLimiter,
) {
	router.GET("/health", HealthCheck)

	NewAuthHandler(authService).RegisterRoutes(router)
	NewRecipeHandler(catalog, authService).RegisterRoutes(router)
	NewRatingHandler(catalog, authService, ratingLimiter).RegisterRoutes(router)
	NewCommentHandler(catalog, authService, commentLimiter).RegisterRoutes(router)

	if imageService != nil {
		NewImageHandler(imageService, authService).RegisterRoutes(router)
	}
}
