package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/service"
)

type RatingHandler struct {
	catalog  *service.CatalogService
	verifier middleware.TokenVerifier
	limiter  *middleware.RateLimiter
}

func NewRatingHandler(catalog *service.CatalogService, verifier middleware.TokenVerifier, limiter *middleware.RateLimiter) *RatingHandler {
	return &RatingHandler{catalog: catalog, verifier: verifier, limiter: limiter}
}

func (h *RatingHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/recipes/:key/rating", middleware.Auth(h.verifier), h.limiter.Middleware(), h.SubmitRating)
	router.GET("/recipes/:key/my-rating", middleware.OptionalAuth(h.verifier), h.MyRating)
}

type SubmitRatingRequest struct {
	Rating int `json:"rating"`
}

func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	userName := c.GetString(middleware.ContextUserName)

	rating, err := h.catalog.SubmitRating(c.Request.Context(), c.Param("key"), userID, userName, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calificar receta"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rating": rating})
}

// MyRating is deliberately lenient: anonymous callers and lookup failures
// both yield a null rating rather than an error.
func (h *RatingHandler) MyRating(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusOK, gin.H{"rating": nil})
		return
	}

	rating, err := h.catalog.GetUserRating(c.Request.Context(), c.Param("key"), userID)
	if err != nil || rating == nil {
		c.JSON(http.StatusOK, gin.H{"rating": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rating": rating.Rating})
}
