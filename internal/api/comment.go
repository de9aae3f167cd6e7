package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/service"
)

type CommentHandler struct {
	catalog  *service.CatalogService
	verifier middleware.TokenVerifier
	limiter  *middleware.RateLimiter
}

func NewCommentHandler(catalog *service.CatalogService, verifier middleware.TokenVerifier, limiter *middleware.RateLimiter) *CommentHandler {
	return &CommentHandler{catalog: catalog, verifier: verifier, limiter: limiter}
}

func (h *CommentHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/recipes/:key/comments", h.ListComments)
	router.POST("/recipes/:key/comments", middleware.Auth(h.verifier), h.limiter.Middleware(), h.AddComment)
	router.DELETE("/admin/comments/:key", middleware.Auth(h.verifier), middleware.RequireAdmin(), h.DeleteComment)
}

type AddCommentRequest struct {
	Comment string `json:"comment"`
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.catalog.ListComments(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener comentarios"})
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	userName := c.GetString(middleware.ContextUserName)

	comment, err := h.catalog.AddComment(c.Request.Context(), c.Param("key"), userID, userName, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar comentario"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.catalog.DeleteComment(c.Request.Context(), c.Param("key")); err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar comentario"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
