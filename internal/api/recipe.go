package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/models"
	"github.com/recetario/backend/internal/service"
)

type RecipeHandler struct {
	catalog  *service.CatalogService
	verifier middleware.TokenVerifier
}

func NewRecipeHandler(catalog *service.CatalogService, verifier middleware.TokenVerifier) *RecipeHandler {
	return &RecipeHandler{catalog: catalog, verifier: verifier}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/recipes", h.ListRecipes)

	admin := router.Group("", middleware.Auth(h.verifier), middleware.RequireAdmin())
	{
		admin.POST("/recipes", h.CreateRecipe)
		admin.PUT("/recipes/:key", h.UpdateRecipe)
		admin.DELETE("/recipes/:key", h.DeleteRecipe)
		admin.POST("/init-recipes", h.InitRecipes)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalog.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener recetas"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	created, err := h.catalog.CreateRecipe(c.Request.Context(), &recipe)
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear receta"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipe": created})
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	key := c.Param("key")
	var recipe models.Recipe
	if err := c.ShouldBindJSON(&recipe); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de solicitud inválido"})
		return
	}

	updated, err := h.catalog.UpdateRecipe(c.Request.Context(), key, &recipe)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar receta"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "recipe": updated})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	key := c.Param("key")
	if err := h.catalog.DeleteRecipe(c.Request.Context(), key); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar receta"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *RecipeHandler) InitRecipes(c *gin.Context) {
	count, seeded, err := h.catalog.SeedRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al inicializar recetas"})
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Las recetas ya están inicializadas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Recetas de ejemplo creadas", "count": count})
}
