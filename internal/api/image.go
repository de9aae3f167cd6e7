package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recetario/backend/internal/middleware"
	"github.com/recetario/backend/internal/service"
)

// 5 MB is plenty for a recipe photo.
const maxImageSize = 5 << 20

type ImageHandler struct {
	images   *service.ImageService
	verifier middleware.TokenVerifier
}

func NewImageHandler(images *service.ImageService, verifier middleware.TokenVerifier) *ImageHandler {
	return &ImageHandler{images: images, verifier: verifier}
}

func (h *ImageHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/admin/images", middleware.Auth(h.verifier), middleware.RequireAdmin(), h.UploadImage)
}

// UploadImage accepts a multipart "image" file, stores it and returns the
// public URL to reference from a recipe's image field.
func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere un archivo de imagen"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "La imagen es demasiado grande"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al leer la imagen"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al leer la imagen"})
		return
	}

	url, err := h.images.UploadRecipeImage(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImageType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al subir la imagen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "url": url})
}
