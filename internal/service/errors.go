package service

import (
	"errors"

	"github.com/recetario/backend/internal/models"
)

// Catalog error taxonomy. Handlers map these to HTTP statuses at the API
// boundary; nothing below the handlers writes a response.
var (
	ErrRecipeNotFound  = errors.New("receta no encontrada")
	ErrCommentNotFound = errors.New("comentario no encontrado")
	ErrInvalidRating   = errors.New("la calificación debe ser entre 1 y 5")
	ErrEmptyComment    = errors.New("el comentario no puede estar vacío")
)

// IsValidation reports whether err describes malformed or missing input,
// i.e. a 400 rather than a 500.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrInvalidRating,
		ErrEmptyComment,
		models.ErrMissingFields,
		models.ErrInvalidCategory,
		models.ErrInvalidDifficulty,
		models.ErrInvalidUnit,
		models.ErrInvalidServings,
		models.ErrInvalidQuantity,
		models.ErrNoIngredients,
		models.ErrNoInstructions,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
