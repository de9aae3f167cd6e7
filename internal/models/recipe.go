package models

import (
	"errors"
	"strings"
	"time"
)

// Enumerations shared with the frontend forms. The API rejects values outside
// these sets so the catalog never stores free-form categories.
var (
	Categories   = []string{"Pasta", "Ensaladas", "Postres", "Carnes", "Guisos", "Sopas"}
	Difficulties = []string{"Fácil", "Media", "Difícil"}
	Units        = []string{"gramos", "kg", "litros", "ml", "tazas", "cucharadas", "cucharaditas", "unidades", "pizca"}
)

var (
	ErrMissingFields     = errors.New("todos los campos requeridos deben estar completos")
	ErrInvalidCategory   = errors.New("categoría inválida")
	ErrInvalidDifficulty = errors.New("dificultad inválida")
	ErrInvalidUnit       = errors.New("unidad de medida inválida")
	ErrInvalidServings   = errors.New("las porciones deben ser al menos 1")
	ErrInvalidQuantity   = errors.New("la cantidad no puede ser negativa")
	ErrNoIngredients     = errors.New("se requiere al menos un ingrediente")
	ErrNoInstructions    = errors.New("se requiere al menos un paso de preparación")
)

// Ingredient is one entry of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is the catalog's primary entity. It is stored as a JSON value in the
// KV store under its own Key; the JSON field names are the wire format the
// frontend consumes, so they stay camelCase.
type Recipe struct {
	Key          string       `json:"key"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Difficulty   string       `json:"difficulty"`
	Image        string       `json:"image"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	PrepTime     string       `json:"prepTime"`
	CookTime     string       `json:"cookTime"`
	Servings     int          `json:"servings"`
	Chef         string       `json:"chef,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    *time.Time   `json:"updatedAt,omitempty"`
}

// RecipeAggregates are derived on every read by scanning the related rating
// and comment keys. They are never persisted.
type RecipeAggregates struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
	TotalComments int     `json:"totalComments"`
}

// RecipeWithAggregates is the list/read representation of a recipe.
type RecipeWithAggregates struct {
	Recipe
	RecipeAggregates
}

// Normalize drops blank ingredient and instruction entries so the non-empty
// invariant is checked against meaningful content only.
func (r *Recipe) Normalize() {
	ingredients := r.Ingredients[:0]
	for _, ing := range r.Ingredients {
		ing.Name = strings.TrimSpace(ing.Name)
		if ing.Name == "" {
			continue
		}
		ingredients = append(ingredients, ing)
	}
	r.Ingredients = ingredients

	instructions := r.Instructions[:0]
	for _, step := range r.Instructions {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		instructions = append(instructions, step)
	}
	r.Instructions = instructions
}

// Validate enforces the catalog invariants. Callers normalize first.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		strings.TrimSpace(r.Category) == "" ||
		strings.TrimSpace(r.Difficulty) == "" ||
		strings.TrimSpace(r.Image) == "" {
		return ErrMissingFields
	}
	if !contains(Categories, r.Category) {
		return ErrInvalidCategory
	}
	if !contains(Difficulties, r.Difficulty) {
		return ErrInvalidDifficulty
	}
	if len(r.Ingredients) == 0 {
		return ErrNoIngredients
	}
	if len(r.Instructions) == 0 {
		return ErrNoInstructions
	}
	for _, ing := range r.Ingredients {
		if ing.Quantity < 0 {
			return ErrInvalidQuantity
		}
		if !contains(Units, ing.Unit) {
			return ErrInvalidUnit
		}
	}
	if r.Servings < 1 {
		return ErrInvalidServings
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
