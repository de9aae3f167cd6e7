package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDropsBlankEntries(t *testing.T) {
	r := Recipe{
		Ingredients: []Ingredient{
			{Name: "  Harina ", Quantity: 500, Unit: "gramos"},
			{Name: "   ", Quantity: 1, Unit: "pizca"},
			{Name: "", Quantity: 2, Unit: "tazas"},
		},
		Instructions: []string{" Mezclar todo ", "", "  ", "Hornear"},
	}

	r.Normalize()

	assert.Equal(t, []Ingredient{{Name: "Harina", Quantity: 500, Unit: "gramos"}}, r.Ingredients)
	assert.Equal(t, []string{"Mezclar todo", "Hornear"}, r.Instructions)
}

func TestValidateAcceptsEveryEnumValue(t *testing.T) {
	for _, category := range Categories {
		for _, difficulty := range Difficulties {
			r := Recipe{
				Title:        "Receta",
				Description:  "Descripción",
				Category:     category,
				Difficulty:   difficulty,
				Image:        "https://example.com/img.jpg",
				Ingredients:  []Ingredient{{Name: "Algo", Quantity: 1, Unit: Units[0]}},
				Instructions: []string{"Paso único"},
				Servings:     1,
			}
			assert.NoError(t, r.Validate(), "%s/%s", category, difficulty)
		}
	}
}

func TestValidateZeroQuantityAllowed(t *testing.T) {
	r := Recipe{
		Title:        "Receta",
		Description:  "Descripción",
		Category:     "Sopas",
		Difficulty:   "Media",
		Image:        "https://example.com/img.jpg",
		Ingredients:  []Ingredient{{Name: "Sal al gusto", Quantity: 0, Unit: "pizca"}},
		Instructions: []string{"Salar al gusto"},
		Servings:     2,
	}
	assert.NoError(t, r.Validate())
}
