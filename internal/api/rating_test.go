package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recetario/backend/internal/models"
)

func TestSubmitRatingRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	created := env.createTestRecipe(t)

	rec := env.do(t, http.MethodPost, "/recipes/"+created.Key+"/rating", "", map[string]any{"rating": 4})
	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestSubmitRatingRejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	created := env.createTestRecipe(t)
	token := env.userToken(t)

	for _, value := range []int{0, 6} {
		rec := env.do(t, http.MethodPost, "/recipes/"+created.Key+"/rating", token, map[string]any{"rating": value})
		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "la calificación debe ser entre 1 y 5", decodeBody(t, rec)["error"])
	}
}

func TestSubmitRatingUpsertsAndAggregates(t *testing.T) {
	env := newTestEnv(t)
	created := env.createTestRecipe(t)
	token := env.userToken(t)

	rec := env.do(t, http.MethodPost, "/recipes/"+created.Key+"/rating", token, map[string]any{"rating": 3})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodPost, "/recipes/"+created.Key+"/rating", token, map[string]any{"rating": 5})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, "/recipes", "", nil)
	requireStatus(t, rec, http.StatusOK)

	var recipes []models.RecipeWithAggregates
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, 5.0, recipes[0].AverageRating)
	assert.Equal(t, 1, recipes[0].TotalRatings)
}

func TestSubmitRatingMissingRecipe(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/recipes/recipe_123_missing/rating", env.userToken(t), map[string]any{"rating": 4})
	requireStatus(t, rec, http.StatusNotFound)
}

func TestMyRatingAnonymousIsNull(t *testing.T) {
	env := newTestEnv(t)
	created := env.createTestRecipe(t)

	rec := env.do(t, http.MethodGet, "/recipes/"+created.Key+"/my-rating", "", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Nil(t, decodeBody(t, rec)["rating"])
}

func TestMyRatingInvalidTokenIsNull(t *testing.T) {
	env := newTestEnv(t)
	created := env.createTestRecipe(t)

	rec := env.do(t, http.MethodGet, "/recipes/"+created.Key+"/my-rating", "garbage-token", nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Nil(t, decodeBody(t, rec)["rating"])
}

func TestMyRatingAfterSubmission(t *testing.T) {
	env := newTestEnv(t)
	created := env.createTestRecipe(t)
	token := env.userToken(t)

	rec := env.do(t, http.MethodGet, "/recipes/"+created.Key+"/my-rating", token, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Nil(t, decodeBody(t, rec)["rating"])

	rec = env.do(t, http.MethodPost, "/recipes/"+created.Key+"/rating", token, map[string]any{"rating": 4})
	requireStatus(t, rec, http.StatusOK)

	rec = env.do(t, http.MethodGet, "/recipes/"+created.Key+"/my-rating", token, nil)
	requireStatus(t, rec, http.StatusOK)
	assert.Equal(t, float64(4), decodeBody(t, rec)["rating"])
}
