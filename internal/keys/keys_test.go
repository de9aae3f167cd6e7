package keys

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRecipeKeyFormat(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	key := NewRecipeKey(now)

	assert.True(t, strings.HasPrefix(key, "recipe_1700000000000_"))
	parts := strings.Split(key, "_")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 9)
	assert.True(t, IsRecipeKey(key))
}

func TestNewRecipeKeyUniqueness(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := NewRecipeKey(now)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestRatingKeyDeterministic(t *testing.T) {
	recipeKey := NewRecipeKey(time.Now())

	first := RatingKey(recipeKey, "user-1")
	second := RatingKey(recipeKey, "user-1")
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, RatingKey(recipeKey, "user-2"))
	assert.True(t, strings.HasPrefix(first, RatingPrefix(recipeKey)))
}

func TestCommentKeyEmbedsRecipe(t *testing.T) {
	recipeKey := "recipe_1700000000000_abc123def"
	at := time.UnixMilli(1700000001234)

	key := CommentKey(recipeKey, "user-1", at)
	assert.Equal(t, "comment_recipe_1700000000000_abc123def_1700000001234_user-1", key)
	assert.True(t, strings.HasPrefix(key, CommentPrefix(recipeKey)))
}

func TestPrefixesDoNotOverlap(t *testing.T) {
	// A rating for recipe X must not match the prefix of recipe X_longer.
	a := "recipe_1_aaaaaaaaa"
	b := "recipe_1_aaaaaaaab"
	assert.False(t, strings.HasPrefix(RatingKey(b, "u"), RatingPrefix(a)))
}
