// Package keys is the single source of truth for how catalog entities map
// into the flat key-value namespace. Keys are the only index the store has:
// the entity kind is the leading segment and relationships are encoded by
// embedding the parent recipe key, so related records are retrieved with a
// prefix scan and never by decoding values.
package keys

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// RecipePrefix selects every recipe in the store.
const RecipePrefix = "recipe_"

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRecipeKey builds recipe_<epochMillis>_<rand36(9)>. Uniqueness is
// best-effort: a millisecond collision plus a 9-char base36 collision would
// silently overwrite an existing recipe. Accepted residual risk for a small
// catalog; a hard guarantee would need a store-side conditional write.
func NewRecipeKey(now time.Time) string {
	return fmt.Sprintf("%s%d_%s", RecipePrefix, now.UnixMilli(), randSuffix(9))
}

// RatingKey is deterministic per (recipe, user): writing it again replaces
// the previous rating instead of appending a new one.
func RatingKey(recipeKey, userID string) string {
	return fmt.Sprintf("rating_%s_%s", recipeKey, userID)
}

// RatingPrefix selects every rating belonging to one recipe.
func RatingPrefix(recipeKey string) string {
	return fmt.Sprintf("rating_%s_", recipeKey)
}

// CommentKey is unique per (recipe, instant, user); comments are append-only
// events so two writes to the same key do not occur in practice.
func CommentKey(recipeKey, userID string, at time.Time) string {
	return fmt.Sprintf("comment_%s_%d_%s", recipeKey, at.UnixMilli(), userID)
}

// CommentPrefix selects every comment belonging to one recipe.
func CommentPrefix(recipeKey string) string {
	return fmt.Sprintf("comment_%s_", recipeKey)
}

// IsRecipeKey reports whether key names a recipe record.
func IsRecipeKey(key string) bool {
	return strings.HasPrefix(key, RecipePrefix)
}

func randSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}
