package models

import "time"

// Rating is one user's score for one recipe. Its KV key is deterministic
// (rating_<recipeKey>_<userID>), so resubmitting overwrites in place and the
// (recipe, user) pair can never hold more than one rating.
type Rating struct {
	RecipeKey string    `json:"recipeKey"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}
