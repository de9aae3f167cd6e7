package models

import "time"

// Comment is an append-only note on a recipe. Comments are immutable once
// written; only an admin may delete one.
type Comment struct {
	Key       string    `json:"key"`
	RecipeKey string    `json:"recipeKey"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
