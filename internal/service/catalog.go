package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/recetario/backend/internal/keys"
	"github.com/recetario/backend/internal/kvstore"
	"github.com/recetario/backend/internal/models"
)

// CatalogService owns the encoding of recipes, ratings and comments into the
// flat KV namespace. The store sees opaque JSON values; all entity semantics
// live here.
type CatalogService struct {
	kv  kvstore.Store
	now func() time.Time
}

func NewCatalogService(kv kvstore.Store) *CatalogService {
	return &CatalogService{kv: kv, now: time.Now}
}

// ListRecipes returns every recipe enriched with its read-time aggregates.
// Order is unspecified; clients sort on their side.
func (s *CatalogService) ListRecipes(ctx context.Context) ([]models.RecipeWithAggregates, error) {
	entries, err := s.kv.GetByPrefix(ctx, keys.RecipePrefix)
	if err != nil {
		return nil, fmt.Errorf("scan recipes: %w", err)
	}

	recipes := make([]models.RecipeWithAggregates, 0, len(entries))
	for _, entry := range entries {
		var recipe models.Recipe
		if err := json.Unmarshal(entry.Value, &recipe); err != nil {
			log.Printf("[CatalogService] skipping undecodable recipe %s: %v", entry.Key, err)
			continue
		}
		agg, err := s.aggregatesFor(ctx, recipe.Key)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, models.RecipeWithAggregates{Recipe: recipe, RecipeAggregates: agg})
	}
	return recipes, nil
}

// GetRecipe loads one recipe by key.
func (s *CatalogService) GetRecipe(ctx context.Context, key string) (*models.Recipe, error) {
	val, err := s.kv.Get(ctx, key)
	if err == kvstore.ErrNotFound {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe %s: %w", key, err)
	}
	var recipe models.Recipe
	if err := json.Unmarshal(val, &recipe); err != nil {
		return nil, fmt.Errorf("decode recipe %s: %w", key, err)
	}
	return &recipe, nil
}

// CreateRecipe validates the recipe, assigns a fresh key and persists it.
func (s *CatalogService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.Normalize()
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	recipe.Key = keys.NewRecipeKey(s.now())
	recipe.CreatedAt = s.now().UTC()
	recipe.UpdatedAt = nil

	if err := s.putJSON(ctx, recipe.Key, recipe); err != nil {
		return nil, err
	}
	log.Printf("[CatalogService] created recipe %s (%s)", recipe.Key, recipe.Title)
	return recipe, nil
}

// UpdateRecipe overwrites an existing recipe in place, keeping its key and
// creation timestamp and refreshing updatedAt.
func (s *CatalogService) UpdateRecipe(ctx context.Context, key string, recipe *models.Recipe) (*models.Recipe, error) {
	existing, err := s.GetRecipe(ctx, key)
	if err != nil {
		return nil, err
	}

	recipe.Normalize()
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	recipe.Key = existing.Key
	recipe.CreatedAt = existing.CreatedAt
	updatedAt := s.now().UTC()
	recipe.UpdatedAt = &updatedAt

	if err := s.putJSON(ctx, key, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes the recipe record. Related ratings and comments are
// deliberately left behind: the list path only scans the recipe_ prefix, so
// orphans never surface, and the store gives no multi-key atomicity for a
// cascade.
func (s *CatalogService) DeleteRecipe(ctx context.Context, key string) error {
	if _, err := s.GetRecipe(ctx, key); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete recipe %s: %w", key, err)
	}
	log.Printf("[CatalogService] deleted recipe %s", key)
	return nil
}

// SubmitRating upserts the caller's rating for a recipe. The deterministic
// key makes a second submission replace the first; the mean is always
// recomputed from a full scan on the next read, never incrementally.
func (s *CatalogService) SubmitRating(ctx context.Context, recipeKey, userID, userName string, value int) (*models.Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.GetRecipe(ctx, recipeKey); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		RecipeKey: recipeKey,
		UserID:    userID,
		UserName:  userName,
		Rating:    value,
		CreatedAt: s.now().UTC(),
	}
	if err := s.putJSON(ctx, keys.RatingKey(recipeKey, userID), rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// GetUserRating returns the caller's rating for a recipe, or nil when the
// user has not rated it.
func (s *CatalogService) GetUserRating(ctx context.Context, recipeKey, userID string) (*models.Rating, error) {
	val, err := s.kv.Get(ctx, keys.RatingKey(recipeKey, userID))
	if err == kvstore.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}
	var rating models.Rating
	if err := json.Unmarshal(val, &rating); err != nil {
		return nil, fmt.Errorf("decode rating: %w", err)
	}
	return &rating, nil
}

// AddComment appends an immutable comment to a recipe.
func (s *CatalogService) AddComment(ctx context.Context, recipeKey, userID, userName, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyComment
	}
	if _, err := s.GetRecipe(ctx, recipeKey); err != nil {
		return nil, err
	}

	now := s.now()
	comment := &models.Comment{
		Key:       keys.CommentKey(recipeKey, userID, now),
		RecipeKey: recipeKey,
		UserID:    userID,
		UserName:  userName,
		Comment:   text,
		CreatedAt: now.UTC(),
	}
	if err := s.putJSON(ctx, comment.Key, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns a recipe's comments, newest first.
func (s *CatalogService) ListComments(ctx context.Context, recipeKey string) ([]models.Comment, error) {
	entries, err := s.kv.GetByPrefix(ctx, keys.CommentPrefix(recipeKey))
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}

	comments := make([]models.Comment, 0, len(entries))
	for _, entry := range entries {
		var comment models.Comment
		if err := json.Unmarshal(entry.Value, &comment); err != nil {
			log.Printf("[CatalogService] skipping undecodable comment %s: %v", entry.Key, err)
			continue
		}
		comments = append(comments, comment)
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].Key > comments[j].Key
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// DeleteComment removes one comment by its full key. Admin only; the gate is
// enforced at the route.
func (s *CatalogService) DeleteComment(ctx context.Context, commentKey string) error {
	if _, err := s.kv.Get(ctx, commentKey); err != nil {
		if err == kvstore.ErrNotFound {
			return ErrCommentNotFound
		}
		return fmt.Errorf("get comment %s: %w", commentKey, err)
	}
	if err := s.kv.Delete(ctx, commentKey); err != nil {
		return fmt.Errorf("delete comment %s: %w", commentKey, err)
	}
	return nil
}

// SeedRecipes inserts the example dataset once. When recipes already exist it
// is a no-op and reports seeded=false.
func (s *CatalogService) SeedRecipes(ctx context.Context) (int, bool, error) {
	existing, err := s.kv.GetByPrefix(ctx, keys.RecipePrefix)
	if err != nil {
		return 0, false, fmt.Errorf("scan recipes: %w", err)
	}
	if len(existing) > 0 {
		return 0, false, nil
	}

	samples := sampleRecipes()
	for i := range samples {
		if _, err := s.CreateRecipe(ctx, &samples[i]); err != nil {
			return i, true, fmt.Errorf("seed recipe %q: %w", samples[i].Title, err)
		}
	}
	log.Printf("[CatalogService] seeded %d example recipes", len(samples))
	return len(samples), true, nil
}

func (s *CatalogService) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
