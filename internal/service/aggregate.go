package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/recetario/backend/internal/keys"
	"github.com/recetario/backend/internal/models"
)

// aggregatesFor recomputes a recipe's derived summary from a fresh snapshot:
// two prefix scans, one over its ratings and one over its comments. There is
// no maintained counter and no incremental mean; recomputing from the full
// scan is what keeps the average drift-free after an upsert. O(N) per recipe,
// acceptable at catalog scale.
func (s *CatalogService) aggregatesFor(ctx context.Context, recipeKey string) (models.RecipeAggregates, error) {
	var agg models.RecipeAggregates

	ratings, err := s.kv.GetByPrefix(ctx, keys.RatingPrefix(recipeKey))
	if err != nil {
		return agg, fmt.Errorf("scan ratings for %s: %w", recipeKey, err)
	}
	sum := 0
	for _, entry := range ratings {
		var rating models.Rating
		if err := json.Unmarshal(entry.Value, &rating); err != nil {
			log.Printf("[CatalogService] skipping undecodable rating %s: %v", entry.Key, err)
			continue
		}
		sum += rating.Rating
		agg.TotalRatings++
	}
	if agg.TotalRatings > 0 {
		agg.AverageRating = round1(float64(sum) / float64(agg.TotalRatings))
	}

	comments, err := s.kv.GetByPrefix(ctx, keys.CommentPrefix(recipeKey))
	if err != nil {
		return agg, fmt.Errorf("scan comments for %s: %w", recipeKey, err)
	}
	agg.TotalComments = len(comments)

	return agg, nil
}

// round1 rounds to one decimal place, matching the wire contract.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
