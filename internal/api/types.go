package api

import "github.com/recipesnap/backend/internal/service"

// RankedRecipe is a suggested recipe decorated with its display tier
type RankedRecipe struct {
	service.Recipe
	Tier string `json:"tier"`
}

func rankForDisplay(recipes []service.Recipe) []RankedRecipe {
	ranked := service.RankRecipes(recipes)
	out := make([]RankedRecipe, len(ranked))
	for i, r := range ranked {
		out[i] = RankedRecipe{Recipe: r, Tier: service.MatchTier(r.MatchQuality)}
	}
	return out
}
