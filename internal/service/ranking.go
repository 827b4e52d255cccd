package service

import "sort"

// Match tier labels derived from matchQuality. Purely presentational; the
// only guarantee is monotonicity in the score.
const (
	TierExcellent = "Excellent"
	TierGood      = "Good"
	TierOkay      = "Okay"
)

// RankRecipes returns a new slice sorted by matchQuality descending. The
// sort is stable: recipes with equal scores keep their original relative
// order.
func RankRecipes(recipes []Recipe) []Recipe {
	ranked := make([]Recipe, len(recipes))
	copy(ranked, recipes)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchQuality > ranked[j].MatchQuality
	})
	return ranked
}

// FeaturedRecipe returns the highest-scoring recipe, or nil for an empty
// list.
func FeaturedRecipe(recipes []Recipe) *Recipe {
	if len(recipes) == 0 {
		return nil
	}
	best := recipes[0]
	for _, r := range recipes[1:] {
		if r.MatchQuality > best.MatchQuality {
			best = r
		}
	}
	return &best
}

// MatchTier maps a matchQuality score to its display tier
func MatchTier(quality float64) string {
	switch {
	case quality >= 0.8:
		return TierExcellent
	case quality >= 0.5:
		return TierGood
	default:
		return TierOkay
	}
}
