package service

import (
	"encoding/json"
	"fmt"
)

// NutrientInfo carries per-serving nutrient estimates as display strings,
// e.g. "350 kcal" or "20g". They are presentational values straight from
// the model.
type NutrientInfo struct {
	Calories      string `json:"calories"`
	Protein       string `json:"protein"`
	Fat           string `json:"fat"`
	Carbohydrates string `json:"carbohydrates"`
}

// Recipe is one suggested recipe as returned by the model. Immutable once
// validated; ownership metadata is attached only when it is persisted.
type Recipe struct {
	Name         string       `json:"name"`
	Ingredients  []string     `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	MatchQuality float64      `json:"matchQuality"`
	Nutrients    NutrientInfo `json:"nutrients"`
}

// SuggestRequest is the input contract for the suggestion adapter.
// Constructed fresh per call and never persisted.
type SuggestRequest struct {
	Ingredients            []string `json:"ingredients"`
	ExcludedIngredients    []string `json:"excludedIngredients,omitempty"`
	AdditionalInstructions string   `json:"additionalInstructions,omitempty"`
}

// identifyOutput is the declared shape of an identification response.
type identifyOutput struct {
	Ingredients *[]string `json:"ingredients"`
}

// suggestOutput is the declared shape of a suggestion response. Pointer
// fields distinguish a missing field from a legitimately empty one.
type suggestOutput struct {
	Recipes *[]recipeOutput `json:"recipes"`
}

type recipeOutput struct {
	Name         *string       `json:"name"`
	Ingredients  *[]string     `json:"ingredients"`
	Instructions *[]string     `json:"instructions"`
	MatchQuality *float64      `json:"matchQuality"`
	Nutrients    *NutrientInfo `json:"nutrients"`
}

// ParseIdentifyResponse validates a raw identification reply against the
// contract. Any shape mismatch fails the whole call with ErrValidation; an
// empty ingredient list is a valid "nothing recognized" outcome.
func ParseIdentifyResponse(raw []byte) ([]string, error) {
	var out identifyOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if out.Ingredients == nil {
		return nil, fmt.Errorf("%w: missing ingredients field", ErrValidation)
	}
	return *out.Ingredients, nil
}

// ParseSuggestResponse validates a raw suggestion reply against the
// contract. A single malformed recipe fails the whole call; no partial
// recipe list is ever returned.
func ParseSuggestResponse(raw []byte) ([]Recipe, error) {
	var out suggestOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if out.Recipes == nil {
		return nil, fmt.Errorf("%w: missing recipes field", ErrValidation)
	}

	recipes := make([]Recipe, 0, len(*out.Recipes))
	for i, r := range *out.Recipes {
		if r.Name == nil || *r.Name == "" {
			return nil, fmt.Errorf("%w: recipe %d has no name", ErrValidation, i)
		}
		if r.Ingredients == nil {
			return nil, fmt.Errorf("%w: recipe %d has no ingredients", ErrValidation, i)
		}
		if r.Instructions == nil {
			return nil, fmt.Errorf("%w: recipe %d has no instructions", ErrValidation, i)
		}
		if r.MatchQuality == nil {
			return nil, fmt.Errorf("%w: recipe %d has no matchQuality", ErrValidation, i)
		}
		if *r.MatchQuality < 0 || *r.MatchQuality > 1 {
			return nil, fmt.Errorf("%w: recipe %d matchQuality %v outside [0,1]", ErrValidation, i, *r.MatchQuality)
		}
		if r.Nutrients == nil {
			return nil, fmt.Errorf("%w: recipe %d has no nutrients", ErrValidation, i)
		}

		recipes = append(recipes, Recipe{
			Name:         *r.Name,
			Ingredients:  *r.Ingredients,
			Instructions: *r.Instructions,
			MatchQuality: *r.MatchQuality,
			Nutrients:    *r.Nutrients,
		})
	}

	return recipes, nil
}
