package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recipesnap/backend/internal/service"
)

func TestParseIdentifyResponse(t *testing.T) {
	ingredients, err := service.ParseIdentifyResponse([]byte(`{"ingredients": ["tomato", "onion"]}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"tomato", "onion"}, ingredients)
}

func TestParseIdentifyResponseEmptyListIsValid(t *testing.T) {
	ingredients, err := service.ParseIdentifyResponse([]byte(`{"ingredients": []}`))
	assert.NoError(t, err)
	assert.Empty(t, ingredients)
}

func TestParseIdentifyResponseMissingField(t *testing.T) {
	_, err := service.ParseIdentifyResponse([]byte(`{"items": ["tomato"]}`))
	assert.True(t, errors.Is(err, service.ErrValidation))
}

func TestParseIdentifyResponseMalformedJSON(t *testing.T) {
	_, err := service.ParseIdentifyResponse([]byte(`not json`))
	assert.True(t, errors.Is(err, service.ErrValidation))
}

const validSuggestJSON = `{
	"recipes": [
		{
			"name": "Tomato Soup",
			"ingredients": ["4 tomatoes", "1 onion"],
			"instructions": ["Chop everything", "Simmer 20 minutes"],
			"matchQuality": 0.85,
			"nutrients": {
				"calories": "180 kcal",
				"protein": "4g",
				"fat": "7g",
				"carbohydrates": "25g"
			}
		}
	]
}`

func TestParseSuggestResponse(t *testing.T) {
	recipes, err := service.ParseSuggestResponse([]byte(validSuggestJSON))
	assert.NoError(t, err)
	assert.Len(t, recipes, 1)
	assert.Equal(t, "Tomato Soup", recipes[0].Name)
	assert.Equal(t, 0.85, recipes[0].MatchQuality)
	assert.Equal(t, "180 kcal", recipes[0].Nutrients.Calories)
}

func TestParseSuggestResponseEmptyListIsValid(t *testing.T) {
	recipes, err := service.ParseSuggestResponse([]byte(`{"recipes": []}`))
	assert.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestParseSuggestResponseOneBadRecipeFailsAll(t *testing.T) {
	// Second recipe is missing matchQuality; nothing comes back
	raw := `{
		"recipes": [
			{
				"name": "Good",
				"ingredients": ["a"],
				"instructions": ["b"],
				"matchQuality": 0.5,
				"nutrients": {"calories": "1", "protein": "1", "fat": "1", "carbohydrates": "1"}
			},
			{
				"name": "Bad",
				"ingredients": ["a"],
				"instructions": ["b"],
				"nutrients": {"calories": "1", "protein": "1", "fat": "1", "carbohydrates": "1"}
			}
		]
	}`
	recipes, err := service.ParseSuggestResponse([]byte(raw))
	assert.True(t, errors.Is(err, service.ErrValidation))
	assert.Nil(t, recipes)
}

func TestParseSuggestResponseMatchQualityRange(t *testing.T) {
	for _, quality := range []string{"-0.1", "1.5"} {
		raw := `{
			"recipes": [
				{
					"name": "Out of range",
					"ingredients": ["a"],
					"instructions": ["b"],
					"matchQuality": ` + quality + `,
					"nutrients": {"calories": "1", "protein": "1", "fat": "1", "carbohydrates": "1"}
				}
			]
		}`
		_, err := service.ParseSuggestResponse([]byte(raw))
		assert.True(t, errors.Is(err, service.ErrValidation), "quality %s should fail", quality)
	}
}

func TestParseSuggestResponseMissingRecipesField(t *testing.T) {
	_, err := service.ParseSuggestResponse([]byte(`{}`))
	assert.True(t, errors.Is(err, service.ErrValidation))
}

func TestParseSuggestResponseMissingNutrients(t *testing.T) {
	raw := `{
		"recipes": [
			{
				"name": "No nutrients",
				"ingredients": ["a"],
				"instructions": ["b"],
				"matchQuality": 0.5
			}
		]
	}`
	_, err := service.ParseSuggestResponse([]byte(raw))
	assert.True(t, errors.Is(err, service.ErrValidation))
}
