package service_test

import (
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"

	"github.com/recipesnap/backend/internal/service"
)

func TestGenerateEmbedding(t *testing.T) {
	// "tomato": 6 chars, 3 vowels, 3 consonants
	assert.Equal(t, pgvector.NewVector([]float32{6, 3, 3}), service.GenerateEmbedding("tomato"))
	// Case-insensitive
	assert.Equal(t, service.GenerateEmbedding("tomato"), service.GenerateEmbedding("TOMATO"))
	assert.Equal(t, pgvector.NewVector([]float32{0, 0, 0}), service.GenerateEmbedding(""))
}

func TestRecipeEmbeddingDeterministic(t *testing.T) {
	r := service.Recipe{Name: "Soup", Ingredients: []string{"tomato", "onion"}}
	assert.Equal(t, service.RecipeEmbedding(r), service.RecipeEmbedding(r))
}
