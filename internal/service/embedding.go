package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// GenerateEmbedding returns a simple deterministic embedding for the given
// text: total length, vowel count and consonant count. It only needs to
// give a stable distance ordering for history search.
func GenerateEmbedding(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		if strings.ContainsRune("aeiou", r) {
			vowels++
		} else if r >= 'a' && r <= 'z' {
			consonants++
		}
	}
	return pgvector.NewVector([]float32{float32(len(text)), vowels, consonants})
}

// RecipeEmbedding embeds a recipe by its name and ingredient list
func RecipeEmbedding(r Recipe) pgvector.Vector {
	return GenerateEmbedding(r.Name + " " + strings.Join(r.Ingredients, " "))
}
