package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipesnap/backend/internal/models"
)

// HistoryService persists accepted recipe suggestions per user
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService creates a new HistoryService instance
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// SaveAll appends one record per recipe, sequentially. Writes are
// independent: a failure is reported but earlier writes stay persisted and
// later recipes are still attempted. Returns the number of records saved.
func (s *HistoryService) SaveAll(ctx context.Context, userID uuid.UUID, userEmail string, recipes []Recipe) (int, error) {
	saved := 0
	var failed []string

	for _, recipe := range recipes {
		record := models.SavedRecipe{
			ID:            uuid.New(),
			Name:          recipe.Name,
			Ingredients:   models.JSONBStringArray(recipe.Ingredients),
			Instructions:  models.JSONBStringArray(recipe.Instructions),
			MatchQuality:  recipe.MatchQuality,
			Calories:      recipe.Nutrients.Calories,
			Protein:       recipe.Nutrients.Protein,
			Fat:           recipe.Nutrients.Fat,
			Carbohydrates: recipe.Nutrients.Carbohydrates,
			UserID:        userID,
			UserEmail:     userEmail,
			Embedding:     RecipeEmbedding(recipe),
		}

		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			failed = append(failed, recipe.Name)
			continue
		}
		saved++
	}

	if len(failed) > 0 {
		return saved, fmt.Errorf("%w: could not save %s", ErrPersistence, strings.Join(failed, ", "))
	}
	return saved, nil
}

// List returns the user's saved recipes, newest first
func (s *HistoryService) List(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return recipes, nil
}

// Search returns the user's saved recipes matching a free-text query. On
// PostgreSQL results are ordered by embedding distance; elsewhere a LIKE
// match on name and ingredients is used.
func (s *HistoryService) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error) {
	if query == "" {
		return s.List(ctx, userID)
	}

	var recipes []models.SavedRecipe
	dbQuery := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if s.db.Dialector.Name() == "postgres" {
		vec := GenerateEmbedding(query)
		dbQuery = dbQuery.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		})
	} else {
		like := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.
			Where("LOWER(name) LIKE ? OR LOWER(ingredients) LIKE ?", like, like).
			Order("created_at DESC")
	}

	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return recipes, nil
}
