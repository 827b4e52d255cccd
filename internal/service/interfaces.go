package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/recipesnap/backend/internal/models"
	"github.com/recipesnap/backend/internal/types"
)

// LLMServiceInterface defines the two model calls the handlers depend on
type LLMServiceInterface interface {
	IdentifyIngredients(ctx context.Context, photoDataURI string) ([]string, error)
	SuggestRecipes(ctx context.Context, req SuggestRequest) ([]Recipe, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(email, password string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IHistoryService defines the interface for recipe history operations
type IHistoryService interface {
	SaveAll(ctx context.Context, userID uuid.UUID, userEmail string, recipes []Recipe) (int, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error)
	Search(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error)
}

// IPantryService defines the interface for pantry draft operations
type IPantryService interface {
	Get(ctx context.Context, userID uuid.UUID) (*PantryDraft, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*PantryDraft, error)
	Save(ctx context.Context, draft *PantryDraft) error
	Delete(ctx context.Context, userID uuid.UUID) error
	BeginIdentification(ctx context.Context, userID uuid.UUID, photoURL string) (int64, error)
	CompleteIdentification(ctx context.Context, userID uuid.UUID, gen int64, ingredients []string) (bool, error)
}

// IPhotoService defines the interface for photo storage operations
type IPhotoService interface {
	UploadPhoto(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error)
}
