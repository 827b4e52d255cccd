package testhelpers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/recipesnap/backend/internal/models"
	"github.com/recipesnap/backend/internal/service"
	"github.com/recipesnap/backend/internal/types"
)

// MockLLMService is a mock implementation of the LLMServiceInterface
type MockLLMService struct {
	mock.Mock
}

func (m *MockLLMService) IdentifyIngredients(ctx context.Context, photoDataURI string) ([]string, error) {
	args := m.Called(ctx, photoDataURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLLMService) SuggestRecipes(ctx context.Context, req service.SuggestRequest) ([]service.Recipe, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Recipe), args.Error(1)
}

// MockAuthService is a mock implementation of the IAuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(email, password string) (string, error) {
	args := m.Called(email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockHistoryService is a mock implementation of the IHistoryService interface
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) SaveAll(ctx context.Context, userID uuid.UUID, userEmail string, recipes []service.Recipe) (int, error) {
	args := m.Called(ctx, userID, userEmail, recipes)
	return args.Int(0), args.Error(1)
}

func (m *MockHistoryService) List(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedRecipe), args.Error(1)
}

func (m *MockHistoryService) Search(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SavedRecipe), args.Error(1)
}

// MockPantryService is a mock implementation of the IPantryService interface
type MockPantryService struct {
	mock.Mock
}

func (m *MockPantryService) Get(ctx context.Context, userID uuid.UUID) (*service.PantryDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PantryDraft), args.Error(1)
}

func (m *MockPantryService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*service.PantryDraft, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PantryDraft), args.Error(1)
}

func (m *MockPantryService) Save(ctx context.Context, draft *service.PantryDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockPantryService) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPantryService) BeginIdentification(ctx context.Context, userID uuid.UUID, photoURL string) (int64, error) {
	args := m.Called(ctx, userID, photoURL)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPantryService) CompleteIdentification(ctx context.Context, userID uuid.UUID, gen int64, ingredients []string) (bool, error) {
	args := m.Called(ctx, userID, gen, ingredients)
	return args.Bool(0), args.Error(1)
}
