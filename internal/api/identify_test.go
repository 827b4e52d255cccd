package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/recipesnap/backend/internal/api"
	"github.com/recipesnap/backend/internal/service"
	"github.com/recipesnap/backend/internal/testhelpers"
)

// withSession fakes an authenticated request context
func withSession(userID uuid.UUID, email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_email", email)
		c.Next()
	}
}

func setupIdentifyRouter(llm *testhelpers.MockLLMService, pantry *testhelpers.MockPantryService, session gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if session != nil {
		router.Use(session)
	}

	var pantrySvc service.IPantryService
	if pantry != nil {
		pantrySvc = pantry
	}
	router.POST("/api/v1/identify", api.NewIdentifyHandler(llm, pantrySvc).Identify)
	return router
}

func TestIdentifyAnonymous(t *testing.T) {
	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, "data:image/jpeg;base64,AAAA").
		Return([]string{"tomato", "onion"}, nil)
	pantry := new(testhelpers.MockPantryService)

	router := setupIdentifyRouter(llm, pantry, nil)
	w := postJSON(router, "/api/v1/identify", `{"photo_data_uri": "data:image/jpeg;base64,AAAA"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Ingredients []string `json:"ingredients"`
		Count       int      `json:"count"`
		Applied     bool     `json:"applied"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"tomato", "onion"}, resp.Ingredients)
	assert.Equal(t, 2, resp.Count)
	assert.False(t, resp.Applied)

	// No session, no pantry traffic
	pantry.AssertNotCalled(t, "BeginIdentification", mock.Anything, mock.Anything, mock.Anything)
}

func TestIdentifyAppliesToPantry(t *testing.T) {
	userID := uuid.New()

	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, mock.Anything).
		Return([]string{"tomato"}, nil)

	pantry := new(testhelpers.MockPantryService)
	pantry.On("BeginIdentification", mock.Anything, userID, "").Return(int64(3), nil)
	pantry.On("CompleteIdentification", mock.Anything, userID, int64(3), []string{"tomato"}).Return(true, nil)

	router := setupIdentifyRouter(llm, pantry, withSession(userID, "cook@example.com"))
	w := postJSON(router, "/api/v1/identify", `{"photo_data_uri": "data:image/jpeg;base64,AAAA"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Applied bool `json:"applied"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Applied)
	pantry.AssertExpectations(t)
}

func TestIdentifyRecordsPhotoURLOnDraft(t *testing.T) {
	userID := uuid.New()

	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, mock.Anything).
		Return([]string{"tomato"}, nil)

	pantry := new(testhelpers.MockPantryService)
	pantry.On("BeginIdentification", mock.Anything, userID, "https://photos.example.com/a.jpg").
		Return(int64(1), nil)
	pantry.On("CompleteIdentification", mock.Anything, userID, int64(1), []string{"tomato"}).
		Return(true, nil)

	router := setupIdentifyRouter(llm, pantry, withSession(userID, ""))
	w := postJSON(router, "/api/v1/identify", `{
		"photo_data_uri": "data:image/jpeg;base64,AAAA",
		"photo_url": "https://photos.example.com/a.jpg"
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	pantry.AssertExpectations(t)
}

func TestIdentifyStaleGenerationNotApplied(t *testing.T) {
	userID := uuid.New()

	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, mock.Anything).
		Return([]string{"tomato"}, nil)

	pantry := new(testhelpers.MockPantryService)
	pantry.On("BeginIdentification", mock.Anything, userID, "").Return(int64(3), nil)
	// A newer identification bumped the generation while this one ran
	pantry.On("CompleteIdentification", mock.Anything, userID, int64(3), []string{"tomato"}).Return(false, nil)

	router := setupIdentifyRouter(llm, pantry, withSession(userID, ""))
	w := postJSON(router, "/api/v1/identify", `{"photo_data_uri": "data:image/jpeg;base64,AAAA"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Applied bool `json:"applied"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Applied)
}

func TestIdentifyEmptyResultIsOK(t *testing.T) {
	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, mock.Anything).
		Return([]string{}, nil)

	router := setupIdentifyRouter(llm, nil, nil)
	w := postJSON(router, "/api/v1/identify", `{"photo_data_uri": "data:image/jpeg;base64,AAAA"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Ingredients []string `json:"ingredients"`
		Count       int      `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Empty(t, resp.Ingredients)
	assert.Equal(t, 0, resp.Count)
}

func TestIdentifyMissingPhoto(t *testing.T) {
	llm := new(testhelpers.MockLLMService)
	router := setupIdentifyRouter(llm, nil, nil)

	w := postJSON(router, "/api/v1/identify", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdentifyModelFailure(t *testing.T) {
	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, mock.Anything).
		Return(nil, errors.New("model timeout"))

	router := setupIdentifyRouter(llm, nil, nil)
	w := postJSON(router, "/api/v1/identify", `{"photo_data_uri": "data:image/jpeg;base64,AAAA"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestIdentifyContractViolation(t *testing.T) {
	llm := new(testhelpers.MockLLMService)
	llm.On("IdentifyIngredients", mock.Anything, mock.Anything).
		Return(nil, service.ErrValidation)

	router := setupIdentifyRouter(llm, nil, nil)
	w := postJSON(router, "/api/v1/identify", `{"photo_data_uri": "data:image/jpeg;base64,AAAA"}`)

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "unreadable")
}
