package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipesnap/backend/internal/api"
	"github.com/recipesnap/backend/internal/service"
	"github.com/recipesnap/backend/internal/testhelpers"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	router := gin.New()
	api.NewAuthHandler(authSvc, nil).RegisterRoutes(router.Group("/api/v1"))
	return router, authSvc
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterReturnsToken(t *testing.T) {
	router, authSvc := setupAuthRouter(t)

	w := postJSON(router, "/api/v1/auth/register", `{
		"email": "cook@example.com",
		"password": "password123",
		"confirm_password": "password123"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	claims, err := authSvc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", claims.Email)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := postJSON(router, "/api/v1/auth/register", `{
		"email": "cook@example.com",
		"password": "password123",
		"confirm_password": "different"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterShortPassword(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := postJSON(router, "/api/v1/auth/register", `{
		"email": "cook@example.com",
		"password": "abc",
		"confirm_password": "abc"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	router, _ := setupAuthRouter(t)

	body := `{
		"email": "cook@example.com",
		"password": "password123",
		"confirm_password": "password123"
	}`
	require.Equal(t, http.StatusCreated, postJSON(router, "/api/v1/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, postJSON(router, "/api/v1/auth/register", body).Code)
}

func TestLoginAndLogout(t *testing.T) {
	router, authSvc := setupAuthRouter(t)

	_, err := authSvc.Register("cook@example.com", "password123")
	require.NoError(t, err)

	w := postJSON(router, "/api/v1/auth/login", `{
		"email": "cook@example.com",
		"password": "password123"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)

	w = postJSON(router, "/api/v1/auth/logout", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router, authSvc := setupAuthRouter(t)

	_, err := authSvc.Register("cook@example.com", "password123")
	require.NoError(t, err)

	w := postJSON(router, "/api/v1/auth/login", `{
		"email": "cook@example.com",
		"password": "wrongpassword"
	}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Invalid email or password", resp.Error)
}
