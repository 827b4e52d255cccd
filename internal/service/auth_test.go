package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipesnap/backend/internal/models"
	"github.com/recipesnap/backend/internal/service"
	"github.com/recipesnap/backend/internal/testhelpers"
)

func TestRegisterAndValidateToken(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	token, err := authSvc.Register("cook@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	var user models.User
	require.NoError(t, db.Where("email = ?", "cook@example.com").First(&user).Error)
	assert.NotEqual(t, "password123", user.PasswordHash)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register("cook@example.com", "password123")
	require.NoError(t, err)

	_, err = authSvc.Register("cook@example.com", "otherpassword")
	assert.True(t, errors.Is(err, service.ErrUserExists))
}

func TestLoginSuccess(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register("cook@example.com", "password123")
	require.NoError(t, err)

	token, err := authSvc.Login("cook@example.com", "password123")
	require.NoError(t, err)

	claims, err := authSvc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cook@example.com", claims.Email)
}

func TestLoginBadCredentials(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.Register("cook@example.com", "password123")
	require.NoError(t, err)

	_, err = authSvc.Login("cook@example.com", "wrongpassword")
	assert.True(t, errors.Is(err, service.ErrBadCredentials))

	_, err = authSvc.Login("nobody@example.com", "password123")
	assert.True(t, errors.Is(err, service.ErrBadCredentials))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	token, err := service.NewAuthService(db, "secret-a").Register("cook@example.com", "password123")
	require.NoError(t, err)

	_, err = service.NewAuthService(db, "secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	authSvc := service.NewAuthService(db, "test-secret")

	_, err := authSvc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
