package auth

import (
	"testing"
	"time"

	"github.com/riaj03/savyo/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	// Generate token
	token, err := jwtService.GenerateToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Validate token
	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Test invalid token - using clearly non-JWT format
	invalidToken := "clearly-not-a-jwt-token-format"
	claims, err := jwtService.ValidateToken(invalidToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(testConfig("signing_secret_very_long_for_testing"))
	assert.NoError(t, err)

	verifier, err := NewJWTService(testConfig("different_secret_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := signer.GenerateToken(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	// Should fail to create service
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Sessions are valid for 30 days
	duration := jwtService.TokenDuration()
	assert.Equal(t, time.Hour*24*30, duration)
}
