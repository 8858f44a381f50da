package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewService(t *testing.T) {
	service := NewService("test-secret-key")

	assert.NotNil(t, service)
	assert.Equal(t, []byte("test-secret-key"), service.secretKey)
	assert.Equal(t, 7*24*time.Hour, service.tokenTTL)
}

func TestNewServiceWithTTL(t *testing.T) {
	service := NewServiceWithTTL("test-secret-key", time.Hour)
	assert.Equal(t, time.Hour, service.tokenTTL)

	// Non-positive TTL falls back to the default
	service = NewServiceWithTTL("test-secret-key", 0)
	assert.Equal(t, 7*24*time.Hour, service.tokenTTL)
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewService("test-secret-key")

	token, err := service.GenerateToken("user-123", "CONSUMER")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "CONSUMER", claims.Role)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)

	_, err = service.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken("user-123", "CREATOR")
	assert.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := NewServiceWithTTL("test-secret-key", -time.Minute)
	// Service clamps non-positive TTLs at construction, so force it
	service.tokenTTL = -time.Minute

	token, err := service.GenerateToken("user-123", "CONSUMER")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_ExpirySet(t *testing.T) {
	service := NewServiceWithTTL("test-secret-key", time.Hour)

	token, err := service.GenerateToken("user-456", "ADMIN")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims.ExpiresAt)
	assert.True(t, time.Now().Before(claims.ExpiresAt.Time))
	assert.True(t, claims.ExpiresAt.Time.Before(time.Now().Add(time.Hour+time.Minute)))
}
