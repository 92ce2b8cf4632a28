// internal/pkg/auth/jwt_test.go
package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-test"},
		JWT: config.JWTConfig{
			Secret: "test-secret-key-that-is-long-enough-123456",
			Expiry: expiry,
		},
		Security: config.SecurityConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))

	token, err := manager.GenerateToken(42, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "user:42", claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	manager := NewJWTManager(testConfig(-time.Minute))

	token, err := manager.GenerateToken(42, "ada@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))
	token, err := manager.GenerateToken(42, "ada@example.com")
	require.NoError(t, err)

	other := NewJWTManager(&config.Config{
		JWT: config.JWTConfig{
			Secret: "a-completely-different-secret-key-654321",
			Expiry: time.Hour,
		},
	})
	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateToken_Tampered(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))
	token, err := manager.GenerateToken(42, "ada@example.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = manager.ValidateToken(tampered)
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	manager := NewJWTManager(testConfig(time.Hour))

	_, err := manager.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
	assert.Equal(t, "", ExtractTokenFromHeader("Bearer "))
}

func TestPasswordHashAndVerify(t *testing.T) {
	pm := NewPasswordManager(testConfig(time.Hour))

	hash, err := pm.HashPassword("secret123")
	require.NoError(t, err)
	require.NoError(t, pm.VerifyPassword("secret123", hash))
	require.Error(t, pm.VerifyPassword("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	pm := NewPasswordManager(testConfig(time.Hour))

	assert.NoError(t, pm.ValidatePassword("secret"))
	assert.Error(t, pm.ValidatePassword("12345"))
	assert.Error(t, pm.ValidatePassword(""))
	assert.Error(t, pm.ValidatePassword(strings.Repeat("x", 73)))
}
