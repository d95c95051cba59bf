package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiwandem/varsity-backend/internal/app/models"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "unit-test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "varsity-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:        7,
		FirstName: "Ada",
		Email:     "ada.obi@example.edu",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "ada.obi@example.edu", claims.Email)
	assert.Equal(t, "Ada", claims.FirstName)
	assert.Equal(t, "varsity-test", claims.Issuer)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testJWTService(time.Hour).GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "varsity-test",
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateAndExtractClaimsEmptyToken(t *testing.T) {
	_, err := testJWTService(time.Hour).ValidateAndExtractClaims("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
