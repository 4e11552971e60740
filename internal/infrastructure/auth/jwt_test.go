package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beyazmasa/internal/shared/authorization"
)

func newTestService() *JWTService {
	return NewJWTService("test-secret", 15, 7)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate("user-123", authorization.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	claims, err := svc.Verify(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	pair, err := newTestService().Generate("user-123", authorization.RoleAdmin)
	require.NoError(t, err)

	other := NewJWTService("other-secret", 15, 7)
	_, err = other.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)

	_, err = svc.Verify("")
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsWrongSigningMethod(t *testing.T) {
	svc := newTestService()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID:    "user-123",
		Role:      authorization.RoleAdmin,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate("user-123", authorization.RoleStaff)
	require.NoError(t, err)

	refreshed, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.Verify(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
}

func TestJWTService_RefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	pair, err := svc.Generate("user-123", authorization.RoleStaff)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err)
}
