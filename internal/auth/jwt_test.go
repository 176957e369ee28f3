package auth_test

import (
	"testing"
	"time"

	"sharexconnect/internal/auth"
	"sharexconnect/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue(&domain.User{ID: "u-1", Role: domain.RoleFaculty, Institution: "MIT"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, domain.RoleFaculty, claims.Role)
	assert.Equal(t, "MIT", claims.Institution)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("secret-a", time.Hour).Issue(&domain.User{ID: "u-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue(&domain.User{ID: "u-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_UnknownRole(t *testing.T) {
	claims := auth.Claims{UserID: "u-1", Role: "SUPERUSER"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret", time.Hour).Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "abc", "invalid.jwt.token"} {
		_, err := tm.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken, token)
	}
}
