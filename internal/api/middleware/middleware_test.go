package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/auth"
	"sharexconnect/internal/domain"
)

func newAuthRouter(tokens *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(tokens))

	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": middleware.GetUserID(c),
			"role":    middleware.GetRole(c),
		})
	})
	router.POST("/write", middleware.RequireMember(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := newAuthRouter(tokens)
	token, err := tokens.Issue(&domain.User{ID: "user-1", Role: domain.RoleFaculty})
	require.NoError(t, err)

	// Act
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"FACULTY"`)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	expired := auth.NewTokenManager("secret", -time.Minute)
	foreign := auth.NewTokenManager("other-secret", time.Hour)

	expiredToken, err := expired.Issue(&domain.User{ID: "user-1", Role: domain.RoleStudent})
	require.NoError(t, err)
	foreignToken, err := foreign.Issue(&domain.User{ID: "user-1", Role: domain.RoleStudent})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expiredToken},
		{"foreign signature", "Bearer " + foreignToken},
	}

	router := newAuthRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestRequireMember(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	router := newAuthRouter(tokens)

	tests := []struct {
		role       domain.Role
		wantStatus int
	}{
		{domain.RoleStudent, http.StatusNoContent},
		{domain.RoleFaculty, http.StatusNoContent},
		{domain.RoleAdmin, http.StatusNoContent},
		{domain.RoleGuest, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			token, err := tokens.Issue(&domain.User{ID: "u", Role: tt.role})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/write", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestLoggerMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Context().Value(middleware.RequestIDKey).(string))
	})

	t.Run("reuses incoming uuid", func(t *testing.T) {
		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, id)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Body.String())
		assert.Equal(t, id, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces non-uuid value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "../../etc/passwd")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
	})
}

func TestRecoveryMiddleware_NonErrorPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.LoggerMiddleware(), middleware.RecoveryMiddleware())
	router.GET("/boom", func(c *gin.Context) {
		panic("string panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL_ERROR"`)
}
