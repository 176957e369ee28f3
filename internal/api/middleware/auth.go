package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api"
	"sharexconnect/internal/auth"
	"sharexconnect/internal/domain"
)

const (
	ContextUserID      = "user_id"
	ContextRole        = "role"
	ContextInstitution = "institution"
)

// TokenParser проверяет bearer токен и возвращает claims
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// AuthMiddleware требует валидный JWT и кладёт личность пользователя в контекст
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "authorization header required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "invalid authorization format"))
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			log.Warn().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("layer", "middleware").
				Msg("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextInstitution, claims.Institution)

		c.Next()
	}
}

// RequireMember отклоняет гостевые токены на изменяющих маршрутах
func RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) == domain.RoleGuest {
			c.AbortWithStatusJSON(http.StatusForbidden,
				api.NewErrorResponse(api.ErrCodePermissionDenied, "guest accounts are read-only"))
			return
		}
		c.Next()
	}
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// GetRole возвращает роль пользователя из контекста
func GetRole(c *gin.Context) domain.Role {
	if role, exists := c.Get(ContextRole); exists {
		if r, ok := role.(domain.Role); ok {
			return r
		}
	}
	return ""
}
