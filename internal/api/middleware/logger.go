package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDKey    string = "request_id"
	RequestIDHeader string = "X-Request-ID"
)

// LoggerMiddleware присваивает запросу request_id и логирует начало и конец запроса.
// Входящий X-Request-ID переиспользуется, если он является UUID.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()

		log.Info().
			Str("request_id", requestID).
			Str("layer", "middleware").
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("request started")

		c.Next()

		latency := time.Since(start)

		event := log.Info()
		if c.Writer.Status() >= 500 {
			event = log.Error()
		}
		event.
			Str("request_id", requestID).
			Str("layer", "middleware").
			Str("user_id", c.GetString(ContextUserID)).
			Dur("latency", latency).
			Int("status", c.Writer.Status()).
			Msg("request completed")
	}
}
