package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api"
	"sharexconnect/internal/metrics"
)

func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err, ok := recovered.(error)
		if !ok {
			err = fmt.Errorf("%v", recovered)
		}

		log.Error().
			Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("layer", "middleware").
			Msg("panic recovered in HTTP request")
		metrics.ErrorsTotal.WithLabelValues("panic", "handler").Inc()

		c.AbortWithStatusJSON(http.StatusInternalServerError,
			api.NewErrorResponse(api.ErrCodeInternalError, "internal server error"))
	})
}
