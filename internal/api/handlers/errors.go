package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"sharexconnect/internal/api"
	"sharexconnect/internal/api/middleware"
	"sharexconnect/internal/domain"
	"sharexconnect/internal/metrics"
)

var registerTagNameOnce sync.Once

// registerJSONTagNames заставляет validator сообщать имена полей из json тегов
func registerJSONTagNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	})
}

// handleDomainError обрабатывает domain ошибки и возвращает правильный HTTP response
func handleDomainError(c *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		metrics.DomainErrorsTotal.WithLabelValues(string(domainErr.Code)).Inc()

		resp := api.ErrorResponse{
			Code:    string(domainErr.Code),
			Message: domainErr.Message,
		}
		for _, d := range domainErr.Details {
			resp.Errors = append(resp.Errors, api.FieldError{Field: d.Field, Message: d.Message})
		}
		c.JSON(domainErr.Status, resp)
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Msg("unexpected non-domain error")

	// Fallback на internal error
	c.JSON(http.StatusInternalServerError,
		api.NewErrorResponse(api.ErrCodeInternalError, "internal server error"))
}

// handleBindError превращает ошибку разбора запроса в ответ 400 или 413
func handleBindError(c *gin.Context, err error) {
	log.Warn().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("layer", "handler").
		Msg("failed to parse request")

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, api.NewErrorResponse(api.ErrCodePayloadTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)))
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		resp := api.NewErrorResponse(api.ErrCodeInvalidRequest, "request validation failed")
		for _, fe := range validationErrs {
			resp.Errors = append(resp.Errors, api.FieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	}

	c.JSON(http.StatusBadRequest,
		api.NewErrorResponse(api.ErrCodeInvalidRequest, "failed to parse request: "+err.Error()))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed on " + fe.Tag() + " validation"
	}
}
