package api

const (
	ErrCodeInvalidRequest   = "VALIDATION_ERROR"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodePermissionDenied = "PERMISSION_DENIED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// FieldError описывает ошибку конкретного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// NewErrorResponse создаёт ответ об ошибке без деталей по полям
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}
