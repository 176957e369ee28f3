package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrorCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
	ErrorCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrorCodeInvalidState     ErrorCode = "INVALID_STATE_TRANSITION"
	ErrorCodeConflict         ErrorCode = "CONFLICT"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// FieldError - ошибка валидации конкретного поля
type FieldError struct {
	Field   string
	Message string
}

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int          // HTTP status code
	Code    ErrorCode    // Код ошибки для API
	Message string       // Сообщение об ошибке
	Details []FieldError // Ошибки по полям, только для VALIDATION_ERROR
	Err     error        // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает доменные ошибки по коду и сообщению,
// чтобы errors.Is работал для копий предопределённых ошибок
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError создаёт ошибку валидации с деталями по полям
func NewValidationError(message string, details ...FieldError) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeValidation,
		Message: message,
		Details: details,
	}
}

// NewPermissionDenied создаёт ошибку доступа с конкретным сообщением
func NewPermissionDenied(message string) *Error {
	return NewError(http.StatusForbidden, ErrorCodePermissionDenied, message, nil)
}

// NewInvalidState создаёт ошибку недопустимого перехода статуса
func NewInvalidState(message string) *Error {
	return NewError(http.StatusBadRequest, ErrorCodeInvalidState, message, nil)
}

// NewConflict создаёт ошибку конфликта
func NewConflict(message string) *Error {
	return NewError(http.StatusConflict, ErrorCodeConflict, message, nil)
}

// Предопределённые доменные ошибки
var (
	// ErrResourceNotFound - ресурс не найден
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)

	// ErrInvalidInput - невалидные входные данные
	ErrInvalidInput = NewValidationError("invalid input data")

	// ErrAlreadyExists - ресурс с такими ключами уже существует
	ErrAlreadyExists = NewConflict("resource already exists")

	// ErrNotProjectOwner - действие доступно только владельцу проекта
	ErrNotProjectOwner = NewPermissionDenied("only the project owner can perform this action")

	// ErrNoProjectAccess - проект недоступен пользователю
	ErrNoProjectAccess = NewPermissionDenied("you do not have access to this project")

	// ErrNoWriteAccess - изменять проект могут только владелец и участники
	ErrNoWriteAccess = NewPermissionDenied("only the owner or collaborators can modify this project")

	// ErrNotCollaborator - пользователь не является участником проекта
	ErrNotCollaborator = NewPermissionDenied("only project collaborators can create pull requests")

	// ErrOwnerCannotOpenPullRequest - владелец загружает файлы напрямую
	ErrOwnerCannotOpenPullRequest = NewPermissionDenied("project owners upload files directly instead of opening pull requests")

	// ErrCannotRespond - отвечать на заявку может только адресат
	ErrCannotRespond = NewPermissionDenied("you are not allowed to respond to this collaboration request")

	// ErrFacultyOnly - действие доступно только преподавателям
	ErrFacultyOnly = NewPermissionDenied("only faculty members can review projects")

	// ErrRequestAlreadyResolved - на заявку уже ответили
	ErrRequestAlreadyResolved = NewInvalidState("collaboration request has already been resolved")

	// ErrChangeRequestClosed - предложение изменения уже рассмотрено
	ErrChangeRequestClosed = NewInvalidState("change request has already been reviewed")

	// ErrPullRequestClosed - PR в терминальном статусе
	ErrPullRequestClosed = NewInvalidState("pull request is already closed")

	// ErrPullRequestTransition - недопустимый переход статуса PR
	ErrPullRequestTransition = NewInvalidState("pull request status transition is not allowed")

	// ErrProjectTransition - недопустимый переход статуса проекта
	ErrProjectTransition = NewInvalidState("project status transition is not allowed")

	// ErrAlreadyCollaborator - пользователь уже участник проекта
	ErrAlreadyCollaborator = NewConflict("user is already a collaborator on this project")

	// ErrDuplicatePendingRequest - уже есть заявка в ожидании
	ErrDuplicatePendingRequest = NewConflict("a pending collaboration request already exists")
)

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// WrapError оборачивает обычную ошибку в доменную с контекстом
func WrapError(err error, status int, code ErrorCode, message string) *Error {
	return NewError(status, code, message, err)
}
