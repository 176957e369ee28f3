package storage

import "errors"

// Ошибки слоя хранения. Сервис переводит их в доменные ошибки
var (
	// ErrNotFound - строка не найдена
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists - нарушено ограничение уникальности
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrConflict - условное обновление не нашло строку в ожидаемом статусе
	ErrConflict = errors.New("data conflict")
	// ErrInvalidReference - запись ссылается на проект, пользователя или узел, которого нет
	ErrInvalidReference = errors.New("referenced resource does not exist")
)

// Коды ошибок postgres, которые распознаёт слой хранения
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)
