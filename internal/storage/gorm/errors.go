package gorm

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"sharexconnect/internal/storage"
)

// isUniqueViolation распознаёт нарушение уникальности как от postgres, так и
// переведённое GORM (TranslateError) для sqlite
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == storage.UniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyViolation распознаёт ссылку на несуществующую строку.
// В sqlite внешние ключи не создаются, там ошибка приходит только от postgres
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == storage.ForeignKeyViolation {
		return true
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// notFound переводит gorm.ErrRecordNotFound в storage.ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	return err
}
