// Package dberr классифицирует ошибки PostgreSQL в ошибки предметной области.
package dberr

import (
	"errors"

	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/lib/pq"
)

// uniqueViolation: SQLSTATE 23505
const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation сообщает, нарушено ли ограничение уникальности
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Wrap превращает ошибку драйвера в ошибку предметной области.
// Нарушение уникальности становится onConflict (если он задан), остальное: StorageError.
func Wrap(op string, err error, onConflict error) error {
	if err == nil {
		return nil
	}
	if onConflict != nil && IsUniqueViolation(err) {
		return onConflict
	}
	return &domain.StorageError{Op: op, Err: err}
}
