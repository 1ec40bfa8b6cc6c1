package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок. Конкретные ошибки оборачивают один из них, проверка через errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("storage error")
)

// Error: ошибка предметной области с сообщением для клиента.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

var (
	ErrUserNotFound       = &Error{Kind: ErrNotFound, Msg: "User not found"}
	ErrWrongPassword      = &Error{Kind: ErrUnauthorized, Msg: "Wrong password"}
	ErrEmailTaken         = &Error{Kind: ErrConflict, Msg: "email already registered"}
	ErrAlreadyInFavorites = &Error{Kind: ErrConflict, Msg: "Movie already in favorites"}
	ErrAlreadyInWatchlist = &Error{Kind: ErrConflict, Msg: "Movie already in watchlist"}
	// bcrypt не принимает пароли длиннее 72 байт
	ErrPasswordTooLong    = &Error{Kind: ErrInvalidInput, Msg: "password must be at most 72 bytes"}
)

// StorageError: сбой хранилища (соединение, запрос). Не повторяется.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorage, e.Err}
}
