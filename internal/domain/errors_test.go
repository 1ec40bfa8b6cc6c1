package domain

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"user not found", ErrUserNotFound, ErrNotFound},
		{"wrong password", ErrWrongPassword, ErrUnauthorized},
		{"email taken", ErrEmailTaken, ErrConflict},
		{"favorite duplicate", ErrAlreadyInFavorites, ErrConflict},
		{"watchlist duplicate", ErrAlreadyInWatchlist, ErrConflict},
		{"password too long", ErrPasswordTooLong, ErrInvalidInput},
		{"wrapped", fmt.Errorf("usecase: %w", ErrUserNotFound), ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
		})
	}

	if errors.Is(ErrWrongPassword, ErrNotFound) {
		t.Error("wrong password must not be reported as not found")
	}
}

func TestStorageErrorUnwrap(t *testing.T) {
	err := &StorageError{Op: "select user", Err: sql.ErrConnDone}

	if !errors.Is(err, ErrStorage) {
		t.Error("StorageError should match ErrStorage")
	}
	if !errors.Is(err, sql.ErrConnDone) {
		t.Error("StorageError should match the driver error")
	}
	if err.Error() != "select user: "+sql.ErrConnDone.Error() {
		t.Errorf("Error() = %q", err.Error())
	}
}
