package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/lib/pq"
)

func TestWrap(t *testing.T) {
	unique := &pq.Error{Code: "23505", Detail: "Key (email)=(a@x.com) already exists."}
	fkey := &pq.Error{Code: "23503"}

	tests := []struct {
		name       string
		err        error
		onConflict error
		want       error
	}{
		{"nil", nil, domain.ErrEmailTaken, nil},
		{"unique violation", unique, domain.ErrEmailTaken, domain.ErrConflict},
		{"wrapped unique violation", fmt.Errorf("exec: %w", unique), domain.ErrAlreadyInFavorites, domain.ErrConflict},
		{"unique without conflict mapping", unique, nil, domain.ErrStorage},
		{"other pq error", fkey, domain.ErrEmailTaken, domain.ErrStorage},
		{"plain error", errors.New("boom"), domain.ErrEmailTaken, domain.ErrStorage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap("op", tt.err, tt.onConflict)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("Wrap() = %v, want kind %v", got, tt.want)
			}
		})
	}
}

func TestWrapKeepsDriverError(t *testing.T) {
	driverErr := errors.New("connection reset")
	got := Wrap("select favorites", driverErr, nil)
	if !errors.Is(got, driverErr) {
		t.Errorf("Wrap() lost driver error: %v", got)
	}
}
