//go:build integration

// Package storagetest содержит общий набор проверок для реализаций хранилищ.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/GoArmGo/MovieApp/internal/core/ports"
	"github.com/GoArmGo/MovieApp/internal/domain"
)

// Reset очищает хранилище перед каждым подтестом
type Reset func(t *testing.T)

// RunUserStorage проверяет контракт ports.UserStorage
func RunUserStorage(t *testing.T, s ports.UserStorage, reset Reset) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		reset(t)
		u := &domain.User{Email: "a@x.com", HashedPassword: "hash", Name: "A", LastName: "B"}
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		if u.ID == 0 {
			t.Fatal("CreateUser() did not set ID")
		}

		got, err := s.GetUserByEmail(ctx, "a@x.com")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if got.ID != u.ID || got.Name != "A" || got.LastName != "B" || got.HashedPassword != "hash" {
			t.Errorf("GetUserByEmail() = %+v", got)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		reset(t)
		if err := s.CreateUser(ctx, &domain.User{Email: "a@x.com", HashedPassword: "h1"}); err != nil {
			t.Fatal(err)
		}
		err := s.CreateUser(ctx, &domain.User{Email: "a@x.com", HashedPassword: "h2"})
		if !errors.Is(err, domain.ErrEmailTaken) {
			t.Fatalf("CreateUser() duplicate error = %v, want ErrEmailTaken", err)
		}
		got, _ := s.GetUserByEmail(ctx, "a@x.com")
		if got == nil || got.HashedPassword != "h1" {
			t.Errorf("first user changed: %+v", got)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		reset(t)
		_, err := s.GetUserByEmail(ctx, "nobody@x.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetUserByEmail() error = %v, want not found", err)
		}
	})
}

// RunMovieListStorage проверяет контракт ports.MovieListStorage
func RunMovieListStorage(t *testing.T, s ports.MovieListStorage, reset Reset) {
	ctx := context.Background()

	t.Run("favorites lifecycle", func(t *testing.T) {
		reset(t)
		if err := s.AddFavorite(ctx, domain.FavoriteEntry{UserID: "1", MovieID: "42"}); err != nil {
			t.Fatalf("AddFavorite() error = %v", err)
		}
		if ok, err := s.FavoriteExists(ctx, "1", "42"); err != nil || !ok {
			t.Fatalf("FavoriteExists() = %v, %v", ok, err)
		}
		list, err := s.ListFavorites(ctx, "1")
		if err != nil || len(list) != 1 || list[0] != (domain.FavoriteEntry{UserID: "1", MovieID: "42"}) {
			t.Fatalf("ListFavorites() = %+v, %v", list, err)
		}
		if err := s.RemoveFavorite(ctx, "1", "42"); err != nil {
			t.Fatalf("RemoveFavorite() error = %v", err)
		}
		if ok, _ := s.FavoriteExists(ctx, "1", "42"); ok {
			t.Error("FavoriteExists() = true after remove")
		}
		list, err = s.ListFavorites(ctx, "1")
		if err != nil || len(list) != 0 {
			t.Errorf("ListFavorites() after remove = %+v, %v", list, err)
		}
	})

	t.Run("duplicate add is conflict", func(t *testing.T) {
		reset(t)
		_ = s.AddFavorite(ctx, domain.FavoriteEntry{UserID: "1", MovieID: "42"})
		if err := s.AddFavorite(ctx, domain.FavoriteEntry{UserID: "1", MovieID: "42"}); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("duplicate AddFavorite() error = %v, want conflict", err)
		}
		_ = s.AddToWatchlist(ctx, domain.WatchlistEntry{UserID: "1", MovieID: "42"})
		if err := s.AddToWatchlist(ctx, domain.WatchlistEntry{UserID: "1", MovieID: "42"}); !errors.Is(err, domain.ErrConflict) {
			t.Errorf("duplicate AddToWatchlist() error = %v, want conflict", err)
		}
	})

	t.Run("remove missing succeeds", func(t *testing.T) {
		reset(t)
		if err := s.RemoveFavorite(ctx, "1", "404"); err != nil {
			t.Errorf("RemoveFavorite() error = %v", err)
		}
		if err := s.RemoveFromWatchlist(ctx, "1", "404"); err != nil {
			t.Errorf("RemoveFromWatchlist() error = %v", err)
		}
		if err := s.RemoveRating(ctx, "1", "404"); err != nil {
			t.Errorf("RemoveRating() error = %v", err)
		}
	})

	t.Run("set watched", func(t *testing.T) {
		reset(t)
		n, err := s.SetWatched(ctx, "1", "42", true)
		if err != nil || n != 0 {
			t.Fatalf("SetWatched() on missing entry = %d, %v; want 0, nil", n, err)
		}
		if ok, _ := s.WatchlistExists(ctx, "1", "42"); ok {
			t.Fatal("SetWatched() created an entry")
		}

		if err := s.AddToWatchlist(ctx, domain.WatchlistEntry{UserID: "1", MovieID: "42"}); err != nil {
			t.Fatal(err)
		}
		list, _ := s.ListWatchlist(ctx, "1")
		if len(list) != 1 || list[0].Watched {
			t.Fatalf("new watchlist entry = %+v, want watched=false", list)
		}

		n, err = s.SetWatched(ctx, "1", "42", true)
		if err != nil || n != 1 {
			t.Fatalf("SetWatched() = %d, %v; want 1, nil", n, err)
		}
		list, _ = s.ListWatchlist(ctx, "1")
		if len(list) != 1 || !list[0].Watched {
			t.Errorf("ListWatchlist() = %+v, want watched=true", list)
		}
	})

	t.Run("rating upsert", func(t *testing.T) {
		reset(t)
		if err := s.UpsertRating(ctx, domain.RatingEntry{UserID: "1", MovieID: "42", Valuation: 5}); err != nil {
			t.Fatal(err)
		}
		if err := s.UpsertRating(ctx, domain.RatingEntry{UserID: "1", MovieID: "42", Valuation: 3}); err != nil {
			t.Fatal(err)
		}
		rows, err := s.GetRating(ctx, "1", "42")
		if err != nil || len(rows) != 1 || rows[0].Valuation != 3 {
			t.Fatalf("GetRating() = %+v, %v; want one row valuation 3", rows, err)
		}
		all, _ := s.ListRatings(ctx, "1")
		if len(all) != 1 {
			t.Errorf("ListRatings() = %+v, want 1 row", all)
		}
		if err := s.RemoveRating(ctx, "1", "42"); err != nil {
			t.Fatal(err)
		}
		rows, _ = s.GetRating(ctx, "1", "42")
		if len(rows) != 0 {
			t.Errorf("GetRating() after remove = %+v", rows)
		}
	})

	t.Run("concurrent rating upserts keep one row", func(t *testing.T) {
		reset(t)
		var wg sync.WaitGroup
		for i := 1; i <= 10; i++ {
			wg.Add(1)
			go func(v float64) {
				defer wg.Done()
				if err := s.UpsertRating(ctx, domain.RatingEntry{UserID: "7", MovieID: "9", Valuation: v}); err != nil {
					t.Errorf("UpsertRating() error = %v", err)
				}
			}(float64(i))
		}
		wg.Wait()
		rows, _ := s.GetRating(ctx, "7", "9")
		if len(rows) != 1 {
			t.Errorf("GetRating() = %+v, want exactly one row", rows)
		}
	})

	t.Run("lists are scoped by user", func(t *testing.T) {
		reset(t)
		_ = s.AddFavorite(ctx, domain.FavoriteEntry{UserID: "1", MovieID: "10"})
		_ = s.AddFavorite(ctx, domain.FavoriteEntry{UserID: "1", MovieID: "11"})
		_ = s.AddFavorite(ctx, domain.FavoriteEntry{UserID: "2", MovieID: "10"})

		list, _ := s.ListFavorites(ctx, "1")
		got := map[string]bool{}
		for _, e := range list {
			got[e.MovieID] = true
		}
		if len(list) != 2 || !got["10"] || !got["11"] {
			t.Errorf("ListFavorites(1) = %+v", list)
		}
		if empty, _ := s.ListWatchlist(ctx, "1"); len(empty) != 0 {
			t.Errorf("ListWatchlist(1) = %+v, want empty", empty)
		}
	})
}
