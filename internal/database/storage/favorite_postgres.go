package storage

import (
	"context"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/GoArmGo/MovieApp/internal/domain"
)

const favoritesTable = "favorite_movies"

func (s *ListStorage) FavoriteExists(ctx context.Context, userID, movieID string) (bool, error) {
	return s.exists(ctx, favoritesTable, userID, movieID)
}

// AddFavorite вставляет запись без upsert: повтор: ошибка клиента
func (s *ListStorage) AddFavorite(ctx context.Context, entry domain.FavoriteEntry) error {
	start := time.Now()

	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO favorite_movies (user_id, movie_id) VALUES (:user_id, :movie_id)`, entry)
	if err != nil {
		s.logger.Warn("failed to add favorite", "user_id", entry.UserID, "movie_id", entry.MovieID, "error", err)
		return dberr.Wrap("insert favorite", err, domain.ErrAlreadyInFavorites)
	}

	s.logger.Info("favorite added",
		"user_id", entry.UserID,
		"movie_id", entry.MovieID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *ListStorage) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	return s.remove(ctx, favoritesTable, userID, movieID)
}

func (s *ListStorage) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteEntry, error) {
	start := time.Now()

	entries := []domain.FavoriteEntry{}
	if err := s.db.SelectContext(ctx, &entries,
		`SELECT user_id, movie_id FROM favorite_movies WHERE user_id = $1`, userID); err != nil {
		s.logger.Error("failed to list favorites", "user_id", userID, "error", err)
		return nil, dberr.Wrap("select favorites", err, nil)
	}

	s.logger.Info("listed favorites",
		"user_id", userID,
		"count", len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entries, nil
}
