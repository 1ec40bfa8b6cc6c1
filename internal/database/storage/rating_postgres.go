package storage

import (
	"context"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/GoArmGo/MovieApp/internal/domain"
)

const ratingsTable = "valuation_movies"

// GetRating возвращает строки оценки для пары (user_id, movie_id): ноль или одну
func (s *ListStorage) GetRating(ctx context.Context, userID, movieID string) ([]domain.RatingEntry, error) {
	entries := []domain.RatingEntry{}
	if err := s.db.SelectContext(ctx, &entries,
		`SELECT user_id, movie_id, valoration FROM valuation_movies WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID); err != nil {
		s.logger.Error("failed to get rating", "user_id", userID, "movie_id", movieID, "error", err)
		return nil, dberr.Wrap("select rating", err, nil)
	}
	return entries, nil
}

// UpsertRating: повторная оценка перезаписывает valoration
func (s *ListStorage) UpsertRating(ctx context.Context, entry domain.RatingEntry) error {
	start := time.Now()

	query := `
	INSERT INTO valuation_movies (user_id, movie_id, valoration)
	VALUES (:user_id, :movie_id, :valoration)
	ON CONFLICT (user_id, movie_id) DO UPDATE SET valoration = EXCLUDED.valoration
	`
	if _, err := s.db.NamedExecContext(ctx, query, entry); err != nil {
		s.logger.Error("failed to upsert rating", "user_id", entry.UserID, "movie_id", entry.MovieID, "error", err)
		return dberr.Wrap("upsert rating", err, nil)
	}

	s.logger.Info("rating saved",
		"user_id", entry.UserID,
		"movie_id", entry.MovieID,
		"valoration", entry.Valuation,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *ListStorage) RemoveRating(ctx context.Context, userID, movieID string) error {
	return s.remove(ctx, ratingsTable, userID, movieID)
}

func (s *ListStorage) ListRatings(ctx context.Context, userID string) ([]domain.RatingEntry, error) {
	start := time.Now()

	entries := []domain.RatingEntry{}
	if err := s.db.SelectContext(ctx, &entries,
		`SELECT user_id, movie_id, valoration FROM valuation_movies WHERE user_id = $1`, userID); err != nil {
		s.logger.Error("failed to list ratings", "user_id", userID, "error", err)
		return nil, dberr.Wrap("select ratings", err, nil)
	}

	s.logger.Info("listed ratings",
		"user_id", userID,
		"count", len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entries, nil
}
