package storage

import (
	"context"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/GoArmGo/MovieApp/internal/domain"
)

const watchlistTable = "watchlist_movies"

func (s *ListStorage) WatchlistExists(ctx context.Context, userID, movieID string) (bool, error) {
	return s.exists(ctx, watchlistTable, userID, movieID)
}

func (s *ListStorage) AddToWatchlist(ctx context.Context, entry domain.WatchlistEntry) error {
	start := time.Now()

	_, err := s.db.NamedExecContext(ctx,
		`INSERT INTO watchlist_movies (user_id, movie_id, watched) VALUES (:user_id, :movie_id, :watched)`, entry)
	if err != nil {
		s.logger.Warn("failed to add to watchlist", "user_id", entry.UserID, "movie_id", entry.MovieID, "error", err)
		return dberr.Wrap("insert watchlist entry", err, domain.ErrAlreadyInWatchlist)
	}

	s.logger.Info("watchlist entry added",
		"user_id", entry.UserID,
		"movie_id", entry.MovieID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *ListStorage) RemoveFromWatchlist(ctx context.Context, userID, movieID string) error {
	return s.remove(ctx, watchlistTable, userID, movieID)
}

// SetWatched обновляет флаг у существующей записи. Если записи нет, затронуто 0 строк.
func (s *ListStorage) SetWatched(ctx context.Context, userID, movieID string, watched bool) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE watchlist_movies SET watched = $1 WHERE user_id = $2 AND movie_id = $3`,
		watched, userID, movieID)
	if err != nil {
		s.logger.Error("failed to update watched flag", "user_id", userID, "movie_id", movieID, "error", err)
		return 0, dberr.Wrap("update watched", err, nil)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, dberr.Wrap("update watched", err, nil)
	}
	s.logger.Info("watched flag updated", "user_id", userID, "movie_id", movieID, "watched", watched, "rows", affected)
	return affected, nil
}

func (s *ListStorage) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error) {
	start := time.Now()

	entries := []domain.WatchlistEntry{}
	if err := s.db.SelectContext(ctx, &entries,
		`SELECT user_id, movie_id, watched FROM watchlist_movies WHERE user_id = $1`, userID); err != nil {
		s.logger.Error("failed to list watchlist", "user_id", userID, "error", err)
		return nil, dberr.Wrap("select watchlist", err, nil)
	}

	s.logger.Info("listed watchlist",
		"user_id", userID,
		"count", len(entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return entries, nil
}
