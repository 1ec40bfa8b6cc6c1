package postgres

import (
	"context"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/GoArmGo/MovieApp/internal/domain"
	"gorm.io/gorm/clause"
)

func (s *PostgresStorage) exists(ctx context.Context, model any, userID, movieID string) (bool, error) {
	var count int64
	if err := whereKey(s.db.WithContext(ctx).Model(model), userID, movieID).Count(&count).Error; err != nil {
		return false, dberr.Wrap("gorm: count entries", err, nil)
	}
	return count > 0, nil
}

func (s *PostgresStorage) remove(ctx context.Context, model any, userID, movieID string) error {
	res := whereKey(s.db.WithContext(ctx), userID, movieID).Delete(model)
	if res.Error != nil {
		s.logger.Error("failed to delete entry", "user_id", userID, "movie_id", movieID, "error", res.Error)
		return dberr.Wrap("gorm: delete entry", res.Error, nil)
	}
	s.logger.Info("entry removed", "user_id", userID, "movie_id", movieID, "rows", res.RowsAffected)
	return nil
}

func (s *PostgresStorage) FavoriteExists(ctx context.Context, userID, movieID string) (bool, error) {
	return s.exists(ctx, &domain.FavoriteEntry{}, userID, movieID)
}

func (s *PostgresStorage) AddFavorite(ctx context.Context, entry domain.FavoriteEntry) error {
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return dberr.Wrap("gorm: insert favorite", err, domain.ErrAlreadyInFavorites)
	}
	s.logger.Info("favorite added", "user_id", entry.UserID, "movie_id", entry.MovieID)
	return nil
}

func (s *PostgresStorage) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	return s.remove(ctx, &domain.FavoriteEntry{}, userID, movieID)
}

func (s *PostgresStorage) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteEntry, error) {
	entries := []domain.FavoriteEntry{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, dberr.Wrap("gorm: select favorites", err, nil)
	}
	return entries, nil
}

func (s *PostgresStorage) WatchlistExists(ctx context.Context, userID, movieID string) (bool, error) {
	return s.exists(ctx, &domain.WatchlistEntry{}, userID, movieID)
}

func (s *PostgresStorage) AddToWatchlist(ctx context.Context, entry domain.WatchlistEntry) error {
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return dberr.Wrap("gorm: insert watchlist entry", err, domain.ErrAlreadyInWatchlist)
	}
	s.logger.Info("watchlist entry added", "user_id", entry.UserID, "movie_id", entry.MovieID)
	return nil
}

func (s *PostgresStorage) RemoveFromWatchlist(ctx context.Context, userID, movieID string) error {
	return s.remove(ctx, &domain.WatchlistEntry{}, userID, movieID)
}

func (s *PostgresStorage) SetWatched(ctx context.Context, userID, movieID string, watched bool) (int64, error) {
	start := time.Now()

	res := whereKey(s.db.WithContext(ctx).Model(&domain.WatchlistEntry{}), userID, movieID).
		Update("watched", watched)
	if res.Error != nil {
		return 0, dberr.Wrap("gorm: update watched", res.Error, nil)
	}

	s.logger.Info("watched flag updated",
		"user_id", userID,
		"movie_id", movieID,
		"rows", res.RowsAffected,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res.RowsAffected, nil
}

func (s *PostgresStorage) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error) {
	entries := []domain.WatchlistEntry{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, dberr.Wrap("gorm: select watchlist", err, nil)
	}
	return entries, nil
}

func (s *PostgresStorage) GetRating(ctx context.Context, userID, movieID string) ([]domain.RatingEntry, error) {
	entries := []domain.RatingEntry{}
	if err := whereKey(s.db.WithContext(ctx), userID, movieID).Find(&entries).Error; err != nil {
		return nil, dberr.Wrap("gorm: select rating", err, nil)
	}
	return entries, nil
}

// UpsertRating: INSERT ... ON CONFLICT (user_id, movie_id) DO UPDATE SET valoration
func (s *PostgresStorage) UpsertRating(ctx context.Context, entry domain.RatingEntry) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"valoration"}),
	}).Create(&entry).Error
	if err != nil {
		return dberr.Wrap("gorm: upsert rating", err, nil)
	}
	s.logger.Info("rating saved", "user_id", entry.UserID, "movie_id", entry.MovieID, "valoration", entry.Valuation)
	return nil
}

func (s *PostgresStorage) RemoveRating(ctx context.Context, userID, movieID string) error {
	return s.remove(ctx, &domain.RatingEntry{}, userID, movieID)
}

func (s *PostgresStorage) ListRatings(ctx context.Context, userID string) ([]domain.RatingEntry, error) {
	entries := []domain.RatingEntry{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, dberr.Wrap("gorm: select ratings", err, nil)
	}
	return entries, nil
}
