package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/MovieApp/internal/core/ports"
	"github.com/GoArmGo/MovieApp/internal/domain"
)

// movieListUseCase implements MovieListUseCase.
// Каждая операция: один запрос к хранилищу, без повторов и блокировок.
type movieListUseCase struct {
	storage ports.MovieListStorage
	logger  *slog.Logger
}

// NewMovieListUseCase создает новый экземпляр MovieListUseCase
func NewMovieListUseCase(storage ports.MovieListStorage, logger *slog.Logger) MovieListUseCase {
	return &movieListUseCase{storage: storage, logger: logger}
}

func (uc *movieListUseCase) IsFavorite(ctx context.Context, userID, movieID string) (bool, error) {
	ok, err := uc.storage.FavoriteExists(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("usecase: check favorite: %w", err)
	}
	return ok, nil
}

func (uc *movieListUseCase) AddFavorite(ctx context.Context, userID, movieID string) error {
	if err := uc.storage.AddFavorite(ctx, domain.FavoriteEntry{UserID: userID, MovieID: movieID}); err != nil {
		return fmt.Errorf("usecase: add favorite: %w", err)
	}
	return nil
}

func (uc *movieListUseCase) RemoveFavorite(ctx context.Context, userID, movieID string) error {
	if err := uc.storage.RemoveFavorite(ctx, userID, movieID); err != nil {
		return fmt.Errorf("usecase: remove favorite: %w", err)
	}
	return nil
}

func (uc *movieListUseCase) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteEntry, error) {
	entries, err := uc.storage.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: list favorites: %w", err)
	}
	if entries == nil {
		entries = []domain.FavoriteEntry{}
	}
	return entries, nil
}

func (uc *movieListUseCase) IsInWatchlist(ctx context.Context, userID, movieID string) (bool, error) {
	ok, err := uc.storage.WatchlistExists(ctx, userID, movieID)
	if err != nil {
		return false, fmt.Errorf("usecase: check watchlist: %w", err)
	}
	return ok, nil
}

func (uc *movieListUseCase) AddToWatchlist(ctx context.Context, userID, movieID string) error {
	if err := uc.storage.AddToWatchlist(ctx, domain.WatchlistEntry{UserID: userID, MovieID: movieID}); err != nil {
		return fmt.Errorf("usecase: add to watchlist: %w", err)
	}
	return nil
}

func (uc *movieListUseCase) RemoveFromWatchlist(ctx context.Context, userID, movieID string) error {
	if err := uc.storage.RemoveFromWatchlist(ctx, userID, movieID); err != nil {
		return fmt.Errorf("usecase: remove from watchlist: %w", err)
	}
	return nil
}

// SetWatched не создаёт запись: если фильма нет в списке, ничего не меняется и ошибки нет.
func (uc *movieListUseCase) SetWatched(ctx context.Context, userID, movieID string, watched bool) error {
	affected, err := uc.storage.SetWatched(ctx, userID, movieID, watched)
	if err != nil {
		return fmt.Errorf("usecase: set watched: %w", err)
	}
	if affected == 0 {
		uc.logger.Debug("set watched matched no watchlist entry", "user_id", userID, "movie_id", movieID)
	}
	return nil
}

func (uc *movieListUseCase) ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error) {
	entries, err := uc.storage.ListWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: list watchlist: %w", err)
	}
	if entries == nil {
		entries = []domain.WatchlistEntry{}
	}
	return entries, nil
}

func (uc *movieListUseCase) GetRating(ctx context.Context, userID, movieID string) ([]domain.RatingEntry, error) {
	entries, err := uc.storage.GetRating(ctx, userID, movieID)
	if err != nil {
		return nil, fmt.Errorf("usecase: get rating: %w", err)
	}
	if entries == nil {
		entries = []domain.RatingEntry{}
	}
	return entries, nil
}

func (uc *movieListUseCase) SetRating(ctx context.Context, userID, movieID string, rating float64) error {
	entry := domain.RatingEntry{UserID: userID, MovieID: movieID, Valuation: rating}
	if err := uc.storage.UpsertRating(ctx, entry); err != nil {
		return fmt.Errorf("usecase: set rating: %w", err)
	}
	return nil
}

func (uc *movieListUseCase) RemoveRating(ctx context.Context, userID, movieID string) error {
	if err := uc.storage.RemoveRating(ctx, userID, movieID); err != nil {
		return fmt.Errorf("usecase: remove rating: %w", err)
	}
	return nil
}

func (uc *movieListUseCase) ListRatings(ctx context.Context, userID string) ([]domain.RatingEntry, error) {
	entries, err := uc.storage.ListRatings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("usecase: list ratings: %w", err)
	}
	if entries == nil {
		entries = []domain.RatingEntry{}
	}
	return entries, nil
}
