package ports

import (
	"context"

	"github.com/GoArmGo/MovieApp/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateUser сохраняет пользователя и заполняет user.ID.
	// Повторный email возвращает domain.ErrEmailTaken.
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByEmail возвращает domain.ErrUserNotFound, если пользователя нет.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// FavoriteStorage: избранные фильмы пользователя
type FavoriteStorage interface {
	FavoriteExists(ctx context.Context, userID, movieID string) (bool, error)
	// AddFavorite возвращает domain.ErrAlreadyInFavorites при повторном добавлении
	AddFavorite(ctx context.Context, entry domain.FavoriteEntry) error
	// RemoveFavorite не считает отсутствие записи ошибкой
	RemoveFavorite(ctx context.Context, userID, movieID string) error
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteEntry, error)
}

// WatchlistStorage: список фильмов к просмотру
type WatchlistStorage interface {
	WatchlistExists(ctx context.Context, userID, movieID string) (bool, error)
	// AddToWatchlist возвращает domain.ErrAlreadyInWatchlist при повторном добавлении
	AddToWatchlist(ctx context.Context, entry domain.WatchlistEntry) error
	RemoveFromWatchlist(ctx context.Context, userID, movieID string) error
	// SetWatched возвращает число изменённых строк; 0 не является ошибкой
	SetWatched(ctx context.Context, userID, movieID string, watched bool) (int64, error)
	ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error)
}

// RatingStorage: оценки фильмов
type RatingStorage interface {
	GetRating(ctx context.Context, userID, movieID string) ([]domain.RatingEntry, error)
	// UpsertRating вставляет оценку или перезаписывает существующую по (user_id, movie_id)
	UpsertRating(ctx context.Context, entry domain.RatingEntry) error
	RemoveRating(ctx context.Context, userID, movieID string) error
	ListRatings(ctx context.Context, userID string) ([]domain.RatingEntry, error)
}

// MovieListStorage объединяет все списки фильмов пользователя
type MovieListStorage interface {
	FavoriteStorage
	WatchlistStorage
	RatingStorage
}

// HealthChecker проверяет доступность хранилища
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
