package usecase

import (
	"context"

	"github.com/GoArmGo/MovieApp/internal/domain"
)

// IdentityUseCase определяет бизнес-логику регистрации и входа пользователей
type IdentityUseCase interface {
	// LookupField возвращает одно поле профиля пользователя по email.
	// Если пользователя нет: domain.ErrUserNotFound.
	LookupField(ctx context.Context, email string, field domain.UserField) (string, error)

	// SignUp создаёт пользователя и выпускает токен.
	// Занятый email: domain.ErrEmailTaken.
	SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.AuthResult, error)

	// Login проверяет пароль и выпускает новый токен
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResult, error)
}

// MovieListUseCase определяет операции над избранным, списком просмотра и оценками.
// Повторное добавление в избранное или список просмотра: ошибка Conflict,
// повторная оценка перезаписывает прежнюю.
type MovieListUseCase interface {
	IsFavorite(ctx context.Context, userID, movieID string) (bool, error)
	AddFavorite(ctx context.Context, userID, movieID string) error
	RemoveFavorite(ctx context.Context, userID, movieID string) error
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteEntry, error)

	IsInWatchlist(ctx context.Context, userID, movieID string) (bool, error)
	AddToWatchlist(ctx context.Context, userID, movieID string) error
	RemoveFromWatchlist(ctx context.Context, userID, movieID string) error
	SetWatched(ctx context.Context, userID, movieID string, watched bool) error
	ListWatchlist(ctx context.Context, userID string) ([]domain.WatchlistEntry, error)

	GetRating(ctx context.Context, userID, movieID string) ([]domain.RatingEntry, error)
	SetRating(ctx context.Context, userID, movieID string, rating float64) error
	RemoveRating(ctx context.Context, userID, movieID string) error
	ListRatings(ctx context.Context, userID string) ([]domain.RatingEntry, error)
}
