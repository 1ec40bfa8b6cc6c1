package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/GoArmGo/MovieApp/internal/domain"
	"gorm.io/gorm"
)

// CreateUser сохраняет пользователя с помощью GORM, id заполняется через RETURNING
func (s *PostgresStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			s.logger.Warn("signup with already registered email")
			return domain.ErrEmailTaken
		}
		s.logger.Error("failed to create user", "error", err)
		return dberr.Wrap("gorm: create user", err, nil)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByEmail получает пользователя по email с помощью GORM
func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Select("id, email, hashed_password, COALESCE(name, '') AS name, COALESCE(last_name, '') AS last_name").
		Where("email = ?", email).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		s.logger.Error("failed to get user by email", "error", err)
		return nil, dberr.Wrap("gorm: select user by email", err, nil)
	}
	return &user, nil
}
