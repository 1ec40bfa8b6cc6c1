package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/jmoiron/sqlx"
)

// UserStorage реализует интерфейс ports.UserStorage поверх sqlx
type UserStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *sqlx.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateUser сохраняет пользователя; id генерирует база
func (s *UserStorage) CreateUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	query := `
	INSERT INTO users (email, hashed_password, name, last_name)
	VALUES (:email, :hashed_password, :name, :last_name)
	RETURNING id
	`

	bound, args, err := sqlx.Named(query, user)
	if err != nil {
		return fmt.Errorf("bind insert user: %w", err)
	}

	err = s.db.QueryRowxContext(ctx, s.db.Rebind(bound), args...).Scan(&user.ID)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			s.logger.Warn("signup with already registered email")
			return domain.ErrEmailTaken
		}
		s.logger.Error("failed to insert user", "error", err)
		return dberr.Wrap("insert user", err, nil)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByEmail получает пользователя по email
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	start := time.Now()

	var user domain.User
	query := `SELECT id, email, hashed_password, COALESCE(name, '') AS name, COALESCE(last_name, '') AS last_name
	FROM users WHERE email = $1 LIMIT 1`

	err := s.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("user not found by email")
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		s.logger.Error("failed to select user by email", "error", err)
		return nil, dberr.Wrap("select user by email", err, nil)
	}

	s.logger.Debug("user retrieved by email",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return &user, nil
}
