// Package postgres: альтернативная реализация хранилищ на GORM.
// Использует тот же пул *sql.DB, что и sqlx-хранилища.
package postgres

import (
	"database/sql"
	"fmt"
	"log/slog"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open оборачивает существующий пул соединений в *gorm.DB
func Open(sqlDB *sql.DB, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm on existing pool: %w", err)
	}
	logger.Info("gorm storage backend initialized")
	return db, nil
}

// PostgresStorage реализует ports.UserStorage и ports.MovieListStorage с помощью GORM
type PostgresStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewPostgresStorage(db *gorm.DB, logger *slog.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// whereKey: условие по составному ключу (user_id, movie_id)
func whereKey(db *gorm.DB, userID, movieID string) *gorm.DB {
	return db.Where("user_id = ? AND movie_id = ?", userID, movieID)
}
