package storage

import (
	"context"
	"log/slog"

	"github.com/GoArmGo/MovieApp/internal/database/dberr"
	"github.com/jmoiron/sqlx"
)

// ListStorage реализует ports.MovieListStorage: избранное, список просмотра и оценки.
// Каждый метод выполняет ровно один запрос.
type ListStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewListStorage(db *sqlx.DB, logger *slog.Logger) *ListStorage {
	return &ListStorage{db: db, logger: logger}
}

// exists выполняет SELECT EXISTS по паре (user_id, movie_id) в таблице table
func (s *ListStorage) exists(ctx context.Context, table, userID, movieID string) (bool, error) {
	var ok bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + table + ` WHERE user_id = $1 AND movie_id = $2)`
	if err := s.db.GetContext(ctx, &ok, query, userID, movieID); err != nil {
		s.logger.Error("failed to check entry", "table", table, "user_id", userID, "movie_id", movieID, "error", err)
		return false, dberr.Wrap("check "+table, err, nil)
	}
	return ok, nil
}

// remove удаляет запись; отсутствие записи не ошибка
func (s *ListStorage) remove(ctx context.Context, table, userID, movieID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE user_id = $1 AND movie_id = $2`, userID, movieID)
	if err != nil {
		s.logger.Error("failed to delete entry", "table", table, "user_id", userID, "movie_id", movieID, "error", err)
		return dberr.Wrap("delete from "+table, err, nil)
	}
	affected, _ := res.RowsAffected()
	s.logger.Info("entry removed", "table", table, "user_id", userID, "movie_id", movieID, "rows", affected)
	return nil
}
