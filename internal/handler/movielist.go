package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/GoArmGo/MovieApp/internal/usecase"
)

// MovieListHandler обрабатывает избранное, список просмотра и оценки.
// Пустые списки приходят из usecase уже как [], а не nil.
type MovieListHandler struct {
	lists  usecase.MovieListUseCase
	logger *slog.Logger
}

// NewMovieListHandler создаёт новый экземпляр MovieListHandler.
func NewMovieListHandler(uc usecase.MovieListUseCase, logger *slog.Logger) *MovieListHandler {
	return &MovieListHandler{
		lists:  uc,
		logger: logger,
	}
}

// userKey читает {userId}; при ошибке уже ответил 400
func (h *MovieListHandler) userKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, err := pathParam(r, "userId")
	if err != nil {
		h.logger.Warn("invalid path parameter", "error", err)
		respondWithMessage(w, http.StatusBadRequest, invalidPathMsg, h.logger)
		return "", false
	}
	return userID, true
}

// pathKeys читает {userId} и {movieId}; при ошибке уже ответил 400
func (h *MovieListHandler) pathKeys(w http.ResponseWriter, r *http.Request) (userID, movieID string, ok bool) {
	userID, ok = h.userKey(w, r)
	if !ok {
		return "", "", false
	}
	movieID, err := pathParam(r, "movieId")
	if err != nil {
		h.logger.Warn("invalid path parameter", "error", err)
		respondWithMessage(w, http.StatusBadRequest, invalidPathMsg, h.logger)
		return "", "", false
	}
	return userID, movieID, true
}

// fail логирует ошибку и отвечает {"message": ...} с подходящим статусом
func (h *MovieListHandler) fail(w http.ResponseWriter, op string, err error) {
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("movie list operation failed", "op", op, "error", err)
	} else {
		h.logger.Info("movie list operation rejected", "op", op, "status", code)
	}
	respondWithMessage(w, code, msg, h.logger)
}

// IsFavorite: GET /{userId}/favorites/{movieId}
func (h *MovieListHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	found, err := h.lists.IsFavorite(r.Context(), userID, movieID)
	if err != nil {
		h.fail(w, "is_favorite", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"isInFavorites": found}, h.logger)
}

// AddFavorite: POST /{userId}/favorites/{movieId}
func (h *MovieListHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	if err := h.lists.AddFavorite(r.Context(), userID, movieID); err != nil {
		h.fail(w, "add_favorite", err)
		return
	}
	respondWithMessage(w, http.StatusCreated, "Movie added to favorites", h.logger)
}

// RemoveFavorite: DELETE /{userId}/favorites/{movieId}
func (h *MovieListHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	if err := h.lists.RemoveFavorite(r.Context(), userID, movieID); err != nil {
		h.fail(w, "remove_favorite", err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Movie removed from favorites", h.logger)
}

// ListFavorites: GET /{userId}/favorites
func (h *MovieListHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userKey(w, r)
	if !ok {
		return
	}
	entries, err := h.lists.ListFavorites(r.Context(), userID)
	if err != nil {
		h.fail(w, "list_favorites", err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries, h.logger)
}

// IsInWatchlist: GET /{userId}/watchlist/{movieId}
func (h *MovieListHandler) IsInWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	found, err := h.lists.IsInWatchlist(r.Context(), userID, movieID)
	if err != nil {
		h.fail(w, "is_in_watchlist", err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"isInWatchlist": found}, h.logger)
}

// AddToWatchlist: POST /{userId}/watchlist/{movieId}
func (h *MovieListHandler) AddToWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	if err := h.lists.AddToWatchlist(r.Context(), userID, movieID); err != nil {
		h.fail(w, "add_to_watchlist", err)
		return
	}
	respondWithMessage(w, http.StatusCreated, "Movie added to watchlist", h.logger)
}

// RemoveFromWatchlist: DELETE /{userId}/watchlist/{movieId}
func (h *MovieListHandler) RemoveFromWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	if err := h.lists.RemoveFromWatchlist(r.Context(), userID, movieID); err != nil {
		h.fail(w, "remove_from_watchlist", err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Movie removed from watchlist", h.logger)
}

// SetWatched: POST /{userId}/watched/{movieId}.
// Отсутствие записи в списке просмотра не ошибка.
func (h *MovieListHandler) SetWatched(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}

	var req domain.WatchedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("invalid watched body", "error", err)
		respondWithMessage(w, http.StatusBadRequest, invalidBodyMsg, h.logger)
		return
	}
	if req.Watched == nil {
		respondWithMessage(w, http.StatusBadRequest, "watched is required", h.logger)
		return
	}

	if err := h.lists.SetWatched(r.Context(), userID, movieID, *req.Watched); err != nil {
		h.fail(w, "set_watched", err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Watched status updated", h.logger)
}

// ListWatchlist: GET /{userId}/watchlist
func (h *MovieListHandler) ListWatchlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userKey(w, r)
	if !ok {
		return
	}
	entries, err := h.lists.ListWatchlist(r.Context(), userID)
	if err != nil {
		h.fail(w, "list_watchlist", err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries, h.logger)
}

// GetRating: GET /{userId}/rate/{movieId}, пустой массив если оценки нет
func (h *MovieListHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	rows, err := h.lists.GetRating(r.Context(), userID, movieID)
	if err != nil {
		h.fail(w, "get_rating", err)
		return
	}
	respondWithJSON(w, http.StatusOK, rows, h.logger)
}

// SetRating: POST /{userId}/rate/{movieId}, повторная оценка перезаписывает прежнюю
func (h *MovieListHandler) SetRating(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}

	var req domain.RatingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("invalid rating body", "error", err)
		respondWithMessage(w, http.StatusBadRequest, invalidBodyMsg, h.logger)
		return
	}
	// без поля rating в колонку NOT NULL писать нечего
	if req.Rating == nil {
		respondWithMessage(w, http.StatusBadRequest, "rating is required", h.logger)
		return
	}

	if err := h.lists.SetRating(r.Context(), userID, movieID, *req.Rating); err != nil {
		h.fail(w, "set_rating", err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Valoration updated", h.logger)
}

// RemoveRating: DELETE /{userId}/rating/{movieId}
func (h *MovieListHandler) RemoveRating(w http.ResponseWriter, r *http.Request) {
	userID, movieID, ok := h.pathKeys(w, r)
	if !ok {
		return
	}
	if err := h.lists.RemoveRating(r.Context(), userID, movieID); err != nil {
		h.fail(w, "remove_rating", err)
		return
	}
	respondWithMessage(w, http.StatusOK, "Rating removed", h.logger)
}

// ListRatings: GET /{userId}/rating
func (h *MovieListHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userKey(w, r)
	if !ok {
		return
	}
	entries, err := h.lists.ListRatings(r.Context(), userID)
	if err != nil {
		h.fail(w, "list_ratings", err)
		return
	}
	respondWithJSON(w, http.StatusOK, entries, h.logger)
}
