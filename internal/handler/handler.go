package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

// maxBodyBytes ограничивает тело запроса, полезные тела здесь: несколько полей
const maxBodyBytes = 1 << 20

const (
	serverErrorMsg = "Server error"
	invalidPathMsg = "invalid path parameter"
)

// respondWithJSON отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithDetail отвечает ошибкой в формате эндпоинтов аутентификации, {"detail": ...}
func respondWithDetail(w http.ResponseWriter, code int, detail string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"detail": detail}, logger)
}

// respondWithMessage отвечает в формате эндпоинтов списков фильмов, {"message": ...}
func respondWithMessage(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"message": message}, logger)
}

// decodeJSON читает тело запроса в dst. Ошибка означает 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

// pathParam возвращает декодированный параметр маршрута.
// chi отдаёт сегмент из RawPath как есть, поэтому %40 и подобное раскодируем здесь.
func pathParam(r *http.Request, name string) (string, error) {
	raw := chi.URLParam(r, name)
	value, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("path parameter %s: %w", name, err)
	}
	return value, nil
}

// statusFor сопоставляет вид ошибки предметной области с HTTP-статусом.
// Для 5xx клиент получает только общее сообщение.
func statusFor(err error) (int, string) {
	var code int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized):
		code = http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		code = http.StatusBadRequest
	default:
		return http.StatusInternalServerError, serverErrorMsg
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return code, domainErr.Msg
	}
	return code, http.StatusText(code)
}
