package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/MovieApp/internal/domain"
	"github.com/GoArmGo/MovieApp/internal/usecase"
)

const invalidBodyMsg = "invalid request body"

// AuthFailureRecorder учитывает неудачные попытки регистрации и входа
type AuthFailureRecorder interface {
	RecordAuthFailure(operation, reason string)
}

type noopRecorder struct{}

func (noopRecorder) RecordAuthFailure(string, string) {}

// IdentityHandler обрабатывает запросы регистрации, входа и поиска профиля по email.
type IdentityHandler struct {
	identity usecase.IdentityUseCase
	failures AuthFailureRecorder
	logger   *slog.Logger
}

// NewIdentityHandler создаёт новый экземпляр IdentityHandler.
// failures может быть nil.
func NewIdentityHandler(uc usecase.IdentityUseCase, failures AuthFailureRecorder, logger *slog.Logger) *IdentityHandler {
	if failures == nil {
		failures = noopRecorder{}
	}
	return &IdentityHandler{
		identity: uc,
		failures: failures,
		logger:   logger,
	}
}

// GetName: GET /name/{email}
func (h *IdentityHandler) GetName(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, domain.UserFieldName)
}

// GetLastName: GET /lastName/{email}
func (h *IdentityHandler) GetLastName(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, domain.UserFieldLastName)
}

// GetID: GET /id/{email}
func (h *IdentityHandler) GetID(w http.ResponseWriter, r *http.Request) {
	h.lookup(w, r, domain.UserFieldID)
}

// lookup отвечает строкой JSON со значением поля или 404
func (h *IdentityHandler) lookup(w http.ResponseWriter, r *http.Request, field domain.UserField) {
	email, err := pathParam(r, "email")
	if err != nil {
		h.logger.Warn("invalid email path parameter", "error", err)
		respondWithDetail(w, http.StatusBadRequest, invalidPathMsg, h.logger)
		return
	}

	value, err := h.identity.LookupField(r.Context(), email, field)
	if err != nil {
		code, msg := statusFor(err)
		if code >= http.StatusInternalServerError {
			h.logger.Error("failed to look up user field", "field", field, "error", err)
		} else {
			h.logger.Info("user lookup miss", "field", field)
		}
		respondWithDetail(w, code, msg, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, value, h.logger)
}

// SignUp: POST /signup
func (h *IdentityHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req domain.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("invalid signup body", "error", err)
		respondWithDetail(w, http.StatusBadRequest, invalidBodyMsg, h.logger)
		return
	}

	result, err := h.identity.SignUp(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConflict):
			h.failures.RecordAuthFailure("signup", "conflict")
			h.logger.Info("signup rejected", "reason", "email taken")
		case errors.Is(err, domain.ErrInvalidInput):
			h.failures.RecordAuthFailure("signup", "invalid_input")
			h.logger.Info("signup rejected", "reason", err.Error())
		default:
			h.failures.RecordAuthFailure("signup", "error")
			h.logger.Error("signup failed", "error", err)
		}
		code, msg := statusFor(err)
		respondWithDetail(w, code, msg, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// Login: POST /login
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.Warn("invalid login body", "error", err)
		respondWithDetail(w, http.StatusBadRequest, invalidBodyMsg, h.logger)
		return
	}

	result, err := h.identity.Login(r.Context(), req)
	if err != nil {
		code, msg := statusFor(err)
		switch code {
		case http.StatusNotFound:
			h.failures.RecordAuthFailure("login", "user_not_found")
		case http.StatusUnauthorized:
			h.failures.RecordAuthFailure("login", "wrong_password")
		default:
			h.failures.RecordAuthFailure("login", "error")
			h.logger.Error("login failed", "error", err)
		}
		respondWithDetail(w, code, msg, h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, result, h.logger)
}
