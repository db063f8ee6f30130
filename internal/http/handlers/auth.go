package handlers

import (
	"errors"
	"net/http"

	"trackswift/internal/apperr"
	"trackswift/internal/logx"
)

// AuthHandler serves the credential check endpoint.
type AuthHandler struct {
	logger logx.Logger
	uc     authUsecase
}

// NewAuthHandler wires an authUsecase into HTTP handlers.
func NewAuthHandler(logger logx.Logger, uc authUsecase) *AuthHandler {
	return &AuthHandler{logger: logger, uc: uc}
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	u, err := h.uc.Authenticate(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, loginResponse{
			Username: u.Username,
			Role:     string(u.Role),
		})
	case errors.Is(err, apperr.ErrAuth):
		writeError(h.logger, w, r, http.StatusUnauthorized, "invalid credentials")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
