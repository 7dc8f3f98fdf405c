package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/itemservice/internal/auth"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	Operator  auth.Operator
	JWTSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.Operator.Enabled() {
		jsonError(w, http.StatusNotFound, "login is disabled")
		return
	}

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		jsonError(w, http.StatusBadRequest, "username and password required")
		return
	}

	if err := h.Operator.Authenticate(req.Username, req.Password); err != nil {
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, req.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("operator logged in", "username", req.Username)
	jsonResponse(w, http.StatusOK, loginResponse{Token: token})
}
