package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/admindesk/admindesk/internal/service"
	"github.com/admindesk/admindesk/internal/store"
)

// AuthHandler exposes the admin session lifecycle over HTTP: sign-up, log-in,
// and log-out.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}

// SignUp registers a new admin account and returns its id.
// POST /api/v1/admin/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	problems := requiredFields(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"gender":   req.Gender,
		"password": req.Password,
	})
	if len(problems) > 0 {
		respondError(w, http.StatusBadRequest, "invalid values", problems)
		return
	}

	id, err := h.auth.SignUp(r.Context(), req.Name, req.Email, req.Gender, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			respondError(w, http.StatusBadRequest, "email already registered", nil)
			return
		}
		h.logger.Error("sign-up failed", "email", req.Email, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respondOK(w, id, "admin created")
}

type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LogIn authenticates an admin and returns a fresh session token, replacing
// any prior session for that admin.
// POST /api/v1/admin/login
func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req logInRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	problems := requiredFields(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if len(problems) > 0 {
		respondError(w, http.StatusBadRequest, "invalid values", problems)
		return
	}

	token, err := h.auth.LogIn(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrAdminNotFound):
		respondError(w, http.StatusBadRequest, "admin not found", nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, "invalid credentials", nil)
	case err != nil:
		h.logger.Error("log-in failed", "email", req.Email, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
	default:
		respondOK(w, token, "")
	}
}

type logOutRequest struct {
	Token string `json:"token"`
}

// LogOut clears the session matching the supplied token. A token that no
// admin holds (including one already logged out) yields a not-found error.
// POST /api/v1/admin/logout
func (h *AuthHandler) LogOut(w http.ResponseWriter, r *http.Request) {
	var req logOutRequest
	if err := readJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if problems := requiredFields(map[string]string{"token": req.Token}); len(problems) > 0 {
		respondError(w, http.StatusBadRequest, "invalid values", problems)
		return
	}

	if err := h.auth.LogOut(r.Context(), req.Token); err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			respondError(w, http.StatusBadRequest, "no session matches this token", nil)
			return
		}
		h.logger.Error("log-out failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	respondOK(w, nil, "logged out")
}
