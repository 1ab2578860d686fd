package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/martify/go-storefront/internal/auth"
)

type AuthHandler struct {
	Auth     *auth.Service
	Sessions *Sessions
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Post("/auth/signup", h.signup)
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req signupReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	user, err := h.Auth.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrPasswordTooShort):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	h.Sessions.SaveUser(r.Context(), SessionID(w, r), user)
	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

// login reports not-found and wrong-password as distinct errors, the
// same way the account store distinguishes them.
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountNotFound), errors.Is(err, auth.ErrInvalidCredential):
			writeError(w, http.StatusUnauthorized, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	h.Sessions.SaveUser(r.Context(), SessionID(w, r), user)
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// logout drops the signed-in user but leaves the cart and the rest of
// the session untouched.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearUser(r.Context(), SessionID(w, r))
	writeJSON(w, http.StatusOK, map[string]any{"user": nil})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Sessions.CurrentUser(r.Context(), SessionID(w, r))
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
