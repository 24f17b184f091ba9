package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwaldrip/ledgerboard/internal/auth"
)

type Handler struct {
	svc      *auth.Service
	sessions *auth.Sessions
}

func NewHandler(svc *auth.Service, sessions *auth.Sessions) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.svc.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}

		slog.Error("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		slog.Error("issuing session failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong.")

		return
	}

	h.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(errorResponse{Message: message}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
