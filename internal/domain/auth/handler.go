package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petcareplus/internal/platform/logger"
	"petcareplus/internal/ports/session"
)

func RegisterRoutes(r chi.Router, svc *Service, sessions session.Store, secret string, log logger.Logger) {
	r.Post("/api/login", loginHandler(svc, sessions, secret, log))
	r.Post("/api/logout", logoutHandler(sessions, secret, log))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginHandler(svc *Service, sessions session.Store, secret string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		p, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrBadCredentials):
				writeError(w, http.StatusUnauthorized, err.Error())
			default:
				log.Error("login store failure", map[string]any{"error": err.Error()})
				writeError(w, http.StatusInternalServerError, "Database error")
			}
			return
		}

		token, err := sessions.Create(r.Context(), p)
		if err != nil {
			log.Error("session create failed", map[string]any{"error": err.Error()})
			writeError(w, http.StatusInternalServerError, "Database error")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    session.SignToken(secret, token),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(session.TTL.Seconds()),
		})

		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Login successful",
			"role":    p.Role,
		})
	}
}

func logoutHandler(sessions session.Store, secret string, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			if token, ok := session.ParseToken(secret, cookie.Value); ok {
				if err := sessions.Delete(r.Context(), token); err != nil {
					// La cookie se limpia igual; solo queda registrado.
					log.Warn("session delete failed", map[string]any{"error": err.Error()})
				}
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     session.CookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})

		writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
