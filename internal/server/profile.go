package server

import (
	"net/http"
	"time"

	"newsdesk/internal/auth"
	"newsdesk/internal/db"
	"newsdesk/internal/identity"
	"newsdesk/internal/logger"
)

// UserProfile возвращает профиль текущего принципала.
func (s *Server) UserProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.gate.Resolve(r.Context(), r)
	if err != nil {
		logger.Log.WithError(err).Warn("Session resolution failed")
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.store.GetProfile(r.Context(), user.ID)
	if err != nil {
		if db.IsNoRows(err) {
			respondError(w, http.StatusNotFound, "Profile not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// AuthUser возвращает принципала текущей сессии.
func (s *Server) AuthUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.gate.Resolve(r.Context(), r)
	if err != nil {
		logger.Log.WithError(err).Warn("Session resolution failed")
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, map[string]*identity.User{"user": user})
}

// SignOut аннулирует сессию у провайдера, сбрасывает cookie и
// перенаправляет на страницу входа.
func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	token := auth.Token(r)
	if err := s.gate.Identity.Revoke(r.Context(), token); err != nil {
		logger.Log.WithError(err).Warn("Session revoke failed")
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusFound)
}
