package auth

import (
	"context"
	"net/http"
	"strings"

	"newsdesk/internal/identity"
	"newsdesk/internal/logger"
	"newsdesk/internal/models"

	"github.com/google/uuid"
)

// SessionCookie — имя cookie с токеном сессии провайдера.
const SessionCookie = "session_token"

// Profiles отдаёт профиль по идентификатору принципала.
type Profiles interface {
	GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error)
}

// Token извлекает токен сессии из cookie или заголовка Authorization.
func Token(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// Gate объединяет резолвер сессии и проверку роли администратора.
type Gate struct {
	Identity identity.Provider
	Profiles Profiles
}

func NewGate(provider identity.Provider, profiles Profiles) *Gate {
	return &Gate{Identity: provider, Profiles: profiles}
}

// Resolve возвращает принципала запроса или nil, если сессии нет.
func (g *Gate) Resolve(ctx context.Context, r *http.Request) (*identity.User, error) {
	return g.Identity.UserFromToken(ctx, Token(r))
}

// Admin возвращает принципала, если он аутентифицирован и имеет роль admin.
// Любой сбой — отсутствие токена, ошибка провайдера, отсутствие профиля,
// другая роль — даёт одинаковый отрицательный результат: проверка закрыта
// по умолчанию и не различает причины отказа.
func (g *Gate) Admin(ctx context.Context, r *http.Request) (*identity.User, bool) {
	user, err := g.Resolve(ctx, r)
	if err != nil {
		logger.Log.WithError(err).Warn("Session resolution failed")
		return nil, false
	}
	if user == nil {
		return nil, false
	}

	profile, err := g.Profiles.GetProfile(ctx, user.ID)
	if err != nil {
		logger.Log.WithError(err).WithField("user_id", user.ID).Warn("Profile lookup failed")
		return nil, false
	}
	if !profile.IsAdmin() {
		return nil, false
	}
	return user, true
}
