package middleware

import (
	"context"
	"net/http"
	"strings"

	"newsdesk/internal/identity"
	"newsdesk/internal/logger"
)

// SessionResolver возвращает принципала запроса или nil, если сессии нет.
type SessionResolver interface {
	Resolve(ctx context.Context, r *http.Request) (*identity.User, error)
}

// DashboardGuard перенаправляет на /login запросы к страницам /dashboard
// без действующей сессии. Остальные пути проходят без изменений.
func DashboardGuard(resolver SessionResolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/dashboard") {
			next.ServeHTTP(w, r)
			return
		}

		user, err := resolver.Resolve(r.Context(), r)
		if err != nil {
			logger.Log.WithError(err).Warn("Session check failed")
		}
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
