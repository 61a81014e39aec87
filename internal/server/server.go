package server

import (
	"context"
	"net/http"

	"newsdesk/internal/auth"
	"newsdesk/internal/models"

	"github.com/google/uuid"
)

// Storage описывает операции хранилища, которые используют обработчики.
// Реализуется db.Database; в тестах подменяется фиктивным хранилищем.
type Storage interface {
	Ping(ctx context.Context) error

	CreateCategory(ctx context.Context, name string) (models.Category, error)
	UpdateCategoryName(ctx context.Context, id int, name string) error
	ListCategories(ctx context.Context) ([]models.Category, error)

	CreateNews(ctx context.Context, in models.NewsInput) (models.News, error)
	UpdateNews(ctx context.Context, id int, in models.NewsInput) (models.News, error)
	GetNews(ctx context.Context, id int) (models.News, error)
	ListPublishedNews(ctx context.Context, page, pageSize int) ([]models.News, int, error)
	SearchPublishedNews(ctx context.Context, query string, limit int) ([]models.News, error)

	GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error)

	CreatePoll(ctx context.Context, in models.PollInput) (models.Poll, error)
	GetPoll(ctx context.Context, id int) (models.Poll, error)
	ListActivePolls(ctx context.Context) ([]models.Poll, error)
	Vote(ctx context.Context, pollID, optionID int) error

	UpsertSEO(ctx context.Context, in models.SEOInput) (models.SEOMetadata, error)
	GetSEO(ctx context.Context, pagePath string) (models.SEOMetadata, error)
}

// Server хранит зависимости HTTP-обработчиков: хранилище и шлюз авторизации.
type Server struct {
	store   Storage
	gate    *auth.Gate
	hashtag string
}

// NewServer создаёт новый экземпляр Server.
func NewServer(store Storage, gate *auth.Gate, hashtag string) *Server {
	return &Server{store: store, gate: gate, hashtag: hashtag}
}

// Routes регистрирует все маршруты API на новом ServeMux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.HealthCheck)

	mux.HandleFunc("GET /api/categories", s.ListCategories)
	mux.HandleFunc("POST /api/categories/create", s.CreateCategory)
	mux.HandleFunc("PATCH /api/categories/{id}", s.UpdateCategory)

	mux.HandleFunc("GET /api/news", s.ListNews)
	mux.HandleFunc("GET /api/news/search", s.SearchNews)
	mux.HandleFunc("GET /api/news/{id}", s.GetNews)
	mux.HandleFunc("POST /api/news/create", s.CreateNews)
	mux.HandleFunc("PATCH /api/news/{id}", s.UpdateNews)

	mux.HandleFunc("GET /api/user-profile", s.UserProfile)
	mux.HandleFunc("GET /api/auth/user", s.AuthUser)
	mux.HandleFunc("POST /api/auth/signout", s.SignOut)

	mux.HandleFunc("POST /api/admin/news-review/post-to-x", s.PostToX)

	mux.HandleFunc("GET /api/seo", s.GetSEO)
	mux.HandleFunc("POST /api/seo/update", s.UpdateSEO)

	mux.HandleFunc("GET /api/polls", s.ListPolls)
	mux.HandleFunc("GET /api/polls/{id}", s.GetPoll)
	mux.HandleFunc("POST /api/polls/create", s.CreatePoll)
	mux.HandleFunc("POST /api/polls/{id}/vote", s.Vote)

	return mux
}

// HealthCheck отвечает 200 OK, если база доступна, иначе 503.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		http.Error(w, "DB unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Write([]byte("OK"))
}

// requireAdmin пропускает запрос только для принципала с ролью admin.
// Все отказы выглядят одинаково, чтобы не раскрывать причину.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	user, ok := s.gate.Admin(r.Context(), r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return user.ID, true
}
