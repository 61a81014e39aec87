package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"newsdesk/internal/auth"
	"newsdesk/internal/db"
	"newsdesk/internal/identity"
	"newsdesk/internal/models"
	"newsdesk/internal/server"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// fakeProvider отдаёт заранее заданного пользователя для любого непустого токена.
type fakeProvider struct {
	user    *identity.User
	err     error
	revoked []string
}

func (f *fakeProvider) UserFromToken(ctx context.Context, token string) (*identity.User, error) {
	if token == "" {
		return nil, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeProvider) Revoke(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

type fakeProfiles map[uuid.UUID]models.Profile

func (f fakeProfiles) GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	p, ok := f[id]
	if !ok {
		return models.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

// fakeStore — хранилище в памяти по образцу реального Storage.
type fakeStore struct {
	pingErr    bool
	categories []models.Category
	news       []models.News
	profiles   map[uuid.UUID]models.Profile
	polls      []models.Poll
	seo        map[string]models.SEOMetadata
	nextID     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles: make(map[uuid.UUID]models.Profile),
		seo:      make(map[string]models.SEOMetadata),
		nextID:   1,
	}
}

func (f *fakeStore) id() int {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeStore) Ping(ctx context.Context) error {
	if f.pingErr {
		return pgx.ErrTxClosed
	}
	return nil
}

func (f *fakeStore) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	c := models.Category{ID: f.id(), Name: name}
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeStore) UpdateCategoryName(ctx context.Context, id int, name string) error {
	for i := range f.categories {
		if f.categories[i].ID == id {
			f.categories[i].Name = name
		}
	}
	return nil
}

func (f *fakeStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func (f *fakeStore) CreateNews(ctx context.Context, in models.NewsInput) (models.News, error) {
	n := models.News{
		ID:          f.id(),
		Title:       in.Title,
		Content:     in.Content,
		CategoryID:  in.CategoryID,
		IsPublished: in.IsPublished,
		PublishedAt: in.PublishedAt,
		AuthorID:    in.AuthorID,
	}
	f.news = append(f.news, n)
	return n, nil
}

func (f *fakeStore) UpdateNews(ctx context.Context, id int, in models.NewsInput) (models.News, error) {
	for i := range f.news {
		if f.news[i].ID == id {
			f.news[i].Title = in.Title
			f.news[i].Content = in.Content
			f.news[i].CategoryID = in.CategoryID
			f.news[i].IsPublished = in.IsPublished
			f.news[i].PublishedAt = in.PublishedAt
			return f.news[i], nil
		}
	}
	return models.News{}, pgx.ErrNoRows
}

func (f *fakeStore) GetNews(ctx context.Context, id int) (models.News, error) {
	for _, n := range f.news {
		if n.ID == id {
			return n, nil
		}
	}
	return models.News{}, pgx.ErrNoRows
}

func (f *fakeStore) ListPublishedNews(ctx context.Context, page, pageSize int) ([]models.News, int, error) {
	published := f.published()
	return published, len(published), nil
}

func (f *fakeStore) SearchPublishedNews(ctx context.Context, query string, limit int) ([]models.News, error) {
	var found []models.News
	needle := strings.ToLower(query)
	for _, n := range f.published() {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			found = append(found, n)
		}
		if len(found) == limit {
			break
		}
	}
	return found, nil
}

func (f *fakeStore) published() []models.News {
	var published []models.News
	for _, n := range f.news {
		if n.IsPublished {
			published = append(published, n)
		}
	}
	// сортировка по дате публикации по убыванию
	for i := 0; i < len(published); i++ {
		for j := i + 1; j < len(published); j++ {
			if published[j].PublishedAt.After(*published[i].PublishedAt) {
				published[i], published[j] = published[j], published[i]
			}
		}
	}
	return published
}

func (f *fakeStore) GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return models.Profile{}, pgx.ErrNoRows
	}
	return p, nil
}

func (f *fakeStore) CreatePoll(ctx context.Context, in models.PollInput) (models.Poll, error) {
	p := models.Poll{
		ID:                      f.id(),
		Question:                in.Question,
		Category:                in.Category,
		ExpiresAt:               in.ExpiresAt,
		IsActive:                in.IsActive,
		ShowResultsBeforeVoting: in.ShowResultsBeforeVoting,
		TargetAudience:          in.TargetAudience,
		AttachedNewsID:          in.AttachedNewsID,
	}
	for _, text := range in.Options {
		p.Options = append(p.Options, models.PollOption{ID: f.id(), PollID: p.ID, Text: text})
	}
	f.polls = append(f.polls, p)
	return p, nil
}

func (f *fakeStore) GetPoll(ctx context.Context, id int) (models.Poll, error) {
	for _, p := range f.polls {
		if p.ID == id {
			p.TotalVotes = 0
			for _, opt := range p.Options {
				p.TotalVotes += opt.Votes
			}
			return p, nil
		}
	}
	return models.Poll{}, pgx.ErrNoRows
}

func (f *fakeStore) ListActivePolls(ctx context.Context) ([]models.Poll, error) {
	var active []models.Poll
	for _, p := range f.polls {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeStore) Vote(ctx context.Context, pollID, optionID int) error {
	for i := range f.polls {
		if f.polls[i].ID != pollID {
			continue
		}
		for j := range f.polls[i].Options {
			if f.polls[i].Options[j].ID == optionID {
				f.polls[i].Options[j].Votes++
				return nil
			}
		}
	}
	return db.ErrOptionNotFound
}

func (f *fakeStore) UpsertSEO(ctx context.Context, in models.SEOInput) (models.SEOMetadata, error) {
	m, ok := f.seo[in.PagePath]
	if !ok {
		m = models.SEOMetadata{ID: f.id(), PagePath: in.PagePath}
		m.CreatedBy = &in.UpdatedBy
	}
	m.Title = in.Title
	m.Description = in.Description
	m.OGTitle = in.OGTitle
	m.OGDescription = in.OGDescription
	m.UpdatedBy = &in.UpdatedBy
	f.seo[in.PagePath] = m
	return m, nil
}

func (f *fakeStore) GetSEO(ctx context.Context, pagePath string) (models.SEOMetadata, error) {
	m, ok := f.seo[pagePath]
	if !ok {
		return models.SEOMetadata{}, pgx.ErrNoRows
	}
	return m, nil
}

var (
	adminID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	readerID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

// newTestServer собирает Server с фиктивным хранилищем и провайдером.
func newTestServer(store *fakeStore, user *identity.User, profiles fakeProfiles) (*server.Server, *fakeProvider) {
	provider := &fakeProvider{user: user}
	gate := auth.NewGate(provider, profiles)
	return server.NewServer(store, gate, ""), provider
}

func adminServer(store *fakeStore) *server.Server {
	srv, _ := newTestServer(store, &identity.User{ID: adminID, Email: "admin@example.com"},
		fakeProfiles{adminID: {ID: adminID, Role: models.RoleAdmin}})
	return srv
}

// withSession добавляет к запросу cookie с токеном сессии.
func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "test-token"})
	return req
}

func doRequest(t *testing.T, srv *server.Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Routes().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	store := newFakeStore()
	srv := adminServer(store)

	w := doRequest(t, srv, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	store.pingErr = true
	w = doRequest(t, srv, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
