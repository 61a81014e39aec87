package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsdesk/internal/db"
	"newsdesk/internal/models"
)

const (
	defaultPageSize = 15
	maxPageSize     = 100
	searchLimit     = 10
)

type newsRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CategoryID  *int       `json:"category_id"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
}

// publishPolicy согласует published_at с is_published: при публикации без
// явной даты ставится текущее время, при снятии с публикации дата обнуляется
// независимо от входных данных.
func publishPolicy(isPublished bool, publishedAt *time.Time) *time.Time {
	if !isPublished {
		return nil
	}
	if publishedAt == nil {
		now := time.Now()
		return &now
	}
	return publishedAt
}

// CreateNews создаёт статью с применением политики публикации.
// Только для администраторов.
func (s *Server) CreateNews(w http.ResponseWriter, r *http.Request) {
	authorID, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	var req newsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	news, err := s.store.CreateNews(r.Context(), models.NewsInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		PublishedAt: publishPolicy(req.IsPublished, req.PublishedAt),
		AuthorID:    authorID,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, news)
}

// UpdateNews обновляет статью по id с той же политикой публикации.
// Только для администраторов.
func (s *Server) UpdateNews(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news ID")
		return
	}

	var req newsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		respondError(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	news, err := s.store.UpdateNews(r.Context(), id, models.NewsInput{
		Title:       req.Title,
		Content:     req.Content,
		CategoryID:  req.CategoryID,
		IsPublished: req.IsPublished,
		PublishedAt: publishPolicy(req.IsPublished, req.PublishedAt),
	})
	if err != nil {
		if db.IsNoRows(err) {
			respondError(w, http.StatusNotFound, "News not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, news)
}

// GetNews возвращает одну статью по id.
func (s *Server) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid news ID")
		return
	}

	news, err := s.store.GetNews(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			respondError(w, http.StatusNotFound, "News not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, news)
}

// ListNews возвращает страницу опубликованных статей с пагинацией.
func (s *Server) ListNews(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("page_size"))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	news, total, err := s.store.ListPublishedNews(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if news == nil {
		news = []models.News{}
	}

	respondJSON(w, http.StatusOK, models.NewsResponse{
		Items: news,
		Pagination: models.PaginationResponse{
			TotalItems:   total,
			TotalPages:   (total + pageSize - 1) / pageSize,
			CurrentPage:  page,
			ItemsPerPage: pageSize,
		},
	})
}

// SearchNews ищет опубликованные статьи по подстроке в заголовке или тексте.
// Пустой запрос — ошибка клиента, а не пустой результат.
func (s *Server) SearchNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Search query is required")
		return
	}

	news, err := s.store.SearchPublishedNews(r.Context(), query, searchLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if news == nil {
		news = []models.News{}
	}
	respondJSON(w, http.StatusOK, news)
}
