package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"newsdesk/internal/db"
	"newsdesk/internal/models"
)

// seoDescriptionLimit — максимальная длина описания, выводимого из текста статьи.
const seoDescriptionLimit = 160

type seoRequest struct {
	ArticleID json.Number `json:"articleId"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
}

// UpdateSEO создаёт или обновляет метаданные страницы статьи.
// Только для администраторов.
func (s *Server) UpdateSEO(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	var req seoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var missing []string
	if req.ArticleID.String() == "" {
		missing = append(missing, "articleId")
	}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Content) == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		respondError(w, http.StatusBadRequest, strings.Join(missing, ", ")+" missing")
		return
	}

	description := req.Content
	if runes := []rune(description); len(runes) > seoDescriptionLimit {
		description = string(runes[:seoDescriptionLimit])
	}

	meta, err := s.store.UpsertSEO(r.Context(), models.SEOInput{
		PagePath:      "/news/" + req.ArticleID.String(),
		Title:         req.Title,
		Description:   description,
		OGTitle:       req.Title,
		OGDescription: description,
		UpdatedBy:     userID,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, meta)
}

// GetSEO возвращает метаданные по пути страницы из параметра page_path.
func (s *Server) GetSEO(w http.ResponseWriter, r *http.Request) {
	pagePath := r.URL.Query().Get("page_path")
	if pagePath == "" {
		respondError(w, http.StatusBadRequest, "page_path is required")
		return
	}

	meta, err := s.store.GetSEO(r.Context(), pagePath)
	if err != nil {
		if db.IsNoRows(err) {
			respondError(w, http.StatusNotFound, "SEO metadata not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, meta)
}
