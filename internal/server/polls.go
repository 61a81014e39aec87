package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsdesk/internal/db"
	"newsdesk/internal/models"
)

type pollRequest struct {
	Question                string     `json:"question"`
	Category                string     `json:"category"`
	ExpiresAt               *time.Time `json:"expires_at"`
	IsActive                *bool      `json:"is_active"`
	ShowResultsBeforeVoting bool       `json:"show_results_before_voting"`
	TargetAudience          string     `json:"target_audience"`
	AttachedNewsID          *int       `json:"attached_news_id"`
	Options                 []string   `json:"options"`
}

// CreatePoll создаёт опрос с вариантами ответа. Только для администраторов.
// Если is_active не передан, опрос создаётся активным.
func (s *Server) CreatePoll(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" || len(req.Options) < 2 {
		respondError(w, http.StatusBadRequest, "Question and at least 2 options are required")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	poll, err := s.store.CreatePoll(r.Context(), models.PollInput{
		Question:                req.Question,
		Category:                req.Category,
		ExpiresAt:               req.ExpiresAt,
		IsActive:                isActive,
		ShowResultsBeforeVoting: req.ShowResultsBeforeVoting,
		TargetAudience:          req.TargetAudience,
		AttachedNewsID:          req.AttachedNewsID,
		Options:                 req.Options,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, poll)
}

// GetPoll возвращает опрос с вариантами ответа и суммой голосов.
func (s *Server) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid poll ID")
		return
	}

	poll, err := s.store.GetPoll(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			respondError(w, http.StatusNotFound, "Poll not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, poll)
}

// ListPolls возвращает активные неистёкшие опросы.
func (s *Server) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := s.store.ListActivePolls(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if polls == nil {
		polls = []models.Poll{}
	}
	respondJSON(w, http.StatusOK, polls)
}

// Vote увеличивает счётчик выбранного варианта ответа на единицу.
func (s *Server) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid poll ID")
		return
	}

	var req struct {
		OptionID int `json:"option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.store.Vote(r.Context(), pollID, req.OptionID); err != nil {
		if errors.Is(err, db.ErrOptionNotFound) {
			respondError(w, http.StatusNotFound, "Poll option not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
