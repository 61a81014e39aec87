package server

import (
	"encoding/json"
	"net/http"

	"newsdesk/internal/share"
)

type shareRequest struct {
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// PostToX собирает intent-ссылку X из краткого содержания статьи.
// Только для администраторов.
func (s *Server) PostToX(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"url": share.ComposeTweet(req.Summary, req.URL, s.hashtag),
	})
}
