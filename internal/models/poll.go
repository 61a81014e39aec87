package models

import "time"

// Poll represents a reader poll, optionally attached to an article.
// TotalVotes is derived from the option counters on read and never stored.
type Poll struct {
	ID                      int          `json:"id"`
	Question                string       `json:"question"`
	Category                string       `json:"category,omitempty"`
	CreatedAt               time.Time    `json:"created_at"`
	ExpiresAt               *time.Time   `json:"expires_at,omitempty"`
	IsActive                bool         `json:"is_active"`
	ShowResultsBeforeVoting bool         `json:"show_results_before_voting"`
	TargetAudience          string       `json:"target_audience,omitempty"`
	AttachedNewsID          *int         `json:"attached_news_id,omitempty"`
	Options                 []PollOption `json:"options"`
	TotalVotes              int          `json:"total_votes"`
}

// PollOption is a single answer with its vote counter.
type PollOption struct {
	ID     int    `json:"id"`
	PollID int    `json:"poll_id"`
	Text   string `json:"text"`
	Votes  int    `json:"votes"`
}

// PollInput carries the writable fields of a new poll.
type PollInput struct {
	Question                string     `json:"question"`
	Category                string     `json:"category"`
	ExpiresAt               *time.Time `json:"expires_at"`
	IsActive                bool       `json:"is_active"`
	ShowResultsBeforeVoting bool       `json:"show_results_before_voting"`
	TargetAudience          string     `json:"target_audience"`
	AttachedNewsID          *int       `json:"attached_news_id"`
	Options                 []string   `json:"options"`
}
