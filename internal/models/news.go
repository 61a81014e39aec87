package models

import (
	"time"

	"github.com/google/uuid"
)

// News represents a news article in our system.
type News struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CategoryID  *int       `json:"category_id,omitempty"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	AuthorID    uuid.UUID  `json:"author_id"`
}

// NewsInput carries the writable fields of an article.
// PublishedAt must already honor the publish policy: set when IsPublished,
// nil otherwise.
type NewsInput struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	CategoryID  *int       `json:"category_id"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    uuid.UUID  `json:"-"`
}
