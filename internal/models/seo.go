package models

import (
	"time"

	"github.com/google/uuid"
)

// SEOMetadata holds per-page search and OpenGraph metadata, keyed by page path.
type SEOMetadata struct {
	ID            int        `json:"id"`
	PagePath      string     `json:"page_path"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Keywords      string     `json:"keywords,omitempty"`
	CanonicalURL  string     `json:"canonical_url,omitempty"`
	OGTitle       string     `json:"og_title,omitempty"`
	OGDescription string     `json:"og_description,omitempty"`
	OGImage       string     `json:"og_image,omitempty"`
	CreatedBy     *uuid.UUID `json:"created_by,omitempty"`
	UpdatedBy     *uuid.UUID `json:"updated_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SEOInput carries the writable fields of a metadata row.
type SEOInput struct {
	PagePath      string
	Title         string
	Description   string
	Keywords      string
	CanonicalURL  string
	OGTitle       string
	OGDescription string
	OGImage       string
	UpdatedBy     uuid.UUID
}
