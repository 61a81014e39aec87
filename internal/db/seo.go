package db

import (
	"context"

	"newsdesk/internal/models"
)

// UpsertSEO сохраняет метаданные страницы, обновляя запись при конфликте
// по page_path. Поле created_by заполняется только при вставке.
func (db *Database) UpsertSEO(ctx context.Context, in models.SEOInput) (models.SEOMetadata, error) {
	var m models.SEOMetadata
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO seo_metadata (page_path, title, description, keywords, canonical_url, og_title, og_description, og_image, created_by, updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
        ON CONFLICT (page_path) DO UPDATE SET
            title = EXCLUDED.title,
            description = EXCLUDED.description,
            keywords = EXCLUDED.keywords,
            canonical_url = EXCLUDED.canonical_url,
            og_title = EXCLUDED.og_title,
            og_description = EXCLUDED.og_description,
            og_image = EXCLUDED.og_image,
            updated_by = EXCLUDED.updated_by,
            updated_at = CURRENT_TIMESTAMP
        RETURNING id, page_path, title, description, keywords, canonical_url, og_title, og_description, og_image, created_by, updated_by, created_at, updated_at
    `, in.PagePath, in.Title, in.Description, in.Keywords, in.CanonicalURL,
		in.OGTitle, in.OGDescription, in.OGImage, in.UpdatedBy).Scan(
		&m.ID, &m.PagePath, &m.Title, &m.Description, &m.Keywords, &m.CanonicalURL,
		&m.OGTitle, &m.OGDescription, &m.OGImage, &m.CreatedBy, &m.UpdatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

// GetSEO возвращает метаданные по пути страницы.
func (db *Database) GetSEO(ctx context.Context, pagePath string) (models.SEOMetadata, error) {
	var m models.SEOMetadata
	err := db.Pool.QueryRow(ctx, `
        SELECT id, page_path, title, description, keywords, canonical_url, og_title, og_description, og_image, created_by, updated_by, created_at, updated_at
        FROM seo_metadata
        WHERE page_path = $1
    `, pagePath).Scan(
		&m.ID, &m.PagePath, &m.Title, &m.Description, &m.Keywords, &m.CanonicalURL,
		&m.OGTitle, &m.OGDescription, &m.OGImage, &m.CreatedBy, &m.UpdatedBy, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}
