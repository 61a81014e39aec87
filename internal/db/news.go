package db

import (
	"context"
	"database/sql"

	"newsdesk/internal/models"
)

// CreateNews сохраняет новую статью и возвращает её со всеми полями.
// Поле PublishedAt должно быть уже согласовано с IsPublished вызывающей стороной.
func (db *Database) CreateNews(ctx context.Context, in models.NewsInput) (models.News, error) {
	var n models.News
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO news (title, content, category_id, is_published, published_at, author_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, title, content, category_id, is_published, published_at, author_id
    `, in.Title, in.Content, in.CategoryID, in.IsPublished, in.PublishedAt, in.AuthorID).Scan(
		&n.ID, &n.Title, &n.Content, &n.CategoryID, &n.IsPublished, &n.PublishedAt, &n.AuthorID,
	)
	return n, err
}

// UpdateNews обновляет статью по id и возвращает её новое состояние.
func (db *Database) UpdateNews(ctx context.Context, id int, in models.NewsInput) (models.News, error) {
	var n models.News
	err := db.Pool.QueryRow(ctx, `
        UPDATE news
        SET title = $2, content = $3, category_id = $4, is_published = $5, published_at = $6
        WHERE id = $1
        RETURNING id, title, content, category_id, is_published, published_at, author_id
    `, id, in.Title, in.Content, in.CategoryID, in.IsPublished, in.PublishedAt).Scan(
		&n.ID, &n.Title, &n.Content, &n.CategoryID, &n.IsPublished, &n.PublishedAt, &n.AuthorID,
	)
	return n, err
}

// GetNews возвращает одну статью по id.
func (db *Database) GetNews(ctx context.Context, id int) (models.News, error) {
	var n models.News
	err := db.Pool.QueryRow(ctx, `
        SELECT id, title, content, category_id, is_published, published_at, author_id
        FROM news
        WHERE id = $1
    `, id).Scan(&n.ID, &n.Title, &n.Content, &n.CategoryID, &n.IsPublished, &n.PublishedAt, &n.AuthorID)
	return n, err
}

// ListPublishedNews возвращает страницу опубликованных статей, сортированных
// по дате публикации, и общее количество для пагинации.
func (db *Database) ListPublishedNews(ctx context.Context, page, pageSize int) ([]models.News, int, error) {
	var total int
	err := db.Pool.QueryRow(ctx, `
        SELECT COUNT(*) FROM news WHERE is_published = TRUE
    `).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	rows, err := db.Pool.Query(ctx, `
        SELECT id, title, content, category_id, is_published, published_at, author_id
        FROM news
        WHERE is_published = TRUE
        ORDER BY published_at DESC
        LIMIT $1 OFFSET $2
    `, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	news, err := scanNewsRows(rows)
	return news, total, err
}

// SearchPublishedNews ищет опубликованные статьи по подстроке в заголовке
// или тексте без учёта регистра, не более limit результатов.
func (db *Database) SearchPublishedNews(ctx context.Context, query string, limit int) ([]models.News, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, title, content, category_id, is_published, published_at, author_id
        FROM news
        WHERE is_published = TRUE
          AND (title ILIKE $1 OR content ILIKE $1)
        ORDER BY published_at DESC
        LIMIT $2
    `, "%"+query+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNewsRows(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanNewsRows(rows rowScanner) ([]models.News, error) {
	var news []models.News
	for rows.Next() {
		var n models.News
		var categoryID sql.NullInt64
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &categoryID, &n.IsPublished, &n.PublishedAt, &n.AuthorID); err != nil {
			return nil, err
		}
		if categoryID.Valid {
			cid := int(categoryID.Int64)
			n.CategoryID = &cid
		}
		news = append(news, n)
	}
	return news, rows.Err()
}
