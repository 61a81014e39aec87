package db

import (
	"context"

	"newsdesk/internal/models"
)

// CreateCategory сохраняет новую категорию и возвращает её со всеми полями.
func (db *Database) CreateCategory(ctx context.Context, name string) (models.Category, error) {
	var c models.Category
	err := db.Pool.QueryRow(ctx, `
        INSERT INTO categories (name)
        VALUES ($1)
        RETURNING id, name, created_at
    `, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}

// UpdateCategoryName обновляет имя категории по id.
// Повторное обновление тем же именем безопасно.
func (db *Database) UpdateCategoryName(ctx context.Context, id int, name string) error {
	_, err := db.Pool.Exec(ctx, `
        UPDATE categories SET name = $2 WHERE id = $1
    `, id, name)
	return err
}

// ListCategories возвращает все категории в порядке создания.
func (db *Database) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, name, created_at FROM categories ORDER BY created_at
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
