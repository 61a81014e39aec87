package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Database инкапсулирует пул соединений к PostgreSQL.
type Database struct {
	Pool *pgxpool.Pool
}

// NewDB создаёт новый пул соединений по connString и возвращает Database.
func NewDB(ctx context.Context, connString string) (*Database, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %v", err)
	}
	return &Database{Pool: pool}, nil
}

// Close закрывает пул соединений.
func (db *Database) Close() {
	db.Pool.Close()
}

// Ping проверяет доступность базы данных.
func (db *Database) Ping(ctx context.Context) error {
	return db.Pool.Ping(ctx)
}

// IsNoRows сообщает, является ли ошибка отсутствием запрошенной строки.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// EnsureSchema создаёт таблицы CMS, если они не существуют.
func (db *Database) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS profiles (
			id UUID PRIMARY KEY,
			display_name TEXT NOT NULL DEFAULT '',
			avatar_url TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL DEFAULT 'reader',
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL CHECK (name <> ''),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS news (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
			is_published BOOLEAN NOT NULL DEFAULT FALSE,
			published_at TIMESTAMP WITH TIME ZONE,
			author_id UUID NOT NULL,
			CHECK (is_published = (published_at IS NOT NULL))
		);

		CREATE TABLE IF NOT EXISTS polls (
			id SERIAL PRIMARY KEY,
			question TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			expires_at TIMESTAMP WITH TIME ZONE,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			show_results_before_voting BOOLEAN NOT NULL DEFAULT FALSE,
			target_audience TEXT NOT NULL DEFAULT '',
			attached_news_id INTEGER REFERENCES news(id) ON DELETE SET NULL
		);

		CREATE TABLE IF NOT EXISTS poll_options (
			id SERIAL PRIMARY KEY,
			poll_id INTEGER NOT NULL REFERENCES polls(id) ON DELETE CASCADE,
			text TEXT NOT NULL,
			votes INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS seo_metadata (
			id SERIAL PRIMARY KEY,
			page_path TEXT UNIQUE NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			keywords TEXT NOT NULL DEFAULT '',
			canonical_url TEXT NOT NULL DEFAULT '',
			og_title TEXT NOT NULL DEFAULT '',
			og_description TEXT NOT NULL DEFAULT '',
			og_image TEXT NOT NULL DEFAULT '',
			created_by UUID,
			updated_by UUID,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return err
}
