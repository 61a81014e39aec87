package db

import (
	"context"

	"newsdesk/internal/models"

	"github.com/google/uuid"
)

// GetProfile возвращает профиль по идентификатору принципала.
func (db *Database) GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	var p models.Profile
	err := db.Pool.QueryRow(ctx, `
        SELECT id, display_name, avatar_url, role, updated_at
        FROM profiles
        WHERE id = $1
    `, id).Scan(&p.ID, &p.DisplayName, &p.AvatarURL, &p.Role, &p.UpdatedAt)
	return p, err
}
