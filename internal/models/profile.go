package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the profile role that grants access to dashboard mutations.
const RoleAdmin = "admin"

// Profile represents the editorial profile attached to an identity-provider user.
type Profile struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Role        string    `json:"role"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsAdmin returns true if the profile has the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
