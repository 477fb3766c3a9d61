package domain

import "time"

// Permission is role-global: it grants a named capability to a set of
// roles across every tenant, so it carries no tenant reference.
type Permission struct {
	ID          string    `gorm:"primaryKey;type:text" json:"id"`
	Name        string    `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Roles       []Role    `gorm:"serializer:json" json:"roles"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Permission) TableName() string {
	return "permissions"
}

// Grants reports whether the permission is granted to the given role.
func (p *Permission) Grants(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
