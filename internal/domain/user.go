package domain

import (
	"time"
)

type User struct {
	ID          string     `gorm:"primaryKey;type:text" json:"id"`
	TenantID    string     `gorm:"type:text;not null;index" json:"tenant_id"`
	Email       string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Role        Role       `gorm:"type:text;not null;default:'viewer';index" json:"role"`
	Active      bool       `gorm:"not null;default:true" json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Tenant      *Tenant    `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) GetTenantID() string   { return u.TenantID }
func (u *User) SetTenantID(id string) { u.TenantID = id }

type UserFilter struct {
	Email  string `json:"email"`
	Role   string `json:"role"`
	Active *bool  `json:"active"`
}
