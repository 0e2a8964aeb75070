package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string    `gorm:"type:text;not null;unique" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null" json:"role"`
	TenantSlug   string    `gorm:"type:text;not null" json:"tenant_slug"`
	CreatedAt    time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant       *Tenant   `gorm:"foreignKey:TenantSlug;references:Slug" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// NormalizeEmail lower-cases and trims an address so uniqueness holds regardless of input casing.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
