package domain

import (
	"time"
)

const (
	TenantStatusActive = "active"
)

type Tenant struct {
	Slug             string    `gorm:"primaryKey;type:text" json:"slug"`
	Name             string    `gorm:"type:text;not null" json:"name"`
	SubscriptionPlan Plan      `gorm:"type:text;not null;default:'free'" json:"subscription_plan"`
	Status           string    `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt        time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// TenantUsage is the note volume of a tenant measured against its plan
type TenantUsage struct {
	Plan         Plan  `json:"subscription_plan"`
	NoteCount    int64 `json:"note_count"`
	LimitReached bool  `json:"limit_reached"`
}
