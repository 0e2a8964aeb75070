package domain

import (
	"time"
)

const (
	NoteTitleMaxLength   = 200
	NoteContentMaxLength = 10000
)

type Note struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Content     string    `gorm:"type:text;not null;default:''" json:"content"`
	UserID      string    `gorm:"type:uuid;not null" json:"user_id"`
	TenantSlug  string    `gorm:"type:text;not null" json:"tenant_slug"`
	AuthorEmail string    `gorm:"->;column:author_email" json:"author_email,omitempty"`
	CreatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Note) TableName() string {
	return "notes"
}

// NoteScope is the row predicate every note query carries. TenantSlug is
// mandatory; OwnerID narrows the scope to a single author when set.
type NoteScope struct {
	TenantSlug string
	OwnerID    string
}

func (s NoteScope) IsOwnerRestricted() bool {
	return s.OwnerID != ""
}

// NoteListMeta accompanies a note listing
type NoteListMeta struct {
	Total            int  `json:"total"`
	SubscriptionPlan Plan `json:"subscription_plan"`
	LimitReached     bool `json:"limit_reached"`
	UserRole         Role `json:"user_role"`
}
