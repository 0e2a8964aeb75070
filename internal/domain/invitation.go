package domain

import (
	"time"
)

// DefaultInvitationTTL is how long an invitation stays pending when not configured otherwise
const DefaultInvitationTTL = 7 * 24 * time.Hour

type Invitation struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	TenantSlug string     `gorm:"type:text;not null" json:"tenant_slug"`
	Email      string     `gorm:"type:text;not null" json:"email"`
	Role       Role       `gorm:"type:text;not null" json:"role"`
	InvitedBy  *string    `gorm:"type:uuid" json:"invited_by,omitempty"`
	Token      string     `gorm:"type:text;not null;uniqueIndex" json:"token"`
	ExpiresAt  time.Time  `gorm:"type:timestamp with time zone;not null" json:"expires_at"`
	AcceptedAt *time.Time `gorm:"type:timestamp with time zone" json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Invitation) TableName() string {
	return "tenant_invitations"
}

// IsPending reports whether the invitation can still be accepted at the given instant.
// Expiry is derived from the clock and never stored.
func (i *Invitation) IsPending(now time.Time) bool {
	return i.AcceptedAt == nil && now.Before(i.ExpiresAt)
}
