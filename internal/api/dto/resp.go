package dto

import (
	"time"

	"github.com/kingrain94/notes-api/internal/domain"
)

type TenantResponse struct {
	Slug             string    `json:"slug" example:"acme"`
	Name             string    `json:"name" example:"Acme Corp"`
	SubscriptionPlan string    `json:"subscription_plan" example:"free"`
	Status           string    `json:"status" example:"active"`
	CreatedAt        time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt        time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type UserResponse struct {
	ID         string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email      string          `json:"email" example:"admin@acme.test"`
	Role       string          `json:"role" example:"admin"`
	TenantSlug string          `json:"tenant_slug" example:"acme"`
	CreatedAt  time.Time       `json:"created_at" example:"2025-07-17T21:20:48Z"`
	Tenant     *TenantResponse `json:"tenant,omitempty"`
}

// AuthResponse is returned by registration and login
type AuthResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty" example:"Organization created successfully"`
	Token   string          `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User    UserResponse    `json:"user"`
	Tenant  *TenantResponse `json:"tenant,omitempty"`
}

type ProfileResponse struct {
	Success bool         `json:"success" example:"true"`
	User    UserResponse `json:"user"`
}

type NoteResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string    `json:"title" example:"Quarterly plan"`
	Content     string    `json:"content" example:"Ship the notes API"`
	UserID      string    `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	TenantSlug  string    `json:"tenant_slug" example:"acme"`
	AuthorEmail string    `json:"author_email,omitempty" example:"bob@acme.test"`
	CreatedAt   time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2025-07-17T21:20:48Z"`
}

type NoteEnvelope struct {
	Success bool         `json:"success" example:"true"`
	Note    NoteResponse `json:"note"`
}

type NoteListResponse struct {
	Success bool                `json:"success" example:"true"`
	Notes   []NoteResponse      `json:"notes"`
	Meta    domain.NoteListMeta `json:"meta"`
}

type InvitationResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string    `json:"email" example:"bob@acme.test"`
	Role      string    `json:"role" example:"member"`
	ExpiresAt time.Time `json:"expires_at" example:"2025-07-24T21:20:48Z"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type InviteUserResponse struct {
	Success    bool               `json:"success" example:"true"`
	Message    string             `json:"message" example:"Invitation created"`
	Invitation InvitationResponse `json:"invitation"`
	InviteLink string             `json:"inviteLink" example:"http://localhost:3000/register?invite=token"`
}

type UserListResponse struct {
	Success     bool                 `json:"success" example:"true"`
	Users       []UserResponse       `json:"users"`
	Invitations []InvitationResponse `json:"invitations"`
}

type TenantEnvelope struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Tenant upgraded to pro"`
	Tenant  TenantResponse `json:"tenant"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Note deleted"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
