package dto

import (
	"github.com/kingrain94/notes-api/internal/domain"
)

func FromTenant(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		Slug:             t.Slug,
		Name:             t.Name,
		SubscriptionPlan: t.SubscriptionPlan.String(),
		Status:           t.Status,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// FromUser converts a user; tenant is attached as a summary when non-nil
func FromUser(u *domain.User, tenant *domain.Tenant) UserResponse {
	resp := UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role.String(),
		TenantSlug: u.TenantSlug,
		CreatedAt:  u.CreatedAt,
	}
	if tenant != nil {
		summary := FromTenant(tenant)
		resp.Tenant = &summary
	}
	return resp
}

func FromUsers(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = FromUser(&users[i], nil)
	}
	return responses
}

func FromNote(n *domain.Note) NoteResponse {
	return NoteResponse{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		UserID:      n.UserID,
		TenantSlug:  n.TenantSlug,
		AuthorEmail: n.AuthorEmail,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func FromNotes(notes []domain.Note) []NoteResponse {
	responses := make([]NoteResponse, len(notes))
	for i := range notes {
		responses[i] = FromNote(&notes[i])
	}
	return responses
}

// FromInvitation omits the token; it is only ever handed out inside the join link
func FromInvitation(inv *domain.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      inv.Role.String(),
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}
}

func FromInvitations(invitations []domain.Invitation) []InvitationResponse {
	responses := make([]InvitationResponse, len(invitations))
	for i := range invitations {
		responses[i] = FromInvitation(&invitations[i])
	}
	return responses
}
