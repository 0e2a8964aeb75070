package dto

type RegisterTenantRequest struct {
	OrganizationName string `json:"organizationName" binding:"required" example:"Acme Corp"`
	AdminEmail       string `json:"adminEmail" binding:"required,email" example:"admin@acme.test"`
	AdminPassword    string `json:"adminPassword" binding:"required,min=6,max=72" example:"password"`
}

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email" example:"bob@acme.test"`
	Password        string `json:"password" binding:"required,min=6,max=72" example:"password"`
	InvitationToken string `json:"invitationToken" binding:"required" example:"pZ4s0m3r4nd0mT0k3n"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@acme.test"`
	Password string `json:"password" binding:"required" example:"password"`
}

type InviteUserRequest struct {
	Email string `json:"email" binding:"required,email" example:"bob@acme.test"`
	Role  string `json:"role" binding:"omitempty,oneof=admin member" example:"member"`
}

// NoteRequest is the body of note creation and update; length limits are enforced by the note service
type NoteRequest struct {
	Title   string `json:"title" binding:"required" example:"Quarterly plan"`
	Content string `json:"content" example:"Ship the notes API"`
}
