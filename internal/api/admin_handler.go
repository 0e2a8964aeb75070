package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/service"
)

//go:generate mockery --name AdminService --output ./mocks
type AdminService interface {
	ListUsers(ctx context.Context, actor *domain.User) (*service.UserDirectory, error)
	RemoveUser(ctx context.Context, actor *domain.User, userID string) error
	ScheduleExport(ctx context.Context, actor *domain.User) error
}

type AdminHandler struct {
	*BaseHandler
	admin       AdminService
	invitations InvitationService
}

func NewAdminHandler(base *BaseHandler, admin AdminService, invitations InvitationService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		admin:       admin,
		invitations: invitations,
	}
}

// ListUsers godoc
// @Summary List tenant users
// @Description Users of the admin's tenant together with pending invitations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserListResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	dir, err := h.admin.ListUsers(h.RequestCtx(c), actor)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Success:     true,
		Users:       dto.FromUsers(dir.Users),
		Invitations: dto.FromInvitations(dir.Invitations),
	})
}

// InviteUser godoc
// @Summary Invite a user
// @Description Create a 7-day invitation into the admin's tenant and return the join link
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.InviteUserRequest true "Invitee"
// @Success 201 {object} dto.InviteUserResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /admin/invite-user [post]
func (h *AdminHandler) InviteUser(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.InviteUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	issued, err := h.invitations.Issue(h.RequestCtx(c), actor, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.InviteUserResponse{
		Success:    true,
		Message:    "Invitation created successfully",
		Invitation: dto.FromInvitation(issued.Invitation),
		InviteLink: issued.Link,
	})
}

// RemoveUser godoc
// @Summary Remove a user
// @Description Delete a user of the admin's tenant together with their notes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.Error "self-removal"
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /admin/users/{userId} [delete]
func (h *AdminHandler) RemoveUser(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.admin.RemoveUser(h.RequestCtx(c), actor, c.Param("userId")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "User deleted successfully"})
}

// ExportNotes godoc
// @Summary Export tenant notes
// @Description Queue an asynchronous export of every note in the tenant to object storage
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 202 {object} dto.MessageResponse
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /admin/notes/export [post]
func (h *AdminHandler) ExportNotes(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.admin.ScheduleExport(h.RequestCtx(c), actor); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.MessageResponse{Success: true, Message: "Export queued"})
}
