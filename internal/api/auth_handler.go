package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/service"
)

//go:generate mockery --name TenantRegistrar --output ./mocks
type TenantRegistrar interface {
	Register(ctx context.Context, req dto.RegisterTenantRequest) (*service.Session, error)
}

//go:generate mockery --name AccountService --output ./mocks
type AccountService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*service.Session, error)
	Profile(ctx context.Context, user *domain.User) (*domain.User, *domain.Tenant, error)
}

//go:generate mockery --name InvitationService --output ./mocks
type InvitationService interface {
	Issue(ctx context.Context, actor *domain.User, req dto.InviteUserRequest) (*service.IssuedInvitation, error)
	Accept(ctx context.Context, req dto.RegisterRequest) (*service.Session, error)
}

type AuthHandler struct {
	*BaseHandler
	tenants     TenantRegistrar
	accounts    AccountService
	invitations InvitationService
}

func NewAuthHandler(base *BaseHandler, tenants TenantRegistrar, accounts AccountService, invitations InvitationService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		tenants:     tenants,
		accounts:    accounts,
		invitations: invitations,
	}
}

// RegisterTenant godoc
// @Summary Register an organization
// @Description Create a tenant on the free plan together with its first admin and sign the admin in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterTenantRequest true "Organization and admin account"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/register-tenant [post]
func (h *AuthHandler) RegisterTenant(c *gin.Context) {
	var req dto.RegisterTenantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.tenants.Register(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	tenant := dto.FromTenant(session.Tenant)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Organization created successfully",
		Token:   session.Token,
		User:    dto.FromUser(session.User, session.Tenant),
		Tenant:  &tenant,
	})
}

// Register godoc
// @Summary Accept an invitation
// @Description Create an account from an invitation token and sign it in. The email must match the address the invitation was sent to.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Invited account"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.invitations.Accept(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Account created successfully",
		Token:   session.Token,
		User:    dto.FromUser(session.User, session.Tenant),
	})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	session, err := h.accounts.Login(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    dto.FromUser(session.User, session.Tenant),
	})
}

// Profile godoc
// @Summary Current user
// @Description Return the signed-in user with a fresh summary of their tenant
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	user, tenant, err := h.accounts.Profile(h.RequestCtx(c), actor)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: dto.FromUser(user, tenant)})
}
