package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/api/mocks"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/service"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	tenants     *mocks.TenantRegistrar
	accounts    *mocks.AccountService
	invitations *mocks.InvitationService
	router      *gin.Engine
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.tenants = new(mocks.TenantRegistrar)
	s.accounts = new(mocks.AccountService)
	s.invitations = new(mocks.InvitationService)
	handler := NewAuthHandler(newTestBase(), s.tenants, s.accounts, s.invitations)

	s.router = gin.New()
	s.router.POST("/auth/register-tenant", handler.RegisterTenant)
	s.router.POST("/auth/register", handler.Register)
	s.router.POST("/auth/login", handler.Login)
	s.router.GET("/auth/profile", asUser(acmeBob()), handler.Profile)
	s.router.GET("/anonymous/profile", handler.Profile)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegisterTenant_Success() {
	// Arrange
	req := dto.RegisterTenantRequest{OrganizationName: "Acme", AdminEmail: "admin@acme.test", AdminPassword: "password"}
	session := &service.Session{Token: "jwt", User: acmeAdmin(), Tenant: acmeTenant(domain.PlanFree)}
	s.tenants.On("Register", mock.Anything, req).Return(session, nil)

	// Act
	w := doJSON(s.router, http.MethodPost, "/auth/register-tenant", req)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal("jwt", resp.Token)
	s.Equal(adminID, resp.User.ID)
	s.Require().NotNil(resp.Tenant)
	s.Equal("acme", resp.Tenant.Slug)
	s.Equal("free", resp.Tenant.SubscriptionPlan)
	s.tenants.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestRegisterTenant_BindingFailure() {
	w := doJSON(s.router, http.MethodPost, "/auth/register-tenant", map[string]string{"organizationName": "Acme", "adminEmail": "not-an-email", "adminPassword": "password"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.tenants.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestRegisterTenant_PasswordTooLong() {
	body := map[string]string{"organizationName": "Acme", "adminEmail": "admin@acme.test", "adminPassword": strings.Repeat("p", 73)}

	w := doJSON(s.router, http.MethodPost, "/auth/register-tenant", body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), dto.CodeValidation)
	s.tenants.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestRegisterTenant_EmailTaken() {
	req := dto.RegisterTenantRequest{OrganizationName: "Acme", AdminEmail: "admin@acme.test", AdminPassword: "password"}
	s.tenants.On("Register", mock.Anything, req).Return(nil, service.ErrEmailAlreadyExists)

	w := doJSON(s.router, http.MethodPost, "/auth/register-tenant", req)

	s.Equal(http.StatusBadRequest, w.Code)
	var resp dto.Error
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(dto.CodeConflict, resp.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_AcceptsInvitation() {
	req := dto.RegisterRequest{Email: "bob@acme.test", Password: "password", InvitationToken: "tok"}
	session := &service.Session{Token: "jwt", User: acmeBob(), Tenant: acmeTenant(domain.PlanFree)}
	s.invitations.On("Accept", mock.Anything, req).Return(session, nil)

	w := doJSON(s.router, http.MethodPost, "/auth/register", req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("member", resp.User.Role)
	s.Equal("acme", resp.User.TenantSlug)
}

func (s *AuthHandlerTestSuite) TestRegister_ExpiredInvitation() {
	req := dto.RegisterRequest{Email: "bob@acme.test", Password: "password", InvitationToken: "old"}
	s.invitations.On("Accept", mock.Anything, req).Return(nil, service.ErrInvalidOrExpiredInvitation)

	w := doJSON(s.router, http.MethodPost, "/auth/register", req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), dto.CodeInvalidInvitation)
}

func (s *AuthHandlerTestSuite) TestRegister_EmailDoesNotMatchInvitation() {
	req := dto.RegisterRequest{Email: "mallory@evil.test", Password: "password", InvitationToken: "tok"}
	s.invitations.On("Accept", mock.Anything, req).Return(nil, service.ErrInvalidOrExpiredInvitation)

	w := doJSON(s.router, http.MethodPost, "/auth/register", req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), dto.CodeInvalidInvitation)
}

func (s *AuthHandlerTestSuite) TestLogin() {
	good := dto.LoginRequest{Email: "bob@acme.test", Password: "password"}
	bad := dto.LoginRequest{Email: "bob@acme.test", Password: "nope"}
	s.accounts.On("Login", mock.Anything, good).Return(&service.Session{Token: "jwt", User: acmeBob(), Tenant: acmeTenant(domain.PlanPro)}, nil)
	s.accounts.On("Login", mock.Anything, bad).Return(nil, service.ErrInvalidLogin)

	ok := doJSON(s.router, http.MethodPost, "/auth/login", good)
	denied := doJSON(s.router, http.MethodPost, "/auth/login", bad)

	s.Equal(http.StatusOK, ok.Code)
	var resp dto.AuthResponse
	s.Require().NoError(json.Unmarshal(ok.Body.Bytes(), &resp))
	s.Equal("jwt", resp.Token)
	s.Require().NotNil(resp.User.Tenant)
	s.Equal("pro", resp.User.Tenant.SubscriptionPlan)

	s.Equal(http.StatusUnauthorized, denied.Code)
}

func (s *AuthHandlerTestSuite) TestProfile() {
	s.accounts.On("Profile", mock.Anything, acmeBob()).Return(acmeBob(), acmeTenant(domain.PlanFree), nil)

	w := doJSON(s.router, http.MethodGet, "/auth/profile", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ProfileResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Equal(bobID, resp.User.ID)
	s.Equal("acme", resp.User.Tenant.Slug)
}

func (s *AuthHandlerTestSuite) TestProfile_NoUser() {
	w := doJSON(s.router, http.MethodGet, "/anonymous/profile", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
}
