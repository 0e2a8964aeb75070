package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/service"
	"github.com/kingrain94/notes-api/internal/utils"
	"github.com/kingrain94/notes-api/pkg/logger"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	sessions *mocks.SessionVerifier
	auth     *AuthMiddleware
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.sessions = new(mocks.SessionVerifier)
	s.auth = NewAuthMiddleware(s.sessions, logger.NewNop())

	s.router = gin.New()
	protected := s.router.Group("", s.auth.Authenticate(), s.auth.ResolveTenant())
	protected.GET("/whoami", func(c *gin.Context) {
		user, err := utils.GetUserFromContext(c.Request.Context())
		if err != nil {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "tenant_slug": c.GetString(string(utils.TenantSlugKey))})
	})
	protected.GET("/admin-only", s.auth.RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) serve(path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate_PopulatesContext() {
	user := &domain.User{ID: "u1", Role: domain.RoleMember, TenantSlug: "acme"}
	s.sessions.On("Verify", mock.Anything, "Bearer good").Return(user, nil)

	w := s.serve("/whoami", "Bearer good")

	s.Equal(http.StatusOK, w.Code)
	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("u1", body["user_id"])
	s.Equal("acme", body["tenant_slug"])
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate_Rejected() {
	s.sessions.On("Verify", mock.Anything, "").Return(nil, service.ErrUnauthenticated)
	s.sessions.On("Verify", mock.Anything, "Bearer stale").Return(nil, service.ErrUnknownSubject)

	for _, header := range []string{"", "Bearer stale"} {
		w := s.serve("/whoami", header)

		s.Equal(http.StatusUnauthorized, w.Code)
		var body dto.Error
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
		s.Equal(dto.CodeUnauthenticated, body.Code)
	}
}

func (s *AuthMiddlewareTestSuite) TestAuthenticate_StoreFailureIs500() {
	s.sessions.On("Verify", mock.Anything, "Bearer good").Return(nil, errors.New("db down"))

	w := s.serve("/whoami", "Bearer good")

	s.Equal(http.StatusInternalServerError, w.Code)
	s.NotContains(w.Body.String(), "db down")
}

func (s *AuthMiddlewareTestSuite) TestRequireRole() {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin, TenantSlug: "acme"}
	member := &domain.User{ID: "m1", Role: domain.RoleMember, TenantSlug: "acme"}
	s.sessions.On("Verify", mock.Anything, "Bearer admin").Return(admin, nil)
	s.sessions.On("Verify", mock.Anything, "Bearer member").Return(member, nil)

	s.Equal(http.StatusNoContent, s.serve("/admin-only", "Bearer admin").Code)
	s.Equal(http.StatusForbidden, s.serve("/admin-only", "Bearer member").Code)
}

func (s *AuthMiddlewareTestSuite) TestResolveTenant_WithoutUser() {
	router := gin.New()
	router.GET("/", s.auth.ResolveTenant(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusUnauthorized, w.Code)
}
