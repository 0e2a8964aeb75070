package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/service"
	"github.com/kingrain94/notes-api/internal/utils"
	"github.com/kingrain94/notes-api/pkg/logger"
)

//go:generate mockery --name SessionVerifier --output ../mocks
type SessionVerifier interface {
	Verify(ctx context.Context, authorization string) (*domain.User, error)
}

type AuthMiddleware struct {
	sessions SessionVerifier
	logger   *logger.Logger
}

func NewAuthMiddleware(sessions SessionVerifier, logger *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
		logger:   logger,
	}
}

// Authenticate resolves the bearer credential to a live user and stores it
// on both the gin context and the request context.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := m.sessions.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, service.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: err.Error(), Code: dto.CodeUnauthenticated})
				return
			}
			m.logger.Error("Session verification failed", err, logger.Path(c.FullPath()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Error{Error: "internal server error", Code: dto.CodeInternal})
			return
		}

		c.Set(string(utils.UserKey), user)
		c.Request = c.Request.WithContext(utils.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// ResolveTenant derives the tenant scope from the authenticated user. The slug
// is never taken from client input.
func (m *AuthMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUserFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "authentication required", Code: dto.CodeUnauthenticated})
			return
		}

		c.Set(string(utils.TenantSlugKey), user.TenantSlug)
		c.Next()
	}
}

// RequireRole rejects users whose role differs from role
func (m *AuthMiddleware) RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utils.GetUserFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Error{Error: "authentication required", Code: dto.CodeUnauthenticated})
			return
		}

		if user.Role != role {
			m.logger.Warn("Role check failed",
				logger.UserID(user.ID),
				logger.TenantSlug(user.TenantSlug),
				logger.Path(c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Error{Error: "access denied, " + role.String() + " role required", Code: dto.CodeForbidden})
			return
		}

		c.Next()
	}
}
