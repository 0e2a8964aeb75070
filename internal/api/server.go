package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/middleware"
)

const maxRequestSize = 1 << 20

// Services groups everything the handlers call into
type Services struct {
	Tenants     TenantRegistrar
	Accounts    AccountService
	Invitations InvitationService
	Notes       NoteService
	Admin       AdminService
	Plans       PlanService
}

type Server struct {
	auth       *AuthHandler
	notes      *NoteHandler
	admin      *AdminHandler
	tenants    *TenantHandler
	authMW     *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	base *BaseHandler,
	services Services,
	authMW *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
) *Server {
	return &Server{
		auth:       NewAuthHandler(base, services.Tenants, services.Accounts, services.Invitations),
		notes:      NewNoteHandler(base, services.Notes),
		admin:      NewAdminHandler(base, services.Admin, services.Invitations),
		tenants:    NewTenantHandler(base, services.Plans),
		authMW:     authMW,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// NotFound answers requests that match no route
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Error{Error: "Route not found", Code: dto.CodeNotFound})
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.RejectControlCharacters())
	api.Use(s.validation.ValidateRequestSize(maxRequestSize))
	api.Use(s.validation.ValidateContentType("application/json"))
	api.Use(s.rateLimit.GlobalRateLimit())

	public := api.Group("/auth")
	{
		public.POST("/register-tenant", s.auth.RegisterTenant)
		public.POST("/register", s.auth.Register)
		public.POST("/login", s.auth.Login)
	}

	authenticated := api.Group("", s.authMW.Authenticate(), s.authMW.ResolveTenant(), s.rateLimit.TenantRateLimit())
	{
		authenticated.GET("/auth/profile", s.auth.Profile)

		notes := authenticated.Group("/notes")
		{
			notes.GET("", s.notes.ListNotes)
			notes.POST("", s.notes.CreateNote)
			notes.GET("/:id", s.notes.GetNote)
			notes.PUT("/:id", s.notes.UpdateNote)
			notes.DELETE("/:id", s.notes.DeleteNote)
		}

		admin := authenticated.Group("/admin", s.authMW.RequireRole(domain.RoleAdmin))
		{
			admin.GET("/users", s.admin.ListUsers)
			admin.POST("/invite-user", s.admin.InviteUser)
			admin.DELETE("/users/:userId", s.admin.RemoveUser)
			admin.POST("/notes/export", s.admin.ExportNotes)
		}

		// role and tenant are checked by the plan service so a foreign slug reports the tenant mismatch
		tenants := authenticated.Group("/tenants/:slug")
		{
			tenants.POST("/upgrade", s.tenants.Upgrade)
			tenants.POST("/downgrade", s.tenants.Downgrade)
		}
	}
}
