package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
)

//go:generate mockery --name PlanService --output ./mocks
type PlanService interface {
	Upgrade(ctx context.Context, actor *domain.User, slug string) (*domain.Tenant, error)
	Downgrade(ctx context.Context, actor *domain.User, slug string) (*domain.Tenant, error)
}

type TenantHandler struct {
	*BaseHandler
	plans PlanService
}

func NewTenantHandler(base *BaseHandler, plans PlanService) *TenantHandler {
	return &TenantHandler{BaseHandler: base, plans: plans}
}

// Upgrade godoc
// @Summary Upgrade to pro
// @Description Lift the note limit of the admin's own tenant
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Success 200 {object} dto.TenantEnvelope
// @Failure 400 {object} dto.Error "already on pro"
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /tenants/{slug}/upgrade [post]
func (h *TenantHandler) Upgrade(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	tenant, err := h.plans.Upgrade(h.RequestCtx(c), actor, c.Param("slug"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TenantEnvelope{
		Success: true,
		Message: "Subscription upgraded to pro",
		Tenant:  dto.FromTenant(tenant),
	})
}

// Downgrade godoc
// @Summary Downgrade to free
// @Description Refused with needs_action while the tenant holds more notes than the free plan allows
// @Tags tenants
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Tenant slug"
// @Success 200 {object} dto.TenantEnvelope
// @Failure 400 {object} dto.Error "already on free"
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error "needs_action and note_count are set when notes block the downgrade"
// @Failure 500 {object} dto.Error
// @Router /tenants/{slug}/downgrade [post]
func (h *TenantHandler) Downgrade(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	tenant, err := h.plans.Downgrade(h.RequestCtx(c), actor, c.Param("slug"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TenantEnvelope{
		Success: true,
		Message: "Subscription downgraded to free",
		Tenant:  dto.FromTenant(tenant),
	})
}
