package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/utils"
	"github.com/kingrain94/notes-api/pkg/logger"
)

const (
	adminID = "11111111-1111-4111-8111-111111111111"
	bobID   = "22222222-2222-4222-8222-222222222222"
	noteID  = "33333333-3333-4333-8333-333333333333"
)

func acmeAdmin() *domain.User {
	return &domain.User{ID: adminID, Email: "admin@acme.test", Role: domain.RoleAdmin, TenantSlug: "acme"}
}

func acmeBob() *domain.User {
	return &domain.User{ID: bobID, Email: "bob@acme.test", Role: domain.RoleMember, TenantSlug: "acme"}
}

func acmeTenant(plan domain.Plan) *domain.Tenant {
	return &domain.Tenant{Slug: "acme", Name: "Acme", SubscriptionPlan: plan, Status: domain.TenantStatusActive}
}

func newTestBase() *BaseHandler {
	gin.SetMode(gin.TestMode)
	return NewBaseHandler(logger.NewNop(), false)
}

// asUser stands in for the auth middleware
func asUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(string(utils.UserKey), user)
		}
	}
}

func doJSON(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
