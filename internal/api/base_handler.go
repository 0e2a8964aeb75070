package api

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

const internalErrorMessage = "internal server error"

type BaseHandler struct {
	logger *logger.Logger
	// production withholds the message of unexpected errors
	production bool
}

func NewBaseHandler(logger *logger.Logger, production bool) *BaseHandler {
	return &BaseHandler{logger: logger, production: production}
}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// CurrentUser returns the authenticated user, answering 401 itself when there is none
func (h *BaseHandler) CurrentUser(c *gin.Context) (*domain.User, bool) {
	user, err := utils.GetUserFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "authentication required", Code: dto.CodeUnauthenticated})
		return nil, false
	}
	return user, true
}

// BindJSON decodes the body into req, answering 400 itself on failure
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error(), Code: dto.CodeValidation})
		return false
	}
	return true
}

// RespondError writes the status and body that err maps to
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	status, body := h.errorResponse(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", err, logger.Path(c.FullPath()))
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

func (h *BaseHandler) errorResponse(err error) (int, dto.Error) {
	var blocked *service.QuotaBlockedError
	switch {
	case errors.As(err, &blocked):
		return http.StatusForbidden, dto.Error{
			Error:       err.Error(),
			Code:        dto.CodeQuotaBlocks,
			NeedsAction: true,
			NoteCount:   blocked.Count,
		}
	case errors.Is(err, service.ErrQuotaExceeded):
		return http.StatusForbidden, dto.Error{Error: err.Error(), Code: dto.CodeQuotaExceeded, LimitReached: true}
	case errors.Is(err, service.ErrSelfRemoval):
		return http.StatusBadRequest, dto.Error{Error: err.Error(), Code: dto.CodeSelfRemoval}
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, dto.Error{Error: err.Error(), Code: dto.CodeValidation}
	case errors.Is(err, service.ErrInvalidOrExpiredInvitation):
		return http.StatusBadRequest, dto.Error{Error: err.Error(), Code: dto.CodeInvalidInvitation}
	case errors.Is(err, service.ErrSlugAllocationFailed):
		return http.StatusBadRequest, dto.Error{Error: err.Error(), Code: dto.CodeSlugAllocation}
	case errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest, dto.Error{Error: err.Error(), Code: dto.CodeConflict}
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, dto.Error{Error: err.Error(), Code: dto.CodeUnauthenticated}
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, dto.Error{Error: err.Error(), Code: dto.CodeForbidden}
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, dto.Error{Error: err.Error(), Code: dto.CodeNotFound}
	}

	msg := internalErrorMessage
	if !h.production {
		msg = err.Error()
	}
	return http.StatusInternalServerError, dto.Error{Error: msg, Code: dto.CodeInternal}
}
