package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
)

//go:generate mockery --name NoteService --output ./mocks
type NoteService interface {
	List(ctx context.Context, actor *domain.User) ([]domain.Note, *domain.NoteListMeta, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Note, error)
	Create(ctx context.Context, actor *domain.User, req dto.NoteRequest) (*domain.Note, error)
	Update(ctx context.Context, actor *domain.User, id string, req dto.NoteRequest) (*domain.Note, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}

type NoteHandler struct {
	*BaseHandler
	service NoteService
}

func NewNoteHandler(base *BaseHandler, service NoteService) *NoteHandler {
	return &NoteHandler{BaseHandler: base, service: service}
}

// ListNotes godoc
// @Summary List notes
// @Description Admins see every note of their tenant, members only their own
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.NoteListResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /notes [get]
func (h *NoteHandler) ListNotes(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	notes, meta, err := h.service.List(h.RequestCtx(c), actor)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoteListResponse{
		Success: true,
		Notes:   dto.FromNotes(notes),
		Meta:    *meta,
	})
}

// GetNote godoc
// @Summary Get a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} dto.NoteEnvelope
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /notes/{id} [get]
func (h *NoteHandler) GetNote(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	note, err := h.service.Get(h.RequestCtx(c), actor, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoteEnvelope{Success: true, Note: dto.FromNote(note)})
}

// CreateNote godoc
// @Summary Create a note
// @Description Free-plan tenants are limited to 3 notes
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.NoteRequest true "Note"
// @Success 201 {object} dto.NoteEnvelope
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error "limit_reached is set when the plan's note limit is hit"
// @Failure 500 {object} dto.Error
// @Router /notes [post]
func (h *NoteHandler) CreateNote(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	note, err := h.service.Create(h.RequestCtx(c), actor, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NoteEnvelope{Success: true, Note: dto.FromNote(note)})
}

// UpdateNote godoc
// @Summary Update a note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Param body body dto.NoteRequest true "Note"
// @Success 200 {object} dto.NoteEnvelope
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /notes/{id} [put]
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	var req dto.NoteRequest
	if !h.BindJSON(c, &req) {
		return
	}

	note, err := h.service.Update(h.RequestCtx(c), actor, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NoteEnvelope{Success: true, Note: dto.FromNote(note)})
}

// DeleteNote godoc
// @Summary Delete a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Note ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /notes/{id} [delete]
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), actor, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Note deleted successfully"})
}
