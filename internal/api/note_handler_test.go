package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/api/mocks"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/service"
)

type NoteHandlerTestSuite struct {
	suite.Suite
	service *mocks.NoteService
	router  *gin.Engine
}

func (s *NoteHandlerTestSuite) SetupTest() {
	s.service = new(mocks.NoteService)
	handler := NewNoteHandler(newTestBase(), s.service)

	s.router = gin.New()
	notes := s.router.Group("/notes", asUser(acmeBob()))
	notes.GET("", handler.ListNotes)
	notes.POST("", handler.CreateNote)
	notes.GET("/:id", handler.GetNote)
	notes.PUT("/:id", handler.UpdateNote)
	notes.DELETE("/:id", handler.DeleteNote)
}

func TestNoteHandler(t *testing.T) {
	suite.Run(t, new(NoteHandlerTestSuite))
}

func bobsNote() *domain.Note {
	return &domain.Note{ID: noteID, Title: "groceries", Content: "milk", UserID: bobID, TenantSlug: "acme", AuthorEmail: "bob@acme.test"}
}

func (s *NoteHandlerTestSuite) TestListNotes() {
	meta := &domain.NoteListMeta{Total: 1, SubscriptionPlan: domain.PlanFree, LimitReached: true, UserRole: domain.RoleMember}
	s.service.On("List", mock.Anything, acmeBob()).Return([]domain.Note{*bobsNote()}, meta, nil)

	w := doJSON(s.router, http.MethodGet, "/notes", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp struct {
		Success bool               `json:"success"`
		Notes   []dto.NoteResponse `json:"notes"`
		Meta    map[string]any     `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Success)
	s.Len(resp.Notes, 1)
	s.Equal(float64(1), resp.Meta["total"])
	s.Equal("free", resp.Meta["subscription_plan"])
	s.Equal(true, resp.Meta["limit_reached"])
	s.Equal("member", resp.Meta["user_role"])
}

func (s *NoteHandlerTestSuite) TestCreateNote_Success() {
	req := dto.NoteRequest{Title: "groceries", Content: "milk"}
	s.service.On("Create", mock.Anything, acmeBob(), req).Return(bobsNote(), nil)

	w := doJSON(s.router, http.MethodPost, "/notes", req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.NoteEnvelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(noteID, resp.Note.ID)
	s.Equal("bob@acme.test", resp.Note.AuthorEmail)
}

func (s *NoteHandlerTestSuite) TestCreateNote_LimitReached() {
	req := dto.NoteRequest{Title: "fourth"}
	s.service.On("Create", mock.Anything, acmeBob(), req).Return(nil, service.ErrQuotaExceeded)

	w := doJSON(s.router, http.MethodPost, "/notes", req)

	s.Equal(http.StatusForbidden, w.Code)
	var resp dto.Error
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.LimitReached)
	s.Equal(dto.CodeQuotaExceeded, resp.Code)
}

func (s *NoteHandlerTestSuite) TestCreateNote_MissingTitle() {
	w := doJSON(s.router, http.MethodPost, "/notes", map[string]string{"content": "no title"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.service.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *NoteHandlerTestSuite) TestGetNote() {
	s.service.On("Get", mock.Anything, acmeBob(), noteID).Return(bobsNote(), nil)
	s.service.On("Get", mock.Anything, acmeBob(), "missing").Return(nil, service.ErrNoteNotFound)

	s.Equal(http.StatusOK, doJSON(s.router, http.MethodGet, "/notes/"+noteID, nil).Code)
	s.Equal(http.StatusNotFound, doJSON(s.router, http.MethodGet, "/notes/missing", nil).Code)
}

func (s *NoteHandlerTestSuite) TestUpdateNote() {
	req := dto.NoteRequest{Title: "errands", Content: "eggs"}
	updated := bobsNote()
	updated.Title = "errands"
	s.service.On("Update", mock.Anything, acmeBob(), noteID, req).Return(updated, nil)

	w := doJSON(s.router, http.MethodPut, "/notes/"+noteID, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"title":"errands"`)
}

func (s *NoteHandlerTestSuite) TestDeleteNote() {
	s.service.On("Delete", mock.Anything, acmeBob(), noteID).Return(nil)

	w := doJSON(s.router, http.MethodDelete, "/notes/"+noteID, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"success":true`)
	s.service.AssertExpectations(s.T())
}
