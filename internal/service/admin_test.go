package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/logger"
)

type AdminServiceTestSuite struct {
	suite.Suite
	store   *repoMocks
	exports *mocks.ExportQueue
	service *AdminService
}

func (s *AdminServiceTestSuite) SetupTest() {
	s.store = newRepoMocks()
	s.exports = new(mocks.ExportQueue)

	log := logger.NewNop()
	sessions := NewSessionService(s.store.repo, new(mocks.TokenManager), log)
	invitations := NewInvitationService(s.store.repo, sessions, new(mocks.PasswordHasher), InvitationConfig{}, log)
	invitations.now = func() time.Time { return fixedNow }
	s.service = NewAdminService(s.store.repo, invitations, s.exports, log)
}

func TestAdminService(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) TestListUsers() {
	ctx := context.Background()
	s.store.users.On("ListByTenant", ctx, "acme").Return([]domain.User{*acmeAdmin(), *acmeBob()}, nil)
	s.store.invitations.On("ListPending", ctx, "acme", fixedNow).Return([]domain.Invitation{{ID: "inv-1", Email: "carol@acme.test"}}, nil)

	dir, err := s.service.ListUsers(ctx, acmeAdmin())

	s.Require().NoError(err)
	s.Len(dir.Users, 2)
	s.Len(dir.Invitations, 1)
}

func (s *AdminServiceTestSuite) TestListUsers_MemberDenied() {
	_, err := s.service.ListUsers(context.Background(), acmeBob())

	s.ErrorIs(err, ErrAdminOnly)
	s.store.users.AssertNotCalled(s.T(), "ListByTenant", mock.Anything, mock.Anything)
}

func (s *AdminServiceTestSuite) TestRemoveUser_Success() {
	ctx := context.Background()
	s.store.users.On("GetInTenant", ctx, "acme", bobID).Return(acmeBob(), nil)
	s.store.users.On("Delete", ctx, "acme", bobID).Return(nil)

	err := s.service.RemoveUser(ctx, acmeAdmin(), bobID)

	s.NoError(err)
	s.store.assertExpectations(s.T())
}

func (s *AdminServiceTestSuite) TestRemoveUser_Self() {
	err := s.service.RemoveUser(context.Background(), acmeAdmin(), adminID)

	s.ErrorIs(err, ErrSelfRemoval)
	s.store.users.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AdminServiceTestSuite) TestRemoveUser_MemberDenied() {
	err := s.service.RemoveUser(context.Background(), acmeBob(), adminID)

	s.ErrorIs(err, ErrAdminOnly)
}

func (s *AdminServiceTestSuite) TestRemoveUser_OtherTenantLooksAbsent() {
	ctx := context.Background()
	s.store.users.On("GetInTenant", ctx, "acme", otherID).Return(nil, repository.ErrNotFound)

	err := s.service.RemoveUser(ctx, acmeAdmin(), otherID)

	s.ErrorIs(err, ErrUserNotFound)
	s.store.users.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AdminServiceTestSuite) TestRemoveUser_MalformedID() {
	err := s.service.RemoveUser(context.Background(), acmeAdmin(), "not-a-uuid")

	s.ErrorIs(err, ErrNotFound)
	s.store.users.AssertNotCalled(s.T(), "GetInTenant", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AdminServiceTestSuite) TestScheduleExport() {
	ctx := context.Background()
	s.exports.On("SendExportMessage", ctx, "acme", adminID).Return(nil)

	s.NoError(s.service.ScheduleExport(ctx, acmeAdmin()))
	s.exports.AssertExpectations(s.T())
}

func (s *AdminServiceTestSuite) TestScheduleExport_QueueDown() {
	ctx := context.Background()
	s.exports.On("SendExportMessage", ctx, "acme", adminID).Return(errors.New("queue unavailable"))

	err := s.service.ScheduleExport(ctx, acmeAdmin())

	s.ErrorContains(err, "queue unavailable")
}

func (s *AdminServiceTestSuite) TestScheduleExport_MemberDenied() {
	err := s.service.ScheduleExport(context.Background(), acmeBob())

	s.ErrorIs(err, ErrAdminOnly)
	s.exports.AssertNotCalled(s.T(), "SendExportMessage", mock.Anything, mock.Anything, mock.Anything)
}
