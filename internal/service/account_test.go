package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/cryptox"
	"github.com/kingrain94/notes-api/pkg/logger"
)

type AccountServiceTestSuite struct {
	suite.Suite
	store   *repoMocks
	tokens  *mocks.TokenManager
	hasher  *mocks.PasswordHasher
	service *AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.store = newRepoMocks()
	s.tokens = new(mocks.TokenManager)
	s.hasher = new(mocks.PasswordHasher)

	log := logger.NewNop()
	s.service = NewAccountService(s.store.repo, NewSessionService(s.store.repo, s.tokens, log), s.hasher, log)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	user := acmeBob()
	user.PasswordHash = "hashed"
	s.store.users.On("GetByEmail", ctx, "bob@acme.test").Return(user, nil)
	s.hasher.On("Verify", "password", "hashed").Return(nil)
	s.store.tenants.On("GetBySlug", ctx, "acme").Return(tenantOn(domain.PlanPro), nil)
	s.tokens.On("Sign", mock.Anything).Return("jwt", nil)

	session, err := s.service.Login(ctx, dto.LoginRequest{Email: "bob@acme.test", Password: "password"})

	s.Require().NoError(err)
	s.Equal("jwt", session.Token)
	s.Equal(bobID, session.User.ID)
	s.Equal(domain.PlanPro, session.Tenant.SubscriptionPlan)
	s.tokens.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestLogin_UnknownEmailAndWrongPasswordLookAlike() {
	ctx := context.Background()
	user := acmeBob()
	user.PasswordHash = "hashed"
	s.store.users.On("GetByEmail", ctx, "ghost@acme.test").Return(nil, repository.ErrNotFound)
	s.store.users.On("GetByEmail", ctx, "bob@acme.test").Return(user, nil)
	s.hasher.On("Verify", "wrong", "hashed").Return(cryptox.ErrPasswordMismatch)

	_, unknownErr := s.service.Login(ctx, dto.LoginRequest{Email: "ghost@acme.test", Password: "wrong"})
	_, wrongErr := s.service.Login(ctx, dto.LoginRequest{Email: "bob@acme.test", Password: "wrong"})

	s.ErrorIs(unknownErr, ErrInvalidLogin)
	s.ErrorIs(wrongErr, ErrInvalidLogin)
	s.Equal(unknownErr.Error(), wrongErr.Error())
	s.tokens.AssertNotCalled(s.T(), "Sign", mock.Anything)
}

func (s *AccountServiceTestSuite) TestLogin_StoreFailure() {
	ctx := context.Background()
	s.store.users.On("GetByEmail", ctx, "bob@acme.test").Return(nil, errors.New("connection reset"))

	_, err := s.service.Login(ctx, dto.LoginRequest{Email: "bob@acme.test", Password: "password"})

	s.Error(err)
	s.NotErrorIs(err, ErrUnauthenticated)
}

func (s *AccountServiceTestSuite) TestProfile() {
	ctx := context.Background()
	s.store.tenants.On("GetBySlug", ctx, "acme").Return(tenantOn(domain.PlanFree), nil)

	user, tenant, err := s.service.Profile(ctx, acmeAdmin())

	s.Require().NoError(err)
	s.Equal(adminID, user.ID)
	s.Equal("acme", tenant.Slug)
}

func (s *AccountServiceTestSuite) TestProfile_TenantGone() {
	ctx := context.Background()
	s.store.tenants.On("GetBySlug", ctx, "acme").Return(nil, repository.ErrNotFound)

	_, _, err := s.service.Profile(ctx, acmeAdmin())

	s.ErrorIs(err, ErrNotFound)
}
