package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/cryptox"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// AccountService handles password login and the profile of the signed-in user
type AccountService struct {
	repo     repository.Repository
	sessions *SessionService
	hasher   PasswordHasher
	log      *logger.Logger
}

func NewAccountService(repo repository.Repository, sessions *SessionService, hasher PasswordHasher, log *logger.Logger) *AccountService {
	return &AccountService{
		repo:     repo,
		sessions: sessions,
		hasher:   hasher,
		log:      log,
	}
}

// Login answers unknown emails and wrong passwords with the same error
func (s *AccountService) Login(ctx context.Context, req dto.LoginRequest) (*Session, error) {
	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidLogin
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.hasher.Verify(req.Password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			s.log.Warn("login with wrong password", logger.UserID(user.ID))
			return nil, ErrInvalidLogin
		}
		return nil, err
	}

	tenant, err := s.tenantOf(ctx, user)
	if err != nil {
		return nil, err
	}

	signed, err := s.sessions.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: signed, User: user, Tenant: tenant}, nil
}

// Profile returns user alongside a fresh read of their tenant
func (s *AccountService) Profile(ctx context.Context, user *domain.User) (*domain.User, *domain.Tenant, error) {
	tenant, err := s.tenantOf(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tenant, nil
}

func (s *AccountService) tenantOf(ctx context.Context, user *domain.User) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetBySlug(ctx, user.TenantSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTenantAbsent
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return tenant, nil
}
