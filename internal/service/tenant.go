package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/cryptox"
	"github.com/kingrain94/notes-api/pkg/logger"
)

const (
	minPasswordLength = 6
	// bcrypt refuses longer inputs
	maxPasswordBytes = 72
)

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return validationError("password must be at least %d characters", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return validationError("password must be at most %d bytes", maxPasswordBytes)
	}
	return nil
}

// Session is what a successful login or registration hands back to the client
type Session struct {
	Token  string
	User   *domain.User
	Tenant *domain.Tenant
}

// TenantService provisions new organizations together with their first admin
type TenantService struct {
	repo     repository.Repository
	sessions *SessionService
	hasher   PasswordHasher
	log      *logger.Logger
	suffix   func() (string, error)
}

func NewTenantService(repo repository.Repository, sessions *SessionService, hasher PasswordHasher, log *logger.Logger) *TenantService {
	return &TenantService{
		repo:     repo,
		sessions: sessions,
		hasher:   hasher,
		log:      log,
		suffix: func() (string, error) {
			return cryptox.RandomString(slugSuffixLength, slugSuffixAlphabet)
		},
	}
}

// Register creates a free-plan tenant and its admin in one transaction and
// signs the admin in.
func (s *TenantService) Register(ctx context.Context, req dto.RegisterTenantRequest) (*Session, error) {
	name := strings.TrimSpace(req.OrganizationName)
	if name == "" {
		return nil, validationError("organization name is required")
	}
	email := domain.NormalizeEmail(req.AdminEmail)
	if email == "" {
		return nil, validationError("admin email is required")
	}
	if err := validatePassword(req.AdminPassword); err != nil {
		return nil, err
	}

	exists, err := s.repo.User().EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(req.AdminPassword)
	if err != nil {
		return nil, err
	}

	tenant := &domain.Tenant{
		Name:             name,
		SubscriptionPlan: domain.PlanFree,
		Status:           domain.TenantStatusActive,
	}
	admin := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
	}

	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if err := s.allocateSlug(ctx, tx, Slugify(name), tenant); err != nil {
			return err
		}

		admin.TenantSlug = tenant.Slug
		if err := tx.User().Create(ctx, admin); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("failed to create admin user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tenant registered", logger.TenantSlug(tenant.Slug), logger.UserID(admin.ID))

	signed, err := s.sessions.Issue(admin)
	if err != nil {
		return nil, err
	}
	return &Session{Token: signed, User: admin, Tenant: tenant}, nil
}

// allocateSlug looks for a free slug and inserts the tenant under it. Each
// insert runs in a savepoint so a concurrent registration that wins the same
// slug is treated like any other collision.
func (s *TenantService) allocateSlug(ctx context.Context, tx repository.Repository, base string, tenant *domain.Tenant) error {
	candidate := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		if attempt > 0 {
			suffix, err := s.suffix()
			if err != nil {
				return fmt.Errorf("failed to generate slug suffix: %w", err)
			}
			candidate = base + "-" + suffix
		}

		taken, err := tx.Tenant().SlugExists(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			continue
		}

		tenant.Slug = candidate
		err = tx.Transaction(ctx, func(sp repository.Repository) error {
			return sp.Tenant().Create(ctx, tenant)
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("failed to create tenant: %w", err)
		}
		s.log.Warn("slug taken concurrently, retrying", logger.TenantSlug(candidate))
	}

	tenant.Slug = ""
	s.log.Warn("slug allocation exhausted", logger.TenantSlug(base))
	return ErrSlugAllocationFailed
}
