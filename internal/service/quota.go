package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kingrain94/notes-api/internal/authz"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/logger"
)

var (
	errAlreadyPro   = newError(ErrInvalidTransition, "tenant is already on the pro plan")
	errAlreadyFree  = newError(ErrInvalidTransition, "tenant is already on the free plan")
	errTenantAbsent = newError(ErrNotFound, "tenant not found")
)

// QuotaService enforces plan note ceilings and gates plan transitions. Every
// count it takes covers all notes of the tenant.
type QuotaService struct {
	repo repository.Repository
	log  *logger.Logger
	now  func() time.Time
}

func NewQuotaService(repo repository.Repository, log *logger.Logger) *QuotaService {
	return &QuotaService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Usage reports the tenant's plan and note volume
func (s *QuotaService) Usage(ctx context.Context, tenantSlug string) (*domain.TenantUsage, error) {
	tenant, err := s.repo.Tenant().GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTenantAbsent
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	count, err := s.repo.Note().CountByTenant(ctx, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}

	return &domain.TenantUsage{
		Plan:         tenant.SubscriptionPlan,
		NoteCount:    count,
		LimitReached: tenant.SubscriptionPlan.LimitReached(count),
	}, nil
}

// ReserveNote must run inside the transaction that inserts the note. It locks
// the tenant row so concurrent creations in one tenant serialize, then refuses
// when the plan's ceiling is already reached.
func (s *QuotaService) ReserveNote(ctx context.Context, tx repository.Repository, tenantSlug string) error {
	tenant, err := tx.Tenant().LockBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errTenantAbsent
		}
		return fmt.Errorf("failed to lock tenant: %w", err)
	}

	if _, limited := tenant.SubscriptionPlan.NoteLimit(); !limited {
		return nil
	}

	count, err := tx.Note().CountByTenant(ctx, tenantSlug)
	if err != nil {
		return fmt.Errorf("failed to count notes: %w", err)
	}
	if tenant.SubscriptionPlan.LimitReached(count) {
		s.log.Warn("note quota exceeded", logger.TenantSlug(tenantSlug), logger.NoteCount(count))
		return ErrQuotaExceeded
	}
	return nil
}

// Upgrade moves the actor's tenant from free to pro
func (s *QuotaService) Upgrade(ctx context.Context, actor *domain.User, slug string) (*domain.Tenant, error) {
	if err := authz.Authorize(authz.SubjectFromUser(actor), authz.ActionUpgrade, authz.TenantResource(slug)); err != nil {
		s.log.Warn("plan upgrade denied", logger.UserID(actor.ID), logger.TenantSlug(slug))
		return nil, forbidden(err)
	}

	var updated *domain.Tenant
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		tenant, err := s.lockTenant(ctx, tx, slug)
		if err != nil {
			return err
		}
		if tenant.SubscriptionPlan == domain.PlanPro {
			return errAlreadyPro
		}

		updated, err = tx.Tenant().UpdatePlan(ctx, slug, domain.PlanPro, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("tenant upgraded", logger.TenantSlug(slug), logger.UserID(actor.ID))
	return updated, nil
}

// Downgrade moves the actor's tenant from pro to free. It never deletes notes;
// a tenant over the free ceiling gets a QuotaBlockedError instead.
func (s *QuotaService) Downgrade(ctx context.Context, actor *domain.User, slug string) (*domain.Tenant, error) {
	if err := authz.Authorize(authz.SubjectFromUser(actor), authz.ActionDowngrade, authz.TenantResource(slug)); err != nil {
		s.log.Warn("plan downgrade denied", logger.UserID(actor.ID), logger.TenantSlug(slug))
		return nil, forbidden(err)
	}

	var updated *domain.Tenant
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		tenant, err := s.lockTenant(ctx, tx, slug)
		if err != nil {
			return err
		}
		if tenant.SubscriptionPlan != domain.PlanPro {
			return errAlreadyFree
		}

		count, err := tx.Note().CountByTenant(ctx, slug)
		if err != nil {
			return fmt.Errorf("failed to count notes: %w", err)
		}
		limit, _ := domain.PlanFree.NoteLimit()
		if count > limit {
			return &QuotaBlockedError{Count: count, Limit: limit}
		}

		updated, err = tx.Tenant().UpdatePlan(ctx, slug, domain.PlanFree, s.now())
		return err
	})
	if err != nil {
		var blocked *QuotaBlockedError
		if errors.As(err, &blocked) {
			s.log.Warn("downgrade blocked by note volume", logger.TenantSlug(slug), logger.NoteCount(blocked.Count))
		}
		return nil, err
	}

	s.log.Info("tenant downgraded", logger.TenantSlug(slug), logger.UserID(actor.ID))
	return updated, nil
}

func (s *QuotaService) lockTenant(ctx context.Context, tx repository.Repository, slug string) (*domain.Tenant, error) {
	tenant, err := tx.Tenant().LockBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTenantAbsent
		}
		return nil, fmt.Errorf("failed to lock tenant: %w", err)
	}
	return tenant, nil
}
