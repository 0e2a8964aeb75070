package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kingrain94/notes-api/internal/authz"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// UserDirectory is the admin view of a tenant's membership
type UserDirectory struct {
	Users       []domain.User
	Invitations []domain.Invitation
}

// AdminService covers user administration and export requests within the
// admin's own tenant.
type AdminService struct {
	repo        repository.Repository
	invitations *InvitationService
	exports     ExportQueue
	log         *logger.Logger
}

func NewAdminService(repo repository.Repository, invitations *InvitationService, exports ExportQueue, log *logger.Logger) *AdminService {
	return &AdminService{
		repo:        repo,
		invitations: invitations,
		exports:     exports,
		log:         log,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, actor *domain.User) (*UserDirectory, error) {
	subject := authz.SubjectFromUser(actor)
	if err := authz.Authorize(subject, authz.ActionList, authz.Resource{Kind: authz.KindUser, TenantSlug: actor.TenantSlug}); err != nil {
		return nil, forbidden(err)
	}

	users, err := s.repo.User().ListByTenant(ctx, actor.TenantSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	invitations, err := s.invitations.ListPending(ctx, actor.TenantSlug)
	if err != nil {
		return nil, err
	}

	return &UserDirectory{Users: users, Invitations: invitations}, nil
}

// RemoveUser deletes a user of the actor's tenant together with their notes.
// Removing oneself is refused whatever the role.
func (s *AdminService) RemoveUser(ctx context.Context, actor *domain.User, userID string) error {
	subject := authz.SubjectFromUser(actor)
	target := authz.Resource{Kind: authz.KindUser, TenantSlug: actor.TenantSlug, OwnerID: userID}
	if err := authz.Authorize(subject, authz.ActionRemove, target); err != nil {
		s.log.Warn("user removal denied", logger.UserID(actor.ID), logger.TenantSlug(actor.TenantSlug), logger.TargetUserID(userID))
		return forbidden(err)
	}

	if _, err := uuid.Parse(userID); err != nil {
		return ErrUserNotFound
	}

	// the lookup is tenant-scoped, so a user of another tenant is simply absent
	if _, err := s.repo.User().GetInTenant(ctx, actor.TenantSlug, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	if err := s.repo.User().Delete(ctx, actor.TenantSlug, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.log.Info("user removed", logger.TenantSlug(actor.TenantSlug), logger.UserID(actor.ID), logger.TargetUserID(userID))
	return nil
}

// ScheduleExport queues an asynchronous export of every note in the actor's tenant
func (s *AdminService) ScheduleExport(ctx context.Context, actor *domain.User) error {
	subject := authz.SubjectFromUser(actor)
	if err := authz.Authorize(subject, authz.ActionExport, authz.TenantResource(actor.TenantSlug)); err != nil {
		return forbidden(err)
	}

	if err := s.exports.SendExportMessage(ctx, actor.TenantSlug, actor.ID); err != nil {
		return fmt.Errorf("failed to queue export: %w", err)
	}

	s.log.Info("note export queued", logger.TenantSlug(actor.TenantSlug), logger.UserID(actor.ID))
	return nil
}
