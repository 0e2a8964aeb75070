package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/authz"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/cryptox"
	"github.com/kingrain94/notes-api/pkg/logger"
)

var errUserExists = newError(ErrConflict, "user already exists")

// IssuedInvitation is the outcome of inviting someone: the stored invitation
// and the link the admin forwards to the invitee.
type IssuedInvitation struct {
	Invitation *domain.Invitation
	Link       string
}

type InvitationConfig struct {
	TTL         time.Duration
	FrontendURL string
}

// InvitationService issues, lists and redeems tenant invitations
type InvitationService struct {
	repo     repository.Repository
	sessions *SessionService
	hasher   PasswordHasher
	log      *logger.Logger
	cfg      InvitationConfig
	now      func() time.Time
	newToken func() (string, error)
}

func NewInvitationService(repo repository.Repository, sessions *SessionService, hasher PasswordHasher, cfg InvitationConfig, log *logger.Logger) *InvitationService {
	if cfg.TTL <= 0 {
		cfg.TTL = domain.DefaultInvitationTTL
	}
	return &InvitationService{
		repo:     repo,
		sessions: sessions,
		hasher:   hasher,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
		newToken: func() (string, error) {
			return cryptox.GenerateToken(cryptox.TokenSize256)
		},
	}
}

// Issue invites email into the actor's tenant. The tenant row is locked for
// the duration so two admins cannot race a second pending invitation in.
func (s *InvitationService) Issue(ctx context.Context, actor *domain.User, req dto.InviteUserRequest) (*IssuedInvitation, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, validationError("role must be admin or member")
	}
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, validationError("email is required")
	}

	subject := authz.SubjectFromUser(actor)
	target := authz.Resource{Kind: authz.KindUser, TenantSlug: actor.TenantSlug}
	if err := authz.Authorize(subject, authz.ActionInvite, target); err != nil {
		s.log.Warn("invitation denied", logger.UserID(actor.ID), logger.TenantSlug(actor.TenantSlug))
		return nil, forbidden(err)
	}

	raw, err := s.newToken()
	if err != nil {
		return nil, err
	}

	now := s.now()
	inviter := actor.ID
	invitation := &domain.Invitation{
		TenantSlug: actor.TenantSlug,
		Email:      email,
		Role:       role,
		InvitedBy:  &inviter,
		Token:      raw,
		ExpiresAt:  now.Add(s.cfg.TTL),
		CreatedAt:  now,
	}

	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if _, err := tx.Tenant().LockBySlug(ctx, actor.TenantSlug); err != nil {
			return fmt.Errorf("failed to lock tenant: %w", err)
		}

		exists, err := tx.User().EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return errUserExists
		}

		pending, err := tx.Invitation().HasPending(ctx, actor.TenantSlug, email, now)
		if err != nil {
			return fmt.Errorf("failed to check pending invitations: %w", err)
		}
		if pending {
			return ErrInvitationPending
		}

		if err := tx.Invitation().Create(ctx, invitation); err != nil {
			return fmt.Errorf("failed to store invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("invitation issued",
		logger.TenantSlug(actor.TenantSlug),
		logger.UserID(actor.ID),
		logger.InvitationID(invitation.ID),
	)

	return &IssuedInvitation{
		Invitation: invitation,
		Link:       s.joinLink(raw),
	}, nil
}

func (s *InvitationService) joinLink(raw string) string {
	return s.cfg.FrontendURL + "/register?invite=" + url.QueryEscape(raw)
}

// Accept redeems an invitation token for a new account. The whole exchange is
// one transaction, and the acceptance stamp is conditional on the invitation
// still being open, so a token can create at most one user.
func (s *InvitationService) Accept(ctx context.Context, req dto.RegisterRequest) (*Session, error) {
	if req.InvitationToken == "" {
		return nil, validationError("invitation token required")
	}
	email := domain.NormalizeEmail(req.Email)
	if email == "" {
		return nil, validationError("email is required")
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	var (
		user   *domain.User
		tenant *domain.Tenant
		invID  string
	)
	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		now := s.now()

		invitation, err := tx.Invitation().GetPendingByTokenForUpdate(ctx, req.InvitationToken, now)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrInvalidOrExpiredInvitation
			}
			return fmt.Errorf("failed to load invitation: %w", err)
		}
		invID = invitation.ID

		// the lock may have waited on a concurrent acceptance
		if !invitation.IsPending(now) || invitation.Email != email {
			return ErrInvalidOrExpiredInvitation
		}

		exists, err := tx.User().EmailExists(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return ErrEmailAlreadyExists
		}

		user = &domain.User{
			Email:        email,
			PasswordHash: hash,
			Role:         invitation.Role,
			TenantSlug:   invitation.TenantSlug,
		}
		if err := tx.User().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		accepted, err := tx.Invitation().MarkAccepted(ctx, invitation.ID, now)
		if err != nil {
			return fmt.Errorf("failed to accept invitation: %w", err)
		}
		if !accepted {
			return ErrInvalidOrExpiredInvitation
		}

		tenant, err = tx.Tenant().GetBySlug(ctx, invitation.TenantSlug)
		if err != nil {
			return fmt.Errorf("failed to load tenant: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidOrExpiredInvitation) {
			s.log.Warn("invitation rejected", logger.InvitationID(invID))
		}
		return nil, err
	}

	s.log.Info("invitation accepted",
		logger.TenantSlug(user.TenantSlug),
		logger.UserID(user.ID),
		logger.InvitationID(invID),
	)

	signed, err := s.sessions.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: signed, User: user, Tenant: tenant}, nil
}

// ListPending returns the open invitations of a tenant, newest first
func (s *InvitationService) ListPending(ctx context.Context, tenantSlug string) ([]domain.Invitation, error) {
	invitations, err := s.repo.Invitation().ListPending(ctx, tenantSlug, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}
