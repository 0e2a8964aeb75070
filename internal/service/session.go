package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
	"github.com/kingrain94/notes-api/pkg/logger"
	"github.com/kingrain94/notes-api/pkg/token"
)

var (
	errMissingHeader   = newError(ErrUnauthenticated, "access token required")
	errMalformedHeader = newError(ErrUnauthenticated, "invalid authorization header format")
)

// SessionService turns bearer credentials into live user records and issues
// new credentials after a successful login or registration.
type SessionService struct {
	repo   repository.Repository
	tokens TokenManager
	log    *logger.Logger
}

func NewSessionService(repo repository.Repository, tokens TokenManager, log *logger.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

// Verify resolves an Authorization header value to the user it names. The
// user is re-read on every call so a removed account stops working at once.
func (s *SessionService) Verify(ctx context.Context, authorization string) (*domain.User, error) {
	raw, err := bearerToken(authorization)
	if err != nil {
		return nil, err
	}

	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, ErrUnknownSubject
	}

	user, err := s.repo.User().GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("token subject no longer exists", logger.UserID(claims.UserID))
			return nil, ErrUnknownSubject
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// Issue signs a session token for user
func (s *SessionService) Issue(user *domain.User) (string, error) {
	signed, err := s.tokens.Sign(token.Identity{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role.String(),
		TenantSlug: user.TenantSlug,
	})
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return signed, nil
}

func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errMissingHeader
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errMalformedHeader
	}
	return parts[1], nil
}
