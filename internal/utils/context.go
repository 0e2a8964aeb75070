package utils

import (
	"context"
	"errors"

	"github.com/kingrain94/notes-api/internal/domain"
)

type ContextKey string

const (
	UserKey       ContextKey = "user"
	TenantSlugKey ContextKey = "tenant_slug"
)

var (
	ErrNoUserInContext = errors.New("no authenticated user found in context")
	ErrInvalidUserType = errors.New("invalid user type in context")
)

// WithUser stores the verified user on ctx
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUserFromContext(ctx context.Context) (*domain.User, error) {
	value := ctx.Value(UserKey)
	if value == nil {
		return nil, ErrNoUserInContext
	}

	user, ok := value.(*domain.User)
	if !ok {
		return nil, ErrInvalidUserType
	}
	if user == nil {
		return nil, ErrNoUserInContext
	}
	return user, nil
}
