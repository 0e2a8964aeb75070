package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kingrain94/notes-api/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")

	// ErrMissingTenantScope is returned for any note query issued without a tenant predicate
	ErrMissingTenantScope = errors.New("note query requires a tenant scope")
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	// LockBySlug takes a row lock on the tenant until the surrounding transaction ends
	LockBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	UpdatePlan(ctx context.Context, slug string, plan domain.Plan, at time.Time) (*domain.Tenant, error)
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByID always reads from the primary so a removed user is never served from a lagging replica
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetInTenant(ctx context.Context, tenantSlug, id string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantSlug string) ([]domain.User, error)
	Delete(ctx context.Context, tenantSlug, id string) error
}

//go:generate mockery --name InvitationRepository --output ../mocks
type InvitationRepository interface {
	Create(ctx context.Context, invitation *domain.Invitation) error
	HasPending(ctx context.Context, tenantSlug, email string, now time.Time) (bool, error)
	// GetPendingByTokenForUpdate locks the matching pending invitation row
	GetPendingByTokenForUpdate(ctx context.Context, token string, now time.Time) (*domain.Invitation, error)
	// MarkAccepted sets accepted_at only when it is still NULL and reports whether a row changed
	MarkAccepted(ctx context.Context, id string, at time.Time) (bool, error)
	ListPending(ctx context.Context, tenantSlug string, now time.Time) ([]domain.Invitation, error)
}

//go:generate mockery --name NoteRepository --output ../mocks
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	Get(ctx context.Context, scope domain.NoteScope, id string) (*domain.Note, error)
	List(ctx context.Context, scope domain.NoteScope) ([]domain.Note, error)
	Update(ctx context.Context, scope domain.NoteScope, id, title, content string, at time.Time) (*domain.Note, error)
	Delete(ctx context.Context, scope domain.NoteScope, id string) error
	CountByTenant(ctx context.Context, tenantSlug string) (int64, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	User() UserRepository
	Invitation() InvitationRepository
	Note() NoteRepository

	// Transaction runs fn against a Repository bound to a single transaction.
	// Calling Transaction on that Repository opens a savepoint.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
