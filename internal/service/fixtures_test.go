package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/repository"
)

const (
	adminID = "11111111-1111-4111-8111-111111111111"
	bobID   = "22222222-2222-4222-8222-222222222222"
	noteID  = "33333333-3333-4333-8333-333333333333"
	otherID = "44444444-4444-4444-8444-444444444444"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func acmeAdmin() *domain.User {
	return &domain.User{ID: adminID, Email: "admin@acme.test", Role: domain.RoleAdmin, TenantSlug: "acme"}
}

func acmeBob() *domain.User {
	return &domain.User{ID: bobID, Email: "bob@acme.test", Role: domain.RoleMember, TenantSlug: "acme"}
}

func globexAdmin() *domain.User {
	return &domain.User{ID: otherID, Email: "admin@globex.test", Role: domain.RoleAdmin, TenantSlug: "globex"}
}

func tenantOn(plan domain.Plan) *domain.Tenant {
	return &domain.Tenant{Slug: "acme", Name: "Acme", SubscriptionPlan: plan, Status: domain.TenantStatusActive}
}

// repoMocks wires a mock Repository whose Transaction runs the callback
// against the same mocks, savepoints included.
type repoMocks struct {
	repo        *mocks.Repository
	tenants     *mocks.TenantRepository
	users       *mocks.UserRepository
	invitations *mocks.InvitationRepository
	notes       *mocks.NoteRepository
}

func newRepoMocks() *repoMocks {
	m := &repoMocks{
		repo:        new(mocks.Repository),
		tenants:     new(mocks.TenantRepository),
		users:       new(mocks.UserRepository),
		invitations: new(mocks.InvitationRepository),
		notes:       new(mocks.NoteRepository),
	}

	m.repo.On("Tenant").Return(m.tenants).Maybe()
	m.repo.On("User").Return(m.users).Maybe()
	m.repo.On("Invitation").Return(m.invitations).Maybe()
	m.repo.On("Note").Return(m.notes).Maybe()
	m.repo.On("Transaction", mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(m.repo)
		}).
		Maybe()

	return m
}

func (m *repoMocks) assertExpectations(t mock.TestingT) {
	m.tenants.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.invitations.AssertExpectations(t)
	m.notes.AssertExpectations(t)
}
