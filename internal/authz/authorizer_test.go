package authz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/notes-api/internal/domain"
)

var (
	acmeAdmin  = Subject{UserID: "admin-1", Role: domain.RoleAdmin, TenantSlug: "acme"}
	acmeBob    = Subject{UserID: "bob", Role: domain.RoleMember, TenantSlug: "acme"}
	globexBoss = Subject{UserID: "admin-2", Role: domain.RoleAdmin, TenantSlug: "globex"}
)

func TestAuthorize_Notes(t *testing.T) {
	bobsNote := Resource{Kind: KindNote, TenantSlug: "acme", OwnerID: "bob"}
	adminsNote := Resource{Kind: KindNote, TenantSlug: "acme", OwnerID: "admin-1"}

	tests := []struct {
		name    string
		subject Subject
		action  Action
		res     Resource
		wantErr error
	}{
		{"admin reads member note", acmeAdmin, ActionRead, bobsNote, nil},
		{"admin deletes member note", acmeAdmin, ActionDelete, bobsNote, nil},
		{"member reads own note", acmeBob, ActionRead, bobsNote, nil},
		{"member updates own note", acmeBob, ActionUpdate, bobsNote, nil},
		{"member reads admin note", acmeBob, ActionRead, adminsNote, ErrNotOwner},
		{"member deletes admin note", acmeBob, ActionDelete, adminsNote, ErrNotOwner},
		{"other tenant admin reads note", globexBoss, ActionRead, bobsNote, ErrCrossTenant},
		{"member creates own note", acmeBob, ActionCreate, bobsNote, nil},
		{"admin creates note for someone else", acmeAdmin, ActionCreate, bobsNote, ErrNotOwner},
		{"unknown action", acmeAdmin, ActionUpgrade, bobsNote, ErrUnknownThing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.subject, tt.action, tt.res)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrDenied)
		})
	}
}

func TestAuthorize_Users(t *testing.T) {
	bob := Resource{Kind: KindUser, TenantSlug: "acme", OwnerID: "bob"}
	self := Resource{Kind: KindUser, TenantSlug: "acme", OwnerID: "admin-1"}
	foreign := Resource{Kind: KindUser, TenantSlug: "globex", OwnerID: "someone"}

	assert.NoError(t, Authorize(acmeAdmin, ActionList, bob))
	assert.NoError(t, Authorize(acmeAdmin, ActionInvite, bob))
	assert.NoError(t, Authorize(acmeAdmin, ActionRemove, bob))
	assert.ErrorIs(t, Authorize(acmeAdmin, ActionRemove, self), ErrSelfRemoval)
	assert.ErrorIs(t, Authorize(acmeAdmin, ActionRemove, foreign), ErrCrossTenant)
	assert.ErrorIs(t, Authorize(acmeBob, ActionList, bob), ErrAdminOnly)
	assert.ErrorIs(t, Authorize(acmeBob, ActionInvite, bob), ErrAdminOnly)

	// self-removal is refused for members too, before the role check
	bobSelf := Resource{Kind: KindUser, TenantSlug: "acme", OwnerID: "bob"}
	assert.ErrorIs(t, Authorize(acmeBob, ActionRemove, bobSelf), ErrSelfRemoval)
}

func TestAuthorize_TenantPlan(t *testing.T) {
	assert.NoError(t, Authorize(acmeAdmin, ActionUpgrade, TenantResource("acme")))
	assert.NoError(t, Authorize(acmeAdmin, ActionDowngrade, TenantResource("acme")))
	assert.ErrorIs(t, Authorize(acmeAdmin, ActionUpgrade, TenantResource("globex")), ErrCrossTenant)
	assert.ErrorIs(t, Authorize(acmeBob, ActionDowngrade, TenantResource("acme")), ErrAdminOnly)
	assert.ErrorIs(t, Authorize(acmeAdmin, ActionRead, TenantResource("acme")), ErrUnknownThing)
}

func TestAuthorize_CrossTenantCheckedBeforeRole(t *testing.T) {
	// a member targeting another tenant reports the tenant mismatch, not the role
	err := Authorize(acmeBob, ActionUpgrade, TenantResource("globex"))
	assert.ErrorIs(t, err, ErrCrossTenant)
}

func TestAuthorize_EmptySubject(t *testing.T) {
	err := Authorize(Subject{}, ActionRead, Resource{Kind: KindNote, TenantSlug: "acme"})
	assert.ErrorIs(t, err, ErrNoSubject)
}

func TestAuthorize_EmptyResourceTenant(t *testing.T) {
	err := Authorize(acmeAdmin, ActionRead, Resource{Kind: KindNote, OwnerID: "bob"})
	assert.ErrorIs(t, err, ErrCrossTenant)
}

func TestNoteScope(t *testing.T) {
	scope, err := NoteScope(acmeAdmin)
	require.NoError(t, err)
	assert.Equal(t, domain.NoteScope{TenantSlug: "acme"}, scope)
	assert.False(t, scope.IsOwnerRestricted())

	scope, err = NoteScope(acmeBob)
	require.NoError(t, err)
	assert.Equal(t, domain.NoteScope{TenantSlug: "acme", OwnerID: "bob"}, scope)
	assert.True(t, scope.IsOwnerRestricted())

	_, err = NoteScope(Subject{UserID: "x", TenantSlug: "acme", Role: "owner"})
	assert.True(t, errors.Is(err, ErrUnknownRole))
}

func TestSubjectFromUser(t *testing.T) {
	u := &domain.User{ID: "u1", Role: domain.RoleMember, TenantSlug: "acme"}
	assert.Equal(t, Subject{UserID: "u1", Role: domain.RoleMember, TenantSlug: "acme"}, SubjectFromUser(u))
	assert.Equal(t, Subject{}, SubjectFromUser(nil))
}
