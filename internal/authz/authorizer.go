// Package authz holds the single capability decision procedure used before
// every note, user and tenant access. It has no dependency on transport or
// persistence.
package authz

import (
	"errors"

	"github.com/kingrain94/notes-api/internal/domain"
)

var (
	// ErrDenied is the root of every negative decision
	ErrDenied = errors.New("access denied")

	ErrCrossTenant  = denial("resource belongs to another tenant")
	ErrAdminOnly    = denial("admin role required")
	ErrNotOwner     = denial("resource is owned by another user")
	ErrSelfRemoval  = denial("cannot remove your own account")
	ErrNoSubject    = denial("no authenticated subject")
	ErrUnknownRole  = denial("unknown role")
	ErrUnknownThing = denial("unknown resource or action")
)

type deniedError struct {
	reason string
}

func denial(reason string) error {
	return &deniedError{reason: reason}
}

func (e *deniedError) Error() string {
	return "access denied: " + e.reason
}

func (e *deniedError) Unwrap() error {
	return ErrDenied
}

type Action string

const (
	ActionRead      Action = "read"
	ActionCreate    Action = "create"
	ActionUpdate    Action = "update"
	ActionDelete    Action = "delete"
	ActionList      Action = "list"
	ActionInvite    Action = "invite"
	ActionRemove    Action = "remove"
	ActionUpgrade   Action = "upgrade"
	ActionDowngrade Action = "downgrade"
	ActionExport    Action = "export"
)

type ResourceKind string

const (
	KindNote   ResourceKind = "note"
	KindUser   ResourceKind = "user"
	KindTenant ResourceKind = "tenant"
)

// Subject is the acting user as resolved from a verified session
type Subject struct {
	UserID     string
	Role       domain.Role
	TenantSlug string
}

// Resource identifies what is being accessed. OwnerID is the author for notes
// and the target account for users; it is empty for tenants.
type Resource struct {
	Kind       ResourceKind
	TenantSlug string
	OwnerID    string
}

func SubjectFromUser(u *domain.User) Subject {
	if u == nil {
		return Subject{}
	}
	return Subject{UserID: u.ID, Role: u.Role, TenantSlug: u.TenantSlug}
}

func NoteResource(n *domain.Note) Resource {
	return Resource{Kind: KindNote, TenantSlug: n.TenantSlug, OwnerID: n.UserID}
}

func UserResource(u *domain.User) Resource {
	return Resource{Kind: KindUser, TenantSlug: u.TenantSlug, OwnerID: u.ID}
}

func TenantResource(slug string) Resource {
	return Resource{Kind: KindTenant, TenantSlug: slug}
}

// Authorize returns nil when subject may perform action on resource and an
// error wrapping ErrDenied otherwise. Tenant match is checked before the role
// is consulted, so cross-tenant access is denied for every role.
func Authorize(s Subject, action Action, r Resource) error {
	if s.UserID == "" || s.TenantSlug == "" {
		return ErrNoSubject
	}
	if r.TenantSlug == "" || r.TenantSlug != s.TenantSlug {
		return ErrCrossTenant
	}

	switch r.Kind {
	case KindNote:
		return authorizeNote(s, action, r)
	case KindUser:
		return authorizeUser(s, action, r)
	case KindTenant:
		return authorizeTenant(s, action)
	default:
		return ErrUnknownThing
	}
}

func authorizeNote(s Subject, action Action, r Resource) error {
	switch action {
	case ActionCreate:
		// creation stamps the acting user, so the owner must be the subject
		if r.OwnerID != s.UserID {
			return ErrNotOwner
		}
		return nil
	case ActionRead, ActionUpdate, ActionDelete:
	default:
		return ErrUnknownThing
	}

	switch s.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleMember:
		if r.OwnerID != s.UserID {
			return ErrNotOwner
		}
		return nil
	default:
		return ErrUnknownRole
	}
}

func authorizeUser(s Subject, action Action, r Resource) error {
	switch action {
	case ActionList, ActionInvite, ActionRemove:
	default:
		return ErrUnknownThing
	}
	// self-removal is refused regardless of role
	if action == ActionRemove && r.OwnerID == s.UserID {
		return ErrSelfRemoval
	}
	if !s.Role.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

func authorizeTenant(s Subject, action Action) error {
	switch action {
	case ActionUpgrade, ActionDowngrade, ActionExport:
	default:
		return ErrUnknownThing
	}
	if !s.Role.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}

// NoteScope returns the row predicate for note queries issued by s. Admins see
// the whole tenant, members only their own notes.
func NoteScope(s Subject) (domain.NoteScope, error) {
	if s.UserID == "" || s.TenantSlug == "" {
		return domain.NoteScope{}, ErrNoSubject
	}
	switch s.Role {
	case domain.RoleAdmin:
		return domain.NoteScope{TenantSlug: s.TenantSlug}, nil
	case domain.RoleMember:
		return domain.NoteScope{TenantSlug: s.TenantSlug, OwnerID: s.UserID}, nil
	default:
		return domain.NoteScope{}, ErrUnknownRole
	}
}
