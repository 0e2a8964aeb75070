package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
)

// noteScope restricts a notes query to the tenant and, for owner-restricted
// scopes, to a single author. An empty tenant slug is rejected outright.
func noteScope(scope domain.NoteScope) (func(*gorm.DB) *gorm.DB, error) {
	if scope.TenantSlug == "" {
		return nil, repository.ErrMissingTenantScope
	}

	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("notes.tenant_slug = ?", scope.TenantSlug)
		if scope.IsOwnerRestricted() {
			db = db.Where("notes.user_id = ?", scope.OwnerID)
		}
		return db
	}, nil
}

// withAuthorEmail joins the author so listings carry their email
func withAuthorEmail(db *gorm.DB) *gorm.DB {
	return db.Select("notes.*, users.email AS author_email").
		Joins("JOIN users ON users.id = notes.user_id")
}

func forUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// translateError maps gorm errors onto repository sentinels
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	default:
		return err
	}
}
