package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/repository"
)

type NoteRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewNoteRepository(writerDB, readerDB *gorm.DB) *NoteRepository {
	return &NoteRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	return translateError(r.writerDB.WithContext(ctx).Create(note).Error)
}

func (r *NoteRepository) Get(ctx context.Context, scope domain.NoteScope, id string) (*domain.Note, error) {
	if scope.TenantSlug == "" {
		return nil, repository.ErrMissingTenantScope
	}
	return r.get(r.readerDB.WithContext(ctx), scope, id)
}

func (r *NoteRepository) get(db *gorm.DB, scope domain.NoteScope, id string) (*domain.Note, error) {
	scoped, err := noteScope(scope)
	if err != nil {
		return nil, err
	}

	var note domain.Note
	if err := db.Scopes(withAuthorEmail, scoped).Where("notes.id = ?", id).First(&note).Error; err != nil {
		return nil, translateError(err)
	}
	return &note, nil
}

func (r *NoteRepository) List(ctx context.Context, scope domain.NoteScope) ([]domain.Note, error) {
	scoped, err := noteScope(scope)
	if err != nil {
		return nil, err
	}

	notes := []domain.Note{}
	err = r.readerDB.WithContext(ctx).
		Scopes(withAuthorEmail, scoped).
		Order("notes.created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Update(ctx context.Context, scope domain.NoteScope, id, title, content string, at time.Time) (*domain.Note, error) {
	scoped, err := noteScope(scope)
	if err != nil {
		return nil, err
	}

	db := r.writerDB.WithContext(ctx)
	result := db.Model(&domain.Note{}).
		Scopes(scoped).
		Where("notes.id = ?", id).
		Updates(map[string]any{
			"title":      title,
			"content":    content,
			"updated_at": at,
		})
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, translateError(gorm.ErrRecordNotFound)
	}

	return r.get(db, scope, id)
}

func (r *NoteRepository) Delete(ctx context.Context, scope domain.NoteScope, id string) error {
	scoped, err := noteScope(scope)
	if err != nil {
		return err
	}

	result := r.writerDB.WithContext(ctx).
		Scopes(scoped).
		Where("notes.id = ?", id).
		Delete(&domain.Note{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}

// CountByTenant counts every note of the tenant regardless of author
func (r *NoteRepository) CountByTenant(ctx context.Context, tenantSlug string) (int64, error) {
	var count int64
	err := r.writerDB.WithContext(ctx).
		Model(&domain.Note{}).
		Where("tenant_slug = ?", tenantSlug).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
