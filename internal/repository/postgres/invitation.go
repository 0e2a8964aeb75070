package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
)

type InvitationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewInvitationRepository(writerDB, readerDB *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func pending(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("accepted_at IS NULL AND expires_at > ?", now)
	}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	if invitation.ID == "" {
		invitation.ID = uuid.New().String()
	}
	invitation.Email = domain.NormalizeEmail(invitation.Email)

	return translateError(r.writerDB.WithContext(ctx).Create(invitation).Error)
}

func (r *InvitationRepository) HasPending(ctx context.Context, tenantSlug, email string, now time.Time) (bool, error) {
	var count int64
	err := r.writerDB.WithContext(ctx).
		Model(&domain.Invitation{}).
		Scopes(pending(now)).
		Where("tenant_slug = ? AND email = ?", tenantSlug, domain.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *InvitationRepository) GetPendingByTokenForUpdate(ctx context.Context, token string, now time.Time) (*domain.Invitation, error) {
	var invitation domain.Invitation
	err := r.writerDB.WithContext(ctx).
		Scopes(forUpdate, pending(now)).
		Where("token = ?", token).
		First(&invitation).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &invitation, nil
}

func (r *InvitationRepository) MarkAccepted(ctx context.Context, id string, at time.Time) (bool, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Invitation{}).
		Where("id = ? AND accepted_at IS NULL", id).
		Update("accepted_at", at)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *InvitationRepository) ListPending(ctx context.Context, tenantSlug string, now time.Time) ([]domain.Invitation, error) {
	var invitations []domain.Invitation
	err := r.readerDB.WithContext(ctx).
		Scopes(pending(now)).
		Where("tenant_slug = ?", tenantSlug).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}
