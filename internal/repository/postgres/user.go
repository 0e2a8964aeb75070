package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
)

type UserRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewUserRepository(writerDB, readerDB *gorm.DB) *UserRepository {
	return &UserRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.Email = domain.NormalizeEmail(user.Email)

	return translateError(r.writerDB.WithContext(ctx).Omit("Tenant").Create(user).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.writerDB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.writerDB.WithContext(ctx).First(&user, "email = ?", domain.NormalizeEmail(email)).Error; err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.writerDB.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", domain.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) GetInTenant(ctx context.Context, tenantSlug, id string) (*domain.User, error) {
	var user domain.User
	err := r.writerDB.WithContext(ctx).
		Where("tenant_slug = ? AND id = ?", tenantSlug, id).
		First(&user).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *UserRepository) ListByTenant(ctx context.Context, tenantSlug string) ([]domain.User, error) {
	var users []domain.User
	err := r.readerDB.WithContext(ctx).
		Where("tenant_slug = ?", tenantSlug).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes the user; their notes go with them through the cascading foreign key
func (r *UserRepository) Delete(ctx context.Context, tenantSlug, id string) error {
	result := r.writerDB.WithContext(ctx).
		Where("tenant_slug = ? AND id = ?", tenantSlug, id).
		Delete(&domain.User{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound)
	}
	return nil
}
