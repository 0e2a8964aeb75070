package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/notes-api/internal/domain"
)

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	return translateError(r.writerDB.WithContext(ctx).Create(tenant).Error)
}

func (r *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// SlugExists reads from the writer so a slug committed moments ago is visible
func (r *TenantRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.writerDB.WithContext(ctx).Model(&domain.Tenant{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TenantRepository) LockBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.writerDB.WithContext(ctx).Scopes(forUpdate).First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) UpdatePlan(ctx context.Context, slug string, plan domain.Plan, at time.Time) (*domain.Tenant, error) {
	db := r.writerDB.WithContext(ctx)

	result := db.Model(&domain.Tenant{}).
		Where("slug = ?", slug).
		Updates(map[string]any{
			"subscription_plan": plan,
			"updated_at":        at,
		})
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, translateError(gorm.ErrRecordNotFound)
	}

	var tenant domain.Tenant
	if err := db.First(&tenant, "slug = ?", slug).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}
