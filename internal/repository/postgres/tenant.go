package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/rent-dashboard/internal/domain"
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

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}

	if err := r.writerDB.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Tenant, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var tenant domain.Tenant
	if err := db.First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

// Update overwrites the editable columns of the tenant identified by
// tenant.ID and tenant.UserID and reports how many rows matched.
func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) (int64, error) {
	db, err := ownerScope(r.writerDB, ctx, tenant.UserID)
	if err != nil {
		return 0, err
	}

	result := db.Model(&domain.Tenant{}).
		Where("id = ?", tenant.ID).
		Updates(map[string]any{
			"name":         tenant.Name,
			"monthly_rent": tenant.MonthlyRent,
			"rent_due_day": tenant.RentDueDay,
			"status":       tenant.Status,
			"has_electric": tenant.HasElectric,
			"has_water":    tenant.HasWater,
			"has_wifi":     tenant.HasWifi,
			"notes":        tenant.Notes,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *TenantRepository) Delete(ctx context.Context, id, ownerID string) (int64, error) {
	db, err := ownerScope(r.writerDB, ctx, ownerID)
	if err != nil {
		return 0, err
	}

	result := db.Where("id = ?", id).Delete(&domain.Tenant{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *TenantRepository) List(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var tenants []domain.Tenant
	if err := db.Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepository) ListActive(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var tenants []domain.Tenant
	if err := db.Where("status = ?", domain.TenantActive).
		Order("created_at DESC").
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}
