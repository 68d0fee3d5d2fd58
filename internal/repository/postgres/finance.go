package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

// FinanceRepository reads utilities, payments and ledger entries.
// These tables are written by other systems; the dashboard only reads them.
type FinanceRepository struct {
	readerDB *gorm.DB
}

func NewFinanceRepository(readerDB *gorm.DB) *FinanceRepository {
	return &FinanceRepository{readerDB: readerDB}
}

func (r *FinanceRepository) UtilitiesBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.Utility, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var utilities []domain.Utility
	if err := db.Where("period_end >= ? AND period_end < ?", start, end).
		Find(&utilities).Error; err != nil {
		return nil, err
	}
	return utilities, nil
}

func (r *FinanceRepository) PaymentsSince(ctx context.Context, ownerID string, since time.Time) ([]domain.Payment, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var payments []domain.Payment
	if err := db.Where("payment_date >= ?", since).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *FinanceRepository) RecentLedgerEntries(ctx context.Context, ownerID string, limit int) ([]domain.LedgerEntry, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var entries []domain.LedgerEntry
	if err := db.Preload("Tenant", tenantNameOnly(ownerID)).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *FinanceRepository) LedgerEntriesBetween(ctx context.Context, ownerID string, start, end time.Time) ([]domain.LedgerEntry, error) {
	db, err := ownerScope(r.readerDB, ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var entries []domain.LedgerEntry
	if err := db.Preload("Tenant", tenantNameOnly(ownerID)).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func tenantNameOnly(ownerID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "user_id", "name").Where("user_id = ?", ownerID)
	}
}
