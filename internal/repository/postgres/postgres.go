package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/kingrain94/rent-dashboard/internal/config"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
)

type postgresRepository struct {
	tenantRepo  repository.TenantRepository
	profileRepo repository.ProfileRepository
	financeRepo repository.FinanceRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return &postgresRepository{
		tenantRepo:  NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		profileRepo: NewProfileRepository(dbConnections.Writer, dbConnections.Reader),
		financeRepo: NewFinanceRepository(dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Profile() repository.ProfileRepository {
	return r.profileRepo
}

func (r *postgresRepository) Finance() repository.FinanceRepository {
	return r.financeRepo
}

// Migrate creates or updates the schema. Dependent rows of a tenant
// (utilities, payments, ledger entries) are removed by ON DELETE CASCADE.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Profile{},
		&domain.Tenant{},
		&domain.Utility{},
		&domain.Payment{},
		&domain.LedgerEntry{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
