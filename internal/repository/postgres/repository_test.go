package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
)

type RepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	tenantRepo  *TenantRepository
	profileRepo *ProfileRepository
	financeRepo *FinanceRepository
	ownerID     string
	otherID     string
	ctx         context.Context
}

func TestRepository(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(Migrate(db))

	s.db = db
	s.ctx = context.Background()
	s.tenantRepo = NewTenantRepository(db, db)
	s.profileRepo = NewProfileRepository(db, db)
	s.financeRepo = NewFinanceRepository(db)

	s.ownerID = s.createProfile("owner@example.com")
	s.otherID = s.createProfile("other@example.com")
}

func (s *RepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (s *RepositoryTestSuite) createProfile(email string) string {
	profile := &domain.Profile{
		Email:        email,
		PasswordHash: "hash",
		TrialEndsAt:  time.Now().UTC().Add(7 * 24 * time.Hour),
	}
	s.Require().NoError(s.profileRepo.Create(s.ctx, profile))
	return profile.ID
}

func (s *RepositoryTestSuite) createTenant(ownerID, name, rent string, status domain.TenantStatus, createdAt time.Time) *domain.Tenant {
	tenant, err := s.tenantRepo.Create(s.ctx, &domain.Tenant{
		UserID:      ownerID,
		Name:        name,
		MonthlyRent: decimal.RequireFromString(rent),
		RentDueDay:  5,
		Status:      status,
		CreatedAt:   createdAt,
	})
	s.Require().NoError(err)
	return tenant
}

func utc(year int, month time.Month, day, hour, minute, sec int) time.Time {
	return time.Date(year, month, day, hour, minute, sec, 0, time.UTC)
}

func (s *RepositoryTestSuite) TestTenantCreate_GeneratesID() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000.00", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))

	s.NotEmpty(tenant.ID)
	_, err := uuid.Parse(tenant.ID)
	s.NoError(err)

	got, err := s.tenantRepo.GetByID(s.ctx, tenant.ID, s.ownerID)
	s.Require().NoError(err)
	s.Equal("Ana", got.Name)
	s.True(decimal.RequireFromString("10000").Equal(got.MonthlyRent))
}

func (s *RepositoryTestSuite) TestTenantGetByID_OtherOwnerIsNotFound() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000.00", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))

	got, err := s.tenantRepo.GetByID(s.ctx, tenant.ID, s.otherID)

	s.Nil(got)
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestTenantList_NewestFirstAndOwnerScoped() {
	s.createTenant(s.ownerID, "First", "1000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))
	s.createTenant(s.ownerID, "Third", "3000", domain.TenantMovedOut, utc(2026, 3, 1, 0, 0, 0))
	s.createTenant(s.ownerID, "Second", "2000", domain.TenantActive, utc(2026, 2, 1, 0, 0, 0))
	s.createTenant(s.otherID, "Foreign", "9000", domain.TenantActive, utc(2026, 4, 1, 0, 0, 0))

	tenants, err := s.tenantRepo.List(s.ctx, s.ownerID)

	s.Require().NoError(err)
	s.Require().Len(tenants, 3)
	s.Equal("Third", tenants[0].Name)
	s.Equal("Second", tenants[1].Name)
	s.Equal("First", tenants[2].Name)
}

func (s *RepositoryTestSuite) TestTenantListActive() {
	s.createTenant(s.ownerID, "Active", "1000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))
	s.createTenant(s.ownerID, "Gone", "3000", domain.TenantLeftWithoutNotice, utc(2026, 3, 1, 0, 0, 0))

	tenants, err := s.tenantRepo.ListActive(s.ctx, s.ownerID)

	s.Require().NoError(err)
	s.Require().Len(tenants, 1)
	s.Equal("Active", tenants[0].Name)
}

func (s *RepositoryTestSuite) TestTenantList_MissingOwner() {
	tenants, err := s.tenantRepo.List(s.ctx, "")

	s.Nil(tenants)
	s.ErrorIs(err, repository.ErrMissingOwner)
}

func (s *RepositoryTestSuite) TestTenantUpdate() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))

	rows, err := s.tenantRepo.Update(s.ctx, &domain.Tenant{
		ID:          tenant.ID,
		UserID:      s.ownerID,
		Name:        "Ana Cruz",
		MonthlyRent: decimal.RequireFromString("12500.50"),
		RentDueDay:  15,
		Status:      domain.TenantMovedOut,
		HasWater:    true,
	})

	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	got, err := s.tenantRepo.GetByID(s.ctx, tenant.ID, s.ownerID)
	s.Require().NoError(err)
	s.Equal("Ana Cruz", got.Name)
	s.Equal(15, got.RentDueDay)
	s.Equal(domain.TenantMovedOut, got.Status)
	s.True(got.HasWater)
	s.True(decimal.RequireFromString("12500.50").Equal(got.MonthlyRent))
}

func (s *RepositoryTestSuite) TestTenantUpdate_OtherOwnerAffectsNothing() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))

	rows, err := s.tenantRepo.Update(s.ctx, &domain.Tenant{
		ID:          tenant.ID,
		UserID:      s.otherID,
		Name:        "Hijacked",
		MonthlyRent: decimal.Zero,
		RentDueDay:  1,
		Status:      domain.TenantActive,
	})

	s.Require().NoError(err)
	s.Equal(int64(0), rows)

	got, err := s.tenantRepo.GetByID(s.ctx, tenant.ID, s.ownerID)
	s.Require().NoError(err)
	s.Equal("Ana", got.Name)
}

func (s *RepositoryTestSuite) TestTenantDelete_OtherOwnerDeletesNothing() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))

	rows, err := s.tenantRepo.Delete(s.ctx, tenant.ID, s.otherID)

	s.Require().NoError(err)
	s.Equal(int64(0), rows)

	_, err = s.tenantRepo.GetByID(s.ctx, tenant.ID, s.ownerID)
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestTenantDelete_CascadesToFinanceRows() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))
	s.Require().NoError(s.db.Create(&domain.LedgerEntry{
		ID:        uuid.New().String(),
		UserID:    s.ownerID,
		TenantID:  &tenant.ID,
		Amount:    decimal.RequireFromString("500"),
		Type:      domain.LedgerPayment,
		Category:  "rent",
		CreatedAt: utc(2026, 1, 2, 0, 0, 0),
	}).Error)

	rows, err := s.tenantRepo.Delete(s.ctx, tenant.ID, s.ownerID)
	s.Require().NoError(err)
	s.Equal(int64(1), rows)

	var count int64
	s.Require().NoError(s.db.Model(&domain.LedgerEntry{}).Count(&count).Error)
	s.Zero(count)
}

func (s *RepositoryTestSuite) TestProfileGetByEmail() {
	got, err := s.profileRepo.GetByEmail(s.ctx, "owner@example.com")
	s.Require().NoError(err)
	s.Equal(s.ownerID, got.ID)

	_, err = s.profileRepo.GetByEmail(s.ctx, "missing@example.com")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositoryTestSuite) TestProfileCreate_DuplicateEmail() {
	err := s.profileRepo.Create(s.ctx, &domain.Profile{
		Email:        "owner@example.com",
		PasswordHash: "hash",
	})
	s.Error(err)
}

func (s *RepositoryTestSuite) addUtility(ownerID, amount string, periodEnd time.Time) {
	s.Require().NoError(s.db.Create(&domain.Utility{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Amount:    decimal.RequireFromString(amount),
		PeriodEnd: periodEnd,
	}).Error)
}

func (s *RepositoryTestSuite) addPayment(ownerID, amount string, paidAt time.Time) {
	s.Require().NoError(s.db.Create(&domain.Payment{
		ID:          uuid.New().String(),
		UserID:      ownerID,
		Amount:      decimal.RequireFromString(amount),
		PaymentDate: paidAt,
	}).Error)
}

func (s *RepositoryTestSuite) TestUtilitiesBetween_MonthBoundaries() {
	start := utc(2026, 10, 1, 0, 0, 0)
	end := utc(2026, 11, 1, 0, 0, 0)

	s.addUtility(s.ownerID, "100", start)
	s.addUtility(s.ownerID, "200", utc(2026, 10, 31, 23, 59, 59))
	s.addUtility(s.ownerID, "400", utc(2026, 9, 30, 23, 59, 59))
	s.addUtility(s.ownerID, "800", end)
	s.addUtility(s.otherID, "1600", utc(2026, 10, 15, 0, 0, 0))

	utilities, err := s.financeRepo.UtilitiesBetween(s.ctx, s.ownerID, start, end)

	s.Require().NoError(err)
	total := decimal.Zero
	for _, u := range utilities {
		total = total.Add(u.Amount)
	}
	s.Len(utilities, 2)
	s.True(decimal.RequireFromString("300").Equal(total))
}

func (s *RepositoryTestSuite) TestPaymentsSince_BoundaryInclusive() {
	since := utc(2026, 9, 19, 12, 0, 0)

	s.addPayment(s.ownerID, "1000", since)
	s.addPayment(s.ownerID, "2000", utc(2026, 9, 19, 11, 59, 59))
	s.addPayment(s.ownerID, "4000", utc(2026, 10, 18, 0, 0, 0))

	payments, err := s.financeRepo.PaymentsSince(s.ctx, s.ownerID, since)

	s.Require().NoError(err)
	s.Len(payments, 2)
}

func (s *RepositoryTestSuite) TestRecentLedgerEntries_LimitOrderAndTenantName() {
	tenant := s.createTenant(s.ownerID, "Ana", "10000", domain.TenantActive, utc(2026, 1, 1, 0, 0, 0))

	for i := 0; i < 12; i++ {
		entry := &domain.LedgerEntry{
			ID:        uuid.New().String(),
			UserID:    s.ownerID,
			Amount:    decimal.NewFromInt(int64(100 + i)),
			Type:      domain.LedgerCharge,
			Category:  "water",
			CreatedAt: utc(2026, 10, 1+i, 8, 0, 0),
		}
		if i%2 == 0 {
			entry.TenantID = &tenant.ID
		}
		s.Require().NoError(s.db.Create(entry).Error)
	}

	entries, err := s.financeRepo.RecentLedgerEntries(s.ctx, s.ownerID, domain.MaxRecentActivity)

	s.Require().NoError(err)
	s.Require().Len(entries, domain.MaxRecentActivity)
	for i := 1; i < len(entries); i++ {
		s.False(entries[i].CreatedAt.After(entries[i-1].CreatedAt))
	}
	// newest entry is i=11 (unlinked), next is i=10 (linked)
	s.Equal("", entries[0].TenantName())
	s.Equal("Ana", entries[1].TenantName())
}

func (s *RepositoryTestSuite) TestLedgerEntriesBetween_OldestFirst() {
	for day := 1; day <= 3; day++ {
		s.Require().NoError(s.db.Create(&domain.LedgerEntry{
			ID:        uuid.New().String(),
			UserID:    s.ownerID,
			Amount:    decimal.NewFromInt(int64(day)),
			Type:      domain.LedgerPayment,
			CreatedAt: utc(2026, 10, day, 0, 0, 0),
		}).Error)
	}

	entries, err := s.financeRepo.LedgerEntriesBetween(s.ctx, s.ownerID, utc(2026, 10, 2, 0, 0, 0), utc(2026, 11, 1, 0, 0, 0))

	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.True(entries[0].CreatedAt.Before(entries[1].CreatedAt))
}
