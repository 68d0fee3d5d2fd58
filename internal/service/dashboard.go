package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
	"github.com/kingrain94/rent-dashboard/pkg/utils"
)

const (
	paymentWindowDays = 30
	unknownTenantName = "Unknown"
)

// DashboardService aggregates an owner's figures for the dashboard.
type DashboardService struct {
	repo     repository.Repository
	location *time.Location
	logger   *logger.Logger
}

func NewDashboardService(repo repository.Repository, location *time.Location, logger *logger.Logger) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		repo:     repo,
		location: location,
		logger:   logger,
	}
}

// Summary computes the dashboard of ownerID as of now. Any failed read
// aborts the whole summary.
func (s *DashboardService) Summary(ctx context.Context, ownerID string, now time.Time) (*domain.DashboardSummary, error) {
	if ownerID == "" {
		return nil, ErrNoSession
	}
	now = now.In(s.location)

	tenants, err := s.repo.Tenant().ListActive(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to load active tenants", err, zap.String("user_id", ownerID))
		return nil, storeErr("list_active_tenants", err)
	}

	monthStart, monthEnd := utils.MonthBounds(now)
	paymentsSince := utils.DaysAgo(now, paymentWindowDays)

	var (
		utilities []domain.Utility
		payments  []domain.Payment
		entries   []domain.LedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		utilities, err = s.repo.Finance().UtilitiesBetween(gctx, ownerID, monthStart, monthEnd)
		if err != nil {
			return storeErr("list_utilities", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		payments, err = s.repo.Finance().PaymentsSince(gctx, ownerID, paymentsSince)
		if err != nil {
			return storeErr("list_payments", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, err = s.repo.Finance().RecentLedgerEntries(gctx, ownerID, domain.MaxRecentActivity)
		if err != nil {
			return storeErr("list_ledger_entries", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to aggregate dashboard", err, zap.String("user_id", ownerID))
		return nil, err
	}

	summary := &domain.DashboardSummary{
		MonthlyRentTotal:      decimal.Zero,
		MonthlyUtilitiesTotal: decimal.Zero,
		PaymentsReceivedTotal: decimal.Zero,
		ActiveTenantCount:     len(tenants),
		RecentActivity:        ActivityRows(entries, s.location),
		NeedsAttention:        NeedsAttention(tenants, now),
		GeneratedAt:           now,
	}
	for _, t := range tenants {
		summary.MonthlyRentTotal = summary.MonthlyRentTotal.Add(t.MonthlyRent)
	}
	for _, u := range utilities {
		summary.MonthlyUtilitiesTotal = summary.MonthlyUtilitiesTotal.Add(u.Amount)
	}
	for _, p := range payments {
		summary.PaymentsReceivedTotal = summary.PaymentsReceivedTotal.Add(p.Amount)
	}

	return summary, nil
}

// ActivityRows turns ledger entries into feed rows, keeping at most
// domain.MaxRecentActivity of them in input order. Timestamps are moved into
// location so the feed shows local dates.
func ActivityRows(entries []domain.LedgerEntry, location *time.Location) []domain.ActivityRow {
	if len(entries) > domain.MaxRecentActivity {
		entries = entries[:domain.MaxRecentActivity]
	}

	rows := make([]domain.ActivityRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, activityRow(e, location))
	}
	return rows
}

func activityRow(e domain.LedgerEntry, location *time.Location) domain.ActivityRow {
	if location == nil {
		location = time.UTC
	}
	name := e.TenantName()
	if name == "" {
		name = unknownTenantName
	}
	return domain.ActivityRow{
		ID:         e.ID,
		TenantName: name,
		Amount:     e.Amount,
		Type:       e.Type,
		Category:   e.Category,
		CreatedAt:  e.CreatedAt.In(location),
	}
}
