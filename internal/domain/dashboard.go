package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxRecentActivity caps the activity feed.
const MaxRecentActivity = 10

// ActivityRow is one line of the recent activity feed.
type ActivityRow struct {
	ID         string          `json:"id"`
	TenantName string          `json:"tenant_name"`
	Amount     decimal.Decimal `json:"amount"`
	Type       LedgerType      `json:"type"`
	Category   string          `json:"category"`
	CreatedAt  time.Time       `json:"created_at"`
}

// DashboardSummary is the result of one aggregation run for an owner.
type DashboardSummary struct {
	MonthlyRentTotal      decimal.Decimal `json:"monthly_rent_total"`
	MonthlyUtilitiesTotal decimal.Decimal `json:"monthly_utilities_total"`
	PaymentsReceivedTotal decimal.Decimal `json:"payments_received_total"`
	ActiveTenantCount     int             `json:"active_tenant_count"`
	RecentActivity        []ActivityRow   `json:"recent_activity"`
	NeedsAttention        []Tenant        `json:"needs_attention"`
	GeneratedAt           time.Time       `json:"generated_at"`
}
