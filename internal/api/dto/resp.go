package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthResponse carries a freshly issued session token.
type AuthResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID    string    `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ExpiresAt time.Time `json:"expires_at" example:"2026-10-20T21:20:48Z"`
}

// SessionResponse describes the signed-in owner.
type SessionResponse struct {
	UserID      string    `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email       string    `json:"email" example:"owner@example.com"`
	TrialEndsAt time.Time `json:"trial_ends_at" example:"2026-10-26T21:20:48Z"`
	InTrial     bool      `json:"in_trial" example:"true"`
	ExpiresAt   time.Time `json:"expires_at" example:"2026-10-20T21:20:48Z"`
}

type TenantResponse struct {
	ID          string          `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name        string          `json:"name" example:"Ana Santos"`
	MonthlyRent decimal.Decimal `json:"monthly_rent" swaggertype:"string" example:"10000.00"`
	RentDueDay  int             `json:"rent_due_day" example:"5"`
	Status      string          `json:"status" example:"active"`
	HasElectric bool            `json:"has_electric" example:"true"`
	HasWater    bool            `json:"has_water" example:"true"`
	HasWifi     bool            `json:"has_wifi" example:"false"`
	Notes       string          `json:"notes" example:"Room 2B"`
	CreatedAt   time.Time       `json:"created_at" example:"2026-10-17T21:20:48Z"`
	UpdatedAt   time.Time       `json:"updated_at" example:"2026-10-17T21:20:48Z"`
}

type ActivityResponse struct {
	ID         string          `json:"id"`
	TenantName string          `json:"tenant_name" example:"Ana Santos"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"10000.00"`
	Type       string          `json:"type" example:"payment"`
	Category   string          `json:"category" example:"rent"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AttentionResponse is one tenant whose rent is overdue this month.
type AttentionResponse struct {
	TenantID   string `json:"tenant_id"`
	Name       string `json:"name" example:"Ana Santos"`
	RentDueDay int    `json:"rent_due_day" example:"5"`
	Message    string `json:"message" example:"Ana Santos - Rent overdue since 5th"`
}

// DashboardResponse is a dashboard summary with formatted totals.
type DashboardResponse struct {
	MonthlyRentTotal      decimal.Decimal     `json:"monthly_rent_total" swaggertype:"string" example:"25000.00"`
	MonthlyUtilitiesTotal decimal.Decimal     `json:"monthly_utilities_total" swaggertype:"string" example:"1200.50"`
	PaymentsReceivedTotal decimal.Decimal     `json:"payments_received_total" swaggertype:"string" example:"10000.00"`
	ActiveTenantCount     int                 `json:"active_tenant_count" example:"2"`
	Formatted             map[string]string   `json:"formatted"`
	RecentActivity        []ActivityResponse  `json:"recent_activity"`
	NeedsAttention        []AttentionResponse `json:"needs_attention"`
	GeneratedAt           time.Time           `json:"generated_at"`
}

// DashboardEvent is pushed to live dashboards after every refresh.
type DashboardEvent struct {
	Sequence    uint64            `json:"sequence"`
	Error       string            `json:"error,omitempty"`
	Stale       bool              `json:"stale"`
	Fragments   map[string]string `json:"fragments,omitempty"`
	GeneratedAt *time.Time        `json:"generated_at,omitempty"`
}

type StatementResponse struct {
	Month  string `json:"month" example:"2026-10"`
	Status string `json:"status" example:"queued"`
}

type StatementURLResponse struct {
	Month string `json:"month" example:"2026-10"`
	URL   string `json:"url" example:"https://bucket.s3.amazonaws.com/statements/..."`
}

type MessageResponse struct {
	Message string `json:"message" example:"Signed out"`
}
