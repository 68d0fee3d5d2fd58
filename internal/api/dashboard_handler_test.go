package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/rent-dashboard/internal/api/dto"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, ownerID string, now time.Time) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, ownerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func TestGetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	summary := &domain.DashboardSummary{
		MonthlyRentTotal:      decimal.RequireFromString("25000.00"),
		MonthlyUtilitiesTotal: decimal.RequireFromString("1200.5"),
		PaymentsReceivedTotal: decimal.Zero,
		ActiveTenantCount:     2,
		RecentActivity: []domain.ActivityRow{
			{ID: "e1", TenantName: "Ana", Amount: decimal.NewFromInt(10000), Type: domain.LedgerPayment, Category: "rent", CreatedAt: now},
		},
		NeedsAttention: []domain.Tenant{{ID: "t1", Name: "Ana", RentDueDay: 5}},
		GeneratedAt:    now,
	}

	svc := new(MockDashboardService)
	svc.On("Summary", mock.Anything, testOwnerID, now).Return(summary, nil)
	handler := NewDashboardHandler(svc, logger.NewNop())
	handler.now = func() time.Time { return now }

	c, w := newTestContext(http.MethodGet, "/api/v1/dashboard", nil)
	handler.GetDashboard(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.ActiveTenantCount)
	assert.True(t, response.MonthlyRentTotal.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, "₱25,000.00", response.Formatted["monthly_rent_total"])
	assert.Equal(t, "₱1,200.50", response.Formatted["monthly_utilities_total"])
	assert.Equal(t, "₱0.00", response.Formatted["payments_received_total"])
	require.Len(t, response.NeedsAttention, 1)
	assert.Equal(t, "Ana - Rent overdue since 5th", response.NeedsAttention[0].Message)
	require.Len(t, response.RecentActivity, 1)
	assert.Equal(t, "payment", response.RecentActivity[0].Type)
}

func TestGetDashboard_FailureReturnsNoPartialSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := new(MockDashboardService)
	svc.On("Summary", mock.Anything, testOwnerID, mock.Anything).
		Return(nil, &service.StoreError{Op: "list_utilities", Err: errors.New("timeout")})
	handler := NewDashboardHandler(svc, logger.NewNop())

	c, w := newTestContext(http.MethodGet, "/api/v1/dashboard", nil)
	handler.GetDashboard(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "monthly_rent_total")
}
