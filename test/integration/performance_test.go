package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/rent-dashboard/internal/api"
	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/mocks"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/utils"
	"github.com/kingrain94/rent-dashboard/internal/view"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

var manila = time.FixedZone("PHT", 8*60*60)

func sampleTenants(n int) []domain.Tenant {
	tenants := make([]domain.Tenant, n)
	for i := 0; i < n; i++ {
		tenants[i] = domain.Tenant{
			ID:          fmt.Sprintf("tenant-%d", i),
			UserID:      "owner-1",
			Name:        fmt.Sprintf("Tenant %d", i),
			MonthlyRent: decimal.NewFromInt(int64(5000 + i*250)),
			RentDueDay:  i%31 + 1,
			Status:      domain.TenantActive,
		}
	}
	return tenants
}

func sampleLedger(n int) []domain.LedgerEntry {
	tenant := &domain.Tenant{Name: "Maria"}
	entries := make([]domain.LedgerEntry, n)
	for i := 0; i < n; i++ {
		entryType := domain.LedgerCharge
		if i%2 == 0 {
			entryType = domain.LedgerPayment
		}
		entries[i] = domain.LedgerEntry{
			ID:        fmt.Sprintf("entry-%d", i),
			UserID:    "owner-1",
			Amount:    decimal.NewFromFloat(1234.5),
			Type:      entryType,
			Category:  "rent",
			CreatedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, manila).Add(-time.Duration(i) * time.Hour),
			Tenant:    tenant,
		}
	}
	return entries
}

// dashboardRouter serves GET /dashboard through the real aggregator backed by
// repository mocks.
func dashboardRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	mockRepo := new(mocks.Repository)
	mockTenant := new(mocks.TenantRepository)
	mockFinance := new(mocks.FinanceRepository)
	mockRepo.On("Tenant").Return(mockTenant)
	mockRepo.On("Finance").Return(mockFinance)

	mockTenant.On("ListActive", mock.Anything, "owner-1").Return(sampleTenants(50), nil)
	mockFinance.On("UtilitiesBetween", mock.Anything, "owner-1", mock.Anything, mock.Anything).Return([]domain.Utility{
		{ID: "u1", Amount: decimal.RequireFromString("850.25")},
	}, nil)
	mockFinance.On("PaymentsSince", mock.Anything, "owner-1", mock.Anything).Return([]domain.Payment{
		{ID: "p1", Amount: decimal.RequireFromString("10000.00")},
	}, nil)
	mockFinance.On("RecentLedgerEntries", mock.Anything, "owner-1", domain.MaxRecentActivity).Return(sampleLedger(domain.MaxRecentActivity), nil)

	dashboardService := service.NewDashboardService(mockRepo, manila, logger.NewNop())
	handler := api.NewDashboardHandler(dashboardService, logger.NewNop())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(string(utils.SessionKey), &domain.Session{ID: "sid", UserID: "owner-1", ExpiresAt: time.Now().Add(time.Hour)})
		c.Next()
	})
	router.GET("/dashboard", handler.GetDashboard)
	return router
}

func BenchmarkGetDashboard(b *testing.B) {
	router := dashboardRouter()

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/dashboard", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkNeedsAttention(b *testing.B) {
	tenants := sampleTenants(500)
	today := time.Date(2026, 10, 19, 12, 0, 0, 0, manila)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		service.NeedsAttention(tenants, today)
	}
}

func BenchmarkFormatPeso(b *testing.B) {
	amount := decimal.RequireFromString("1234567.89")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		view.FormatPeso(amount)
	}
}

func BenchmarkDashboardFragments(b *testing.B) {
	renderer, err := view.NewRenderer()
	if err != nil {
		b.Fatal(err)
	}
	tenants := sampleTenants(50)
	summary := &domain.DashboardSummary{
		MonthlyRentTotal:  decimal.RequireFromString("312500.00"),
		ActiveTenantCount: len(tenants),
		RecentActivity:    service.ActivityRows(sampleLedger(domain.MaxRecentActivity), manila),
		NeedsAttention:    tenants[:20],
		GeneratedAt:       time.Now(),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := renderer.DashboardFragments(summary); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildStatementCSV(b *testing.B) {
	statements := service.NewStatementService(nil, nil, nil, nil, manila, logger.NewNop())
	entries := sampleLedger(1000)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := statements.BuildCSV(entries); err != nil {
			b.Fatal(err)
		}
	}
}

// TestHighConcurrencyDashboard drives the dashboard endpoint from many
// goroutines at once.
func TestHighConcurrencyDashboard(t *testing.T) {
	router := dashboardRouter()

	numGoroutines := 50
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest("GET", "/dashboard", nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if w.Code == http.StatusOK {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()
	totalTime := time.Since(startTime)
	avgLatency := totalLatency / time.Duration(totalRequests)

	t.Logf("=== Dashboard Concurrency Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
}
