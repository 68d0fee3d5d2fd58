package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/rent-dashboard/internal/domain"
)

var manila = time.FixedZone("PHT", 8*60*60)

func TestNeedsAttention_DueDayBoundary(t *testing.T) {
	tenant := domain.Tenant{Name: "Ana", RentDueDay: 5}

	onDueDate := time.Date(2026, 10, 5, 23, 59, 0, 0, manila)
	dayAfter := time.Date(2026, 10, 6, 0, 1, 0, 0, manila)
	before := time.Date(2026, 10, 4, 12, 0, 0, 0, manila)

	assert.Empty(t, NeedsAttention([]domain.Tenant{tenant}, before))
	assert.Empty(t, NeedsAttention([]domain.Tenant{tenant}, onDueDate))
	assert.Len(t, NeedsAttention([]domain.Tenant{tenant}, dayAfter), 1)
}

func TestNeedsAttention_PreservesOrder(t *testing.T) {
	today := time.Date(2026, 10, 20, 9, 0, 0, 0, manila)
	tenants := []domain.Tenant{
		{Name: "C", RentDueDay: 1},
		{Name: "A", RentDueDay: 25},
		{Name: "B", RentDueDay: 15},
		{Name: "D", RentDueDay: 20},
	}

	flagged := NeedsAttention(tenants, today)

	assert.Len(t, flagged, 2)
	assert.Equal(t, "C", flagged[0].Name)
	assert.Equal(t, "B", flagged[1].Name)
}

func TestNeedsAttention_EmptyInput(t *testing.T) {
	flagged := NeedsAttention(nil, time.Now())

	assert.NotNil(t, flagged)
	assert.Empty(t, flagged)
}

func TestDueDate_ClampsToShortMonth(t *testing.T) {
	tenant := domain.Tenant{RentDueDay: 31}

	sept := time.Date(2026, 9, 30, 10, 0, 0, 0, manila)
	feb := time.Date(2026, 2, 10, 10, 0, 0, 0, manila)

	assert.Equal(t, 30, DueDate(tenant, sept).Day())
	assert.Equal(t, 28, DueDate(tenant, feb).Day())
	assert.False(t, IsOverdue(tenant, sept))
}

func TestIsOverdue_OnlyComparesWithinCurrentMonth(t *testing.T) {
	tenant := domain.Tenant{RentDueDay: 28}

	// due on the 28th: flagged on the 29th, not flagged again until the next month's 29th
	assert.True(t, IsOverdue(tenant, time.Date(2026, 10, 29, 8, 0, 0, 0, manila)))
	assert.False(t, IsOverdue(tenant, time.Date(2026, 11, 1, 8, 0, 0, 0, manila)))
}
