package service

import (
	"time"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/pkg/utils"
)

// DueDate is the rent due date of a tenant in the month of today. A due day
// past the end of a short month falls on its last day.
func DueDate(tenant domain.Tenant, today time.Time) time.Time {
	day := tenant.RentDueDay
	if last := utils.LastDayOfMonth(today); day > last {
		day = last
	}
	return time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, today.Location())
}

// IsOverdue reports whether today's calendar date is strictly after the
// tenant's due date this month.
func IsOverdue(tenant domain.Tenant, today time.Time) bool {
	return utils.StartOfDay(today).After(DueDate(tenant, today))
}

// NeedsAttention returns the tenants whose rent is overdue today, in input order.
func NeedsAttention(tenants []domain.Tenant, today time.Time) []domain.Tenant {
	flagged := make([]domain.Tenant, 0)
	for _, tenant := range tenants {
		if IsOverdue(tenant, today) {
			flagged = append(flagged, tenant)
		}
	}
	return flagged
}
