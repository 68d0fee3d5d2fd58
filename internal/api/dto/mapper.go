package dto

import (
	"time"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/service"
	"github.com/kingrain94/rent-dashboard/internal/view"
)

// ToTenantForm converts a TenantRequest into a tenant form submission.
// An empty editingID creates a tenant.
func (r *TenantRequest) ToTenantForm(editingID string) service.TenantForm {
	return service.TenantForm{
		EditingID: editingID,
		Input: service.TenantInput{
			Name:        r.Name,
			MonthlyRent: r.MonthlyRent,
			RentDueDay:  r.RentDueDay,
			Status:      r.Status,
			HasElectric: r.HasElectric,
			HasWater:    r.HasWater,
			HasWifi:     r.HasWifi,
			Notes:       r.Notes,
		},
		ConsentConfirmed: r.ConsentConfirmed,
	}
}

func FromTenant(t *domain.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		MonthlyRent: t.MonthlyRent,
		RentDueDay:  t.RentDueDay,
		Status:      string(t.Status),
		HasElectric: t.HasElectric,
		HasWater:    t.HasWater,
		HasWifi:     t.HasWifi,
		Notes:       t.Notes,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = *FromTenant(&tenants[i])
	}
	return responses
}

// FromSummary converts a dashboard summary, adding the peso-formatted totals.
func FromSummary(s *domain.DashboardSummary) *DashboardResponse {
	activity := make([]ActivityResponse, len(s.RecentActivity))
	for i, row := range s.RecentActivity {
		activity[i] = ActivityResponse{
			ID:         row.ID,
			TenantName: row.TenantName,
			Amount:     row.Amount,
			Type:       string(row.Type),
			Category:   row.Category,
			CreatedAt:  row.CreatedAt,
		}
	}

	attention := make([]AttentionResponse, len(s.NeedsAttention))
	for i, t := range s.NeedsAttention {
		attention[i] = AttentionResponse{
			TenantID:   t.ID,
			Name:       t.Name,
			RentDueDay: t.RentDueDay,
			Message:    view.AttentionMessage(t),
		}
	}

	return &DashboardResponse{
		MonthlyRentTotal:      s.MonthlyRentTotal,
		MonthlyUtilitiesTotal: s.MonthlyUtilitiesTotal,
		PaymentsReceivedTotal: s.PaymentsReceivedTotal,
		ActiveTenantCount:     s.ActiveTenantCount,
		Formatted: map[string]string{
			"monthly_rent_total":      view.FormatPeso(s.MonthlyRentTotal),
			"monthly_utilities_total": view.FormatPeso(s.MonthlyUtilitiesTotal),
			"payments_received_total": view.FormatPeso(s.PaymentsReceivedTotal),
		},
		RecentActivity: activity,
		NeedsAttention: attention,
		GeneratedAt:    s.GeneratedAt,
	}
}

func FromSession(session *domain.Session, profile *domain.Profile, now time.Time) *SessionResponse {
	return &SessionResponse{
		UserID:      profile.ID,
		Email:       profile.Email,
		TrialEndsAt: profile.TrialEndsAt,
		InTrial:     profile.InTrial(now),
		ExpiresAt:   session.ExpiresAt,
	}
}
