package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kingrain94/rent-dashboard/internal/domain"
	"github.com/kingrain94/rent-dashboard/internal/repository"
	"github.com/kingrain94/rent-dashboard/pkg/logger"
)

const tenantSearchLimit = 20

//go:generate mockery --name QueueService --output ../mocks
type QueueService interface {
	SendIndexMessage(ctx context.Context, tenant *domain.Tenant) error
	SendDeleteIndexMessage(ctx context.Context, ownerID, tenantID string) error
	SendStatementMessage(ctx context.Context, ownerID string, month time.Time) error
}

//go:generate mockery --name DashboardNotifier --output ../mocks
type DashboardNotifier interface {
	NotifyDashboard(ctx context.Context, ownerID string) error
}

// TenantInput holds the editable fields of a tenant.
type TenantInput struct {
	Name        string
	MonthlyRent decimal.Decimal
	RentDueDay  int
	Status      string
	HasElectric bool
	HasWater    bool
	HasWifi     bool
	Notes       string
}

// TenantForm is one submission of the tenant form. An empty EditingID
// creates a tenant, otherwise the tenant with that id is updated.
type TenantForm struct {
	EditingID        string
	Input            TenantInput
	ConsentConfirmed bool
}

// IsCreate reports whether the form creates a new tenant.
func (f TenantForm) IsCreate() bool {
	return f.EditingID == ""
}

type TenantService struct {
	repo     repository.Repository
	queue    QueueService
	notifier DashboardNotifier
	logger   *logger.Logger
}

func NewTenantService(repo repository.Repository, queue QueueService, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:   repo,
		queue:  queue,
		logger: logger,
	}
}

// SetDashboardNotifier sets the notifier told about every tenant change.
func (s *TenantService) SetDashboardNotifier(notifier DashboardNotifier) {
	s.notifier = notifier
}

// Save creates or updates a tenant of ownerID from a submitted form.
func (s *TenantService) Save(ctx context.Context, ownerID string, form TenantForm) (*domain.Tenant, error) {
	if ownerID == "" {
		return nil, ErrNoSession
	}

	input, err := validateTenantInput(form.Input)
	if err != nil {
		return nil, err
	}

	tenant := &domain.Tenant{
		ID:          form.EditingID,
		UserID:      ownerID,
		Name:        input.Name,
		MonthlyRent: input.MonthlyRent,
		RentDueDay:  input.RentDueDay,
		Status:      domain.TenantStatus(input.Status),
		HasElectric: input.HasElectric,
		HasWater:    input.HasWater,
		HasWifi:     input.HasWifi,
		Notes:       input.Notes,
	}

	if form.IsCreate() {
		if !form.ConsentConfirmed {
			return nil, ErrConsentRequired
		}

		created, err := s.repo.Tenant().Create(ctx, tenant)
		if err != nil {
			s.logger.Error("Failed to create tenant", err, zap.String("user_id", ownerID))
			return nil, storeErr("create_tenant", err)
		}
		tenant = created
	} else {
		rows, err := s.repo.Tenant().Update(ctx, tenant)
		if err != nil {
			s.logger.Error("Failed to update tenant", err,
				zap.String("user_id", ownerID),
				zap.String("tenant_id", tenant.ID))
			return nil, storeErr("update_tenant", err)
		}
		if rows == 0 {
			return nil, ErrTenantNotFound
		}
	}

	if err := s.queue.SendIndexMessage(ctx, tenant); err != nil {
		s.logger.Error("Failed to send index message", err, zap.String("tenant_id", tenant.ID))
	}
	s.notifyDashboard(ctx, ownerID)

	return tenant, nil
}

// List returns the tenants of ownerID, newest first.
func (s *TenantService) List(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	tenants, err := s.repo.Tenant().List(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list tenants", err, zap.String("user_id", ownerID))
		return nil, storeErr("list_tenants", err)
	}
	return tenants, nil
}

func (s *TenantService) Get(ctx context.Context, id, ownerID string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		s.logger.Error("Failed to get tenant", err, zap.String("tenant_id", id))
		return nil, storeErr("get_tenant", err)
	}
	return tenant, nil
}

// Delete removes a tenant of ownerID. A tenant of another owner is
// reported as not found and left untouched.
func (s *TenantService) Delete(ctx context.Context, id, ownerID string) error {
	rows, err := s.repo.Tenant().Delete(ctx, id, ownerID)
	if err != nil {
		s.logger.Error("Failed to delete tenant", err, zap.String("tenant_id", id))
		return storeErr("delete_tenant", err)
	}
	if rows == 0 {
		return ErrTenantNotFound
	}

	if err := s.queue.SendDeleteIndexMessage(ctx, ownerID, id); err != nil {
		s.logger.Error("Failed to send delete index message", err, zap.String("tenant_id", id))
	}
	s.notifyDashboard(ctx, ownerID)

	return nil
}

// Search finds tenants of ownerID by name or notes.
func (s *TenantService) Search(ctx context.Context, ownerID, query string) ([]domain.TenantSearchHit, error) {
	hits, err := s.repo.Search().SearchTenants(ctx, ownerID, strings.TrimSpace(query), tenantSearchLimit)
	if err != nil {
		s.logger.Error("Failed to search tenants", err, zap.String("user_id", ownerID))
		return nil, storeErr("search_tenants", err)
	}
	return hits, nil
}

func (s *TenantService) notifyDashboard(ctx context.Context, ownerID string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyDashboard(ctx, ownerID); err != nil {
		s.logger.Error("Failed to notify dashboard", err, zap.String("user_id", ownerID))
	}
}

func validateTenantInput(input TenantInput) (TenantInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Notes = strings.TrimSpace(input.Notes)
	if input.Status == "" {
		input.Status = string(domain.TenantActive)
	}

	switch {
	case input.Name == "":
		return input, &ValidationError{Field: "name", Message: "name is required"}
	case input.MonthlyRent.IsNegative():
		return input, &ValidationError{Field: "monthly_rent", Message: "monthly rent must not be negative"}
	case input.RentDueDay < 1 || input.RentDueDay > 31:
		return input, &ValidationError{Field: "rent_due_day", Message: "rent due day must be between 1 and 31"}
	case !domain.IsValidTenantStatus(input.Status):
		return input, &ValidationError{Field: "status", Message: "invalid status: " + input.Status}
	}

	input.MonthlyRent = input.MonthlyRent.Round(2)
	return input, nil
}
