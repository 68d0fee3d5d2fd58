package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// TenantStatus is the lifecycle state of a renter.
type TenantStatus string

const (
	TenantActive            TenantStatus = "active"
	TenantMovedOut          TenantStatus = "moved_out"
	TenantLeftWithoutNotice TenantStatus = "left_without_notice"
)

// ValidTenantStatuses contains all valid statuses in the system
var ValidTenantStatuses = []TenantStatus{TenantActive, TenantMovedOut, TenantLeftWithoutNotice}

// IsValidTenantStatus checks if a given status is valid
func IsValidTenantStatus(status string) bool {
	return slices.Contains(ValidTenantStatuses, TenantStatus(status))
}

// Tenant is a renter owned by exactly one landlord (UserID).
type Tenant struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:text;not null" json:"name"`
	MonthlyRent decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monthly_rent"`
	RentDueDay  int             `gorm:"not null" json:"rent_due_day"`
	Status      TenantStatus    `gorm:"type:text;not null;default:'active'" json:"status"`
	HasElectric bool            `gorm:"not null;default:false" json:"has_electric"`
	HasWater    bool            `gorm:"not null;default:false" json:"has_water"`
	HasWifi     bool            `gorm:"not null;default:false" json:"has_wifi"`
	Notes       string          `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Owner       *Profile        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// IsActive reports whether the tenant currently rents.
func (t Tenant) IsActive() bool {
	return t.Status == TenantActive
}

// TenantSearchHit is a tenant document returned by the search index.
type TenantSearchHit struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Name        string       `json:"name"`
	Notes       string       `json:"notes"`
	Status      TenantStatus `json:"status"`
	MonthlyRent string       `json:"monthly_rent"`
	RentDueDay  int          `json:"rent_due_day"`
}
