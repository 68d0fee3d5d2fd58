package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Utility is a utility charge billed to the owner for a period.
type Utility struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	TenantID  *string         `gorm:"type:uuid" json:"tenant_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PeriodEnd time.Time       `gorm:"not null;index" json:"period_end"`
	CreatedAt time.Time       `json:"created_at"`
	Tenant    *Tenant         `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Utility) TableName() string {
	return "utilities"
}

// Payment is money received by the owner.
type Payment struct {
	ID          string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	TenantID    *string         `gorm:"type:uuid" json:"tenant_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentDate time.Time       `gorm:"not null;index" json:"payment_date"`
	CreatedAt   time.Time       `json:"created_at"`
	Tenant      *Tenant         `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// LedgerType separates money coming in from charges.
type LedgerType string

const (
	LedgerPayment LedgerType = "payment"
	LedgerCharge  LedgerType = "charge"
)

// LedgerEntry is a recorded financial event shown in the activity feed.
type LedgerEntry struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index:idx_ledger_user_created,priority:1" json:"user_id"`
	TenantID  *string         `gorm:"type:uuid" json:"tenant_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type      LedgerType      `gorm:"type:text;not null" json:"type"`
	Category  string          `gorm:"type:text" json:"category"`
	CreatedAt time.Time       `gorm:"index:idx_ledger_user_created,priority:2" json:"created_at"`
	Tenant    *Tenant         `gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE" json:"tenant,omitempty"`
}

func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// IsPayment reports whether the entry is money received.
func (e LedgerEntry) IsPayment() bool {
	return e.Type == LedgerPayment
}

// TenantName returns the linked tenant's name, or "" when the entry is not linked.
func (e LedgerEntry) TenantName() string {
	if e.Tenant == nil {
		return ""
	}
	return e.Tenant.Name
}
