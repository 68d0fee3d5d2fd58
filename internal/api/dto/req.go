package dto

import "github.com/shopspring/decimal"

type SignUpRequest struct {
	Email           string `json:"email" binding:"required" example:"owner@example.com"`
	Password        string `json:"password" binding:"required" example:"secret123"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"secret123"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TenantRequest is the body of tenant create and update calls.
// ConsentConfirmed must be set when creating a tenant.
type TenantRequest struct {
	Name             string          `json:"name" binding:"required" example:"Ana Santos"`
	MonthlyRent      decimal.Decimal `json:"monthly_rent" swaggertype:"string" example:"10000.00"`
	RentDueDay       int             `json:"rent_due_day" example:"5"`
	Status           string          `json:"status" example:"active"`
	HasElectric      bool            `json:"has_electric" example:"true"`
	HasWater         bool            `json:"has_water" example:"true"`
	HasWifi          bool            `json:"has_wifi" example:"false"`
	Notes            string          `json:"notes" example:"Room 2B"`
	ConsentConfirmed bool            `json:"consent_confirmed" example:"true"`
}

type StatementRequest struct {
	Month string `json:"month" binding:"required" example:"2026-10"`
}
