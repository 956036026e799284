package dto

import "github.com/shopspring/decimal"

// ─── Filter ──────────────────────────────────────────────────────────────────

type SupplierFilter struct {
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=15" validate:"min=1,max=200"`
}

// ─── Requests ────────────────────────────────────────────────────────────────

type SupplierRequest struct {
	Name          string          `json:"name"           validate:"required,min=2,max=200"`
	ContactPerson string          `json:"contact_person" validate:"required"`
	Email         string          `json:"email"          validate:"required,email"`
	Phone         string          `json:"phone"          validate:"required,intlphone"`
	Address       string          `json:"address"        validate:"required"`
	City          string          `json:"city"           validate:"required"`
	PostalCode    string          `json:"postal_code"    validate:"required"`
	Country       string          `json:"country"`
	TaxNumber     string          `json:"tax_number"`
	PaymentTerms  string          `json:"payment_terms"`
	CreditLimit   decimal.Decimal `json:"credit_limit"   validate:"min=0"`
	Status        string          `json:"status"         validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
	Notes         string          `json:"notes"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	City          string          `json:"city"`
	PostalCode    string          `json:"postal_code"`
	Country       string          `json:"country"`
	TaxNumber     string          `json:"tax_number"`
	PaymentTerms  string          `json:"payment_terms"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// SupplierCounts aggregates the list view header figures over the filtered set.
type SupplierCounts struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Inactive  int64 `json:"inactive"`
	Suspended int64 `json:"suspended"`
}

type SupplierListResponse struct {
	Data   []SupplierResponse `json:"data"`
	Counts SupplierCounts     `json:"counts"`
	Page   int                `json:"page"`
	Limit  int                `json:"limit"`
}
