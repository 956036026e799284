package dto

import "github.com/shopspring/decimal"

// ─── Filters ─────────────────────────────────────────────────────────────────

type ProductFilter struct {
	Search     string `form:"search"`
	CategoryID string `form:"category" validate:"omitempty,uuid"`
	Status     string `form:"status"   validate:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=15" validate:"min=1,max=200"`
}

// CaisseFilter drives the point-of-sale product grid: active products only,
// six per page.
type CaisseFilter struct {
	Query      string `form:"q"`
	CategoryID string `form:"category" validate:"omitempty,uuid"`
	Page       int    `form:"page,default=1" validate:"min=1"`
}

// ─── Requests ────────────────────────────────────────────────────────────────

type ProductRequest struct {
	Name          string          `json:"name"           validate:"required,min=1,max=200"`
	CategoryID    string          `json:"category_id"    validate:"required,uuid"`
	Price         decimal.Decimal `json:"price"          validate:"required,min=0"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	Description   string          `json:"description"`
	Status        string          `json:"status"         validate:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	InStock       bool            `json:"in_stock"`
	ImageURL      *string         `json:"image_url"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
