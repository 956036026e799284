package dto

import "github.com/shopspring/decimal"

// ─── Filter ──────────────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales and reused by the
// sale exports so that an export always contains exactly the listed rows.
type SaleFilter struct {
	InvoiceNumber string `form:"invoice_number"`
	CashierID     string `form:"cashier"  validate:"omitempty,uuid"`
	ProductName   string `form:"product"`
	DateFrom      string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo        string `form:"date_to"   validate:"omitempty,datetime=2006-01-02"`
	Status        string `form:"status"    validate:"omitempty,oneof=PAID REFUNDED CANCELLED"`
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=15" validate:"min=1,max=200"`
}

// ─── Requests ────────────────────────────────────────────────────────────────

type SaleItemInput struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

// SaleRequest carries the admin sale form: header fields plus the full set of
// line items. On update the item set replaces the existing one (add/remove).
type SaleRequest struct {
	CustomerName string          `json:"customer_name" validate:"required"`
	Status       string          `json:"status"        validate:"omitempty,oneof=PAID REFUNDED CANCELLED"`
	Items        []SaleItemInput `json:"items"         validate:"required,min=1,dive"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

// SaleItemDetail formats decimals as 2dp strings, matching the on-screen and
// exported representation.
type SaleItemDetail struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
}

type SaleDetailResponse struct {
	ID            string           `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	Date          string           `json:"date"` // DD/MM/YYYY HH:MM
	Cashier       string           `json:"cashier"`
	Customer      string           `json:"customer"`
	Status        string           `json:"status"`
	TotalAmount   string           `json:"total_amount"`
	Items         []SaleItemDetail `json:"items"`
}

type SaleListItem struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Date          string          `json:"date"`
	CashierID     string          `json:"cashier_id"`
	CashierName   string          `json:"cashier_name"`
	Customer      string          `json:"customer"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	ItemCount     int             `json:"item_count"`
}

type SaleListResponse struct {
	Data    []SaleListItem  `json:"data"`
	Total   int64           `json:"total"`
	Revenue decimal.Decimal `json:"revenue"` // sum over the filtered set
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
}
