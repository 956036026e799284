package dto

import "github.com/shopspring/decimal"

// CartItem is one line of the caisse cart. UnitPrice comes from the screen so
// the recorded price is exactly what the cashier saw.
type CartItem struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"required"`
}

type CheckoutRequest struct {
	Items        []CartItem `json:"items"         validate:"required,min=1,dive"`
	CustomerName string     `json:"customer_name"`
}

// CheckoutResponse matches the AJAX contract of the caisse screen.
type CheckoutResponse struct {
	Success       bool   `json:"success"`
	SaleID        string `json:"sale_id,omitempty"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}
