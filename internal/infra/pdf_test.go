package infra

import (
	"bytes"
	"testing"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoicePDF(t *testing.T) {
	sale := &dto.SaleDetailResponse{
		ID:            "4b4c0a40-4f6e-4a57-a9a1-000000000001",
		InvoiceNumber: "F202603150001",
		Date:          "15/03/2026 10:30",
		Cashier:       "Marie Dupont",
		Customer:      "Client",
		Status:        "PAID",
		TotalAmount:   "17.00",
		Items: []dto.SaleItemDetail{
			{Product: "Café moulu", Quantity: 2, UnitPrice: "3.50", LineTotal: "7.00"},
			{Product: "Thé vert", Quantity: 1, UnitPrice: "10.00", LineTotal: "10.00"},
		},
	}

	data, err := RenderInvoicePDF(sale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "missing PDF magic")
	assert.Greater(t, len(data), 500)
}
