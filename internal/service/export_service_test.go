package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil, newStubSaleRepo())

	_, err := svc.Sales(context.Background(), "xml", dto.SaleFilter{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadFormat))
}

func TestExportSalesCSVMirrorsTheList(t *testing.T) {
	repo := newStubSaleRepo()
	sale := &model.Sale{
		ID:            uuid.New(),
		InvoiceNumber: "F202603150001",
		CashierID:     uuid.New(),
		CustomerName:  "Client",
		Status:        model.SalePaid,
		TotalAmount:   decimal.RequireFromString("17.00"),
		CreatedAt:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
		Cashier:       &model.User{Username: "marie", FirstName: "Marie", LastName: "Dupont"},
		Items: []model.SaleItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("3.50")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
	repo.sales[sale.ID] = sale

	svc := NewExportService(nil, nil, nil, nil, repo)
	doc, err := svc.Sales(context.Background(), "csv", dto.SaleFilter{})
	require.NoError(t, err)
	assert.Equal(t, "ventes.csv", doc.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", doc.ContentType)

	r := csv.NewReader(bytes.NewReader(doc.Data))
	r.Comma = '\t'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Facture", records[0][0])
	row := records[1]
	assert.Equal(t, "F202603150001", row[0])
	assert.Equal(t, "15/03/2026 10:30", row[1])
	assert.Equal(t, "Marie Dupont", row[2])
	assert.Equal(t, "17.00", row[5])
	assert.Equal(t, "2", row[6])
}

func TestExportFilenamesFollowTheFormat(t *testing.T) {
	svc := NewExportService(nil, nil, nil, nil, newStubSaleRepo())

	for format, filename := range map[string]string{
		"pdf":   "ventes.pdf",
		"excel": "ventes.xlsx",
		"word":  "ventes.docx",
		"csv":   "ventes.csv",
	} {
		doc, err := svc.Sales(context.Background(), format, dto.SaleFilter{})
		require.NoError(t, err, format)
		assert.Equal(t, filename, doc.Filename)
		assert.NotEmpty(t, doc.Data, format)
	}
}
