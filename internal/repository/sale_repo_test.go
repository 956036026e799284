package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLastInvoiceNumberPicksDailyMax(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	cashier := seedUser(t, db, "marie")
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	seedSale(t, db, cashier, "F202603140007", "10.00", model.SalePaid, at.AddDate(0, 0, -1))
	seedSale(t, db, cashier, "F202603150003", "10.00", model.SalePaid, at)
	seedSale(t, db, cashier, "F202603150011", "10.00", model.SalePaid, at)

	last, err := repo.LastInvoiceNumber(context.Background(), db, "F20260315")
	require.NoError(t, err)
	assert.Equal(t, "F202603150011", last)

	last, err = repo.LastInvoiceNumber(context.Background(), db, "F20260316")
	require.NoError(t, err)
	assert.Equal(t, "", last)
}

func TestInvoiceNumberIsUnique(t *testing.T) {
	db := testDB(t)
	cashier := seedUser(t, db, "marie")
	at := time.Now()

	seedSale(t, db, cashier, "F202603150001", "10.00", model.SalePaid, at)
	err := db.Create(&model.Sale{
		InvoiceNumber: "F202603150001",
		CashierID:     cashier.ID,
		CustomerName:  "Client",
		Status:        model.SalePaid,
		TotalAmount:   decimal.Zero,
		CreatedAt:     at,
	}).Error
	require.Error(t, err)
	// Either the translated sentinel or the raw constraint message; the
	// service layer accepts both.
	assert.True(t, errorsIsDuplicated(err), "expected a unique-constraint error, got %v", err)
}

func errorsIsDuplicated(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func TestSaleListSumsRevenueOverFilteredSet(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	cashier := seedUser(t, db, "marie")
	at := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	seedSale(t, db, cashier, "F202603150001", "10.00", model.SalePaid, at)
	seedSale(t, db, cashier, "F202603150002", "25.50", model.SalePaid, at.Add(time.Hour))
	seedSale(t, db, cashier, "F202603150003", "99.99", model.SaleRefunded, at.Add(2*time.Hour))

	sales, total, revenue, err := repo.List(context.Background(), dto.SaleFilter{
		Status: model.SalePaid, Page: 1, Limit: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, sales, 2)
	assert.True(t, revenue.Equal(decimal.RequireFromString("35.50")), "revenue = %s", revenue)
	// Newest first.
	assert.Equal(t, "F202603150002", sales[0].InvoiceNumber)
}

func TestSumItemsTxAndSetTotalTx(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	cashier := seedUser(t, db, "marie")
	cat := seedCategory(t, db, "Boissons")
	cafe := seedProduct(t, db, cat, "Café", "3.50", 10, model.ProductActive)
	the := seedProduct(t, db, cat, "Thé", "10.00", 10, model.ProductActive)

	sale := seedSale(t, db, cashier, "F202603150001", "0.00", model.SalePaid, time.Now(),
		item(cafe, 2, "3.50"), item(the, 1, "10.00"))

	total, err := repo.SumItemsTx(context.Background(), db, sale.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("17.00")), "total = %s", total)

	require.NoError(t, repo.SetTotalTx(context.Background(), db, sale.ID, total))
	reloaded, err := repo.FindByID(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.TotalAmount.Equal(total))
}

func TestReplaceItemsTxSwapsTheSet(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	cashier := seedUser(t, db, "marie")
	cat := seedCategory(t, db, "Boissons")
	cafe := seedProduct(t, db, cat, "Café", "3.50", 10, model.ProductActive)
	the := seedProduct(t, db, cat, "Thé", "10.00", 10, model.ProductActive)

	sale := seedSale(t, db, cashier, "F202603150001", "7.00", model.SalePaid, time.Now(),
		item(cafe, 2, "3.50"))

	require.NoError(t, repo.ReplaceItemsTx(context.Background(), db, sale.ID, []model.SaleItem{
		item(the, 3, "10.00"),
	}))

	reloaded, err := repo.FindByID(context.Background(), sale.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, the.ID, reloaded.Items[0].ProductID)
	assert.Equal(t, 3, reloaded.Items[0].Quantity)
}

func TestBulkDeleteRemovesSalesAndItems(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	cashier := seedUser(t, db, "marie")
	cat := seedCategory(t, db, "Boissons")
	cafe := seedProduct(t, db, cat, "Café", "3.50", 10, model.ProductActive)

	s1 := seedSale(t, db, cashier, "F202603150001", "3.50", model.SalePaid, time.Now(), item(cafe, 1, "3.50"))
	s2 := seedSale(t, db, cashier, "F202603150002", "7.00", model.SalePaid, time.Now(), item(cafe, 2, "3.50"))
	kept := seedSale(t, db, cashier, "F202603150003", "3.50", model.SalePaid, time.Now(), item(cafe, 1, "3.50"))

	deleted, err := repo.BulkDelete(context.Background(), []uuid.UUID{s1.ID, s2.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	var itemCount int64
	require.NoError(t, db.Model(&model.SaleItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(1), itemCount)

	_, err = repo.FindByID(context.Background(), kept.ID)
	assert.NoError(t, err)
}

func TestRevenueByDayGroupsAndOrders(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	cashier := seedUser(t, db, "marie")

	d1 := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	seedSale(t, db, cashier, "F202603140001", "10.00", model.SalePaid, d1)
	seedSale(t, db, cashier, "F202603150001", "5.00", model.SalePaid, d2)
	seedSale(t, db, cashier, "F202603150002", "7.00", model.SalePaid, d2.Add(time.Hour))

	rows, err := repo.RevenueByDay(context.Background(), "2026-03-14", "2026-03-15")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-03-14", rows[0].Day)
	assert.True(t, rows[0].Revenue.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, int64(2), rows[1].Transactions)
	assert.True(t, rows[1].Revenue.Equal(decimal.RequireFromString("12.00")))
}

func TestCountByCashier(t *testing.T) {
	db := testDB(t)
	repo := NewSaleRepository(db)
	marie := seedUser(t, db, "marie")
	paul := seedUser(t, db, "paul")

	seedSale(t, db, marie, "F202603150001", "5.00", model.SalePaid, time.Now())
	seedSale(t, db, marie, "F202603150002", "5.00", model.SalePaid, time.Now())

	n, err := repo.CountByCashier(context.Background(), marie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountByCashier(context.Background(), paul.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
