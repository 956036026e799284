package repository

import (
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/infra"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an in-memory sqlite database with the full schema. TranslateError
// mirrors the production connection so duplicate-key detection behaves the same.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         model.RoleCashier,
		Active:       true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, cat *model.Category, name, price string, qty int, status string) *model.Product {
	t.Helper()
	p := &model.Product{
		Name:          name,
		CategoryID:    cat.ID,
		Price:         decimal.RequireFromString(price),
		StockQuantity: qty,
		Status:        status,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedSale(t *testing.T, db *gorm.DB, cashier *model.User, invoice, total, status string, at time.Time, items ...model.SaleItem) *model.Sale {
	t.Helper()
	s := &model.Sale{
		InvoiceNumber: invoice,
		CashierID:     cashier.ID,
		CustomerName:  "Client",
		Status:        status,
		TotalAmount:   decimal.RequireFromString(total),
		CreatedAt:     at,
		Items:         items,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func item(p *model.Product, qty int, unitPrice string) model.SaleItem {
	return model.SaleItem{
		ID:        uuid.New(),
		ProductID: p.ID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}
