package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteWithSaleLinesKeepsSaleHeaders(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	cashier := seedUser(t, db, "marie")
	cat := seedCategory(t, db, "Boissons")
	cafe := seedProduct(t, db, cat, "Café", "3.50", 10, model.ProductActive)
	the := seedProduct(t, db, cat, "Thé", "2.80", 5, model.ProductActive)

	sale := seedSale(t, db, cashier, "F202603150001", "9.80", model.SalePaid, time.Now(),
		item(cafe, 2, "3.50"), item(the, 1, "2.80"))

	require.NoError(t, repo.DeleteWithSaleLines(context.Background(), cafe.ID))

	_, err := repo.FindByID(context.Background(), cafe.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// The sale survives with its stored total untouched; only the deleted
	// product's line is gone.
	var reloaded model.Sale
	require.NoError(t, db.Preload("Items").First(&reloaded, "id = ?", sale.ID).Error)
	assert.Len(t, reloaded.Items, 1)
	assert.Equal(t, the.ID, reloaded.Items[0].ProductID)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("9.80")))
}

func TestListCaisseShowsActiveSixPerPage(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	cat := seedCategory(t, db, "Boissons")
	for i := 0; i < 8; i++ {
		seedProduct(t, db, cat, fmt.Sprintf("Produit %02d", i), "1.00", 5, model.ProductActive)
	}
	seedProduct(t, db, cat, "Produit caché", "1.00", 5, model.ProductInactive)

	page1, total, err := repo.ListCaisse(context.Background(), dto.CaisseFilter{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(8), total)
	assert.Len(t, page1, CaissePageSize)

	page2, _, err := repo.ListCaisse(context.Background(), dto.CaisseFilter{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page2, 2)
}

func TestListCaisseFiltersByNameAndCategory(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	boissons := seedCategory(t, db, "Boissons")
	epicerie := seedCategory(t, db, "Épicerie")
	seedProduct(t, db, boissons, "Café moulu", "3.50", 10, model.ProductActive)
	seedProduct(t, db, boissons, "Thé vert", "2.80", 5, model.ProductActive)
	seedProduct(t, db, epicerie, "Café soluble", "4.20", 3, model.ProductActive)

	products, total, err := repo.ListCaisse(context.Background(), dto.CaisseFilter{
		Query: "café", CategoryID: boissons.ID.String(), Page: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Café moulu", products[0].Name)
}

func TestCountLowStockUsesInclusiveThreshold(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	cat := seedCategory(t, db, "Boissons")
	seedProduct(t, db, cat, "Épuisé", "1.00", 0, model.ProductActive)
	seedProduct(t, db, cat, "Juste", "1.00", 3, model.ProductActive)
	seedProduct(t, db, cat, "Confortable", "1.00", 4, model.ProductActive)

	n, err := repo.CountLowStock(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSetImagePath(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	cat := seedCategory(t, db, "Boissons")
	cafe := seedProduct(t, db, cat, "Café", "3.50", 10, model.ProductActive)

	require.NoError(t, repo.SetImagePath(context.Background(), cafe.ID, "products/abc.png"))

	reloaded, err := repo.FindByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ImagePath)
	assert.Equal(t, "products/abc.png", *reloaded.ImagePath)
}
