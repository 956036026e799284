package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeleteCascadeRemovesProducts(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	boissons := seedCategory(t, db, "Boissons")
	epicerie := seedCategory(t, db, "Épicerie")
	seedProduct(t, db, boissons, "Café", "3.50", 10, model.ProductActive)
	seedProduct(t, db, boissons, "Thé", "2.80", 5, model.ProductActive)
	seedProduct(t, db, epicerie, "Riz", "1.90", 20, model.ProductActive)

	require.NoError(t, repo.DeleteCascade(context.Background(), boissons.ID))

	_, err := repo.FindByID(context.Background(), boissons.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var remaining int64
	require.NoError(t, db.Model(&model.Product{}).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	n, err := repo.CountProducts(context.Background(), epicerie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCountSaleLinesSpansTheWholeCategory(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	cashier := seedUser(t, db, "marie")
	boissons := seedCategory(t, db, "Boissons")
	epicerie := seedCategory(t, db, "Épicerie")
	cafe := seedProduct(t, db, boissons, "Café", "3.50", 10, model.ProductActive)
	the := seedProduct(t, db, boissons, "Thé", "2.80", 5, model.ProductActive)
	riz := seedProduct(t, db, epicerie, "Riz", "1.90", 20, model.ProductActive)

	seedSale(t, db, cashier, "F202603150001", "9.80", model.SalePaid, time.Now(),
		item(cafe, 2, "3.50"), item(the, 1, "2.80"))
	seedSale(t, db, cashier, "F202603150002", "1.90", model.SalePaid, time.Now(),
		item(riz, 1, "1.90"))

	n, err := repo.CountSaleLines(context.Background(), boissons.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.CountSaleLines(context.Background(), epicerie.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCategoryNameIsUnique(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	seedCategory(t, db, "Boissons")

	err := repo.Create(context.Background(), &model.Category{Name: "Boissons"})
	require.Error(t, err)
	assert.True(t, errorsIsDuplicated(err), "expected a unique-constraint error, got %v", err)
}

func TestCategoryListSearchIsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	repo := NewCategoryRepository(db)
	seedCategory(t, db, "Boissons")
	seedCategory(t, db, "Produits laitiers")

	categories, total, err := repo.List(context.Background(), dto.CategoryFilter{
		Search: "BOIS", Page: 1, Limit: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, categories, 1)
	assert.Equal(t, "Boissons", categories[0].Name)
}
