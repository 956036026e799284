package repository

import (
	"context"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Caisse screen page size (reference behavior).
const CaissePageSize = 6

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	ListAll(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error)
	// ListCaisse returns ACTIVE products for the point-of-sale grid,
	// filtered by name and category, six per page, ordered by name.
	ListCaisse(ctx context.Context, filter dto.CaisseFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	SetImagePath(ctx context.Context, id uuid.UUID, path string) error
	// DeleteWithSaleLines removes the product's historical sale lines and
	// then the product itself in one transaction. This deliberately
	// overrides the delete-restrict on sale_items.product_id: completed
	// sales lose the deleted product's lines. The affected sales' stored
	// totals are left as recorded.
	DeleteWithSaleLines(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
	StockReport(ctx context.Context) ([]model.Product, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) filtered(ctx context.Context, filter dto.ProductFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	q := r.filtered(ctx, filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Category").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) ListAll(ctx context.Context, filter dto.ProductFilter) ([]model.Product, error) {
	var products []model.Product
	err := r.filtered(ctx, filter).Preload("Category").Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) ListCaisse(ctx context.Context, filter dto.CaisseFilter) ([]model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("status = ?", model.ProductActive)
	if filter.Query != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Query+"%")
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	offset := (filter.Page - 1) * CaissePageSize
	err := q.Preload("Category").
		Order("name ASC").
		Offset(offset).Limit(CaissePageSize).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) SetImagePath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).Update("image_path", path).Error
}

func (r *productRepo) DeleteWithSaleLines(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, "id = ?", id).Error
	})
}

func (r *productRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, err
}

func (r *productRepo) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("stock_quantity <= ?", threshold).Count(&n).Error
	return n, err
}

func (r *productRepo) StockReport(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Preload("Category").Order("name ASC").Find(&products).Error
	return products, err
}
