package repository

import (
	"context"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DayAggregate is one row of the sales-by-day aggregation.
type DayAggregate struct {
	Day          string
	Revenue      decimal.Decimal
	Transactions int64
}

type SaleRepository interface {
	// CreateTx inserts the sale header and its items inside tx.
	CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	// LastInvoiceNumber returns the lexicographically greatest invoice
	// number with the given prefix, or "" when none exists. Called inside
	// the allocation transaction.
	LastInvoiceNumber(ctx context.Context, tx *gorm.DB, prefix string) (string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, decimal.Decimal, error)
	// ListAll returns the whole filtered set (no pagination) for exports,
	// ordered like the on-screen list.
	ListAll(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error)
	UpdateHeaderTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error
	// ReplaceItemsTx swaps the sale's item set for the given one.
	ReplaceItemsTx(ctx context.Context, tx *gorm.DB, saleID uuid.UUID, items []model.SaleItem) error
	// SumItemsTx re-derives the total from the items as persisted.
	SumItemsTx(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (decimal.Decimal, error)
	SetTotalTx(ctx context.Context, tx *gorm.DB, saleID uuid.UUID, total decimal.Decimal) error
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	CountByCashier(ctx context.Context, cashierID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
	RevenueOnDay(ctx context.Context, day string) (decimal.Decimal, error)
	RevenueByDay(ctx context.Context, dateFrom, dateTo string) ([]DayAggregate, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) LastInvoiceNumber(ctx context.Context, tx *gorm.DB, prefix string) (string, error) {
	var numbers []string
	err := tx.WithContext(ctx).Model(&model.Sale{}).
		Where("invoice_number LIKE ?", prefix+"%").
		Order("invoice_number DESC").
		Limit(1).
		Pluck("invoice_number", &numbers).Error
	if err != nil || len(numbers) == 0 {
		return "", err
	}
	return numbers[0], nil
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Items.Product").Preload("Cashier").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *saleRepo) filtered(ctx context.Context, filter dto.SaleFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.InvoiceNumber != "" {
		q = q.Where("invoice_number LIKE ?", "%"+filter.InvoiceNumber+"%")
	}
	if filter.CashierID != "" {
		q = q.Where("cashier_id = ?", filter.CashierID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		q = q.Where("DATE(created_at) >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("DATE(created_at) <= ?", filter.DateTo)
	}
	if filter.ProductName != "" {
		sub := r.db.Model(&model.SaleItem{}).
			Select("sale_items.sale_id").
			Joins("JOIN products ON products.id = sale_items.product_id").
			Where("LOWER(products.name) LIKE LOWER(?)", "%"+filter.ProductName+"%")
		q = q.Where("sales.id IN (?)", sub)
	}
	return q
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, decimal.Decimal, error) {
	q := r.filtered(ctx, filter)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, decimal.Zero, err
	}

	var agg struct{ Revenue decimal.Decimal }
	if err := r.filtered(ctx, filter).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Scan(&agg).Error; err != nil {
		return nil, 0, decimal.Zero, err
	}

	var sales []model.Sale
	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").Preload("Cashier").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, agg.Revenue, err
}

func (r *saleRepo) ListAll(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.filtered(ctx, filter).
		Preload("Items").Preload("Cashier").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdateHeaderTx(ctx context.Context, tx *gorm.DB, s *model.Sale) error {
	return tx.WithContext(ctx).Model(&model.Sale{}).Where("id = ?", s.ID).
		Updates(map[string]interface{}{
			"customer_name": s.CustomerName,
			"status":        s.Status,
		}).Error
}

func (r *saleRepo) ReplaceItemsTx(ctx context.Context, tx *gorm.DB, saleID uuid.UUID, items []model.SaleItem) error {
	if err := tx.WithContext(ctx).Where("sale_id = ?", saleID).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].SaleID = saleID
	}
	return tx.WithContext(ctx).Create(&items).Error
}

func (r *saleRepo) SumItemsTx(ctx context.Context, tx *gorm.DB, saleID uuid.UUID) (decimal.Decimal, error) {
	var agg struct{ Total decimal.Decimal }
	err := tx.WithContext(ctx).Model(&model.SaleItem{}).
		Select("COALESCE(SUM(quantity * unit_price), 0) AS total").
		Where("sale_id = ?", saleID).
		Scan(&agg).Error
	return agg.Total, err
}

func (r *saleRepo) SetTotalTx(ctx context.Context, tx *gorm.DB, saleID uuid.UUID, total decimal.Decimal) error {
	return tx.WithContext(ctx).Model(&model.Sale{}).
		Where("id = ?", saleID).Update("total_amount", total).Error
}

func (r *saleRepo) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	// Items cascade from sales; the explicit delete keeps the behavior
	// identical on engines without FK cascades enabled.
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id IN ?", ids).Delete(&model.SaleItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&model.Sale{})
		deleted = res.RowsAffected
		return res.Error
	})
	return deleted, err
}

func (r *saleRepo) CountByCashier(ctx context.Context, cashierID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Where("cashier_id = ?", cashierID).Count(&n).Error
	return n, err
}

func (r *saleRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Sale{}).Count(&n).Error
	return n, err
}

func (r *saleRepo) RevenueOnDay(ctx context.Context, day string) (decimal.Decimal, error) {
	var agg struct{ Revenue decimal.Decimal }
	err := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Where("DATE(created_at) = ?", day).
		Scan(&agg).Error
	return agg.Revenue, err
}

func (r *saleRepo) RevenueByDay(ctx context.Context, dateFrom, dateTo string) ([]DayAggregate, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select("DATE(created_at) AS day, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS transactions").
		Group("DATE(created_at)").
		Order("day ASC")
	if dateFrom != "" {
		q = q.Where("DATE(created_at) >= ?", dateFrom)
	}
	if dateTo != "" {
		q = q.Where("DATE(created_at) <= ?", dateTo)
	}
	var rows []DayAggregate
	err := q.Scan(&rows).Error
	return rows, err
}
