package repository

import (
	"context"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error)
	// Counts returns the list header aggregates over the search-filtered set
	// (the status filter itself is ignored so every bucket stays visible).
	Counts(ctx context.Context, search string) (dto.SupplierCounts, error)
	// ListAll returns the full filtered set ordered by name, for exports.
	ListAll(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *supplierRepo) filtered(ctx context.Context, filter dto.SupplierFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Supplier{})
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return q
}

func (r *supplierRepo) List(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	offset := (filter.Page - 1) * filter.Limit
	err := r.filtered(ctx, filter).
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Counts(ctx context.Context, search string) (dto.SupplierCounts, error) {
	var counts dto.SupplierCounts
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.Supplier{})
		if search != "" {
			q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
		}
		return q
	}
	if err := base().Count(&counts.Total).Error; err != nil {
		return counts, err
	}
	if err := base().Where("status = ?", model.SupplierActive).Count(&counts.Active).Error; err != nil {
		return counts, err
	}
	if err := base().Where("status = ?", model.SupplierInactive).Count(&counts.Inactive).Error; err != nil {
		return counts, err
	}
	err := base().Where("status = ?", model.SupplierSuspended).Count(&counts.Suspended).Error
	return counts, err
}

func (r *supplierRepo) ListAll(ctx context.Context, filter dto.SupplierFilter) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.filtered(ctx, filter).Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Supplier{}, "id = ?", id).Error
}
