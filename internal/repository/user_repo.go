package repository

import (
	"context"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// List applies the employee search filter, always excluding excludeID
	// (the signed-in admin never appears in their own employee list).
	List(ctx context.Context, filter dto.EmployeeFilter, excludeID uuid.UUID) ([]model.User, int64, error)
	CountActive(ctx context.Context, filter dto.EmployeeFilter, excludeID uuid.UUID, active bool) (int64, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) DB() *gorm.DB { return r.db }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error
	return &u, err
}

// filtered builds the shared query for List and CountActive: free text matches
// first name, last name or email (case-insensitive, OR-combined), then role
// and active filters narrow the set.
func (r *userRepo) filtered(ctx context.Context, filter dto.EmployeeFilter, excludeID uuid.UUID) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.User{}).Where("id <> ?", excludeID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	switch filter.Status {
	case "active":
		q = q.Where("active = ?", true)
	case "inactive":
		q = q.Where("active = ?", false)
	}
	return q
}

func (r *userRepo) List(ctx context.Context, filter dto.EmployeeFilter, excludeID uuid.UUID) ([]model.User, int64, error) {
	q := r.filtered(ctx, filter, excludeID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&users).Error
	return users, total, err
}

func (r *userRepo) CountActive(ctx context.Context, filter dto.EmployeeFilter, excludeID uuid.UUID, active bool) (int64, error) {
	var n int64
	err := r.filtered(ctx, filter, excludeID).Where("active = ?", active).Count(&n).Error
	return n, err
}

func (r *userRepo) Update(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}
