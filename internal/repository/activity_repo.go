package repository

import (
	"context"

	"github.com/BarkaHamza235/store-management-again6/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository is append-only: entries are created and read, never
// updated or deleted by application logic.
type ActivityRepository interface {
	Create(ctx context.Context, a *model.ActivityLog) error
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.ActivityLog, error)
}

type activityRepo struct{ db *gorm.DB }

func NewActivityRepository(db *gorm.DB) ActivityRepository { return &activityRepo{db: db} }

func (r *activityRepo) Create(ctx context.Context, a *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *activityRepo) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
