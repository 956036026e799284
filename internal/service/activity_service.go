package service

import (
	"context"

	"github.com/BarkaHamza235/store-management-again6/internal/dto"
	"github.com/BarkaHamza235/store-management-again6/internal/model"
	"github.com/BarkaHamza235/store-management-again6/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Dashboard shows this many recent entries.
const recentActivityLimit = 5

// ActivityRecorder appends audit entries. Recording is best-effort: a failed
// append is logged server-side but never fails the operation that triggered it.
type ActivityRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, verb, level, icon string)
	Recent(ctx context.Context, userID uuid.UUID) ([]dto.ActivityResponse, error)
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityRecorder {
	return &activityService{repo: repo}
}

func (s *activityService) Record(ctx context.Context, userID uuid.UUID, verb, level, icon string) {
	entry := &model.ActivityLog{
		UserID: userID,
		Verb:   verb,
		Level:  level,
		Icon:   icon,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).Str("verb", verb).Msg("activity log append failed")
	}
}

func (s *activityService) Recent(ctx context.Context, userID uuid.UUID) ([]dto.ActivityResponse, error) {
	entries, err := s.repo.RecentByUser(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ActivityResponse, len(entries))
	for i, e := range entries {
		resp[i] = dto.ActivityResponse{
			Verb:      e.Verb,
			Level:     e.Level,
			Icon:      e.Icon,
			Timestamp: e.Timestamp.Format("02/01/2006 15:04"),
		}
	}
	return resp, nil
}
