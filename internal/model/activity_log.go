package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity severity levels, matching the dashboard badge palette.
const (
	LevelPrimary = "primary"
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelDanger  = "danger"
	LevelInfo    = "info"
)

// ActivityLog is the append-only audit trail. Rows are never updated or
// deleted by application logic; they only go away with their user (cascade).
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Verb      string    `gorm:"not null"`
	Level     string    `gorm:"type:varchar(20);not null;default:'primary'"`
	Icon      string    `gorm:"not null"`
	Timestamp time.Time `gorm:"autoCreateTime;index"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (a *ActivityLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
