package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the closed set of access levels. There is no dynamic role probing:
// every protected route declares the roles it accepts.
const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

// User stores employee accounts with role-based access.
// Sales reference the cashier with ON DELETE RESTRICT, so an employee who has
// recorded sales can only be soft-disabled via Active, never hard-deleted.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'CASHIER'"`
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	HireDate     *time.Time
	Active       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BeforeCreate assigns the uuid client-side so the id is known before the
// insert returns, on any database engine.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName mirrors the display rule used everywhere a cashier is shown:
// "First Last" when both are set, username otherwise.
func (u *User) FullName() string {
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
