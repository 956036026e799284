package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Supplier status values.
const (
	SupplierActive    = "ACTIVE"
	SupplierInactive  = "INACTIVE"
	SupplierSuspended = "SUSPENDED"
)

// Supplier represents a supplier with contact and commercial data.
// Suppliers are not linked to catalog items in this schema.
type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index;not null"`
	ContactPerson string    `gorm:"not null"`
	Email         string    `gorm:"not null"`
	Phone         string    `gorm:"not null"`
	Address       string
	City          string
	PostalCode    string
	Country       string `gorm:"not null;default:'France'"`
	TaxNumber     string
	PaymentTerms  string          `gorm:"not null;default:'30 jours'"`
	CreditLimit   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status        string          `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *Supplier) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Supplier) IsActive() bool { return s.Status == SupplierActive }
