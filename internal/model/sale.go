package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale status values.
const (
	SalePaid      = "PAID"
	SaleRefunded  = "REFUNDED"
	SaleCancelled = "CANCELLED"
)

// Sale is an invoice header. TotalAmount is stored but derived: after any
// mutation of Items it must equal the sum of the items' line totals.
type Sale struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string    `gorm:"uniqueIndex;not null"`
	CashierID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName  string    `gorm:"not null;default:'Client'"`
	Status        string    `gorm:"type:varchar(20);not null;default:'PAID'"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time       `gorm:"index"`

	Cashier *User      `gorm:"foreignKey:CashierID;constraint:OnDelete:RESTRICT"`
	Items   []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

func (s *Sale) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// SaleItem is one line of a sale. UnitPrice is a snapshot taken at sale time,
// independent of later product price changes.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (i *SaleItem) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// LineTotal = Quantity × UnitPrice.
func (i *SaleItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
