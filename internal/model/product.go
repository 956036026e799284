package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product status values.
const (
	ProductActive     = "ACTIVE"
	ProductInactive   = "INACTIVE"
	ProductOutOfStock = "OUT_OF_STOCK"
)

// Product is a catalog item. Status is user-managed: a product with zero
// stock is not automatically flipped to OUT_OF_STOCK.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"index;not null"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StockQuantity int             `gorm:"not null;default:0;check:stock_quantity >= 0"`
	Description   string
	Status        string `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	// ImagePath points under the media root; uploads have no format or size
	// restriction.
	ImagePath *string
	CreatedAt time.Time
	UpdatedAt time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// InStock: quantity > 0 AND status ACTIVE.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0 && p.Status == ProductActive
}
