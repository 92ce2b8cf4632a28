// internal/domain/item/entity.go
package item

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item represents a catalog item
type Item struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;size:255" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    string          `gorm:"not null;size:100;index" json:"category"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TableName overrides the table name
func (Item) TableName() string {
	return "items"
}
