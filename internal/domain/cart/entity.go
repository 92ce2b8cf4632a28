// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/item"
)

// CartLine is the per-item quantity record for one user's cart. The
// composite unique index guarantees at most one line per (user, item)
// pair; the engine's upsert relies on it.
type CartLine struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_user_item" json:"userId"`
	ItemID    uint      `gorm:"not null;uniqueIndex:idx_cart_items_user_item" json:"itemId"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Item item.Item `gorm:"foreignKey:ItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"item"`
}

// TableName overrides the table name
func (CartLine) TableName() string {
	return "cart_items"
}

// Cart is the derived view of one user's cart: lines joined with their
// items, newest line first, plus the two derived scalars.
type Cart struct {
	Lines     []CartLine      `json:"cartItems"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}
