// internal/domain/cart/service.go
package cart

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/item"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the cart engine. It is the only writer of cart lines and
// enforces the one-line-per-(user,item) invariant.
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// AddRequest represents add-to-cart data. Quantity is a pointer so an
// absent field (defaults to 1) is distinguishable from an explicit 0,
// which is invalid.
type AddRequest struct {
	ItemID   uint `json:"itemId" binding:"required,min=1"`
	Quantity *int `json:"quantity"`
}

// RemoveRequest represents remove-from-cart data
type RemoveRequest struct {
	ItemID    uint `json:"itemId" binding:"required,min=1"`
	RemoveAll bool `json:"removeAll"`
}

// AddItem adds quantity units of an item to the user's cart. Repeated
// adds accumulate on the existing line instead of creating duplicates.
// The increment-or-insert runs as a single upsert keyed on the
// (user_id, item_id) unique index, so concurrent adds cannot lose an
// update. Returns the resulting line with its item, and whether the
// line was newly created.
func (s *Service) AddItem(userID, itemID uint, quantity int) (*CartLine, bool, error) {
	if quantity < 1 {
		return nil, false, apperror.Validation("quantity must be a positive integer")
	}

	// The item must exist before anything is written
	var it item.Item
	if err := s.db.Where("id = ?", itemID).First(&it).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperror.NotFound("item not found")
		}
		return nil, false, apperror.Internal(err)
	}

	// Existence check decides created-vs-updated for the caller; the
	// write below is correct either way.
	var existing CartLine
	err := s.db.Where("user_id = ? AND item_id = ?", userID, itemID).First(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return nil, false, apperror.Internal(err)
	}

	line := CartLine{
		UserID:   userID,
		ItemID:   itemID,
		Quantity: quantity,
	}
	err = s.db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", quantity),
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, false, apperror.Internal(err)
	}

	result, err := s.findLine(userID, itemID)
	if err != nil {
		return nil, false, err
	}

	return result, created, nil
}

// RemoveItem removes an item from the user's cart. With removeAll, or
// when only one unit is left, the line is deleted; otherwise the
// quantity drops by exactly 1. There is no decrement-by-N; callers
// repeat the call or pass removeAll. A nil line in the result means the
// line was deleted.
func (s *Service) RemoveItem(userID, itemID uint, removeAll bool) (*CartLine, error) {
	line, err := s.findLine(userID, itemID)
	if err != nil {
		return nil, err
	}

	if removeAll || line.Quantity <= 1 {
		if err := s.db.Delete(&CartLine{}, line.ID).Error; err != nil {
			return nil, apperror.Internal(err)
		}
		return nil, nil
	}

	// Guarded so a concurrent removal cannot push the quantity below 1
	err = s.db.Model(&CartLine{}).
		Where("id = ? AND quantity > 1", line.ID).
		Update("quantity", gorm.Expr("quantity - 1")).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return s.findLine(userID, itemID)
}

// GetCart returns the user's cart lines newest-first along with the
// computed total and item count. An absent cart is an empty cart, never
// an error.
func (s *Service) GetCart(userID uint) (*Cart, error) {
	lines := []CartLine{}
	err := s.db.Preload("Item").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&lines).Error
	if err != nil {
		return nil, apperror.Internal(err)
	}

	total := decimal.Zero
	itemCount := 0
	for _, line := range lines {
		total = total.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		itemCount += line.Quantity
	}

	return &Cart{
		Lines:     lines,
		Total:     total.Round(2),
		ItemCount: itemCount,
	}, nil
}

func (s *Service) findLine(userID, itemID uint) (*CartLine, error) {
	var line CartLine
	err := s.db.Preload("Item").
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("item not found in cart")
		}
		return nil, apperror.Internal(err)
	}

	return &line, nil
}
