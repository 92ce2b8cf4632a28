// internal/domain/item/service.go
package item

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/apperror"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents catalog list query parameters. Bounds are
// inclusive and independently optional.
type ListRequest struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// CreateRequest represents item creation data
type CreateRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// UpdateRequest represents partial item update data
type UpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
}

// List retrieves items matching the filter, newest first. All matches
// are returned; the catalog has no pagination.
func (s *Service) List(req *ListRequest) ([]Item, error) {
	query := s.db.Model(&Item{})

	if req.Category != "" {
		// Case-insensitive substring match, portable across drivers
		query = query.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(req.Category)+"%")
	}
	if req.MinPrice != nil {
		if req.MinPrice.IsNegative() {
			return nil, apperror.Validation("minPrice must not be negative")
		}
		query = query.Where("price >= ?", req.MinPrice)
	}
	if req.MaxPrice != nil {
		if req.MaxPrice.IsNegative() {
			return nil, apperror.Validation("maxPrice must not be negative")
		}
		query = query.Where("price <= ?", req.MaxPrice)
	}

	items := []Item{}
	if err := query.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	return items, nil
}

// Find retrieves a single item by ID
func (s *Service) Find(id uint) (*Item, error) {
	var it Item
	result := s.db.Where("id = ?", id).First(&it)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("item not found")
		}
		return nil, apperror.Internal(result.Error)
	}

	return &it, nil
}

// Create adds a new item to the catalog
func (s *Service) Create(req *CreateRequest) (*Item, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, apperror.Validation("price must be a positive number")
	}

	it := Item{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Price:       req.Price.Round(2),
	}

	if err := s.db.Create(&it).Error; err != nil {
		return nil, apperror.Internal(err)
	}

	return &it, nil
}

// Update applies a partial update to an existing item
func (s *Service) Update(id uint, req *UpdateRequest) (*Item, error) {
	it, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			return nil, err
		}
		updates["category"] = strings.TrimSpace(*req.Category)
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperror.Validation("price must be a positive number")
		}
		updates["price"] = req.Price.Round(2)
	}

	if len(updates) > 0 {
		if err := s.db.Model(it).Updates(updates).Error; err != nil {
			return nil, apperror.Internal(err)
		}
	}

	return it, nil
}

// Delete removes an item from the catalog
func (s *Service) Delete(id uint) error {
	it, err := s.Find(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(it).Error; err != nil {
		return apperror.Internal(err)
	}

	return nil
}

// Length limits count characters, not bytes

func validateName(name string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(name)); n < 1 || n > 255 {
		return apperror.Validation("name must be between 1 and 255 characters")
	}
	return nil
}

func validateCategory(category string) error {
	if n := utf8.RuneCountInString(strings.TrimSpace(category)); n < 1 || n > 100 {
		return apperror.Validation("category must be between 1 and 100 characters")
	}
	return nil
}
