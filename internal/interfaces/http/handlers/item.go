// internal/interfaces/http/handlers/item.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/item"
	"gorm.io/gorm"
)

// ItemHandler handles catalog endpoints
type ItemHandler struct {
	itemService *item.Service
	config      *config.Config
}

// NewItemHandler creates a new item handler
func NewItemHandler(db *gorm.DB, cfg *config.Config) *ItemHandler {
	return &ItemHandler{
		itemService: item.NewService(db, cfg),
		config:      cfg,
	}
}

// List handles GET /items
func (h *ItemHandler) List(c *gin.Context) {
	req := item.ListRequest{
		Category: c.Query("category"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "minPrice must be a number"})
			return
		}
		req.MinPrice = &price
	}
	if raw := c.Query("maxPrice"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxPrice must be a number"})
			return
		}
		req.MaxPrice = &price
	}

	items, err := h.itemService.List(&req)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// Get handles GET /items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	found, err := h.itemService.Find(id)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"item": found,
	})
}

// Create handles POST /items
func (h *ItemHandler) Create(c *gin.Context) {
	var req item.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	created, err := h.itemService.Create(&req)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item created successfully",
		"item":    created,
	})
}

// Update handles PUT /items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	var req item.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	updated, err := h.itemService.Update(id, &req)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"item":    updated,
	})
}

// Delete handles DELETE /items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(id); err != nil {
		respondError(c, h.config, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item deleted successfully",
	})
}

func parseItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return 0, false
	}
	return uint(id), true
}
