// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, cfg),
		config:      cfg,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	cartView, err := h.cartService.GetCart(userID)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	c.JSON(http.StatusOK, cartView)
}

// AddItem handles POST /cart/add. A new line answers 201, a merged
// line answers 200.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req cart.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	// Absent quantity means one unit; an explicit 0 or negative is
	// rejected by the service
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	line, created, err := h.cartService.AddItem(userID, req.ItemID, quantity)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"message":  "Item added to cart successfully",
			"cartItem": line,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Cart updated successfully",
		"cartItem": line,
	})
}

// RemoveItem handles POST /cart/remove
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req cart.RemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err)
		return
	}

	line, err := h.cartService.RemoveItem(userID, req.ItemID, req.RemoveAll)
	if err != nil {
		respondError(c, h.config, err)
		return
	}

	if line == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Item removed from cart successfully",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Cart updated successfully",
		"cartItem": line,
	})
}
