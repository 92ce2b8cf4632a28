// pkg/storeclient/cart.go
package storeclient

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartItem mirrors one server-side cart line
type CartItem struct {
	ID       uint `json:"id"`
	UserID   uint `json:"userId"`
	ItemID   uint `json:"itemId"`
	Quantity int  `json:"quantity"`
	Item     Item `json:"item"`
}

// Cart mirrors the server's cart view
type Cart struct {
	Items     []CartItem      `json:"cartItems"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

// The server is the source of truth for cart state. Every mutation
// posts its intent and then reconciles by re-fetching the whole cart;
// the client never applies a local delta, so the mirror can't diverge.

// RefreshCart fetches the cart from the server and replaces the mirror
func (c *Client) RefreshCart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.doJSON(ctx, "GET", "/cart", nil, &cart); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cart = &cart
	c.mu.Unlock()

	return &cart, nil
}

// CurrentCart returns the last reconciled cart state, or nil if the
// cart has not been fetched since login
func (c *Client) CurrentCart() *Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cart
}

// AddToCart adds quantity units of an item, then reconciles
func (c *Client) AddToCart(ctx context.Context, itemID uint, quantity int) error {
	body := map[string]interface{}{"itemId": itemID, "quantity": quantity}
	if err := c.doJSON(ctx, "POST", "/cart/add", body, nil); err != nil {
		return err
	}

	_, err := c.RefreshCart(ctx)
	return err
}

// RemoveFromCart removes one unit of an item, or the whole line when
// removeAll is set, then reconciles
func (c *Client) RemoveFromCart(ctx context.Context, itemID uint, removeAll bool) error {
	body := map[string]interface{}{"itemId": itemID, "removeAll": removeAll}
	if err := c.doJSON(ctx, "POST", "/cart/remove", body, nil); err != nil {
		return err
	}

	_, err := c.RefreshCart(ctx)
	return err
}

// ItemQuantity reports how many units of an item the mirror holds
func (c *Client) ItemQuantity(itemID uint) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cart == nil {
		return 0
	}
	for _, line := range c.cart.Items {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}
	return 0
}
