// pkg/storeclient/client.go
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Client is a Go client for the storefront API. It keeps the bearer
// token from the last signup/login and a mirror of the server-side
// cart; see cart.go for the mirroring rules.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
	cart  *Cart
}

// NewClient creates a client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// APIError is an error response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// User mirrors the server's user representation
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Item mirrors the server's catalog item representation
type Item struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// ItemFilter narrows catalog listings. Zero values mean "no filter".
type ItemFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// CreateItemRequest is the payload for creating a catalog item
type CreateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// UpdateItemRequest is the payload for a partial item update
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Signup registers a new account and retains the returned token
func (c *Client) Signup(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", body, &resp); err != nil {
		return nil, err
	}

	c.setToken(resp.Token)
	return resp.User, nil
}

// Login authenticates and retains the returned token
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}

	c.setToken(resp.Token)
	return resp.User, nil
}

// Logout discards the stored token and cart mirror. The server keeps
// no session state, so this is all a logout is.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.cart = nil
}

// IsAuthenticated reports whether a token is held
func (c *Client) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Items lists catalog items matching the filter
func (c *Client) Items(ctx context.Context, filter ItemFilter) ([]Item, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.MinPrice != nil {
		query.Set("minPrice", filter.MinPrice.String())
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", filter.MaxPrice.String())
	}

	path := "/items"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp struct {
		Items []Item `json:"items"`
		Count int    `json:"count"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Items, nil
}

// Item fetches a single catalog item by ID
func (c *Client) Item(ctx context.Context, itemID uint) (*Item, error) {
	var resp struct {
		Item *Item `json:"item"`
	}
	path := fmt.Sprintf("/items/%d", itemID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// CreateItem adds a catalog item
func (c *Client) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	var resp struct {
		Item *Item `json:"item"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/items", req, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// UpdateItem applies a partial update to a catalog item
func (c *Client) UpdateItem(ctx context.Context, itemID uint, req UpdateItemRequest) (*Item, error) {
	var resp struct {
		Item *Item `json:"item"`
	}
	path := fmt.Sprintf("/items/%d", itemID)
	if err := c.doJSON(ctx, http.MethodPut, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// DeleteItem removes a catalog item
func (c *Client) DeleteItem(ctx context.Context, itemID uint) error {
	path := fmt.Sprintf("/items/%d", itemID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
