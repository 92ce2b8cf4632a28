// pkg/storeclient/client_test.go
package storeclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/item"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/pkg/storeclient"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&user.User{}, &item.Item{}, &cart.CartLine{}))

	cfg := &config.Config{
		App: config.AppConfig{Name: "storefront-test", Environment: "test"},
		JWT: config.JWTConfig{
			Secret: "test-secret-key-that-is-long-enough-123456",
			Expiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRoutes(r, db, cfg)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T) *storeclient.Client {
	t.Helper()
	return storeclient.NewClient(newTestServer(t).URL)
}

func TestSignupAndLogin(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	assert.False(t, client.IsAuthenticated())

	created, err := client.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", created.Email)
	assert.True(t, client.IsAuthenticated())

	client.Logout()
	assert.False(t, client.IsAuthenticated())
	assert.Nil(t, client.CurrentCart())

	loggedIn, err := client.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, loggedIn.ID)
	assert.True(t, client.IsAuthenticated())
}

func TestLogin_BadCredentials(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)
	client.Logout()

	_, err = client.Login(ctx, "ada@example.com", "wrong-password")
	require.Error(t, err)

	var apiErr *storeclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid email or password", apiErr.Message)
	assert.False(t, client.IsAuthenticated())
}

func TestItemsAndFilters(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	_, err = client.CreateItem(ctx, storeclient.CreateItemRequest{
		Name:     "hammer",
		Category: "tools",
		Price:    decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)
	_, err = client.CreateItem(ctx, storeclient.CreateItemRequest{
		Name:     "laptop",
		Category: "electronics",
		Price:    decimal.RequireFromString("999.00"),
	})
	require.NoError(t, err)

	all, err := client.Items(ctx, storeclient.ItemFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	min := decimal.RequireFromString("100")
	expensive, err := client.Items(ctx, storeclient.ItemFilter{MinPrice: &min})
	require.NoError(t, err)
	require.Len(t, expensive, 1)
	assert.Equal(t, "laptop", expensive[0].Name)

	tools, err := client.Items(ctx, storeclient.ItemFilter{Category: "TOOL"})
	require.NoError(t, err)
	require.Len(t, tools, 1)
	assert.Equal(t, "hammer", tools[0].Name)

	single, err := client.Item(ctx, tools[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "hammer", single.Name)

	_, err = client.Item(ctx, 999)
	var apiErr *storeclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestUpdateAndDeleteItem(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	created, err := client.CreateItem(ctx, storeclient.CreateItemRequest{
		Name:     "hammer",
		Category: "tools",
		Price:    decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)

	name := "sledgehammer"
	updated, err := client.UpdateItem(ctx, created.ID, storeclient.UpdateItemRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "sledgehammer", updated.Name)
	assert.True(t, created.Price.Equal(updated.Price))

	require.NoError(t, client.DeleteItem(ctx, created.ID))

	err = client.DeleteItem(ctx, created.ID)
	var apiErr *storeclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestCreateItem_RequiresAuth(t *testing.T) {
	client := newTestClient(t)

	_, err := client.CreateItem(context.Background(), storeclient.CreateItemRequest{
		Name:     "hammer",
		Category: "tools",
		Price:    decimal.RequireFromString("9.99"),
	})
	var apiErr *storeclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestCartMirrorReconciliation(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	created, err := client.CreateItem(ctx, storeclient.CreateItemRequest{
		Name:     "widget",
		Category: "tools",
		Price:    decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	// Mirror starts empty until first fetch
	assert.Nil(t, client.CurrentCart())
	assert.Equal(t, 0, client.ItemQuantity(created.ID))

	require.NoError(t, client.AddToCart(ctx, created.ID, 1))
	require.NoError(t, client.AddToCart(ctx, created.ID, 1))

	mirror := client.CurrentCart()
	require.NotNil(t, mirror)
	require.Len(t, mirror.Items, 1)
	assert.Equal(t, 2, client.ItemQuantity(created.ID))
	assert.Equal(t, 2, mirror.ItemCount)
	assert.True(t, decimal.RequireFromString("39.98").Equal(mirror.Total),
		"expected total 39.98, got %s", mirror.Total)

	require.NoError(t, client.RemoveFromCart(ctx, created.ID, false))
	assert.Equal(t, 1, client.ItemQuantity(created.ID))

	require.NoError(t, client.RemoveFromCart(ctx, created.ID, false))
	assert.Equal(t, 0, client.ItemQuantity(created.ID))

	mirror = client.CurrentCart()
	require.NotNil(t, mirror)
	assert.Empty(t, mirror.Items)
	assert.Equal(t, 0, mirror.ItemCount)
}

func TestCartMirror_RemoveAll(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)

	created, err := client.CreateItem(ctx, storeclient.CreateItemRequest{
		Name:     "widget",
		Category: "tools",
		Price:    decimal.RequireFromString("19.99"),
	})
	require.NoError(t, err)

	require.NoError(t, client.AddToCart(ctx, created.ID, 5))
	assert.Equal(t, 5, client.ItemQuantity(created.ID))

	require.NoError(t, client.RemoveFromCart(ctx, created.ID, true))
	assert.Equal(t, 0, client.ItemQuantity(created.ID))
}

func TestCart_RequiresAuth(t *testing.T) {
	client := newTestClient(t)

	_, err := client.RefreshCart(context.Background())
	var apiErr *storeclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
