package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/controllers"
	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/repository"
	"github.com/spicepatrao/storefront-backend/routes"
	"github.com/spicepatrao/storefront-backend/services"
)

type staticGenerator struct{}

func (staticGenerator) Generate(_ context.Context, _ services.GenerateImageRequest) ([]byte, error) {
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

// newApp wires the full router over in-memory snapshots.
func newApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	logger, _ := zap.NewDevelopment()
	data, err := repository.NewDataRepository(context.Background(), store, logger)
	require.NoError(t, err)

	carts := repository.NewCartRepository(store)
	sessions := repository.NewSessionRepository(store)

	cartSvc := services.NewCartService(carts, data, logger)
	catalogSvc := services.NewCatalogService(data, logger)
	authSvc := services.NewAuthService(data, sessions, logger)
	checkoutSvc := services.NewCheckoutService(cartSvc, data, sessions, logger)
	analyticsSvc := services.NewAnalyticsService(data, data, data)
	imageSvc := services.NewImageService(data, staticGenerator{}, time.Millisecond, logger)

	r := gin.New()
	routes.Register(
		r,
		authSvc,
		controllers.NewAuthController(authSvc),
		controllers.NewProductController(catalogSvc),
		controllers.NewCartController(cartSvc),
		controllers.NewOrderController(checkoutSvc),
		controllers.NewAdminController(catalogSvc, analyticsSvc, imageSvc, checkoutSvc),
	)
	return r
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body == "" {
		reader = bytes.NewBuffer(nil)
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAdminRoutes_RequireAdminSession(t *testing.T) {
	router := newApp(t)

	// Signed out: admin surface is unauthorized.
	rec := do(router, http.MethodGet, "/admin/analytics", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Customer session: forbidden.
	rec = do(router, http.MethodPost, "/auth/login", `{"email":"user@example.com","password":"x"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(router, http.MethodGet, "/admin/analytics", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin session: allowed.
	rec = do(router, http.MethodPost, "/auth/login", `{"email":"admin@spice.com","password":"x","as_admin":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(router, http.MethodGet, "/admin/analytics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStorefrontFlow_BrowseAddCheckout(t *testing.T) {
	router := newApp(t)

	rec := do(router, http.MethodGet, "/products?category=powder", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodPost, "/cart/items", `{"product_id":"turmeric-1","weight":"1kg","quantity":1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(router, http.MethodPost, "/checkout", `{"payment_method":"UPI"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Order struct {
			UserID string `json:"user_id"`
			Total  int    `json:"total"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "guest", resp.Order.UserID)
	assert.Equal(t, 320, resp.Order.Total)

	// Cart is cleared after checkout.
	rec = do(router, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cartResp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartResp))
	assert.Equal(t, 0, cartResp.Total)

	// Checking out an empty cart is rejected.
	rec = do(router, http.MethodPost, "/checkout", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminProductCRUDAndImage(t *testing.T) {
	router := newApp(t)

	rec := do(router, http.MethodPost, "/auth/login", `{"email":"admin@spice.com","as_admin":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodPost, "/admin/products",
		`{"id":"star-anise-1","name_en":"Star Anise","name_hi":"चक्र फूल","price_100g":120,"price_1kg":1100,"stock":20,"category":"whole"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(router, http.MethodPost, "/admin/products/star-anise-1/image", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(router, http.MethodDelete, "/admin/products/star-anise-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodDelete, "/admin/products/star-anise-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
