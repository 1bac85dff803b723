package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spicepatrao/storefront-backend/database"
	"github.com/spicepatrao/storefront-backend/repository"
	"github.com/spicepatrao/storefront-backend/services"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	logger, _ := zap.NewDevelopment()
	data, err := repository.NewDataRepository(context.Background(), store, logger)
	if err != nil {
		t.Fatalf("data repository: %v", err)
	}

	cartSvc := services.NewCartService(repository.NewCartRepository(store), data, logger)
	controller := NewCartController(cartSvc)

	router := gin.New()
	router.GET("/cart", controller.GetCart)
	router.POST("/cart/items", controller.AddItem)
	router.DELETE("/cart/items/:product_id", controller.RemoveItem)
	return router
}

func TestAddItemThenGetCart(t *testing.T) {
	router := newCartRouter(t)

	body := bytes.NewBufferString(`{"product_id":"turmeric-1","weight":"100g","quantity":1}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var resp struct {
		Total int `json:"total"`
		Cart  struct {
			Items []struct {
				ProductID string `json:"product_id"`
				Quantity  int    `json:"quantity"`
			} `json:"items"`
		} `json:"cart"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 40 {
		t.Errorf("expected total 40, got %d", resp.Total)
	}
	if len(resp.Cart.Items) != 1 || resp.Cart.Items[0].ProductID != "turmeric-1" {
		t.Errorf("unexpected cart items: %+v", resp.Cart.Items)
	}
}

func TestAddItem_RejectsInvalidWeight(t *testing.T) {
	router := newCartRouter(t)

	body := bytes.NewBufferString(`{"product_id":"turmeric-1","weight":"750g","quantity":1}`)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestRemoveItem_RequiresWeightQuery(t *testing.T) {
	router := newCartRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/turmeric-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}
