package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cip_portal/internal/adapter/http/handlers/mocks"
	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCartHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero quantity fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"product_id":"P001","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative quantity rejected by usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		uc.EXPECT().AddToCart(gomock.Any(), "P001", -2).Return(entities.Cart{}, usecase.ErrNonPositiveQuantity)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"product_id":"P001","quantity":-2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stages the selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart/items", h.AddItem)

		var cart entities.Cart
		cart.Add(entities.DefaultCatalog()[0], 5)
		uc.EXPECT().AddToCart(gomock.Any(), "P001", 5).Return(cart, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/cart/items", bytes.NewBufferString(`{"product_id":"P001","quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["total_units"].(float64) != 5 || body["total_value"] != "925" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCartHandler_GetCart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICartUseCase(ctrl)
	h := NewCartHandler(uc)

	r := gin.New()
	r.GET("/v1/cart", h.GetCart)

	uc.EXPECT().ViewCart(gomock.Any()).Return(entities.Cart{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["total_units"].(float64) != 0 || body["total_value"] != "0" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
