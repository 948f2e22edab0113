package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cip_portal/internal/adapter/http/handlers/mocks"
	"cip_portal/internal/domain/entities"
	"cip_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func demoView() entities.ProductView {
	return entities.DeriveProductView(entities.DefaultCatalog()[0], 0, false)
}

func TestReplenishmentHandler_ListProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		uc.EXPECT().ListProductViews(gomock.Any()).Return([]entities.ProductView{demoView()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "P001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body[0]["suggested_quantity"].(float64) != 530 {
			t.Fatalf("unexpected suggestion: %v", body[0]["suggested_quantity"])
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.GET("/v1/products", h.ListProducts)

		uc.EXPECT().ListProductViews(gomock.Any()).Return(nil, errors.New("boom"))

		req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestReplenishmentHandler_GetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:id", h.GetProduct)

		uc.EXPECT().GetProductView(gomock.Any(), "P001").Return(demoView(), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/P001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.GET("/v1/products/:id", h.GetProduct)

		uc.EXPECT().GetProductView(gomock.Any(), "P999").Return(entities.ProductView{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/P999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReplenishmentHandler_ReportStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id/stock", h.ReportStock)

		req := httptest.NewRequest(http.MethodPut, "/v1/products/P001/stock", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing stock field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id/stock", h.ReportStock)

		req := httptest.NewRequest(http.MethodPut, "/v1/products/P001/stock", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("zero stock is a valid report", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id/stock", h.ReportStock)

		view := entities.DeriveProductView(entities.DefaultCatalog()[0], 0, true)
		uc.EXPECT().ReportStock(gomock.Any(), "P001", 0).Return(view, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/products/P001/stock", bytes.NewBufferString(`{"stock":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["stock_source"] != "manual_report" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["stockout_projection"] != entities.StockoutNow {
			t.Fatalf("unexpected projection: %v", body["stockout_projection"])
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id/stock", h.ReportStock)

		uc.EXPECT().ReportStock(gomock.Any(), "P999", 10).Return(entities.ProductView{}, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPut, "/v1/products/P999/stock", bytes.NewBufferString(`{"stock":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReplenishmentHandler_ClearReportedStock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReplenishmentUseCase(ctrl)
	h := NewReplenishmentHandler(uc)

	r := gin.New()
	r.DELETE("/v1/products/:id/stock", h.ClearReportedStock)

	uc.EXPECT().ClearReportedStock(gomock.Any(), "P001").Return(demoView(), nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/products/P001/stock", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["stock_source"] != "default_feed" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestReplenishmentHandler_SetTargetQuantity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stores the reviewed value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id/quantity", h.SetTargetQuantity)

		view := demoView()
		view.TargetQuantity = 200
		uc.EXPECT().SetTargetQuantity(gomock.Any(), "P001", 200).Return(view, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/products/P001/quantity", bytes.NewBufferString(`{"quantity":200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing quantity field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReplenishmentUseCase(ctrl)
		h := NewReplenishmentHandler(uc)

		r := gin.New()
		r.PUT("/v1/products/:id/quantity", h.SetTargetQuantity)

		req := httptest.NewRequest(http.MethodPut, "/v1/products/P001/quantity", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
