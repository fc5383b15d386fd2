package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bizdir_billing/internal/adapter/http/handlers/mocks"
	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-order", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-order", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("amount not a number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-order", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-order", bytes.NewBufferString(`{"title":"Listing","amount":"abc"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), "Listing", gomock.Any()).Return(usecase.CreatedOrder{}, usecase.ErrAmountOverLimit)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-order", bytes.NewBufferString(`{"title":"Listing","amount":100000000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway rejection maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), "Listing", gomock.Any()).Return(usecase.CreatedOrder{}, usecase.ErrOrderCreationFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-order", bytes.NewBufferString(`{"title":"Listing","amount":500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), "Listing", gomock.Any()).DoAndReturn(
			func(_ any, _ string, amount decimal.Decimal) (usecase.CreatedOrder, error) {
				if !amount.Equal(decimal.RequireFromString("500.50")) {
					t.Fatalf("unexpected amount: %s", amount)
				}
				return usecase.CreatedOrder{PaymentURL: "https://checkout/?x=1", OrderID: "ORDER-1"}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-order", bytes.NewBufferString(`{"title":"Listing","amount":500.50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_url"] != "https://checkout/?x=1" || body["order_id"] != "ORDER-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_CreateMandateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("short contract number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-mandate-order", h.CreateMandateOrder)

		uc.EXPECT().CreateMandateOrder(gomock.Any(), "Listing", gomock.Any(), "C1").Return(usecase.CreatedOrder{}, usecase.ErrInvalidContractNo)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-mandate-order", bytes.NewBufferString(`{"title":"Listing","amount":500,"contract_no":"C1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/create-mandate-order", h.CreateMandateOrder)

		uc.EXPECT().CreateMandateOrder(gomock.Any(), "Listing", gomock.Any(), "CT-12345").Return(
			usecase.CreatedOrder{PaymentURL: "https://checkout/?x=2", OrderID: "MANDATE-1", ContractNo: "CT-12345"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/create-mandate-order", bytes.NewBufferString(`{"title":"Listing","amount":500,"contract_no":"CT-12345"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["contract_no"] != "CT-12345" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("provider failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/verify", h.VerifyPayment)

		uc.EXPECT().VerifyPayment(gomock.Any(), "ORDER-1").Return(usecase.VerificationResult{}, usecase.ErrVerificationFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewBufferString(`{"order_id":"ORDER-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unsettled order is still 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/verify", h.VerifyPayment)

		uc.EXPECT().VerifyPayment(gomock.Any(), "ORDER-1").Return(usecase.VerificationResult{Verified: false, TradeState: "FAILED"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewBufferString(`{"order_id":"ORDER-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verified"] != false || body["trade_state"] != "FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_CheckStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/check-status/:order_id", h.CheckStatus)

		uc.EXPECT().GetOrderStatus(gomock.Any(), "ORDER-404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/check-status/ORDER-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentOrderUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/check-status/:order_id", h.CheckStatus)

		now := time.Now().UTC()
		uc.EXPECT().GetOrderStatus(gomock.Any(), "ORDER-1").Return(entities.Order{
			ID:            "uuid-1",
			MerchOrderID:  "ORDER-1",
			Kind:          entities.OrderKindOneTime,
			Amount:        decimal.NewFromInt(500),
			Title:         "Listing",
			Status:        entities.OrderStatusCompleted,
			TransactionID: "TX1",
			PaymentDate:   now,
			CreatedAt:     now,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/check-status/ORDER-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["order_id"] != "ORDER-1" || body["status"] != "completed" || body["transaction_id"] != "TX1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["amount"] != "500" {
			t.Fatalf("amount should serialize as string, got %v", body["amount"])
		}
	})
}
