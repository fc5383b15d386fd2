package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bizdir_billing/internal/adapter/http/handlers/mocks"
	"bizdir_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func notifyRouter(h *NotificationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/notify", h.ReceiveNotification)
	return r
}

func TestNotificationHandler_ReceiveNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unparseable body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notifyRouter(NewNotificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notify", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notifyRouter(NewNotificationHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(usecase.ReconcileOutcome{}, usecase.ErrMalformedNotification)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notify", bytes.NewBufferString(`{"orderId":"","status":"SUCCESS"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("internal failure is still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notifyRouter(NewNotificationHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(usecase.ReconcileOutcome{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notify", bytes.NewBufferString(`{"orderId":"ORDER-1","status":"SUCCESS","transactionId":"TX1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown order is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notifyRouter(NewNotificationHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Return(usecase.ReconcileOutcome{OrderFound: false}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notify", bytes.NewBufferString(`{"orderId":"ORDER-404","status":"SUCCESS","transactionId":"TX1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("applied notification passes through wire fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		r := notifyRouter(NewNotificationHandler(uc))

		uc.EXPECT().Reconcile(gomock.Any(), usecase.PaymentNotification{
			OrderID:       "ORDER-1",
			Status:        "SUCCESS",
			TransactionID: "TX1",
		}).Return(usecase.ReconcileOutcome{OrderFound: true, Applied: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/notify", bytes.NewBufferString(`{"orderId":"ORDER-1","status":"SUCCESS","transactionId":"TX1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "0" || body["msg"] != "success" {
			t.Fatalf("unexpected ack body: %s", w.Body.String())
		}
	})
}
