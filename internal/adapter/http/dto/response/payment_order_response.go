package response

import (
	"time"

	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase"
)

type CreateOrderResponse struct {
	PaymentURL string `json:"payment_url"`
	OrderID    string `json:"order_id"`
	ContractNo string `json:"contract_no,omitempty"`
}

func FromCreatedOrder(o usecase.CreatedOrder) CreateOrderResponse {
	return CreateOrderResponse{
		PaymentURL: o.PaymentURL,
		OrderID:    o.OrderID,
		ContractNo: o.ContractNo,
	}
}

type VerifyPaymentResponse struct {
	Verified   bool           `json:"verified"`
	TradeState string         `json:"trade_state,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

func FromVerification(v usecase.VerificationResult) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Verified:   v.Verified,
		TradeState: v.TradeState,
		Details:    v.Details,
	}
}

type OrderStatusResponse struct {
	OrderID       string    `json:"order_id"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	PaymentDate   time.Time `json:"payment_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	LastCheckedAt time.Time `json:"last_checked_at,omitempty"`
}

func FromOrder(o entities.Order) OrderStatusResponse {
	return OrderStatusResponse{
		OrderID:       o.MerchOrderID,
		Kind:          string(o.Kind),
		Title:         o.Title,
		Amount:        o.Amount.String(),
		Status:        string(o.Status),
		TransactionID: o.TransactionID,
		PaymentDate:   o.PaymentDate,
		CreatedAt:     o.CreatedAt,
		LastCheckedAt: o.LastCheckedAt,
	}
}
