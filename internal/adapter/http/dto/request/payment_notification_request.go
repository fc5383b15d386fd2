package request

import "bizdir_billing/internal/usecase"

// PaymentNotificationRequest mirrors the provider's asynchronous status push.
// Field names follow the provider's camelCase wire format, not ours.

type PaymentNotificationRequest struct {
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
}

func (r PaymentNotificationRequest) ToNotification() usecase.PaymentNotification {
	return usecase.PaymentNotification{
		OrderID:       r.OrderID,
		Status:        r.Status,
		TransactionID: r.TransactionID,
	}
}
