package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts the Telebirr protocol client.
//
// Create calls return the redirect payment URL; they do not persist anything
// locally. VerifyPayment reports the gateway's authoritative trade state;
// verified is true only for the literal success state, and a definite
// non-success state is a valid result rather than an error.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, title string, amount decimal.Decimal, merchOrderID string) (paymentURL string, err error)
	CreateMandateOrder(ctx context.Context, title string, amount decimal.Decimal, merchOrderID, contractNo string) (paymentURL string, err error)
	VerifyPayment(ctx context.Context, merchOrderID string) (verified bool, tradeState string, details map[string]any, err error)
}
