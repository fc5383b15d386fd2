package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderKind distinguishes a one-time purchase from a recurring (mandate) charge.

type OrderKind string

const (
	OrderKindOneTime OrderKind = "onetime"
	OrderKindMandate OrderKind = "mandate"
)

// OrderStatus is the local settlement state of an order.
//
// Transitions are pending -> completed or pending -> failed, both terminal.
// Terminal orders are never mutated again; duplicate provider notifications
// for a terminal order are acknowledged without side effects.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Terminal reports whether the status admits no further transition.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusFailed
}

// Order is the payment order persisted by the billing service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (merch_order_id-index): merch_order_id
//
// MerchOrderID is the merchant-generated reference sent to Telebirr; it is the
// join key for verification queries and incoming payment notifications, and is
// immutable once assigned. TransactionID and PaymentDate are set only when the
// order completes.

type Order struct {
	ID            string          `json:"id"`
	MerchOrderID  string          `json:"merch_order_id"`
	Kind          OrderKind       `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	Title         string          `json:"title"`
	ContractNo    string          `json:"contract_no,omitempty"`
	Status        OrderStatus     `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	PaymentDate   time.Time       `json:"payment_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	LastCheckedAt time.Time       `json:"last_checked_at,omitempty"`
}
