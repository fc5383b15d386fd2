package request

import "encoding/json"

// CreateOrderRequest is the payload for the one-time order route.
//
// `amount` arrives as a JSON number or string; it is parsed into a decimal
// by the handler so currency math never goes through float64.

type CreateOrderRequest struct {
	Title  string      `json:"title"`
	Amount json.Number `json:"amount"`
}

// MandateOrderRequest is the payload for the recurring (direct-debit) order
// route. `contract_no` is the merchant-side contract identifier embedded in
// the mandate agreement.

type MandateOrderRequest struct {
	Title      string      `json:"title"`
	Amount     json.Number `json:"amount"`
	ContractNo string      `json:"contract_no"`
}

// VerifyPaymentRequest asks the gateway for the authoritative state of a
// previously created order.

type VerifyPaymentRequest struct {
	OrderID string `json:"order_id"`
}
