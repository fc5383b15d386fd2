package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTitle        = errors.New("title is required")
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrAmountOverLimit     = errors.New("amount exceeds the configured maximum")
	ErrInvalidContractNo   = errors.New("valid contract number is required (minimum 5 characters)")
	ErrInvalidOrderID      = errors.New("valid order id is required")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderCreationFailed = errors.New("failed to create payment order")
	ErrVerificationFailed  = errors.New("failed to verify payment")
)

// minContractNoLen is the shortest contract number the mandate template accepts.
const minContractNoLen = 5

// IPaymentOrderUseCase encapsulates order creation, verification and status
// reads. Validation happens here, before any gateway call; the gateway client
// only ever sees pre-validated input.

type IPaymentOrderUseCase interface {
	CreateOrder(ctx context.Context, title string, amount decimal.Decimal) (CreatedOrder, error)
	CreateMandateOrder(ctx context.Context, title string, amount decimal.Decimal, contractNo string) (CreatedOrder, error)
	VerifyPayment(ctx context.Context, merchOrderID string) (VerificationResult, error)
	GetOrderStatus(ctx context.Context, merchOrderID string) (entities.Order, error)
}

// CreatedOrder is returned to the caller once a payment URL is obtained and
// the pending order record is persisted.
type CreatedOrder struct {
	PaymentURL string
	OrderID    string
	ContractNo string
}

// VerificationResult reports the gateway's authoritative view of an order.
type VerificationResult struct {
	Verified   bool
	TradeState string
	Details    map[string]any
}

type PaymentOrderUseCase struct {
	repo      interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
	maxAmount decimal.Decimal
}

var _ IPaymentOrderUseCase = (*PaymentOrderUseCase)(nil)

func NewPaymentOrderUseCase(repo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, maxAmount decimal.Decimal) *PaymentOrderUseCase {
	return &PaymentOrderUseCase{repo: repo, gateway: gateway, maxAmount: maxAmount}
}

func (u *PaymentOrderUseCase) CreateOrder(ctx context.Context, title string, amount decimal.Decimal) (CreatedOrder, error) {
	log.Printf("[order][usecase] create start title=%q amount=%s", title, amount)
	title = strings.TrimSpace(title)
	if err := u.validateOrderInput(title, amount); err != nil {
		log.Printf("[order][usecase] create rejected title=%q amount=%s err=%v", title, amount, err)
		return CreatedOrder{}, err
	}
	if u.gateway == nil {
		return CreatedOrder{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return CreatedOrder{}, errors.New("order repository not configured")
	}

	merchOrderID := newMerchOrderID("ORDER")
	paymentURL, err := u.gateway.CreateOrder(ctx, title, amount, merchOrderID)
	if err != nil {
		log.Printf("[order][usecase] gateway create failed merch_order_id=%s err=%v", merchOrderID, err)
		return CreatedOrder{}, errors.Wrapf(ErrOrderCreationFailed, "%v", err)
	}

	order := entities.Order{
		ID:           uuid.NewString(),
		MerchOrderID: merchOrderID,
		Kind:         entities.OrderKindOneTime,
		Amount:       amount,
		Title:        title,
		Status:       entities.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := u.repo.Create(ctx, order); err != nil {
		log.Printf("[order][usecase] persist failed merch_order_id=%s err=%v", merchOrderID, err)
		return CreatedOrder{}, err
	}

	log.Printf("[order][usecase] create success merch_order_id=%s", merchOrderID)
	return CreatedOrder{PaymentURL: paymentURL, OrderID: merchOrderID}, nil
}

func (u *PaymentOrderUseCase) CreateMandateOrder(ctx context.Context, title string, amount decimal.Decimal, contractNo string) (CreatedOrder, error) {
	log.Printf("[order][usecase] create-mandate start title=%q amount=%s", title, amount)
	title = strings.TrimSpace(title)
	contractNo = strings.TrimSpace(contractNo)
	if err := u.validateOrderInput(title, amount); err != nil {
		return CreatedOrder{}, err
	}
	// Contract validation happens before any network call.
	if len(contractNo) < minContractNoLen {
		log.Printf("[order][usecase] create-mandate rejected contract_no=%q", contractNo)
		return CreatedOrder{}, ErrInvalidContractNo
	}
	if u.gateway == nil {
		return CreatedOrder{}, errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return CreatedOrder{}, errors.New("order repository not configured")
	}

	merchOrderID := newMerchOrderID("MANDATE")
	paymentURL, err := u.gateway.CreateMandateOrder(ctx, title, amount, merchOrderID, contractNo)
	if err != nil {
		log.Printf("[order][usecase] gateway create-mandate failed merch_order_id=%s err=%v", merchOrderID, err)
		return CreatedOrder{}, errors.Wrapf(ErrOrderCreationFailed, "%v", err)
	}

	order := entities.Order{
		ID:           uuid.NewString(),
		MerchOrderID: merchOrderID,
		Kind:         entities.OrderKindMandate,
		Amount:       amount,
		Title:        title,
		ContractNo:   contractNo,
		Status:       entities.OrderStatusPending,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := u.repo.Create(ctx, order); err != nil {
		log.Printf("[order][usecase] persist failed merch_order_id=%s err=%v", merchOrderID, err)
		return CreatedOrder{}, err
	}

	log.Printf("[order][usecase] create-mandate success merch_order_id=%s contract_no=%s", merchOrderID, contractNo)
	return CreatedOrder{PaymentURL: paymentURL, OrderID: merchOrderID, ContractNo: contractNo}, nil
}

// VerifyPayment asks the gateway for the authoritative trade state. An order
// abandoned after a client-side timeout may still exist gateway-side; this is
// the reconciliation path for that case, so a local record is not required.
func (u *PaymentOrderUseCase) VerifyPayment(ctx context.Context, merchOrderID string) (VerificationResult, error) {
	merchOrderID = strings.TrimSpace(merchOrderID)
	if merchOrderID == "" {
		return VerificationResult{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return VerificationResult{}, errors.New("payment gateway not configured")
	}

	verified, state, details, err := u.gateway.VerifyPayment(ctx, merchOrderID)
	if err != nil {
		log.Printf("[order][usecase] verify failed merch_order_id=%s err=%v", merchOrderID, err)
		return VerificationResult{}, errors.Wrapf(ErrVerificationFailed, "%v", err)
	}

	if u.repo != nil {
		if order, lookupErr := u.repo.GetByMerchOrderID(ctx, merchOrderID); lookupErr == nil && order.ID != "" {
			if touchErr := u.repo.UpdateLastChecked(ctx, order.ID, time.Now().UTC()); touchErr != nil {
				log.Printf("[order][usecase] last-checked update failed merch_order_id=%s err=%v", merchOrderID, touchErr)
			}
		}
	}

	log.Printf("[order][usecase] verify success merch_order_id=%s verified=%t trade_state=%s", merchOrderID, verified, state)
	return VerificationResult{Verified: verified, TradeState: state, Details: details}, nil
}

func (u *PaymentOrderUseCase) GetOrderStatus(ctx context.Context, merchOrderID string) (entities.Order, error) {
	merchOrderID = strings.TrimSpace(merchOrderID)
	if merchOrderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByMerchOrderID(ctx, merchOrderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *PaymentOrderUseCase) validateOrderInput(title string, amount decimal.Decimal) error {
	if title == "" {
		return ErrInvalidTitle
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(u.maxAmount) {
		return ErrAmountOverLimit
	}
	return nil
}

// newMerchOrderID builds the merchant reference sent to the gateway; unique
// per attempt, never reused across retries.
func newMerchOrderID(prefix string) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, time.Now().UnixMilli(), rand.Intn(1000))
}
