package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"bizdir_billing/internal/domain/entities"
	"bizdir_billing/internal/usecase/interfaces"
)

// Notification status literals pushed by the provider.
const (
	NotificationStatusSuccess = "SUCCESS"
	NotificationStatusFailed  = "FAILED"
	NotificationStatusPending = "PENDING"
)

var ErrMalformedNotification = errors.New("invalid payment notification format")

// PaymentNotification is the parsed asynchronous status push. The provider
// does not sign these, so the reconciler treats them as claims to be applied
// through a conditional write rather than blindly trusted state.
type PaymentNotification struct {
	OrderID       string
	Status        string
	TransactionID string
}

// ReconcileOutcome reports what a reconcile call actually did. The HTTP layer
// acknowledges success regardless (provider retry-storm suppression); the
// outcome exists so internal failures stay observable in logs and tests.
type ReconcileOutcome struct {
	OrderFound bool
	Applied    bool
	Duplicate  bool
}

type INotificationUseCase interface {
	Reconcile(ctx context.Context, n PaymentNotification) (ReconcileOutcome, error)
}

// NotificationUseCase applies provider status pushes to local orders exactly
// once. The idempotence guard is two-layered: a fast path on the loaded
// order's status, and the repository's compare-and-set for concurrent or
// duplicate deliveries racing past the fast path. Only the writer that wins
// the conditional update runs side effects.
type NotificationUseCase struct {
	repo      interfaces.IOrderRepository
	confirmer interfaces.IConfirmationSender
	publisher interfaces.IListingPublisher
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.IOrderRepository, confirmer interfaces.IConfirmationSender, publisher interfaces.IListingPublisher) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, confirmer: confirmer, publisher: publisher}
}

func (u *NotificationUseCase) Reconcile(ctx context.Context, n PaymentNotification) (ReconcileOutcome, error) {
	n.OrderID = strings.TrimSpace(n.OrderID)
	if n.OrderID == "" || !recognizedStatus(n.Status) {
		log.Printf("[notify][usecase] malformed notification order_id=%q status=%q", n.OrderID, n.Status)
		return ReconcileOutcome{}, ErrMalformedNotification
	}
	log.Printf("[notify][usecase] reconcile start order_id=%s status=%s", n.OrderID, n.Status)

	order, err := u.repo.GetByMerchOrderID(ctx, n.OrderID)
	if err != nil {
		return ReconcileOutcome{}, err
	}
	if order.ID == "" {
		// The provider re-sends; a record created after this push may still
		// match a later delivery.
		log.Printf("[notify][usecase] order not found order_id=%s", n.OrderID)
		return ReconcileOutcome{OrderFound: false}, nil
	}

	if order.Status.Terminal() {
		log.Printf("[notify][usecase] duplicate notification order_id=%s status=%s", n.OrderID, order.Status)
		return ReconcileOutcome{OrderFound: true, Duplicate: true}, nil
	}

	switch n.Status {
	case NotificationStatusSuccess:
		return u.complete(ctx, order, n.TransactionID)
	case NotificationStatusFailed:
		return u.fail(ctx, order)
	default: // PENDING: acknowledged, nothing to change yet.
		return ReconcileOutcome{OrderFound: true}, nil
	}
}

func (u *NotificationUseCase) complete(ctx context.Context, order entities.Order, transactionID string) (ReconcileOutcome, error) {
	applied, err := u.repo.CompareAndSetStatus(ctx, order.ID, entities.OrderStatusPending, entities.OrderStatusCompleted, transactionID, time.Now().UTC())
	if err != nil {
		return ReconcileOutcome{OrderFound: true}, err
	}
	if !applied {
		// A concurrent writer committed first; skip side effects, never retry.
		log.Printf("[notify][usecase] lost conditional update order_id=%s", order.MerchOrderID)
		return ReconcileOutcome{OrderFound: true, Duplicate: true}, nil
	}

	log.Printf("[notify][usecase] order completed order_id=%s transaction_id=%s", order.MerchOrderID, transactionID)
	order.Status = entities.OrderStatusCompleted
	order.TransactionID = transactionID

	// Best-effort side effects: failures are logged for manual follow-up and
	// never revert the committed transition.
	if u.confirmer != nil {
		if err := u.confirmer.SendConfirmation(ctx, order); err != nil {
			log.Printf("[notify][usecase] confirmation email failed order_id=%s err=%v", order.MerchOrderID, err)
		}
	}
	if u.publisher != nil {
		if err := u.publisher.PublishCompletedListing(ctx, order); err != nil {
			log.Printf("[notify][usecase] listing publish failed order_id=%s err=%v", order.MerchOrderID, err)
		}
	}

	return ReconcileOutcome{OrderFound: true, Applied: true}, nil
}

func (u *NotificationUseCase) fail(ctx context.Context, order entities.Order) (ReconcileOutcome, error) {
	applied, err := u.repo.CompareAndSetStatus(ctx, order.ID, entities.OrderStatusPending, entities.OrderStatusFailed, "", time.Time{})
	if err != nil {
		return ReconcileOutcome{OrderFound: true}, err
	}
	if !applied {
		log.Printf("[notify][usecase] lost conditional update order_id=%s", order.MerchOrderID)
		return ReconcileOutcome{OrderFound: true, Duplicate: true}, nil
	}
	log.Printf("[notify][usecase] order failed order_id=%s", order.MerchOrderID)
	return ReconcileOutcome{OrderFound: true, Applied: true}, nil
}

func recognizedStatus(status string) bool {
	switch status {
	case NotificationStatusSuccess, NotificationStatusFailed, NotificationStatusPending:
		return true
	}
	return false
}
