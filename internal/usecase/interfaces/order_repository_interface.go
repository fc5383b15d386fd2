package interfaces

import (
	"context"
	"time"

	"bizdir_billing/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Not-found lookups return a zero-value Order (empty ID), not an error.
// CompareAndSetStatus is the only mutation of a persisted order's status: it
// commits the transition only while the stored status still equals expected,
// reporting false when a concurrent or duplicate writer got there first. The
// losing writer must treat false as a no-op and skip side effects.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByMerchOrderID(ctx context.Context, merchOrderID string) (entities.Order, error)
	CompareAndSetStatus(ctx context.Context, id string, expected, next entities.OrderStatus, transactionID string, paymentDate time.Time) (bool, error)
	UpdateLastChecked(ctx context.Context, id string, checkedAt time.Time) error
}
