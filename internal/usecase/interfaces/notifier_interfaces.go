package interfaces

import (
	"context"

	"bizdir_billing/internal/domain/entities"
)

// IConfirmationSender delivers the settlement confirmation email after an
// order completes. Failures are logged for manual follow-up and never revert
// the committed status transition.
type IConfirmationSender interface {
	SendConfirmation(ctx context.Context, o entities.Order) error
}

// IListingPublisher pushes the paid listing to the downstream content system
// (WordPress). Same best-effort contract as IConfirmationSender.
type IListingPublisher interface {
	PublishCompletedListing(ctx context.Context, o entities.Order) error
}
