package handlers

import (
	"errors"
	"log"
	"net/http"

	request "bizdir_billing/internal/adapter/http/dto/request"
	response "bizdir_billing/internal/adapter/http/dto/response"
	"bizdir_billing/internal/usecase"
	"bizdir_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidNotification = pkg.NewDomainErrorSimple("INVALID_NOTIFICATION", "Invalid notification payload", http.StatusBadRequest)

// NotificationHandler receives the provider's asynchronous payment status
// pushes. Response policy: 400 only when the payload shape is unusable (the
// provider should not retry garbage); every other outcome, including internal
// failures, is acknowledged with 200 so the provider stops redelivering.
// Internal failures surface through logs, not through the response code.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) ReceiveNotification(c *gin.Context) {
	var payload request.PaymentNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[notification][handler] unparseable payload err=%v", err)
		c.JSON(errInvalidNotification.HTTPStatus, errInvalidNotification.ToHTTPError())
		return
	}

	log.Printf("[notification][handler] received order_id=%s status=%s", payload.OrderID, payload.Status)
	outcome, err := h.usecase.Reconcile(c.Request.Context(), payload.ToNotification())
	if err != nil {
		if errors.Is(err, usecase.ErrMalformedNotification) {
			log.Printf("[notification][handler] malformed notification order_id=%s status=%s", payload.OrderID, payload.Status)
			c.JSON(errInvalidNotification.HTTPStatus, errInvalidNotification.ToHTTPError())
			return
		}
		log.Printf("[notification][handler] reconcile failed order_id=%s err=%v", payload.OrderID, err)
		c.JSON(http.StatusOK, response.AckSuccess())
		return
	}

	switch {
	case !outcome.OrderFound:
		log.Printf("[notification][handler] unknown order acknowledged order_id=%s", payload.OrderID)
	case outcome.Duplicate:
		log.Printf("[notification][handler] duplicate acknowledged order_id=%s", payload.OrderID)
	case outcome.Applied:
		log.Printf("[notification][handler] applied order_id=%s status=%s", payload.OrderID, payload.Status)
	}

	c.JSON(http.StatusOK, response.AckSuccess())
}
