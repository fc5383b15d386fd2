package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "bizdir_billing/internal/adapter/http/dto/request"
	response "bizdir_billing/internal/adapter/http/dto/response"
	"bizdir_billing/internal/usecase"
	"bizdir_billing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for Telebirr payment orders.

type PaymentHandler struct {
	usecase usecase.IPaymentOrderUseCase
}

func NewPaymentHandler(uc usecase.IPaymentOrderUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateOrder creates a one-time payment order and returns the checkout URL.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create-order invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	amount, err := parseAmount(payload.Amount.String())
	if err != nil {
		log.Printf("[payment][handler] create-order invalid amount value=%q", payload.Amount)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create-order start title=%q amount=%s", payload.Title, amount)
	created, err := h.usecase.CreateOrder(c.Request.Context(), payload.Title, amount)
	if err != nil {
		log.Printf("[payment][handler] create-order failed err=%v", err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-order success order_id=%s", created.OrderID)

	c.JSON(http.StatusOK, response.FromCreatedOrder(created))
}

// CreateMandateOrder creates a recurring (direct-debit mandate) order.
func (h *PaymentHandler) CreateMandateOrder(c *gin.Context) {
	var payload request.MandateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] create-mandate invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	amount, err := parseAmount(payload.Amount.String())
	if err != nil {
		log.Printf("[payment][handler] create-mandate invalid amount value=%q", payload.Amount)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] create-mandate start title=%q amount=%s contract_no=%s", payload.Title, amount, payload.ContractNo)
	created, err := h.usecase.CreateMandateOrder(c.Request.Context(), payload.Title, amount, payload.ContractNo)
	if err != nil {
		log.Printf("[payment][handler] create-mandate failed contract_no=%s err=%v", payload.ContractNo, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create-mandate success order_id=%s contract_no=%s", created.OrderID, created.ContractNo)

	c.JSON(http.StatusOK, response.FromCreatedOrder(created))
}

// VerifyPayment queries the gateway for the authoritative state of an order.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify invalid payload err=%v", err)
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] verify start order_id=%s", payload.OrderID)
	result, err := h.usecase.VerifyPayment(c.Request.Context(), payload.OrderID)
	if err != nil {
		log.Printf("[payment][handler] verify failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify success order_id=%s verified=%t trade_state=%s", payload.OrderID, result.Verified, result.TradeState)

	c.JSON(http.StatusOK, response.FromVerification(result))
}

// CheckStatus returns the locally persisted state of an order.
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[payment][handler] check-status start order_id=%s", orderID)

	order, err := h.usecase.GetOrderStatus(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] check-status failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] check-status success order_id=%s status=%s", orderID, order.Status)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, errors.New("amount is empty")
	}
	return decimal.NewFromString(raw)
}

func mapPaymentOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountOverLimit):
		return pkg.NewDomainErrorSimple("AMOUNT_OVER_LIMIT", "Amount exceeds the allowed maximum", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContractNo):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_NO", "Contract number must be at least 5 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderCreationFailed):
		return pkg.NewDomainError("ORDER_CREATION_FAILED", "Payment provider rejected the order", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrVerificationFailed):
		return pkg.NewDomainError("VERIFICATION_FAILED", "Payment provider could not verify the order", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
