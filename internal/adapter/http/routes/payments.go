package routes

import (
	"bizdir_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, notificationHandler *handlers.NotificationHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/create-order", paymentHandler.CreateOrder)
		payments.POST("/create-mandate-order", paymentHandler.CreateMandateOrder)
		payments.POST("/verify", paymentHandler.VerifyPayment)
		payments.GET("/check-status/:order_id", paymentHandler.CheckStatus)

		// Provider callback; registered as TELEBIRR_NOTIFY_URL.
		payments.POST("/notify", notificationHandler.ReceiveNotification)
	}
}
