package routes

import (
	"log"
	"os"
	"strconv"

	_ "bizdir_billing/docs" // This will be auto-generated
	"bizdir_billing/internal/adapter/http/handlers"
	repository2 "bizdir_billing/internal/adapter/persistence/repository"
	"bizdir_billing/internal/infrastructure/database"
	"bizdir_billing/internal/infrastructure/notify"
	"bizdir_billing/internal/infrastructure/telebirr"
	"bizdir_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// defaultMaxAmount caps a single order; override with PAYMENT_MAX_AMOUNT.
const defaultMaxAmount = "100000"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	telebirrCfg, err := telebirr.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load telebirr config: %v", err)
	}
	gateway, err := telebirr.NewClient(telebirrCfg)
	if err != nil {
		log.Fatalf("Failed to create telebirr client: %v", err)
	}

	emailCfg, err := notify.LoadEmailConfig()
	if err != nil {
		log.Fatalf("Failed to load smtp config: %v", err)
	}
	wpCfg, err := notify.LoadWordPressConfig()
	if err != nil {
		log.Fatalf("Failed to load wordpress config: %v", err)
	}

	paymentUseCase := usecase.NewPaymentOrderUseCase(orderRepo, gateway, maxAmountFromEnv())
	notificationUseCase := usecase.NewNotificationUseCase(orderRepo, notify.NewEmailSender(emailCfg), notify.NewWordPressPublisher(wpCfg))

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Public routes; the notify callback must stay reachable by the provider.
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, notificationHandler)
}

func maxAmountFromEnv() decimal.Decimal {
	raw := os.Getenv("PAYMENT_MAX_AMOUNT")
	if raw == "" {
		raw = defaultMaxAmount
	}
	max, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("[routes] invalid PAYMENT_MAX_AMOUNT=%q, using default %s", raw, defaultMaxAmount)
		return decimal.RequireFromString(defaultMaxAmount)
	}
	return max
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
