package routes

import (
	"context"
	"log"
	"os"

	_ "printshop/docs" // This will be auto-generated
	"printshop/internal/adapter/http/handlers"
	"printshop/internal/adapter/http/middleware"
	persistencecache "printshop/internal/adapter/persistence/cache"
	repository2 "printshop/internal/adapter/persistence/repository"
	"printshop/internal/infrastructure/cache"
	"printshop/internal/infrastructure/database"
	"printshop/internal/infrastructure/messaging"
	"printshop/internal/infrastructure/payments"
	"printshop/internal/usecase"
	"printshop/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	if err := database.EnsureTables(context.Background(), ddb, repository2.TableDefinitions()); err != nil {
		log.Fatalf("failed to create dynamodb tables: %v", err)
	}

	rateTableRepo := repository2.NewRateTableDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	printJobRepo := repository2.NewPrintJobDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	serviceStatusRepo := repository2.NewServiceStatusDynamoRepository(ddb)

	var rateCache interfaces.IRateTableCache
	if rdb := cache.NewRedisClient(); rdb != nil {
		rateCache = persistencecache.NewRateTableRedisCache(rdb)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	pricingUseCase := usecase.NewPricingUseCase(rateTableRepo, rateCache)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, printJobRepo, pricingUseCase, serviceStatusRepo, messaging.NewRabbitMQNotifier())
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, orderRepo, paymentGateway)
	serviceStatusUseCase := usecase.NewServiceStatusUseCase(serviceStatusRepo)

	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	serviceStatusHandler := handlers.NewServiceStatusHandler(serviceStatusUseCase)

	auth := middleware.JWTAuth(os.Getenv("JWT_SECRET"))
	if os.Getenv("JWT_SECRET") == "" {
		log.Printf("JWT_SECRET not set: authenticated routes will reject every request")
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, auth, pricingHandler)
	addOrderRoutes(v1, auth, orderHandler, paymentHandler)
	addServiceStatusRoutes(v1, auth, serviceStatusHandler)
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
