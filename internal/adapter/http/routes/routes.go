package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "paymob_service/docs" // generated swagger spec
	"paymob_service/internal/adapter/http/handlers"
	repository2 "paymob_service/internal/adapter/persistence/repository"
	envconfig "paymob_service/internal/infrastructure/config"
	"paymob_service/internal/infrastructure/database"
	"paymob_service/internal/infrastructure/payments"
	"paymob_service/internal/usecase"
	"paymob_service/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

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
	configStore := buildConfigStore()

	// The Paymob client authenticates at construction unless the store already
	// carries a token + merchant id. A failure here (unreachable gateway) must
	// not keep the service from starting; the affected routes answer 500.
	var gateway interfaces.IPaymobGateway
	pg, err := payments.NewPaymobGateway(context.Background(), payments.Config{
		IframeID:      os.Getenv("PAYMOB_IFRAME_ID"),
		IntegrationID: os.Getenv("PAYMOB_INTEGRATION_ID"),
	}, configStore)
	if err != nil {
		log.Printf("Paymob gateway not configured: %v", err)
	} else {
		gateway = pg
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(gateway)

	orderHandler := handlers.NewOrderHandler(checkoutUseCase)
	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAcceptanceRoutes(v1, orderHandler, paymentHandler)
}

// buildConfigStore picks where gateway credentials and the cached session
// live: DynamoDB when PAYMOB_CONFIG_TABLE is set, PAYMOB_* env vars otherwise.
func buildConfigStore() interfaces.IGatewayConfigStore {
	if os.Getenv("PAYMOB_CONFIG_TABLE") != "" {
		ddb := database.ConnectDynamoDB()
		return repository2.NewGatewayConfigDynamoRepository(ddb)
	}
	return envconfig.NewEnvConfigStore()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
