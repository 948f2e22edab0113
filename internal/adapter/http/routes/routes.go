package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"

	_ "cip_portal/docs" // This will be auto-generated
	"cip_portal/internal/adapter/http/handlers"
	"cip_portal/internal/adapter/persistence/repository"
	"cip_portal/internal/domain/entities"
	"cip_portal/internal/infrastructure/database"
	"cip_portal/internal/usecase"
	"cip_portal/internal/usecase/interfaces"

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
	catalog := entities.DefaultCatalog()
	if err := entities.ValidateCatalog(catalog); err != nil {
		log.Fatalf("invalid product catalog: %v", err)
	}

	catalogRepo := repository.NewProductCatalogMemoryRepository(catalog)
	overrideRepo := repository.NewStockOverrideMemoryRepository()
	adjustmentRepo := repository.NewQuantityAdjustmentMemoryRepository()
	cartRepo := repository.NewCartMemoryRepository()
	ledgerRepo := newOrderLedger()

	replenishmentUseCase := usecase.NewReplenishmentUseCase(catalogRepo, overrideRepo, adjustmentRepo, cartRepo)
	cartUseCase := usecase.NewCartUseCase(catalogRepo, cartRepo)
	orderUseCase := usecase.NewOrderUseCase(ledgerRepo, cartRepo, catalogRepo, overrideRepo)
	assistantUseCase := usecase.NewAssistantUseCase()

	replenishmentHandler := handlers.NewReplenishmentHandler(replenishmentUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	portalHandler := handlers.NewPortalHandler()
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReplenishmentRoutes(v1, replenishmentHandler, cartHandler, orderHandler)
	addPortalRoutes(v1, portalHandler, assistantHandler)
}

// newOrderLedger selects the ledger backend. The in-memory ledger is
// the default; ORDER_LEDGER_BACKEND=dynamodb switches to DynamoDB for
// deployments that need orders to survive restarts.
func newOrderLedger() interfaces.IOrderLedgerRepository {
	backend := strings.ToLower(getenvDefault("ORDER_LEDGER_BACKEND", "memory"))
	switch backend {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		ledger := repository.NewOrderLedgerDynamoRepository(ddb)
		if err := ledger.Seed(context.Background(), entities.SeedOrders()); err != nil {
			log.Fatalf("failed to seed order ledger: %v", err)
		}
		log.Printf("[order][routes] ledger backend: dynamodb")
		return ledger
	case "memory":
		log.Printf("[order][routes] ledger backend: memory")
		return repository.NewOrderLedgerMemoryRepository(entities.SeedOrders())
	default:
		log.Fatalf("unknown ORDER_LEDGER_BACKEND %q", backend)
		return nil
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
