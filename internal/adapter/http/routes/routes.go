package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/rafacrt/studio-sub000/docs" // swag-generated OpenAPI registration
	"github.com/rafacrt/studio-sub000/internal/adapter/http/handlers"
	"github.com/rafacrt/studio-sub000/internal/adapter/persistence/repository"
	"github.com/rafacrt/studio-sub000/internal/domain/entities"
	"github.com/rafacrt/studio-sub000/internal/infrastructure/database"
	"github.com/rafacrt/studio-sub000/internal/usecase"
	"github.com/rafacrt/studio-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	osRepo, clienteRepo, parceiroRepo := buildRepositories()

	osUseCase := usecase.NewServiceOrderUseCase(osRepo)
	clienteUseCase := usecase.NewPartyUseCase(entities.PartyKindCliente, clienteRepo)
	parceiroUseCase := usecase.NewPartyUseCase(entities.PartyKindParceiro, parceiroRepo)
	reportUseCase := usecase.NewReportUseCase(osRepo)

	osHandler := handlers.NewServiceOrderHandler(osUseCase)
	clienteHandler := handlers.NewPartyHandler(clienteUseCase)
	parceiroHandler := handlers.NewPartyHandler(parceiroUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, osHandler, reportHandler)
	addPartyRoutes(v1, clienteHandler, parceiroHandler)
}

// buildRepositories selects the persistence backend from OS_DB_DRIVER
// (default sqlite). Each backend is the sole numbering authority for its
// store; no client-side counter exists anywhere.
func buildRepositories() (interfaces.IServiceOrderRepository, interfaces.IPartyRepository, interfaces.IPartyRepository) {
	driver := os.Getenv("OS_DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	switch driver {
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		log.Printf("[routes] persistence backend: dynamodb")
		return repository.NewServiceOrderDynamoRepository(ddb),
			repository.NewPartyDynamoRepository(ddb, entities.PartyKindCliente),
			repository.NewPartyDynamoRepository(ddb, entities.PartyKindParceiro)
	case "sqlite":
		db := database.ConnectSQLite()
		log.Printf("[routes] persistence backend: sqlite")
		return repository.NewServiceOrderSQLiteRepository(db),
			repository.NewPartySQLiteRepository(db, entities.PartyKindCliente),
			repository.NewPartySQLiteRepository(db, entities.PartyKindParceiro)
	default:
		log.Fatalf("unknown OS_DB_DRIVER %q (want sqlite or dynamodb)", driver)
		return nil, nil, nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
