package routes

import (
	"log"
	_ "pma_workorders/docs" // This will be auto-generated
	"pma_workorders/internal/adapter/http/handlers"
	"pma_workorders/internal/adapter/http/middleware"
	repository "pma_workorders/internal/adapter/persistence/repository"
	"pma_workorders/internal/infrastructure/database"
	"pma_workorders/internal/infrastructure/export"
	"pma_workorders/internal/usecase"
	"pma_workorders/internal/usecase/interfaces"
	"os"
	"strconv"

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
	repo := buildWorkOrderRepository()

	workOrderUseCase := usecase.NewWorkOrderUseCase(repo, export.NewPDFRenderer())
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	authed := v1.Group("", middleware.RequireOwner(secret))
	addWorkOrderRoutes(authed, workOrderHandler)
}

// buildWorkOrderRepository selects the persistence adapter. The default is
// DynamoDB; LOCAL_STORE=true switches to the embedded SQLite store, which
// has no ownership concept and suits single-user offline use.
func buildWorkOrderRepository() interfaces.IWorkOrderRepository {
	if getenvDefault("LOCAL_STORE", "false") != "true" {
		return repository.NewWorkOrderDynamoRepository(database.ConnectDynamoDB())
	}

	db, err := database.OpenSQLite(getenvDefault("LOCAL_STORE_PATH", "workorders.db"))
	if err != nil {
		log.Fatalf("Failed to open local store: %v", err)
	}
	repo, err := repository.NewWorkOrderSQLiteRepository(db)
	if err != nil {
		log.Fatalf("Failed to initialize local store: %v", err)
	}
	return repo
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
