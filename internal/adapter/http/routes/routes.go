package routes

import (
	"log"
	"strconv"

	_ "gestao_facil/docs" // This will be auto-generated
	"gestao_facil/internal/adapter/http/handlers"
	repository2 "gestao_facil/internal/adapter/persistence/repository"
	"gestao_facil/internal/infrastructure/database"
	"gestao_facil/internal/usecase"

	"github.com/gin-contrib/cors"
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
	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	composerUseCase := usecase.NewComposerUseCase(catalogRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, composerUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addBudgetRoutes(v1, budgetHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
