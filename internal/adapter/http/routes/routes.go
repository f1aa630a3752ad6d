package routes

import (
	"log"
	_ "orcafacil/docs" // This will be auto-generated
	"orcafacil/internal/adapter/http/handlers"
	repository2 "orcafacil/internal/adapter/persistence/repository"
	"orcafacil/internal/events"
	"orcafacil/internal/infrastructure/database"
	"orcafacil/internal/usecase"
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
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	keywordRepo := repository2.NewKeywordDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)

	// One bus instance wired into both sides of the quote/notification
	// decoupling; neither domain calls the other directly.
	bus := events.NewBus()

	generatorUseCase := usecase.NewNotificationGeneratorUseCase(quoteRepo, keywordRepo, notificationRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, bus)
	keywordUseCase := usecase.NewKeywordUseCase(keywordRepo)

	usecase.RegisterNotificationBridge(bus, generatorUseCase)

	notificationHandler := handlers.NewNotificationHandler(notificationUseCase, generatorUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	keywordHandler := handlers.NewKeywordHandler(keywordUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler)
	addKeywordRoutes(v1, keywordHandler)
	addNotificationRoutes(v1, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
