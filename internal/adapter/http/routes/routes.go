package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vktkrum1/sistema-de-propostas/docs" // This will be auto-generated
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/handlers"
	"github.com/vktkrum1/sistema-de-propostas/internal/adapter/http/middleware"
	repository2 "github.com/vktkrum1/sistema-de-propostas/internal/adapter/persistence/repository"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/auth"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/database"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/mail"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/registry"
	"github.com/vktkrum1/sistema-de-propostas/internal/infrastructure/rendering"
	"github.com/vktkrum1/sistema-de-propostas/internal/usecase"
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

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	equipmentRepo := repository2.NewEquipmentDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	paramRepo := repository2.NewParamOptionDynamoRepository(ddb)

	baseDir := os.Getenv("APP_BASE_DIR")
	if baseDir == "" {
		baseDir = "."
	}

	renderer := rendering.NewProposalRendererFromEnv()
	mailer := mail.NewSMTPMailer(mail.ConfigFromEnv())
	cnpjGateway := registry.NewCNPJWSGateway()
	jwtManager := auth.NewJWTManagerFromEnv()

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, equipmentRepo, userRepo, renderer, mailer)
	equipmentUseCase := usecase.NewEquipmentUseCase(equipmentRepo, baseDir)
	userUseCase := usecase.NewUserUseCase(userRepo)
	paramUseCase := usecase.NewParamOptionUseCase(paramRepo)
	cnpjUseCase := usecase.NewCNPJUseCase(cnpjGateway)

	authHandler := handlers.NewAuthHandler(userUseCase, jwtManager)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	paramHandler := handlers.NewParamOptionHandler(paramUseCase)
	cnpjHandler := handlers.NewCNPJHandler(cnpjUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.POST("/login", authHandler.Login)

	// Rotas autenticadas
	authed := v1.Group("", middleware.RequireAuth(jwtManager))
	addProposalRoutes(authed, proposalHandler, cnpjHandler)
	addEquipmentRoutes(authed, equipmentHandler)
	addParamOptionRoutes(authed, paramHandler)
	addUserRoutes(authed, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
