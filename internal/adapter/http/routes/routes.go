package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "lomba_backend/docs" // This will be auto-generated
	"lomba_backend/internal/adapter/http/handlers"
	"lomba_backend/internal/adapter/http/middleware"
	repository2 "lomba_backend/internal/adapter/persistence/repository"
	"lomba_backend/internal/infrastructure/database"
	"lomba_backend/internal/infrastructure/idrx"
	"lomba_backend/internal/scheduler"
	"lomba_backend/internal/usecase"

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

	userRepo := repository2.NewUserDynamoRepository(ddb)
	teamRepo := repository2.NewTeamDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	idrxCfg, err := idrx.ConfigFromEnv()
	if err != nil {
		log.Fatalf("IDRX provider not configured: %v", err)
	}
	provider := idrx.NewClient(idrxCfg)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtSecretFromEnv())
	teamUseCase := usecase.NewTeamUseCase(teamRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, teamRepo, userRepo, provider)

	authHandler := handlers.NewAuthHandler(authUseCase)
	teamHandler := handlers.NewTeamHandler(teamUseCase)
	transactionHandler := handlers.NewTransactionHandler(paymentUseCase)

	startPaymentChecker(paymentRepo, teamRepo, paymentUseCase)

	requireAuth := middleware.RequireAuth(authUseCase)
	requireAdmin := middleware.RequireAdmin()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	v1.GET(PathAuth+"/me", requireAuth, authHandler.Me)
	addTeamRoutes(v1, teamHandler, requireAuth, requireAdmin)
	addTransactionRoutes(v1, transactionHandler, requireAuth, requireAdmin)
}

func startPaymentChecker(paymentRepo *repository2.PaymentDynamoRepository, teamRepo *repository2.TeamDynamoRepository, engine *usecase.PaymentUseCase) {
	interval := checkerIntervalFromEnv()
	checker := scheduler.NewPaymentChecker(paymentRepo, teamRepo, engine, interval)
	go checker.Run(context.Background())
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func jwtSecretFromEnv() []byte {
	secret := getenvDefault("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return []byte(secret)
}

func checkerIntervalFromEnv() time.Duration {
	raw := getenvDefault("PAYMENT_CHECK_INTERVAL_MINUTES", "10")
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 1 {
		minutes = 10
	}
	return time.Duration(minutes) * time.Minute
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
