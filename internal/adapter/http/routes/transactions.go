package routes

import (
	"lomba_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathTransactions = "/transactions"

// addTransactionRoutes wires the payment surface. The webhook and the payment
// method catalogue are public; everything else requires a bearer token.
func addTransactionRoutes(rg *gin.RouterGroup, transactionHandler *handlers.TransactionHandler, requireAuth, requireAdmin gin.HandlerFunc) {
	transactions := rg.Group(PathTransactions)
	{
		transactions.POST("/webhook/payment", transactionHandler.Webhook)
		transactions.GET("/payment-methods", transactionHandler.PaymentMethods)
	}

	authed := transactions.Group("", requireAuth)
	{
		authed.POST("/create", transactionHandler.Create)
		authed.GET("/:payment_id", transactionHandler.Get)
		authed.GET("/team/:team_id", transactionHandler.ListByTeam)
	}

	admin := authed.Group("/admin", requireAdmin)
	{
		admin.GET("/all", transactionHandler.AdminList)
		admin.PUT("/:payment_id/verify", transactionHandler.AdminVerify)
	}
}
