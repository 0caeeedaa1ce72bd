package routes

import (
	"net/http"

	coreport "github.com/adhishcp/upi-app/internal/domain/port/core"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/handler"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/api/middleware"
	"github.com/adhishcp/upi-app/internal/infrastructure/adapter/cache"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API. responseCache may be nil
// when Redis is disabled; mutating routes then always hit the store.
func SetupRoutes(
	router *gin.Engine,
	transferHandler *handler.TransferHandler,
	accountHandler *handler.AccountHandler,
	userHandler *handler.UserHandler,
	responseCache *cache.ResponseCache,
	logger coreport.Logger,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/users", userHandler.Register)

	authed := v1.Group("")
	authed.Use(middleware.Identity())
	{
		authed.GET("/users/me", userHandler.Me)

		accounts := authed.Group("/accounts")
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("", accountHandler.List)
			accounts.GET("/:accountId", accountHandler.Get)
			accounts.PATCH("/:accountId", accountHandler.UpdateRef)
			accounts.DELETE("/:accountId", accountHandler.Delete)
			accounts.GET("/:accountId/balance", accountHandler.GetBalance)
			accounts.GET("/:accountId/ledger", accountHandler.GetLedger)
			accounts.GET("/:accountId/audit", accountHandler.Audit)
		}

		transactions := authed.Group("/transactions")
		{
			transactions.GET("", transferHandler.ListTransactions)
			transactions.GET("/summary", transferHandler.Summarize)
			transactions.GET("/:txnId", transferHandler.GetTransaction)
			transactions.GET("/:txnId/status", transferHandler.GetTransactionStatus)
			transactions.POST("/:txnId/retry", transferHandler.Retry)

			idempotent := transactions.Group("")
			idempotent.Use(middleware.IdempotencyKey(responseCache, logger))
			{
				idempotent.POST("/deposit", transferHandler.Deposit)
				idempotent.POST("/withdraw", transferHandler.Withdraw)
				idempotent.POST("/transfer", transferHandler.Transfer)
				idempotent.POST("/bulk-transfer", transferHandler.BulkTransfer)
			}
		}
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
