package handler

import (
	"multichain-custody/internal/adapter/http/middleware"
	redisStore "multichain-custody/internal/adapter/storage/redis"
	"multichain-custody/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxRequestBodyBytes = 1 << 20

// RouterDeps carries everything the router needs to wire up routes.
type RouterDeps struct {
	AccountSvc   ports.AccountService
	ReconcileSvc ports.ReconcileService
	ExportSvc    ports.KeyExportService

	// RateLimitStore is optional; nil disables rate limiting.
	RateLimitStore *redisStore.RateLimitStore
	RateLimitRules map[string]middleware.RateLimitRule

	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxRequestBodyBytes))

	healthHandler := NewHealthHandler(deps.HealthCheckers...)
	r.GET("/health", healthHandler.Check)

	accountHandler := NewAccountHandler(deps.AccountSvc)
	depositHandler := NewDepositHandler(deps.ReconcileSvc)
	exportHandler := NewExportHandler(deps.ExportSvc)

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// rl returns the rate limiter for a group, or a no-op when rate
	// limiting is disabled.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	v1 := r.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", rl("accounts_create"), accountHandler.CreateAccount)
			accounts.GET("/:id/wallets", rl("reads"), accountHandler.GetWallets)
			accounts.GET("/:id/ledger", rl("reads"), accountHandler.ListLedger)
			accounts.POST("/:id/deposits/check", rl("deposits_check"), depositHandler.CheckDeposit)
			accounts.POST("/:id/keys/export", rl("keys_export"), exportHandler.ExportKeys)
		}
	}

	return r
}
