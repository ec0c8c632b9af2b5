package handler

import (
	"solwallet-api/internal/adapter/http/middleware"
	redisStore "solwallet-api/internal/adapter/storage/redis"
	"solwallet-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	TxSvc          ports.TransactionService
	AssistantSvc   ports.AssistantService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize())

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	api := r.Group("/api")

	authHandler := NewAuthHandler(deps.WalletSvc)
	auth := api.Group("/auth")
	{
		auth.POST("/create", rl("auth_create"), authHandler.CreateAccount)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	api.GET("/wallet/:id", rl("wallet"), walletHandler.GetWallet)

	txHandler := NewTransactionHandler(deps.TxSvc)
	transactions := api.Group("/transactions")
	{
		transactions.POST("/send", rl("tx_send"), txHandler.Send)
		transactions.GET("/:walletId", rl("tx_history"), txHandler.History)
	}

	assistantHandler := NewAssistantHandler(deps.AssistantSvc)
	ai := api.Group("/ai")
	{
		ai.POST("/query", rl("ai_query"), assistantHandler.Query)
		ai.GET("/conversations/:walletId", rl("ai_query"), assistantHandler.Conversations)
	}

	return r
}
