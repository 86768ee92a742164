package handler

import (
	"money-transfer-api/internal/adapter/http/middleware"
	redisStore "money-transfer-api/internal/adapter/storage/redis"
	"money-transfer-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	RateSvc         ports.RateService
	TransferSvc     ports.TransferService
	AccountSvc      ports.AccountService
	AdminAccountSvc ports.AdminAccountService
	NotificationSvc ports.NotificationService
	TokenSvc        ports.TokenService
	Changes         ports.ChangeSubscriber     // nil = live updates disabled
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc        ports.AuditService         // nil = audit logging disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rules[group], deps.Logger)
	}

	rateHandler := NewRateHandler(deps.RateSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)
	accountHandler := NewAccountHandler(deps.AccountSvc)
	adminAccountHandler := NewAdminAccountHandler(deps.AdminAccountSvc)
	notificationHandler := NewNotificationHandler(deps.NotificationSvc)
	eventsHandler := NewEventsHandler(deps.Changes, deps.Logger)

	v1 := r.Group("/api/v1")

	// --- Public reference data ---
	public := v1.Group("", rl(middleware.GroupRead))
	{
		public.GET("/currencies", rateHandler.ListCurrencies)
		public.GET("/rates", rateHandler.ListRates)
		public.GET("/rates/convert", rateHandler.Convert)
		public.GET("/deposit-accounts/:currency", adminAccountHandler.DepositAccount)
	}

	// --- Authenticated users ---
	authed := v1.Group("", middleware.JWTAuth(deps.TokenSvc, deps.Logger))
	if deps.AuditSvc != nil {
		authed.Use(middleware.AuditLog(deps.AuditSvc))
	}

	authed.POST("/transfers", rl(middleware.GroupTransfers), transferHandler.Create)
	authed.GET("/events", eventsHandler.Stream)

	reads := authed.Group("", rl(middleware.GroupRead))
	{
		reads.GET("/transfers", transferHandler.List)
		reads.GET("/transfers/:id", transferHandler.Get)
		reads.GET("/transfers/:id/messages", transferHandler.Messages)
		reads.GET("/transfers/:id/withdrawal", transferHandler.Withdrawal)
		reads.GET("/transfers/:id/withdrawal/qr", transferHandler.WithdrawalQR)
		reads.POST("/accounts", accountHandler.Create)
		reads.GET("/accounts", accountHandler.ListMine)
		reads.GET("/notifications", notificationHandler.List)
		reads.POST("/notifications/:id/read", notificationHandler.MarkRead)
	}

	// --- Administrators ---
	admin := authed.Group("/admin", middleware.RequireAdmin(), rl(middleware.GroupAdmin))
	{
		admin.GET("/transfers", transferHandler.AdminList)
		admin.GET("/stats", transferHandler.Stats)
		admin.POST("/transfers/:id/transitions", transferHandler.Transition)
		admin.POST("/transfers/:id/cardless-code", transferHandler.IssueCardlessCode)
		admin.GET("/users/:id/accounts", accountHandler.ListForUser)
		admin.PUT("/accounts/:id/verification", accountHandler.Verify)
		admin.POST("/rates", rateHandler.CreateRate)
		admin.PATCH("/rates", rateHandler.EditRate)
		admin.GET("/receiving-accounts", adminAccountHandler.List)
		admin.POST("/receiving-accounts", adminAccountHandler.Create)
		admin.PUT("/receiving-accounts/:id/status", adminAccountHandler.SetStatus)
	}

	return r
}
