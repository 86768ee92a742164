package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"money-transfer-api/config"
	httpHandler "money-transfer-api/internal/adapter/http/handler"
	memStorage "money-transfer-api/internal/adapter/storage/memory"
	pgStorage "money-transfer-api/internal/adapter/storage/postgres"
	redisStorage "money-transfer-api/internal/adapter/storage/redis"
	"money-transfer-api/internal/core/ports"
	"money-transfer-api/internal/service"
	"money-transfer-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// repositories groups the persistence ports for one storage driver.
type repositories struct {
	transfers     ports.TransferRepository
	withdrawals   ports.CardlessWithdrawalRepository
	savedAccounts ports.SavedAccountRepository
	adminAccounts ports.AdminAccountRepository
	rates         ports.ExchangeRateRepository
	notifications ports.NotificationRepository
	messages      ports.MessageRepository
	profiles      ports.ProfileRepository
	audit         ports.AuditRepository
	health        []ports.HealthChecker
	close         func()
}

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("MTA_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("driver", cfg.Database.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting Money Transfer API")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required")
	}
	gin.SetMode(cfg.Server.Mode)

	ctx := context.Background()

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer repos.close()

	// Redis is optional: without it the change feed, idempotency cache,
	// claims and rate limiting are off.
	var (
		changes          ports.ChangePublisher
		subscriber       ports.ChangeSubscriber
		idempotencyCache ports.IdempotencyCache
		claims           ports.ClaimStore
		rateLimitStore   *redisStorage.RateLimitStore
	)
	healthCheckers := repos.health
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		feed := redisStorage.NewChangeFeed(rdb, logger.Component(log, "change_feed"))
		changes = feed
		subscriber = feed
		idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		claims = redisStorage.NewClaimStore(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	} else {
		log.Warn().Msg("Redis disabled: live updates, rate limiting and cross-instance idempotency are off")
	}

	// Initialize business services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	rateSvc := service.NewRateService(repos.rates, changes, logger.Component(log, "rates"))
	notificationSvc := service.NewNotificationService(repos.notifications, repos.messages, changes, logger.Component(log, "notifications"))
	accountSvc := service.NewAccountService(repos.savedAccounts, notificationSvc, changes, logger.Component(log, "accounts"))
	adminAccountSvc := service.NewAdminAccountService(repos.adminAccounts, changes, logger.Component(log, "receiving_accounts"))
	transferSvc := service.NewTransferService(service.TransferServiceDeps{
		Transfers:        repos.transfers,
		Withdrawals:      repos.withdrawals,
		Accounts:         repos.savedAccounts,
		Messages:         repos.messages,
		Profiles:         repos.profiles,
		Rates:            rateSvc,
		Notifier:         notificationSvc,
		Changes:          changes,
		IdempotencyCache: idempotencyCache,
		Claims:           claims,
		IdempotencyTTL:   cfg.Idempotency.TTL,
		ClaimTTL:         cfg.Idempotency.ClaimTTL,
	}, logger.Component(log, "transfers"))
	auditSvc := service.NewAuditService(repos.audit, logger.Component(log, "audit"))

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		RateSvc:         rateSvc,
		TransferSvc:     transferSvc,
		AccountSvc:      accountSvc,
		AdminAccountSvc: adminAccountSvc,
		NotificationSvc: notificationSvc,
		TokenSvc:        tokenSvc,
		Changes:         subscriber,
		RateLimitStore:  rateLimitStore,
		AuditSvc:        auditSvc,
		HealthCheckers:  healthCheckers,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn().Msg("Using in-memory storage: data is lost on restart")
		store := memStorage.NewStore()
		return &repositories{
			transfers:     store.Transfers(),
			withdrawals:   store.Withdrawals(),
			savedAccounts: store.SavedAccounts(),
			adminAccounts: store.AdminAccounts(),
			rates:         store.Rates(),
			notifications: store.Notifications(),
			messages:      store.Messages(),
			profiles:      store.Profiles(),
			audit:         store.Audit(),
			close:         func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &repositories{
		transfers:     pgStorage.NewTransferRepo(pool),
		withdrawals:   pgStorage.NewWithdrawalRepo(pool),
		savedAccounts: pgStorage.NewSavedAccountRepo(pool),
		adminAccounts: pgStorage.NewAdminAccountRepo(pool),
		rates:         pgStorage.NewRateRepo(pool),
		notifications: pgStorage.NewNotificationRepo(pool),
		messages:      pgStorage.NewMessageRepo(pool),
		profiles:      pgStorage.NewProfileRepo(pool),
		audit:         pgStorage.NewAuditRepo(pool),
		health:        []ports.HealthChecker{pgStorage.NewHealthCheck(pool)},
		close:         pool.Close,
	}, nil
}
