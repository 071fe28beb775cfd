package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dkurnia/Cooperative-Estate-Backend/internal/api"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/auth"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/config"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/database"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/logging"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/repository"
	"github.com/dkurnia/Cooperative-Estate-Backend/internal/service"
)

const tokenDuration = 12 * time.Hour

func main() {
	logging.Setup()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to database", "path", cfg.Database.Path)

	// Create repositories
	memberRepo := repository.NewMemberRepository(db)
	savingsRepo := repository.NewSavingsRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	distributionRepo := repository.NewDistributionRepository(db)
	allocationRepo := repository.NewAllocationRepository(db)
	feeRepo := repository.NewFeeRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	memberService := service.NewMemberService(memberRepo, savingsRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	policyService := service.NewPolicyService(policyRepo)
	distributionService := service.NewDistributionService(
		db,
		distributionRepo,
		allocationRepo,
		policyRepo,
		savingsRepo,
		transactionRepo,
	)
	feeService := service.NewFeeService(feeRepo, memberRepo)
	settingService, err := service.NewSettingService(settingRepo, cfg.Settings.EncryptionKey)
	if err != nil {
		slog.Error("failed to initialize settings", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, tokenDuration)

	// Monthly fee invoice job
	scheduler := service.NewScheduler(feeService)
	if cfg.Fees.CronEnabled {
		if err := scheduler.Start(); err != nil {
			slog.Error("failed to start fee scheduler", "error", err)
			os.Exit(1)
		}
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(
		systemService,
		memberService,
		transactionService,
		policyService,
		distributionService,
		feeService,
		settingService,
		jwtManager,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("starting server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
