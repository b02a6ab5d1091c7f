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

	"github.com/gin-gonic/gin"
	"github.com/sangkips/vendor-ledger-api/internal/application/service"
	"github.com/sangkips/vendor-ledger-api/internal/config"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/cache"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/database"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/logger"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/repository"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/handler"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/vendor-ledger-api/internal/presentation/http/routes"
	"github.com/sangkips/vendor-ledger-api/pkg/printer"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vendor-ledger-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.ConfigForEnvironment(cfg.App.Env, cfg.Log.Level))
	defer func() { _ = log.Sync() }()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		log.Warn("unknown timezone, using local time", zap.String("timezone", cfg.Database.Timezone), zap.Error(err))
		loc = time.Local
	}

	db, err := database.NewDatabase(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	vendorRepo := repository.NewVendorRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	operatorRepo := repository.NewOperatorRepository(db)

	if err := database.SeedAdmin(ctx, operatorRepo, cfg.Admin, log); err != nil {
		log.Warn("failed to seed admin operator", zap.Error(err))
	}

	var idempotencyRepo domainRepo.IdempotencyRepository = repository.NewIdempotencyRepository(db)
	if cfg.Redis.Addr != "" {
		store, err := cache.NewRedisIdempotencyStore(cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, keeping idempotency keys in the database", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		} else {
			defer store.Close()
			idempotencyRepo = store
			log.Info("idempotency keys stored in redis", zap.String("addr", cfg.Redis.Addr))
		}
	}
	go purgeExpiredKeys(ctx, idempotencyRepo, log)

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours, cfg.JWT.RefreshExpiryHours)

	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Warn("failed to initialize printer", zap.Error(err))
		thermalPrinter = printer.NewNullPrinter()
	}

	// Services
	authService := service.NewAuthService(operatorRepo, jwtManager, log)
	vendorService := service.NewVendorService(vendorRepo, projectRepo, billRepo, paymentRepo, log)
	projectService := service.NewProjectService(vendorRepo, projectRepo, billRepo, paymentRepo, log)
	ledgerService := service.NewLedgerService(vendorRepo, projectRepo, billRepo, paymentRepo, companyDirectory(cfg), log)
	analyticsService := service.NewAnalyticsService(analyticsRepo, loc, log)
	printerService := service.NewPrinterService(thermalPrinter, paymentRepo, projectRepo, cfg.Printer.Type, cfg.Printer.Width, loc, log)

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Vendor:    handler.NewVendorHandler(vendorService),
		Project:   handler.NewProjectHandler(projectService),
		Ledger:    handler.NewLedgerHandler(ledgerService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	rateLimiter := middleware.NewOperatorRateLimiter(middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Stop()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("app", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("addr", srv.Addr),
			zap.String("db_driver", cfg.Database.Driver),
			zap.String("printer", cfg.Printer.Type),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func companyDirectory(cfg *config.Config) service.CompanyDirectory {
	dir := make(service.CompanyDirectory, len(enum.CompanyNames))
	for _, name := range enum.CompanyNames {
		p := cfg.Company(name)
		dir[name] = entity.CompanySnapshot{Name: p.Name, Address: p.Address, Phone: p.Phone, Email: p.Email}
	}
	return dir
}

func purgeExpiredKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				log.Warn("failed to purge idempotency keys", zap.Error(err))
			}
		}
	}
}
