package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sangkips/vendor-ledger-api/internal/config"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/vendor-ledger-api/internal/domain/repository"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/logger"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase opens the configured database. Postgres is the default;
// sqlite is meant for local use and tests.
func NewDatabase(cfg *config.DatabaseConfig, log *zap.Logger, logLevel string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "postgres":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(log, logger.GormLevel(logLevel), 200*time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.Driver == "sqlite" {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}

	log.Info("connected to database", zap.String("driver", dialector.Name()))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entity.Vendor{},
		&entity.Project{},
		&entity.Bill{},
		&entity.Payment{},
		&entity.Operator{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedAdmin creates the configured admin operator if no operator with that
// email exists yet. It does nothing when no admin is configured.
func SeedAdmin(ctx context.Context, operators domainRepo.OperatorRepository, admin config.AdminConfig, log *zap.Logger) error {
	if admin.Email == "" || admin.Password == "" {
		return nil
	}

	existing, err := operators.GetByEmail(ctx, admin.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Debug("admin operator already exists", zap.String("email", existing.Email))
		return nil
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	name := admin.Name
	if name == "" {
		name = "Administrator"
	}
	op := &entity.Operator{
		Name:     name,
		Email:    admin.Email,
		Password: hashed,
		Role:     entity.RoleAdmin,
	}
	if err := operators.Create(ctx, op); err != nil {
		return fmt.Errorf("create admin operator: %w", err)
	}

	log.Info("admin operator created", zap.String("email", op.Email))
	return nil
}
