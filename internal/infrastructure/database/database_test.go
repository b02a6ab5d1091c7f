package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sangkips/vendor-ledger-api/internal/config"
	"github.com/sangkips/vendor-ledger-api/internal/domain/entity"
	"github.com/sangkips/vendor-ledger-api/internal/infrastructure/repository"
	"github.com/sangkips/vendor-ledger-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "ledger.db")}

	db, err := NewDatabase(cfg, zap.NewNop(), "silent")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	assert.True(t, db.Migrator().HasTable(&entity.Vendor{}))
	assert.True(t, db.Migrator().HasTable(&entity.Payment{}))
	assert.True(t, db.Migrator().HasColumn(&entity.Payment{}, "gst_percentage"))
	assert.True(t, db.Migrator().HasColumn(&entity.Payment{}, "payment_mode"))
}

func TestNewDatabase_UnknownDriver(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{Driver: "oracle"}, zap.NewNop(), "silent")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSeedAdmin(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "ledger.db")}
	db, err := NewDatabase(cfg, zap.NewNop(), "silent")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	operators := repository.NewOperatorRepository(db)
	ctx := context.Background()
	admin := config.AdminConfig{Email: "admin@example.com", Password: "changeme"}

	require.NoError(t, SeedAdmin(ctx, operators, admin, zap.NewNop()))
	require.NoError(t, SeedAdmin(ctx, operators, admin, zap.NewNop()))

	var count int64
	db.Model(&entity.Operator{}).Count(&count)
	assert.Equal(t, int64(1), count)

	op, err := operators.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, op)
	assert.Equal(t, "Administrator", op.Name)
	assert.Equal(t, entity.RoleAdmin, op.Role)
	assert.True(t, utils.CheckPasswordHash("changeme", op.Password))
}

func TestSeedAdmin_NotConfigured(t *testing.T) {
	assert.NoError(t, SeedAdmin(context.Background(), nil, config.AdminConfig{}, zap.NewNop()))
}
